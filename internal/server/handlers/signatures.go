package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/pdfsync/internal/server/storage"
	"github.com/iudanet/pdfsync/internal/signatures"
	"github.com/iudanet/pdfsync/pkg/api"
)

// SignatureStorage определяет интерфейс для работы с подписями профиля
type SignatureStorage interface {
	GetSignatures(ctx context.Context) (string, error)
	UpdateSignatures(ctx context.Context, merge storage.MergeFunc) (string, error)
}

// SignatureHandler handles the profile signature endpoint
type SignatureHandler struct {
	logger  *slog.Logger
	storage SignatureStorage
	maxBody int64
}

// NewSignatureHandler creates a new signature handler; maxBody limits POST bodies in bytes
func NewSignatureHandler(logger *slog.Logger, storage SignatureStorage, maxBody int64) *SignatureHandler {
	return &SignatureHandler{
		logger:  logger,
		storage: storage,
		maxBody: maxBody,
	}
}

// HandleSignatures обрабатывает GET и POST /api/v1/signatures
func (h *SignatureHandler) HandleSignatures(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r)
	case http.MethodPost:
		h.handlePost(w, r)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// handleGet возвращает сохранённые подписи как JSON объект
func (h *SignatureHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	stored, err := h.storage.GetSignatures(r.Context())
	if err != nil {
		h.logger.Error("Failed to get signatures", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(stored))
}

// handlePost применяет изменение previous -> current к сохранённому состоянию.
// Ответ 201 означает, что изменение принято и его можно перечитать.
func (h *SignatureHandler) handlePost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	if err := parseForm(r); err != nil {
		writeFormError(w, err, h.logger)
		return
	}

	current := r.FormValue(api.FieldCurrentSignatures)
	if current == "" {
		http.Error(w, "current_signatures is required", http.StatusBadRequest)
		return
	}
	previous := r.FormValue(api.FieldPreviousSignatures)

	merged, err := h.storage.UpdateSignatures(r.Context(), func(stored string) (string, error) {
		return signatures.Merge(stored, previous, current)
	})
	if err != nil {
		if errors.Is(err, signatures.ErrInvalidSnapshot) {
			h.logger.Warn("Rejected signature snapshot", "error", err)
			http.Error(w, "Invalid signatures", http.StatusBadRequest)
			return
		}
		h.logger.Error("Failed to update signatures", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Signatures updated", "size", len(merged))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte(merged))
}
