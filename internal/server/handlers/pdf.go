package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/pdfsync/internal/models"
	"github.com/iudanet/pdfsync/internal/pdfinfo"
	"github.com/iudanet/pdfsync/internal/server/storage"
	"github.com/iudanet/pdfsync/internal/validation"
	"github.com/iudanet/pdfsync/pkg/api"
)

// PDFStorage определяет интерфейс для работы с документами
type PDFStorage interface {
	CreatePDF(ctx context.Context, pdf *models.PDF) error
	GetPDF(ctx context.Context, id string) (*models.PDF, error)
	UpdateCurrentPage(ctx context.Context, id string, page int, updatedAt time.Time) error
	UpdateContent(ctx context.Context, id string, content []byte, digest string, numberOfPages int, updatedAt time.Time) error
}

// InspectFunc проверяет загруженный документ
type InspectFunc func(data []byte) (*pdfinfo.Info, error)

// PDFHandler handles document endpoints
type PDFHandler struct {
	logger    *slog.Logger
	storage   PDFStorage
	inspect   InspectFunc
	maxUpload int64
}

// NewPDFHandler creates a new document handler; maxUpload limits request bodies in bytes
func NewPDFHandler(logger *slog.Logger, storage PDFStorage, inspect InspectFunc, maxUpload int64) *PDFHandler {
	if inspect == nil {
		inspect = pdfinfo.Inspect
	}
	return &PDFHandler{
		logger:    logger,
		storage:   storage,
		inspect:   inspect,
		maxUpload: maxUpload,
	}
}

// Update обрабатывает POST /api/v1/pdf/update.
// Форма с updated_pdf заменяет документ, форма с current_page обновляет позицию.
func (h *PDFHandler) Update(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := parseForm(r); err != nil {
		h.formError(w, err)
		return
	}

	pdfID := r.FormValue(api.FieldPDFID)
	if err := validation.ValidatePDFID(pdfID); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var err error
	if r.MultipartForm != nil && len(r.MultipartForm.File[api.FieldUpdatedPDF]) > 0 {
		err = h.updateContent(r, pdfID, r.MultipartForm.File[api.FieldUpdatedPDF][0])
	} else if value := r.FormValue(api.FieldCurrentPage); value != "" {
		err = h.updatePage(r, pdfID, value)
	} else {
		http.Error(w, "updated_pdf or current_page is required", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.storageError(w, err, pdfID)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *PDFHandler) updatePage(r *http.Request, pdfID, value string) error {
	page, err := strconv.Atoi(value)
	if err != nil || page < 1 {
		return errBadRequest("invalid current_page")
	}

	if err := h.storage.UpdateCurrentPage(r.Context(), pdfID, page, time.Now().UTC()); err != nil {
		return err
	}

	h.logger.Debug("Current page updated", "pdf_id", pdfID, "page", page)
	return nil
}

func (h *PDFHandler) updateContent(r *http.Request, pdfID string, header *multipart.FileHeader) error {
	data, err := readFile(header)
	if err != nil {
		return err
	}

	info, err := h.inspect(data)
	if err != nil {
		h.logger.Warn("Rejected document update", "pdf_id", pdfID, "error", err)
		return errBadRequest("uploaded file is not a valid PDF")
	}

	if err := h.storage.UpdateContent(r.Context(), pdfID, data, info.Digest, info.NumberOfPages, time.Now().UTC()); err != nil {
		return err
	}

	h.logger.Info("Document updated", "pdf_id", pdfID, "size", info.Size, "pages", info.NumberOfPages)
	return nil
}

// Create обрабатывает POST /api/v1/pdf
func (h *PDFHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := parseForm(r); err != nil {
		h.formError(w, err)
		return
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File[api.FieldFile]) == 0 {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	header := r.MultipartForm.File[api.FieldFile][0]

	data, err := readFile(header)
	if err != nil {
		h.logger.Error("Failed to read upload", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	info, err := h.inspect(data)
	if err != nil {
		h.logger.Warn("Rejected document upload", "error", err)
		http.Error(w, "uploaded file is not a valid PDF", http.StatusBadRequest)
		return
	}

	name := r.FormValue(api.FieldName)
	if name == "" {
		name = filepath.Base(header.Filename)
	}
	if err := validation.ValidateDocumentName(name); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now().UTC()
	pdf := &models.PDF{
		ID:            uuid.New().String(),
		Name:          name,
		Content:       data,
		Digest:        info.Digest,
		NumberOfPages: info.NumberOfPages,
		CurrentPage:   1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := h.storage.CreatePDF(r.Context(), pdf); err != nil {
		h.logger.Error("Failed to store document", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Document created", "pdf_id", pdf.ID, "name", name, "pages", pdf.NumberOfPages)

	writeJSON(w, http.StatusCreated, api.CreatePDFResponse{
		ID:            pdf.ID,
		Name:          pdf.Name,
		Digest:        pdf.Digest,
		NumberOfPages: pdf.NumberOfPages,
	}, h.logger)
}

// CurrentPage обрабатывает GET /api/v1/pdf/{id}/current_page
func (h *PDFHandler) CurrentPage(w http.ResponseWriter, r *http.Request) {
	pdfID := chi.URLParam(r, "id")
	if err := validation.ValidatePDFID(pdfID); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf, err := h.storage.GetPDF(r.Context(), pdfID)
	if err != nil {
		h.storageError(w, err, pdfID)
		return
	}

	writeJSON(w, http.StatusOK, api.CurrentPageResponse{CurrentPage: pdf.CurrentPage}, h.logger)
}

// File обрабатывает GET /api/v1/pdf/{id}/file
func (h *PDFHandler) File(w http.ResponseWriter, r *http.Request) {
	pdfID := chi.URLParam(r, "id")
	if err := validation.ValidatePDFID(pdfID); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf, err := h.storage.GetPDF(r.Context(), pdfID)
	if err != nil {
		h.storageError(w, err, pdfID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf.Content)))
	w.Header().Set("ETag", strconv.Quote(pdf.Digest))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf.Content)
}

// badRequestError ошибка входных данных, отдаётся клиенту как 400
type badRequestError string

func errBadRequest(msg string) error {
	return badRequestError(msg)
}

func (e badRequestError) Error() string {
	return string(e)
}

func (h *PDFHandler) storageError(w http.ResponseWriter, err error, pdfID string) {
	var badRequest badRequestError
	switch {
	case errors.As(err, &badRequest):
		http.Error(w, badRequest.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrPDFNotFound):
		http.Error(w, "PDF not found", http.StatusNotFound)
	default:
		h.logger.Error("Document storage failed", "pdf_id", pdfID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *PDFHandler) formError(w http.ResponseWriter, err error) {
	writeFormError(w, err, h.logger)
}

func readFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	return io.ReadAll(file)
}
