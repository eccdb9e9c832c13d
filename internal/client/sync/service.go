package sync

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	httpClient "github.com/iudanet/pdfsync/internal/client/api"
	"github.com/iudanet/pdfsync/internal/client/storage"
	"github.com/iudanet/pdfsync/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для синхронизации подписей
type Service interface {
	// Reconcile сравнивает слоты кэша и при расхождении отправляет изменения на сервер
	Reconcile(ctx context.Context, signatureURL, csrfToken string) (*Result, error)

	// Refresh загружает подписи с сервера в оба слота кэша
	Refresh(ctx context.Context, signatureURL string) (*Result, error)
}

// State is the step a reconciliation round ended in
type State int

const (
	StateIdle State = iota
	StateComparing
	StateNoChange
	StateSubmitting
	StateRefreshed
	StateSubmitFailed
	// StateRefreshFailed: the server accepted the delta but reading it back failed
	StateRefreshFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateComparing:
		return "comparing"
	case StateNoChange:
		return "no_change"
	case StateSubmitting:
		return "submitting"
	case StateRefreshed:
		return "refreshed"
	case StateSubmitFailed:
		return "submit_failed"
	case StateRefreshFailed:
		return "refresh_failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Result describes the outcome of one round
type Result struct {
	Err        error                    // Err сетевая ошибка, если раунд не удался
	Snapshot   models.SignatureSnapshot // Snapshot состояние сервера после Refreshed
	State      State
	StatusCode int // StatusCode ответ на отправку подписей, 0 если ответа не было
}

// service keeps the cache and the backend in agreement
type service struct {
	apiClient httpClient.ClientAPI
	cache     storage.SignatureCache
	logger    *slog.Logger
	// mu делает цикл чтение-отправка-запись атомарным для параллельных вызовов
	mu sync.Mutex
}

// NewService creates a new reconciler
func NewService(apiClient httpClient.ClientAPI, cache storage.SignatureCache, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		cache:     cache,
		logger:    logger,
	}
}

// Reconcile performs one compare-submit-refresh round:
// 1. Reads previous and current snapshots from the cache
// 2. Equal snapshots: nothing to do, no network activity
// 3. Otherwise submits (current, previous)
// 4. On 201 fetches the merged server state and collapses both slots to it
// 5. Any other outcome leaves the cache untouched so the next tick retries
//
// The returned error is reserved for local cache failures.
func (s *service) Reconcile(ctx context.Context, signatureURL, csrfToken string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := &Result{State: StateComparing}

	entry, err := s.cache.LoadSignatures(ctx)
	if err != nil {
		result.State = StateIdle
		return result, fmt.Errorf("failed to load cached signatures: %w", err)
	}

	// Побайтовое сравнение; пустой current при непустом previous отправляется как null
	if !entry.Diverged() {
		result.State = StateNoChange
		return result, nil
	}

	result.State = StateSubmitting
	s.logger.Info("Submitting changed signatures", "url", signatureURL)

	status, err := s.apiClient.SubmitSignatures(ctx, entry.Current, entry.Previous, signatureURL, csrfToken)
	result.StatusCode = status
	if err != nil {
		s.logger.Warn("Failed to submit signatures, will retry on next tick", "error", err)
		result.State = StateSubmitFailed
		result.Err = err
		return result, nil
	}
	if status != http.StatusCreated {
		s.logger.Warn("Signatures not applied by server, will retry on next tick", "status", status)
		result.State = StateSubmitFailed
		return result, nil
	}

	// Read-after-write: сервер возвращает итоговое слитое состояние
	remote, err := s.apiClient.FetchSignatures(ctx, signatureURL)
	if err != nil {
		s.logger.Warn("Failed to refresh signatures after submit", "error", err)
		result.State = StateRefreshFailed
		result.Err = err
		return result, nil
	}

	if err := s.cache.StoreSignatures(ctx, models.SignatureCacheEntry{Previous: remote, Current: remote}); err != nil {
		return result, fmt.Errorf("failed to store refreshed signatures: %w", err)
	}

	result.State = StateRefreshed
	result.Snapshot = remote
	s.logger.Info("Signatures synchronized", "status", status)

	return result, nil
}

// Refresh fetches the server state and overwrites both slots with it.
// A failed fetch leaves the cache untouched.
func (s *service) Refresh(ctx context.Context, signatureURL string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remote, err := s.apiClient.FetchSignatures(ctx, signatureURL)
	if err != nil {
		s.logger.Warn("Failed to fetch remote signatures", "error", err)
		return &Result{State: StateRefreshFailed, Err: err}, nil
	}

	if err := s.cache.StoreSignatures(ctx, models.SignatureCacheEntry{Previous: remote, Current: remote}); err != nil {
		return &Result{State: StateIdle}, fmt.Errorf("failed to store remote signatures: %w", err)
	}

	s.logger.Debug("Remote signatures loaded into cache")
	return &Result{State: StateRefreshed, Snapshot: remote}, nil
}
