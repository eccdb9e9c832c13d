// Package page pushes the reader's position to the backend.
// Position updates are best-effort telemetry: failures are logged and dropped.
package page

import (
	"context"
	"log/slog"
	"sync"

	"github.com/iudanet/pdfsync/internal/client/api"
)

// Tracker remembers the last page pushed in this session
type Tracker struct {
	apiClient      api.ClientAPI
	logger         *slog.Logger
	wg             sync.WaitGroup
	lastPushedPage int
	mu             sync.Mutex
}

// NewTracker creates a tracker starting at the page provided by the server
func NewTracker(apiClient api.ClientAPI, startPage int, logger *slog.Logger) *Tracker {
	return &Tracker{
		apiClient:      apiClient,
		lastPushedPage: startPage,
		logger:         logger,
	}
}

// Tick pushes viewerPage when it differs from the last pushed page.
// The request is fire-and-forget; Tick reports whether one was issued.
func (t *Tracker) Tick(ctx context.Context, viewerPage int, pdfID, updateURL, csrfToken string) bool {
	t.mu.Lock()
	if viewerPage == t.lastPushedPage {
		t.mu.Unlock()
		return false
	}
	t.lastPushedPage = viewerPage
	t.mu.Unlock()

	// Запрос не должен обрываться вместе с вызывающим
	pushCtx := context.WithoutCancel(ctx)

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		if err := t.apiClient.UpdatePage(pushCtx, updateURL, csrfToken, pdfID, viewerPage); err != nil {
			t.logger.Debug("Page update dropped", "pdf_id", pdfID, "page", viewerPage, "error", err)
		}
	}()

	return true
}

// LastPushedPage returns the page most recently pushed
func (t *Tracker) LastPushedPage() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastPushedPage
}

// Wait blocks until in-flight page updates finish
func (t *Tracker) Wait() {
	t.wg.Wait()
}
