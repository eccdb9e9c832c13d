// Package save serializes the document through the viewer and uploads it,
// never running two saves of the same document at once.
package save

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/iudanet/pdfsync/internal/client/api"
	"github.com/iudanet/pdfsync/internal/client/viewer"
)

// Outcome of a Save call
type Outcome int

const (
	// OutcomeSkipped: another save was in progress, nothing was done
	OutcomeSkipped Outcome = iota
	// OutcomeSaved: the document was serialized and the upload dispatched
	OutcomeSaved
	// OutcomeFailed: the viewer could not serialize the document
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeSaved:
		return "saved"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Request carries the per-document parameters of a save
type Request struct {
	PDFID     string
	UpdateURL string
	CSRFToken string
	TabTitle  string // TabTitle заголовок без маркера несохранённых правок
}

// Coordinator guards saves of one document session
type Coordinator struct {
	apiClient api.ClientAPI
	viewer    viewer.Viewer
	logger    *slog.Logger
	wg        sync.WaitGroup
	// saveInProgress токен взаимного исключения, сбрасывается в любом исходе
	saveInProgress atomic.Bool
	// generation номер последнего успешно сериализованного сохранения
	generation atomic.Uint64
}

// NewCoordinator creates a coordinator for the given viewer
func NewCoordinator(apiClient api.ClientAPI, v viewer.Viewer, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		apiClient: apiClient,
		viewer:    v,
		logger:    logger,
	}
}

// Save serializes the document and dispatches the upload.
// A call made while another save is running returns OutcomeSkipped at once.
// The did-save hook runs and the guard is released on every path.
func (c *Coordinator) Save(ctx context.Context, req Request) Outcome {
	if !c.saveInProgress.CompareAndSwap(false, true) {
		c.logger.Debug("Save already in progress, skipping", "pdf_id", req.PDFID)
		return OutcomeSkipped
	}
	defer func() {
		c.viewer.DispatchDidSave(ctx)
		c.saveInProgress.Store(false)
	}()

	c.viewer.DispatchWillSave(ctx)

	data, err := c.viewer.SaveDocument(ctx)
	if err != nil {
		// Заголовок не трогаем: маркер "*" остаётся и сигнализирует о неудаче
		c.logger.Error("Error when saving the document", "pdf_id", req.PDFID, "error", err)
		return OutcomeFailed
	}

	c.viewer.SetUnsavedEdits(false)
	c.viewer.SetTitle(req.TabTitle)

	c.upload(ctx, req, data, c.generation.Add(1))

	return OutcomeSaved
}

// upload sends the document without waiting for the response.
// A failed upload sets the unsaved marker again so the user sees it, unless a
// newer save has been serialized since: that save carries the edits and
// reports its own upload result.
func (c *Coordinator) upload(ctx context.Context, req Request, data []byte, generation uint64) {
	uploadCtx := context.WithoutCancel(ctx)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		err := c.apiClient.UploadPDF(uploadCtx, req.UpdateURL, req.CSRFToken, req.PDFID, data)
		if err != nil {
			c.logger.Warn("Document upload failed", "pdf_id", req.PDFID, "size", len(data), "error", err)
			if c.generation.Load() != generation {
				c.logger.Debug("Newer save dispatched, keeping title", "pdf_id", req.PDFID)
				return
			}
			c.viewer.SetUnsavedEdits(true)
			c.viewer.SetTitle(req.TabTitle)
			return
		}
		c.logger.Info("Document uploaded", "pdf_id", req.PDFID, "size", len(data))
	}()
}

// InProgress reports whether a save is running
func (c *Coordinator) InProgress() bool {
	return c.saveInProgress.Load()
}

// Wait blocks until dispatched uploads finish
func (c *Coordinator) Wait() {
	c.wg.Wait()
}
