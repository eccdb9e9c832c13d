// Package session runs the synchronization components of one open document
// on a fixed schedule.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/pdfsync/internal/client/api"
	"github.com/iudanet/pdfsync/internal/client/page"
	"github.com/iudanet/pdfsync/internal/client/save"
	clientsync "github.com/iudanet/pdfsync/internal/client/sync"
	"github.com/iudanet/pdfsync/internal/client/viewer"
)

// DefaultInterval период опроса по умолчанию
const DefaultInterval = time.Second

// Config описывает параметры сессии одного документа
type Config struct {
	PDFID        string
	SignatureURL string
	UpdateURL    string
	CSRFToken    string
	TabTitle     string
	StartPage    int
	Interval     time.Duration
	AutoSave     bool
}

// TickReport summarizes what one tick did
type TickReport struct {
	Reconcile *clientsync.Result
	// ReconcileErr локальная ошибка кэша; остальные шаги тика всё равно выполняются
	ReconcileErr error
	PagePushed   bool
	SaveRan    bool
	Save       save.Outcome
}

// Session owns the tracker and save coordinator of one document
type Session struct {
	viewer      viewer.Viewer
	reconciler  clientsync.Service
	tracker     *page.Tracker
	saver       *save.Coordinator
	logger      *slog.Logger
	saveRequest chan struct{}
	cfg         Config
}

// New wires the components of a session
func New(cfg Config, v viewer.Viewer, apiClient api.ClientAPI, reconciler clientsync.Service, logger *slog.Logger) *Session {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}

	return &Session{
		cfg:         cfg,
		viewer:      v,
		reconciler:  reconciler,
		tracker:     page.NewTracker(apiClient, cfg.StartPage, logger),
		saver:       save.NewCoordinator(apiClient, v, logger),
		logger:      logger,
		saveRequest: make(chan struct{}, 1),
	}
}

// Start seeds the local cache from the server
func (s *Session) Start(ctx context.Context) error {
	result, err := s.reconciler.Refresh(ctx, s.cfg.SignatureURL)
	if err != nil {
		return fmt.Errorf("initial signature refresh: %w", err)
	}
	if result.Err != nil {
		// Сервер недоступен: продолжаем с тем, что уже лежит в кэше
		s.logger.Warn("Initial signature refresh failed", "error", result.Err)
		return nil
	}

	s.logger.Info("Signatures loaded", "pdf_id", s.cfg.PDFID)
	return nil
}

// RequestSave asks for a save on the next tick without blocking
func (s *Session) RequestSave() {
	select {
	case s.saveRequest <- struct{}{}:
	default:
	}
}

// Tick runs every component once. Each component is independent:
// a failure in one is logged and reported, the others still run.
func (s *Session) Tick(ctx context.Context) TickReport {
	var report TickReport

	report.PagePushed = s.tracker.Tick(ctx, s.viewer.CurrentPageNumber(), s.cfg.PDFID, s.cfg.UpdateURL, s.cfg.CSRFToken)

	result, err := s.reconciler.Reconcile(ctx, s.cfg.SignatureURL, s.cfg.CSRFToken)
	report.Reconcile = result
	switch {
	case err != nil:
		report.ReconcileErr = fmt.Errorf("reconcile signatures: %w", err)
		s.logger.Error("Signature reconciliation failed", "pdf_id", s.cfg.PDFID, "error", err)
	case result != nil && result.Err != nil:
		s.logger.Debug("Signature reconciliation failed", "state", result.State.String(), "error", result.Err)
	}

	if s.saveWanted() {
		report.SaveRan = true
		report.Save = s.saver.Save(ctx, save.Request{
			PDFID:     s.cfg.PDFID,
			UpdateURL: s.cfg.UpdateURL,
			CSRFToken: s.cfg.CSRFToken,
			TabTitle:  s.cfg.TabTitle,
		})
	}

	return report
}

func (s *Session) saveWanted() bool {
	select {
	case <-s.saveRequest:
		return true
	default:
	}
	return s.cfg.AutoSave && s.viewer.HasUnsavedEdits()
}

// Run ticks until ctx is cancelled, then waits for in-flight requests.
// Errors of a single tick are logged by Tick and do not stop the session.
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	defer s.Wait()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Session stopped", "pdf_id", s.cfg.PDFID, "last_page", s.tracker.LastPushedPage())
			return nil
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Wait drains fire-and-forget page and document uploads
func (s *Session) Wait() {
	s.tracker.Wait()
	s.saver.Wait()
}
