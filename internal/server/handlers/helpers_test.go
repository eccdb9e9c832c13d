package handlers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/pdfsync/internal/models"
	"github.com/iudanet/pdfsync/internal/server/storage"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

// mockPDFStorage хранит документы в памяти
type mockPDFStorage struct {
	pdfs map[string]*models.PDF
	err  error
	mu   sync.Mutex
}

func newMockPDFStorage(pdfs ...*models.PDF) *mockPDFStorage {
	m := &mockPDFStorage{pdfs: make(map[string]*models.PDF)}
	for _, pdf := range pdfs {
		m.pdfs[pdf.ID] = pdf
	}
	return m
}

func (m *mockPDFStorage) CreatePDF(ctx context.Context, pdf *models.PDF) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.pdfs[pdf.ID]; ok {
		return storage.ErrPDFAlreadyExists
	}
	m.pdfs[pdf.ID] = pdf
	return nil
}

func (m *mockPDFStorage) GetPDF(ctx context.Context, id string) (*models.PDF, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	pdf, ok := m.pdfs[id]
	if !ok {
		return nil, storage.ErrPDFNotFound
	}
	return pdf, nil
}

func (m *mockPDFStorage) UpdateCurrentPage(ctx context.Context, id string, page int, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	pdf, ok := m.pdfs[id]
	if !ok {
		return storage.ErrPDFNotFound
	}
	pdf.CurrentPage = page
	pdf.UpdatedAt = updatedAt
	return nil
}

func (m *mockPDFStorage) UpdateContent(ctx context.Context, id string, content []byte, digest string, numberOfPages int, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	pdf, ok := m.pdfs[id]
	if !ok {
		return storage.ErrPDFNotFound
	}
	pdf.Content = content
	pdf.Digest = digest
	pdf.NumberOfPages = numberOfPages
	pdf.UpdatedAt = updatedAt
	return nil
}

// mockSignatureStorage хранит подписи в памяти
type mockSignatureStorage struct {
	err    error
	stored string
	mu     sync.Mutex
}

func (m *mockSignatureStorage) GetSignatures(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	return m.stored, nil
}

func (m *mockSignatureStorage) UpdateSignatures(ctx context.Context, merge storage.MergeFunc) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	merged, err := merge(m.stored)
	if err != nil {
		return "", err
	}
	m.stored = merged
	return merged, nil
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.err
}

var errStorage = errors.New("disk I/O error")

// formFile файл в multipart форме
type formFile struct {
	field    string
	filename string
	data     []byte
}

// newMultipartRequest собирает запрос как FormData из браузера
func newMultipartRequest(t *testing.T, target string, fields map[string]string, files ...formFile) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// withURLParam добавляет параметр маршрута chi в запрос
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
