package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/pdfsync/internal/client/api"
	"github.com/iudanet/pdfsync/internal/client/iocli"
	"github.com/iudanet/pdfsync/internal/client/storage"
	clientsync "github.com/iudanet/pdfsync/internal/client/sync"
	"github.com/iudanet/pdfsync/internal/config"
	"github.com/iudanet/pdfsync/internal/models"
	"github.com/iudanet/pdfsync/internal/pdfinfo/pdftest"
	pkgapi "github.com/iudanet/pdfsync/pkg/api"
)

// output собирает всё, что CLI напечатал
type output struct {
	lines []string
	mu    sync.Mutex
}

func (o *output) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return strings.Join(o.lines, "\n")
}

func (o *output) add(s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = append(o.lines, s)
}

func newMockIO(out *output) *iocli.IOMock {
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			out.add(fmt.Sprint(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			out.add(fmt.Sprintf(format, a...))
		},
		WriteFunc: func(p []byte) (int, error) {
			out.add(string(p))
			return len(p), nil
		},
		ReadInputFunc: func(prompt string) (string, error) {
			return "", io.EOF
		},
		MarkFunc: func(ok bool) string {
			if ok {
				return "[ok]"
			}
			return "[warn]"
		},
	}
}

func testConfig() *config.Client {
	cfg := config.DefaultClient()
	cfg.PDFID = "pdf-1"
	cfg.CSRFToken = "csrf"
	cfg.TabTitle = "Report"
	cfg.Interval = 5 * time.Millisecond
	return cfg
}

func newTestCli(mockIO iocli.IO, apiClient api.ClientAPI, cache storage.SignatureCache, syncService clientsync.Service) *Cli {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(mockIO, apiClient, cache, syncService, testConfig(), logger)
}

func TestCli_runStatus_Synchronized(t *testing.T) {
	out := &output{}
	snapshot := models.NewSignatureSnapshot(`{"a":1}`)
	cache := &storage.SignatureCacheMock{
		LoadSignaturesFunc: func(ctx context.Context) (models.SignatureCacheEntry, error) {
			return models.SignatureCacheEntry{Previous: snapshot, Current: snapshot}, nil
		},
	}
	apiClient := &api.ClientAPIMock{
		FetchCurrentPageFunc: func(ctx context.Context, currentPageURL string) (int, error) {
			assert.Equal(t, "/api/v1/pdf/pdf-1/current_page", currentPageURL)
			return 7, nil
		},
	}
	c := newTestCli(newMockIO(out), apiClient, cache, nil)

	require.NoError(t, c.runStatus(context.Background()))

	text := out.String()
	assert.Contains(t, text, `Current:  {"a":1}`)
	assert.Contains(t, text, "[ok] Signatures synchronized with server")
	assert.Contains(t, text, "Document pdf-1: page 7")
}

func TestCli_runStatus_Diverged(t *testing.T) {
	out := &output{}
	cache := &storage.SignatureCacheMock{
		LoadSignaturesFunc: func(ctx context.Context) (models.SignatureCacheEntry, error) {
			return models.SignatureCacheEntry{Current: models.NewSignatureSnapshot(`{"a":1}`)}, nil
		},
	}
	apiClient := &api.ClientAPIMock{
		FetchCurrentPageFunc: func(ctx context.Context, currentPageURL string) (int, error) {
			return 0, errors.New("offline")
		},
	}
	c := newTestCli(newMockIO(out), apiClient, cache, nil)

	require.NoError(t, c.runStatus(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Previous: null")
	assert.Contains(t, text, "[warn] Local signatures differ")
	assert.Contains(t, text, "Failed to get current page: offline")
}

func TestCli_runStatus_CacheError(t *testing.T) {
	cache := &storage.SignatureCacheMock{
		LoadSignaturesFunc: func(ctx context.Context) (models.SignatureCacheEntry, error) {
			return models.SignatureCacheEntry{}, storage.ErrStorageClosed
		},
	}
	c := newTestCli(newMockIO(&output{}), &api.ClientAPIMock{}, cache, nil)

	err := c.runStatus(context.Background())
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestCli_runPull(t *testing.T) {
	out := &output{}
	syncService := &clientsync.ServiceMock{
		RefreshFunc: func(ctx context.Context, signatureURL string) (*clientsync.Result, error) {
			assert.Equal(t, pkgapi.PathSignatures, signatureURL)
			return &clientsync.Result{State: clientsync.StateRefreshed, Snapshot: models.NewSignatureSnapshot(`{}`)}, nil
		},
	}
	c := newTestCli(newMockIO(out), &api.ClientAPIMock{}, nil, syncService)

	require.NoError(t, c.runPull(context.Background()))
	assert.Contains(t, out.String(), "Signatures loaded from server")
	assert.Contains(t, out.String(), "Signatures: {}")
}

func TestCli_runPull_NetworkError(t *testing.T) {
	syncService := &clientsync.ServiceMock{
		RefreshFunc: func(ctx context.Context, signatureURL string) (*clientsync.Result, error) {
			return &clientsync.Result{State: clientsync.StateRefreshFailed, Err: errors.New("connection refused")}, nil
		},
	}
	c := newTestCli(newMockIO(&output{}), &api.ClientAPIMock{}, nil, syncService)

	err := c.runPull(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCli_runPush(t *testing.T) {
	tests := []struct {
		result  *clientsync.Result
		name    string
		wantOut string
		wantErr string
	}{
		{
			name:    "no change",
			result:  &clientsync.Result{State: clientsync.StateNoChange},
			wantOut: "Nothing to push",
		},
		{
			name:    "refreshed",
			result:  &clientsync.Result{State: clientsync.StateRefreshed, Snapshot: models.NewSignatureSnapshot(`{"b":2}`)},
			wantOut: `Signatures: {"b":2}`,
		},
		{
			name:    "rejected",
			result:  &clientsync.Result{State: clientsync.StateSubmitFailed, StatusCode: 409},
			wantErr: "status 409",
		},
		{
			name:    "transport",
			result:  &clientsync.Result{State: clientsync.StateSubmitFailed, Err: errors.New("timeout")},
			wantErr: "timeout",
		},
		{
			name:    "refresh failed",
			result:  &clientsync.Result{State: clientsync.StateRefreshFailed, StatusCode: 201, Err: errors.New("eof")},
			wantOut: "reading them back failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &output{}
			syncService := &clientsync.ServiceMock{
				ReconcileFunc: func(ctx context.Context, signatureURL, csrfToken string) (*clientsync.Result, error) {
					assert.Equal(t, "csrf", csrfToken)
					return tt.result, nil
				},
			}
			c := newTestCli(newMockIO(out), &api.ClientAPIMock{}, nil, syncService)

			err := c.runPush(context.Background())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}

func TestCli_runSign(t *testing.T) {
	cache := &storage.SignatureCacheMock{
		StoreCurrentSignaturesFunc: func(ctx context.Context, snapshot models.SignatureSnapshot) error {
			return nil
		},
	}
	c := newTestCli(newMockIO(&output{}), &api.ClientAPIMock{}, cache, nil)

	require.NoError(t, c.runSign(context.Background(), []string{`{"sig":"x"}`}))

	calls := cache.StoreCurrentSignaturesCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.NewSignatureSnapshot(`{"sig":"x"}`), calls[0].Snapshot)
}

func TestCli_runSign_FromInput(t *testing.T) {
	mockIO := newMockIO(&output{})
	mockIO.ReadInputFunc = func(prompt string) (string, error) {
		return `{"from":"stdin"}`, nil
	}
	cache := &storage.SignatureCacheMock{
		StoreCurrentSignaturesFunc: func(ctx context.Context, snapshot models.SignatureSnapshot) error {
			return nil
		},
	}
	c := newTestCli(mockIO, &api.ClientAPIMock{}, cache, nil)

	require.NoError(t, c.runSign(context.Background(), nil))
	require.Len(t, cache.StoreCurrentSignaturesCalls(), 1)
	assert.Equal(t, `{"from":"stdin"}`, cache.StoreCurrentSignaturesCalls()[0].Snapshot.Data)
}

func TestCli_runSign_InvalidJSON(t *testing.T) {
	cache := &storage.SignatureCacheMock{}
	c := newTestCli(newMockIO(&output{}), &api.ClientAPIMock{}, cache, nil)

	err := c.runSign(context.Background(), []string{`{broken`})
	require.Error(t, err)
	assert.Empty(t, cache.StoreCurrentSignaturesCalls())
}

func TestCli_runPage(t *testing.T) {
	apiClient := &api.ClientAPIMock{
		UpdatePageFunc: func(ctx context.Context, updateURL, csrfToken, pdfID string, page int) error {
			return nil
		},
	}
	c := newTestCli(newMockIO(&output{}), apiClient, nil, nil)

	require.NoError(t, c.runPage(context.Background(), []string{"12"}))

	calls := apiClient.UpdatePageCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, 12, calls[0].Page)
	assert.Equal(t, "pdf-1", calls[0].PdfID)
	assert.Equal(t, pkgapi.PathPDFUpdate, calls[0].UpdateURL)
}

func TestCli_runPage_Invalid(t *testing.T) {
	c := newTestCli(newMockIO(&output{}), &api.ClientAPIMock{}, nil, nil)

	assert.Error(t, c.runPage(context.Background(), nil))
	assert.Error(t, c.runPage(context.Background(), []string{"zero"}))
	assert.Error(t, c.runPage(context.Background(), []string{"0"}))

	c.cfg.PDFID = ""
	err := c.runPage(context.Background(), []string{"3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdf id is required")

	c.cfg.PDFID = "../etc"
	err = c.runPage(context.Background(), []string{"3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pdf id")
}

func TestCli_runUpload(t *testing.T) {
	out := &output{}
	content := pdftest.Document(2, "upload")
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	apiClient := &api.ClientAPIMock{
		CreatePDFFunc: func(ctx context.Context, csrfToken, name string, data []byte) (*pkgapi.CreatePDFResponse, error) {
			return &pkgapi.CreatePDFResponse{ID: "new-id", Name: name, NumberOfPages: 2}, nil
		},
	}
	c := newTestCli(newMockIO(out), apiClient, nil, nil)

	require.NoError(t, c.runUpload(context.Background(), []string{path}))

	calls := apiClient.CreatePDFCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "report.pdf", calls[0].Name)
	assert.Equal(t, content, calls[0].Data)
	assert.Contains(t, out.String(), "ID:     new-id")
}

func writePDF(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, pdftest.Document(1, "save"), 0o600))
	return path
}

func TestCli_runSave(t *testing.T) {
	out := &output{}
	apiClient := &api.ClientAPIMock{
		UploadPDFFunc: func(ctx context.Context, updateURL, csrfToken, pdfID string, data []byte) error {
			return nil
		},
	}
	c := newTestCli(newMockIO(out), apiClient, nil, nil)

	require.NoError(t, c.runSave(context.Background(), []string{writePDF(t)}))
	require.Len(t, apiClient.UploadPDFCalls(), 1)
	assert.Contains(t, out.String(), "Document uploaded")
}

func TestCli_runSave_UploadFails(t *testing.T) {
	apiClient := &api.ClientAPIMock{
		UploadPDFFunc: func(ctx context.Context, updateURL, csrfToken, pdfID string, data []byte) error {
			return errors.New("503")
		},
	}
	c := newTestCli(newMockIO(&output{}), apiClient, nil, nil)

	err := c.runSave(context.Background(), []string{writePDF(t)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "* Report")
}

func TestCli_runSave_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o600))
	apiClient := &api.ClientAPIMock{}
	c := newTestCli(newMockIO(&output{}), apiClient, nil, nil)

	err := c.runSave(context.Background(), []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed")
	assert.Empty(t, apiClient.UploadPDFCalls())
}

func TestCli_runWatch(t *testing.T) {
	out := &output{}
	pushed := make(chan struct{})
	var once sync.Once

	apiClient := &api.ClientAPIMock{
		FetchCurrentPageFunc: func(ctx context.Context, currentPageURL string) (int, error) {
			return 2, nil
		},
		UpdatePageFunc: func(ctx context.Context, updateURL, csrfToken, pdfID string, page int) error {
			once.Do(func() { close(pushed) })
			return nil
		},
	}
	syncService := &clientsync.ServiceMock{
		RefreshFunc: func(ctx context.Context, signatureURL string) (*clientsync.Result, error) {
			return &clientsync.Result{State: clientsync.StateRefreshed}, nil
		},
		ReconcileFunc: func(ctx context.Context, signatureURL, csrfToken string) (*clientsync.Result, error) {
			return &clientsync.Result{State: clientsync.StateNoChange}, nil
		},
	}

	var reads int
	mockIO := newMockIO(out)
	mockIO.ReadInputFunc = func(prompt string) (string, error) {
		reads++
		if reads == 1 {
			return "page 4", nil
		}
		select {
		case <-pushed:
		case <-time.After(time.Second):
		}
		return "quit", nil
	}
	c := newTestCli(mockIO, apiClient, nil, syncService)

	done := make(chan error, 1)
	go func() {
		done <- c.runWatch(context.Background(), []string{writePDF(t)})
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop on quit")
	}

	calls := apiClient.UpdatePageCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, 4, calls[0].Page)
	assert.Len(t, syncService.RefreshCalls(), 1)
	assert.Contains(t, out.String(), "Watching")
}

func TestCli_Run_UnknownCommand(t *testing.T) {
	out := &output{}
	c := newTestCli(newMockIO(out), &api.ClientAPIMock{}, nil, nil)

	err := c.Run(context.Background(), "register", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
	assert.Contains(t, out.String(), "Usage:")
}
