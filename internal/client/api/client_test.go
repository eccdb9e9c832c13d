package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/pdfsync/internal/models"
	"github.com/iudanet/pdfsync/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8000/")

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8000", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_resolve(t *testing.T) {
	client := NewClient("http://localhost:8000")

	assert.Equal(t, "http://localhost:8000/api/v1/signatures", client.resolve("/api/v1/signatures"))
	assert.Equal(t, "http://localhost:8000/api/v1/signatures", client.resolve("api/v1/signatures"))
	assert.Equal(t, "https://other.example/sig", client.resolve("https://other.example/sig"))
}

// TestClient_FetchSignatures проверяет успешное чтение подписей
func TestClient_FetchSignatures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, api.PathSignatures, r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{\n  \"sig-1\": {\"page\": 2}\n}\n"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	snapshot, err := client.FetchSignatures(context.Background(), api.PathSignatures)

	require.NoError(t, err)
	assert.True(t, snapshot.Present)
	// Тело нормализуется так же, как JSON.stringify
	assert.Equal(t, `{"sig-1":{"page":2}}`, snapshot.Data)
}

func TestClient_FetchSignatures_Errors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		statusCode     int
		expectedStatus int
	}{
		{name: "Not found", statusCode: http.StatusNotFound, body: "missing", expectedStatus: http.StatusNotFound},
		{name: "Server error", statusCode: http.StatusInternalServerError, body: "boom", expectedStatus: http.StatusInternalServerError},
		{name: "Invalid JSON", statusCode: http.StatusOK, body: "<html>", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			snapshot, err := client.FetchSignatures(context.Background(), api.PathSignatures)

			require.Error(t, err)
			assert.False(t, snapshot.Present)

			var fetchErr *FetchError
			require.True(t, errors.As(err, &fetchErr))
			assert.Equal(t, tt.expectedStatus, fetchErr.StatusCode)
			assert.False(t, fetchErr.IsTransport())
		})
	}
}

func TestClient_FetchSignatures_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // соединение будет отклонено

	client := NewClient(url)
	_, err := client.FetchSignatures(context.Background(), api.PathSignatures)

	require.Error(t, err)
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.True(t, fetchErr.IsTransport())
	assert.Equal(t, http.MethodGet, fetchErr.Method)
}

// TestClient_SubmitSignatures проверяет форму и заголовок CSRF
func TestClient_SubmitSignatures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "csrf-123", r.Header.Get(api.HeaderCSRFToken))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, `{"b":2}`, r.FormValue(api.FieldCurrentSignatures))
		assert.Equal(t, `{"a":1}`, r.FormValue(api.FieldPreviousSignatures))

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	status, err := client.SubmitSignatures(context.Background(),
		models.NewSignatureSnapshot(`{"b":2}`),
		models.NewSignatureSnapshot(`{"a":1}`),
		api.PathSignatures, "csrf-123")

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
}

func TestClient_SubmitSignatures_AbsentPreviousIsNull(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "null", r.FormValue(api.FieldPreviousSignatures))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	status, err := client.SubmitSignatures(context.Background(),
		models.NewSignatureSnapshot(`{}`), models.SignatureSnapshot{}, api.PathSignatures, "t")

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
}

// Конфликт на сервере это обычный статус, а не ошибка
func TestClient_SubmitSignatures_NonCreatedStatus(t *testing.T) {
	for _, code := range []int{http.StatusOK, http.StatusConflict, http.StatusForbidden, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			_, _ = w.Write([]byte("ignored body"))
		}))

		client := NewClient(server.URL)
		status, err := client.SubmitSignatures(context.Background(),
			models.NewSignatureSnapshot(`{}`), models.NewSignatureSnapshot(`{}`), api.PathSignatures, "t")

		assert.NoError(t, err)
		assert.Equal(t, code, status)
		server.Close()
	}
}

func TestClient_SubmitSignatures_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url)
	status, err := client.SubmitSignatures(context.Background(),
		models.NewSignatureSnapshot(`{}`), models.SignatureSnapshot{}, api.PathSignatures, "t")

	require.Error(t, err)
	assert.Equal(t, 0, status)
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.True(t, fetchErr.IsTransport())
}

func TestClient_UpdatePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, api.PathPDFUpdate, r.URL.Path)
		assert.Equal(t, "csrf", r.Header.Get(api.HeaderCSRFToken))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "pdf-1", r.FormValue(api.FieldPDFID))
		assert.Equal(t, "4", r.FormValue(api.FieldCurrentPage))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.UpdatePage(context.Background(), api.PathPDFUpdate, "csrf", "pdf-1", 4)
	require.NoError(t, err)
}

func TestClient_UpdatePage_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.UpdatePage(context.Background(), api.PathPDFUpdate, "bad", "pdf-1", 4)

	require.Error(t, err)
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusForbidden, fetchErr.StatusCode)
}

func TestClient_UploadPDF(t *testing.T) {
	content := []byte("%PDF-1.7 fake content")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "csrf", r.Header.Get(api.HeaderCSRFToken))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "pdf-9", r.FormValue(api.FieldPDFID))

		file, header, err := r.FormFile(api.FieldUpdatedPDF)
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))

		got, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, content, got)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.UploadPDF(context.Background(), api.PathPDFUpdate, "csrf", "pdf-9", content)
	require.NoError(t, err)
}

func TestClient_UploadPDF_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url)
	err := client.UploadPDF(context.Background(), api.PathPDFUpdate, "csrf", "pdf-9", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload pdf request failed")
}

func TestClient_CreatePDF(t *testing.T) {
	content := []byte("%PDF-1.7 new document")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, api.PathPDFCreate, r.URL.Path)
		assert.Equal(t, "csrf", r.Header.Get(api.HeaderCSRFToken))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "report.pdf", r.FormValue(api.FieldName))

		file, _, err := r.FormFile(api.FieldFile)
		require.NoError(t, err)
		defer file.Close()
		got, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, content, got)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"abc","name":"report.pdf","number_of_pages":3}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.CreatePDF(context.Background(), "csrf", "report.pdf", content)
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.ID)
	assert.Equal(t, 3, resp.NumberOfPages)
}

func TestClient_CreatePDF_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.CreatePDF(context.Background(), "csrf", "bad.pdf", []byte("nope"))
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusBadRequest, fetchErr.StatusCode)
}

func TestClient_FetchCurrentPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/pdf/pdf-1/current_page", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"current_page": 12}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	page, err := client.FetchCurrentPage(context.Background(), "/api/v1/pdf/pdf-1/current_page")

	require.NoError(t, err)
	assert.Equal(t, 12, page)
}

func TestClient_FetchCurrentPage_BadBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchCurrentPage(context.Background(), "/x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestFetchError_Error(t *testing.T) {
	transport := &FetchError{Method: "GET", URL: "http://x", Err: errors.New("refused")}
	assert.Equal(t, "GET http://x: refused", transport.Error())
	assert.True(t, transport.IsTransport())

	status := &FetchError{Method: "GET", URL: "http://x", StatusCode: 502}
	assert.Equal(t, "GET http://x: response status 502", status.Error())
	assert.Nil(t, status.Unwrap())
}
