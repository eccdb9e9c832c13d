package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/pdfsync/internal/models"
	"github.com/iudanet/pdfsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI описывает запросы клиента к backend
type ClientAPI interface {
	// FetchSignatures читает текущие подписи с сервера.
	// Возвращает *FetchError при не-2xx ответе или сетевой ошибке.
	FetchSignatures(ctx context.Context, signatureURL string) (models.SignatureSnapshot, error)

	// SubmitSignatures отправляет новое и последнее известное состояние подписей.
	// Любой полученный ответ возвращается как статус без ошибки,
	// ошибка только при сбое транспорта.
	SubmitSignatures(ctx context.Context, current, previous models.SignatureSnapshot, signatureURL, csrfToken string) (int, error)

	// UpdatePage отправляет номер текущей страницы
	UpdatePage(ctx context.Context, updateURL, csrfToken, pdfID string, page int) error

	// UploadPDF отправляет сериализованный документ
	UploadPDF(ctx context.Context, updateURL, csrfToken, pdfID string, data []byte) error

	// FetchCurrentPage читает сохранённую на сервере страницу документа
	FetchCurrentPage(ctx context.Context, currentPageURL string) (int, error)

	// CreatePDF загружает новый документ и возвращает его идентификатор
	CreatePDF(ctx context.Context, csrfToken, name string, data []byte) (*api.CreatePDFResponse, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент. Относительные URL запросов
// разрешаются относительно baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// CSRF токен должен дойти до конечного адреса
				if len(via) > 0 && via[0].Header.Get(api.HeaderCSRFToken) != "" {
					req.Header.Set(api.HeaderCSRFToken, via[0].Header.Get(api.HeaderCSRFToken))
				}
				return nil
			},
		},
	}
}

// FetchError is returned when a read request fails. StatusCode is zero for
// transport failures (timeout, DNS, refused connection).
type FetchError struct {
	Err        error
	Method     string
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s %s: status %d: %v", e.Method, e.URL, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s: response status %d", e.Method, e.URL, e.StatusCode)
	default:
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether no HTTP response was received
func (e *FetchError) IsTransport() bool {
	return e.StatusCode == 0
}

// FetchSignatures выполняет GET на signatureURL и возвращает тело как снимок.
// JSON нормализуется (compact), как это делал JSON.stringify в браузере.
func (c *Client) FetchSignatures(ctx context.Context, signatureURL string) (models.SignatureSnapshot, error) {
	target := c.resolve(signatureURL)

	body, status, err := c.get(ctx, target)
	if err != nil {
		return models.SignatureSnapshot{}, err
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, body); err != nil {
		return models.SignatureSnapshot{}, &FetchError{
			Method:     http.MethodGet,
			URL:        target,
			StatusCode: status,
			Err:        fmt.Errorf("invalid signatures body: %w", err),
		}
	}

	return models.NewSignatureSnapshot(compact.String()), nil
}

// SubmitSignatures отправляет current_signatures и previous_signatures.
// Сервер сам решает конфликт, поэтому статус отличный от 201 не ошибка.
func (c *Client) SubmitSignatures(ctx context.Context, current, previous models.SignatureSnapshot, signatureURL, csrfToken string) (int, error) {
	form := newForm()
	form.field(api.FieldCurrentSignatures, current.String())
	form.field(api.FieldPreviousSignatures, previous.String())

	return c.postForm(ctx, c.resolve(signatureURL), csrfToken, form)
}

// UpdatePage отправляет pdf_id и current_page
func (c *Client) UpdatePage(ctx context.Context, updateURL, csrfToken, pdfID string, page int) error {
	form := newForm()
	form.field(api.FieldPDFID, pdfID)
	form.field(api.FieldCurrentPage, strconv.Itoa(page))

	target := c.resolve(updateURL)
	status, err := c.postForm(ctx, target, csrfToken, form)
	if err != nil {
		return fmt.Errorf("update page request failed: %w", err)
	}
	if !isSuccess(status) {
		return fmt.Errorf("update page request failed: %w", &FetchError{Method: http.MethodPost, URL: target, StatusCode: status})
	}
	return nil
}

// UploadPDF отправляет документ как файл updated_pdf вместе с pdf_id
func (c *Client) UploadPDF(ctx context.Context, updateURL, csrfToken, pdfID string, data []byte) error {
	form := newForm()
	form.file(api.FieldUpdatedPDF, "blob", "application/pdf", data)
	form.field(api.FieldPDFID, pdfID)

	target := c.resolve(updateURL)
	status, err := c.postForm(ctx, target, csrfToken, form)
	if err != nil {
		return fmt.Errorf("upload pdf request failed: %w", err)
	}
	if !isSuccess(status) {
		return fmt.Errorf("upload pdf request failed: %w", &FetchError{Method: http.MethodPost, URL: target, StatusCode: status})
	}
	return nil
}

// FetchCurrentPage выполняет GET и декодирует {"current_page": n}
func (c *Client) FetchCurrentPage(ctx context.Context, currentPageURL string) (int, error) {
	target := c.resolve(currentPageURL)

	body, status, err := c.get(ctx, target)
	if err != nil {
		return 0, err
	}

	var resp api.CurrentPageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, &FetchError{
			Method:     http.MethodGet,
			URL:        target,
			StatusCode: status,
			Err:        fmt.Errorf("failed to decode response: %w", err),
		}
	}
	return resp.CurrentPage, nil
}

// CreatePDF отправляет файл и имя документа на PathPDFCreate
func (c *Client) CreatePDF(ctx context.Context, csrfToken, name string, data []byte) (*api.CreatePDFResponse, error) {
	form := newForm()
	form.field(api.FieldName, name)
	form.file(api.FieldFile, name, "application/pdf", data)

	target := c.resolve(api.PathPDFCreate)
	status, body, err := c.postFormBody(ctx, target, csrfToken, form)
	if err != nil {
		return nil, fmt.Errorf("create pdf request failed: %w", err)
	}
	if status != http.StatusCreated {
		return nil, fmt.Errorf("create pdf request failed: %w", &FetchError{Method: http.MethodPost, URL: target, StatusCode: status})
	}

	var resp api.CreatePDFResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode create response: %w", err)
	}
	return &resp, nil
}

// get выполняет GET и возвращает тело успешного ответа
func (c *Client) get(ctx context.Context, target string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, &FetchError{Method: http.MethodGet, URL: target, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &FetchError{Method: http.MethodGet, URL: target, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &FetchError{Method: http.MethodGet, URL: target, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if !isSuccess(resp.StatusCode) {
		return nil, resp.StatusCode, &FetchError{Method: http.MethodGet, URL: target, StatusCode: resp.StatusCode}
	}

	return body, resp.StatusCode, nil
}

// postForm отправляет multipart форму и возвращает статус ответа.
// Ошибка возвращается только если ответ не был получен.
func (c *Client) postForm(ctx context.Context, target, csrfToken string, form *formBody) (int, error) {
	status, _, err := c.postFormBody(ctx, target, csrfToken, form)
	return status, err
}

// postFormBody как postForm, но дополнительно возвращает тело ответа
func (c *Client) postFormBody(ctx context.Context, target, csrfToken string, form *formBody) (int, []byte, error) {
	contentType, body, err := form.finish()
	if err != nil {
		return 0, nil, &FetchError{Method: http.MethodPost, URL: target, Err: fmt.Errorf("failed to encode form: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, body)
	if err != nil {
		return 0, nil, &FetchError{Method: http.MethodPost, URL: target, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(api.HeaderCSRFToken, csrfToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &FetchError{Method: http.MethodPost, URL: target, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Тело читаем целиком, чтобы соединение вернулось в пул
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, nil
	}

	return resp.StatusCode, respBody, nil
}

// resolve добавляет baseURL к относительным адресам
func (c *Client) resolve(target string) string {
	if u, err := url.Parse(target); err == nil && u.IsAbs() {
		return target
	}
	if !strings.HasPrefix(target, "/") {
		target = "/" + target
	}
	return c.baseURL + target
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// formBody собирает multipart/form-data так же, как FormData в браузере
type formBody struct {
	err    error
	buf    *bytes.Buffer
	writer *multipart.Writer
}

func newForm() *formBody {
	buf := &bytes.Buffer{}
	return &formBody{buf: buf, writer: multipart.NewWriter(buf)}
}

func (f *formBody) field(name, value string) {
	if f.err != nil {
		return
	}
	f.err = f.writer.WriteField(name, value)
}

func (f *formBody) file(name, filename, contentType string, data []byte) {
	if f.err != nil {
		return
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, name, filename))
	header.Set("Content-Type", contentType)

	part, err := f.writer.CreatePart(header)
	if err != nil {
		f.err = err
		return
	}
	_, f.err = part.Write(data)
}

func (f *formBody) finish() (string, io.Reader, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	if err := f.writer.Close(); err != nil {
		return "", nil, err
	}
	return f.writer.FormDataContentType(), f.buf, nil
}
