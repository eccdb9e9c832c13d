package api

// HeaderCSRFToken заголовок, в котором клиент передаёт CSRF токен на запись
const HeaderCSRFToken = "X-CSRFToken"

// Form fields used by the viewer endpoints (multipart/form-data)
const (
	FieldPDFID              = "pdf_id"
	FieldCurrentPage        = "current_page"
	FieldUpdatedPDF         = "updated_pdf"
	FieldCurrentSignatures  = "current_signatures"
	FieldPreviousSignatures = "previous_signatures"
	FieldFile               = "file"
	FieldName               = "name"
)

// Default endpoint paths of the backend
const (
	PathHealth      = "/api/v1/health"
	PathSignatures  = "/api/v1/signatures"
	PathPDFUpdate   = "/api/v1/pdf/update"
	PathPDFCreate   = "/api/v1/pdf"
	PathCurrentPage = "/api/v1/pdf/%s/current_page"
	PathPDFFile     = "/api/v1/pdf/%s/file"
)

// CurrentPageResponse ответ на GET текущей страницы PDF
type CurrentPageResponse struct {
	CurrentPage int `json:"current_page"`
}

// CreatePDFResponse ответ на загрузку нового PDF
type CreatePDFResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Digest        string `json:"digest"`
	NumberOfPages int    `json:"number_of_pages"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
