package handlers

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"
)

// maxFormMemory часть multipart формы, которая держится в памяти
const maxFormMemory = 32 << 20

// parseForm разбирает multipart или urlencoded тело запроса
func parseForm(r *http.Request) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return err
	}
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(maxFormMemory)
	}
	if mediaType == "application/x-www-form-urlencoded" {
		return r.ParseForm()
	}
	return errors.New("unsupported content type " + mediaType)
}

// writeFormError отвечает 413 на превышение лимита тела, иначе 400
func writeFormError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var maxBytes *http.MaxBytesError
	// multipart не всегда оборачивает ошибку MaxBytesReader через %w
	if errors.As(err, &maxBytes) || strings.Contains(err.Error(), "request body too large") {
		http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	logger.Warn("Invalid form", "error", err)
	http.Error(w, "Invalid form", http.StatusBadRequest)
}
