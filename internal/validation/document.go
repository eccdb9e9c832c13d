package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PDFIDPattern определяет допустимый формат идентификатора документа.
// Латинские буквы, цифры, дефис и нижнее подчеркивание; uuid подходит.
var PDFIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

const (
	// MaxPDFIDLen максимальная длина идентификатора документа
	MaxPDFIDLen = 64
	// MaxNameLen максимальная длина имени документа в символах
	MaxNameLen = 255
)

// ValidatePDFID проверяет идентификатор документа из формы или URL
func ValidatePDFID(id string) error {
	if id == "" {
		return fmt.Errorf("pdf id cannot be empty")
	}

	if len(id) > MaxPDFIDLen {
		return fmt.Errorf("pdf id must not exceed %d characters", MaxPDFIDLen)
	}

	if !PDFIDPattern.MatchString(id) {
		return fmt.Errorf("pdf id can only contain letters, numbers, hyphens and underscores")
	}

	return nil
}

// ValidateDocumentName проверяет имя загружаемого документа
func ValidateDocumentName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("document name cannot be empty")
	}

	if !utf8.ValidString(name) {
		return fmt.Errorf("document name must be valid UTF-8")
	}

	if utf8.RuneCountInString(name) > MaxNameLen {
		return fmt.Errorf("document name must not exceed %d characters", MaxNameLen)
	}

	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return fmt.Errorf("document name cannot contain control characters")
	}

	return nil
}
