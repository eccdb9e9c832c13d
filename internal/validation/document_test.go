package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePDFID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "uuid", id: "0b6d3c1e-8f0a-4f61-9a57-1b7f3c2d4e5f", wantErr: false},
		{name: "short slug", id: "pdf-1", wantErr: false},
		{name: "underscore", id: "my_doc", wantErr: false},
		{name: "empty", id: "", wantErr: true},
		{name: "too long", id: strings.Repeat("a", 65), wantErr: true},
		{name: "max length", id: strings.Repeat("a", 64), wantErr: false},
		{name: "path traversal", id: "../etc", wantErr: true},
		{name: "slash", id: "a/b", wantErr: true},
		{name: "space", id: "a b", wantErr: true},
		{name: "cyrillic", id: "документ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePDFID(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDocumentName(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{name: "plain", doc: "notes.pdf", wantErr: false},
		{name: "unicode", doc: "Договор 2024.pdf", wantErr: false},
		{name: "max runes", doc: strings.Repeat("я", 255), wantErr: false},
		{name: "empty", doc: "", wantErr: true},
		{name: "blank", doc: "   ", wantErr: true},
		{name: "too long", doc: strings.Repeat("a", 256), wantErr: true},
		{name: "newline", doc: "a\nb.pdf", wantErr: true},
		{name: "invalid utf8", doc: "a\xffb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocumentName(tt.doc)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
