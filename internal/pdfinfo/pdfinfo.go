// Package pdfinfo inspects serialized PDF documents: page count via pdfcpu and
// a BLAKE2b content digest used to tell uploads apart.
package pdfinfo

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/crypto/blake2b"
)

// ErrNotPDF is returned for data that does not start with a PDF header
var ErrNotPDF = errors.New("data is not a PDF document")

var pdfHeader = []byte("%PDF-")

// Info describes a serialized document
type Info struct {
	Digest        string
	Size          int
	NumberOfPages int
}

// Inspect parses data with pdfcpu and returns its page count and digest
func Inspect(data []byte) (*Info, error) {
	if !bytes.HasPrefix(data, pdfHeader) {
		return nil, ErrNotPDF
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pages, err := api.PageCount(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu page count: %w", err)
	}

	return &Info{
		Digest:        Digest(data),
		Size:          len(data),
		NumberOfPages: pages,
	}, nil
}

// Digest returns the hex encoded BLAKE2b-256 sum of data
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
