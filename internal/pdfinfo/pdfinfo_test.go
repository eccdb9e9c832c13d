package pdfinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/pdfsync/internal/pdfinfo/pdftest"
)

func TestDigest(t *testing.T) {
	a := Digest([]byte("first"))
	b := Digest([]byte("second"))

	assert.Len(t, a, 64)
	assert.Equal(t, a, Digest([]byte("first")))
	assert.NotEqual(t, a, b)
	// BLAKE2b-256 пустой строки
	assert.Equal(t, "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8", Digest(nil))
}

func TestInspect_NotPDF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "html", data: []byte("<html></html>")},
		{name: "json", data: []byte(`{"current_page":1}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := Inspect(tt.data)
			require.ErrorIs(t, err, ErrNotPDF)
			assert.Nil(t, info)
		})
	}
}

func TestInspect_BrokenPDF(t *testing.T) {
	info, err := Inspect([]byte("%PDF-1.7\nthis is not a real document"))
	require.Error(t, err)
	assert.Nil(t, info)
}

func TestInspect(t *testing.T) {
	data := pdftest.Document(3, "report")

	info, err := Inspect(data)
	require.NoError(t, err)
	assert.Equal(t, 3, info.NumberOfPages)
	assert.Equal(t, len(data), info.Size)
	assert.Equal(t, Digest(data), info.Digest)
}

func TestInspect_DifferentContentDifferentDigest(t *testing.T) {
	a, err := Inspect(pdftest.Document(1, "a"))
	require.NoError(t, err)
	b, err := Inspect(pdftest.Document(1, "b"))
	require.NoError(t, err)

	assert.Equal(t, a.NumberOfPages, b.NumberOfPages)
	assert.NotEqual(t, a.Digest, b.Digest)
}
