package viewer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/iudanet/pdfsync/internal/pdfinfo"
)

// FileViewer is a headless viewer over a PDF file on disk. Edits are made by
// an external editor; a modification time newer than the last save counts as
// unsaved edits.
type FileViewer struct {
	savedModTime time.Time
	logger       *slog.Logger
	titleSink    func(title string)
	path         string
	title        string
	page         int
	mu           sync.Mutex
	unsaved      bool
}

var _ Viewer = (*FileViewer)(nil)

// NewFileViewer opens a viewer on path showing startPage.
// The file as it is now counts as saved.
func NewFileViewer(path string, startPage int, titleSink func(title string), logger *slog.Logger) (*FileViewer, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("failed to open document: %s is a directory", path)
	}
	if startPage < 1 {
		startPage = 1
	}
	if titleSink == nil {
		titleSink = func(string) {}
	}

	return &FileViewer{
		path:         path,
		page:         startPage,
		savedModTime: info.ModTime(),
		titleSink:    titleSink,
		logger:       logger,
	}, nil
}

// GoToPage changes the displayed page
func (v *FileViewer) GoToPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if page < 1 {
		page = 1
	}
	v.page = page
}

// CurrentPageNumber returns the displayed page
func (v *FileViewer) CurrentPageNumber() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

// HasUnsavedEdits reports the explicit flag or a file changed since the last save
func (v *FileViewer) HasUnsavedEdits() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.unsaved {
		return true
	}
	info, err := os.Stat(v.path)
	if err != nil {
		v.logger.Warn("Failed to stat document", "path", v.path, "error", err)
		return false
	}
	return info.ModTime().After(v.savedModTime)
}

// SetUnsavedEdits sets the flag; clearing it marks the current file as saved
func (v *FileViewer) SetUnsavedEdits(unsaved bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.unsaved = unsaved
	if unsaved {
		return
	}
	if info, err := os.Stat(v.path); err == nil {
		v.savedModTime = info.ModTime()
	}
}

// SaveDocument reads the file and checks it is a readable PDF
func (v *FileViewer) SaveDocument(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(v.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	info, err := pdfinfo.Inspect(data)
	if err != nil {
		return nil, fmt.Errorf("document is corrupted: %w", err)
	}

	v.logger.Debug("Document serialized", "path", v.path, "pages", info.NumberOfPages, "digest", info.Digest)
	return data, nil
}

// DispatchWillSave has nothing to flush for a file on disk
func (v *FileViewer) DispatchWillSave(ctx context.Context) {
	v.logger.Debug("Will save document", "path", v.path)
}

// DispatchDidSave is logged only
func (v *FileViewer) DispatchDidSave(ctx context.Context) {
	v.logger.Debug("Did save document", "path", v.path)
}

// SetTitle formats and publishes the title
func (v *FileViewer) SetTitle(tabTitle string) {
	unsaved := v.HasUnsavedEdits()

	v.mu.Lock()
	v.title = FormatTitle(tabTitle, unsaved)
	title := v.title
	v.mu.Unlock()

	v.titleSink(title)
}

// Title returns the last title set
func (v *FileViewer) Title() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.title
}
