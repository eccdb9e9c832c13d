// Package viewer defines the capability the synchronization components need
// from the PDF viewer. The viewer owns rendering and annotation editing; the
// sync layer only reads its state and asks it to serialize the document.
package viewer

import "context"

// unsavedMarker is prepended to the tab title while edits are not saved
const unsavedMarker = "* "

//go:generate moq -out viewer_mock.go . Viewer

// Viewer is the external viewer component passed into each sync component
type Viewer interface {
	// CurrentPageNumber returns the page currently displayed
	CurrentPageNumber() int

	// HasUnsavedEdits reports whether annotation edits are pending
	HasUnsavedEdits() bool

	// SetUnsavedEdits sets or clears the pending edits flag
	SetUnsavedEdits(unsaved bool)

	// SaveDocument serializes the current document with its annotations
	SaveDocument(ctx context.Context) ([]byte, error)

	// DispatchWillSave lets the viewer flush pending edits before serialization
	DispatchWillSave(ctx context.Context)

	// DispatchDidSave is fired after every save attempt, successful or not
	DispatchDidSave(ctx context.Context)

	// SetTitle updates the displayed title. The viewer decides on the
	// unsaved marker from its own pending edits flag.
	SetTitle(tabTitle string)
}

// FormatTitle returns the tab title with the unsaved marker when needed
func FormatTitle(tabTitle string, unsaved bool) string {
	if unsaved {
		return unsavedMarker + tabTitle
	}
	return tabTitle
}
