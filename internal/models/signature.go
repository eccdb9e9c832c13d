package models

// nullSnapshot is how an absent snapshot travels over the wire
const nullSnapshot = "null"

// SignatureSnapshot is an opaque serialized set of annotation signatures.
// The content is never interpreted on the client, only compared byte for byte.
type SignatureSnapshot struct {
	Data    string // Data сериализованный JSON, как его вернул сервер или записал viewer
	Present bool   // Present false означает, что слот пуст
}

// NewSignatureSnapshot wraps data produced by the backend or the viewer
func NewSignatureSnapshot(data string) SignatureSnapshot {
	return SignatureSnapshot{Data: data, Present: true}
}

// Equal reports whether both snapshots are absent or carry identical bytes
func (s SignatureSnapshot) Equal(other SignatureSnapshot) bool {
	if s.Present != other.Present {
		return false
	}
	return s.Data == other.Data
}

// String returns the wire form; an absent snapshot is sent as JSON null.
func (s SignatureSnapshot) String() string {
	if !s.Present {
		return nullSnapshot
	}
	return s.Data
}

// SignatureCacheEntry holds the two slots of the local signature cache.
// Previous is the last state known to be on the server, Current is what the
// viewer has produced since.
type SignatureCacheEntry struct {
	Previous SignatureSnapshot
	Current  SignatureSnapshot
}

// Diverged reports whether the viewer changed signatures since the last refresh
func (e SignatureCacheEntry) Diverged() bool {
	return !e.Current.Equal(e.Previous)
}
