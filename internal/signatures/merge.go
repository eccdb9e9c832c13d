// Package signatures merges signature snapshots submitted by viewers into the
// state stored on the server.
//
// A snapshot is a JSON object keyed by signature id. The client sends the
// snapshot it has now (current) and the last one it received from the server
// (previous); the difference between the two is applied to the stored state,
// so concurrent viewers editing different signatures do not overwrite each
// other.
package signatures

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Empty is the state of a profile without signatures
const Empty = "{}"

// ErrInvalidSnapshot is returned for snapshots that are not JSON objects or null
var ErrInvalidSnapshot = errors.New("signature snapshot must be a JSON object")

// Delta is the difference between two snapshots
type Delta struct {
	Set     map[string]json.RawMessage
	Removed []string
}

// Empty reports whether the delta changes nothing
func (d Delta) Empty() bool {
	return len(d.Set) == 0 && len(d.Removed) == 0
}

// Diff returns the keys added or changed in current and the keys removed from previous
func Diff(previous, current string) (Delta, error) {
	prev, err := parse(previous)
	if err != nil {
		return Delta{}, fmt.Errorf("previous: %w", err)
	}
	cur, err := parse(current)
	if err != nil {
		return Delta{}, fmt.Errorf("current: %w", err)
	}

	delta := Delta{Set: make(map[string]json.RawMessage)}
	for key, value := range cur {
		if old, ok := prev[key]; !ok || !bytes.Equal(old, value) {
			delta.Set[key] = value
		}
	}
	for key := range prev {
		if _, ok := cur[key]; !ok {
			delta.Removed = append(delta.Removed, key)
		}
	}
	return delta, nil
}

// Apply returns stored with delta applied. Keys untouched by delta are kept.
func Apply(stored string, delta Delta) (string, error) {
	state, err := parse(stored)
	if err != nil {
		return "", fmt.Errorf("stored: %w", err)
	}

	for key, value := range delta.Set {
		state[key] = value
	}
	for _, key := range delta.Removed {
		delete(state, key)
	}

	// encoding/json сортирует ключи: одинаковое состояние даёт одинаковый JSON
	out, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("encode signatures: %w", err)
	}
	return string(out), nil
}

// Merge applies the change from previous to current on top of stored
func Merge(stored, previous, current string) (string, error) {
	delta, err := Diff(previous, current)
	if err != nil {
		return "", err
	}
	return Apply(stored, delta)
}

// Normalize re-encodes a snapshot in its canonical form
func Normalize(snapshot string) (string, error) {
	return Apply(snapshot, Delta{})
}

// parse decodes a snapshot; empty and null are the empty object
func parse(snapshot string) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace([]byte(snapshot))
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return make(map[string]json.RawMessage), nil
	}
	if trimmed[0] != '{' {
		return nil, ErrInvalidSnapshot
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	// Значения сравниваются побайтно, поэтому приводим их к компактной форме
	state := make(map[string]json.RawMessage, len(raw))
	for key, value := range raw {
		var compact bytes.Buffer
		if err := json.Compact(&compact, value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
		state[key] = compact.Bytes()
	}
	return state, nil
}
