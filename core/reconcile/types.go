package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex is returned when a move references an index outside the list.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrInProgress is returned when the list is touched while a reconciliation is in flight.
	ErrInProgress = errors.New("reconciliation in progress")

	// ErrFetchFailed is matched by every FetchError.
	ErrFetchFailed = errors.New("fetch failed")
)

// Item represents one asset in a folder.
type Item struct {
	// ID is the opaque asset identifier, stable across fetches.
	ID string `json:"id"`

	// Position is the 1-based explicit sort order.
	// During a reorder it holds the target value, not necessarily the persisted one.
	Position int `json:"position"`

	// DisplayFields holds render-only values keyed by column name.
	DisplayFields map[string]any `json:"display_fields,omitempty"`
}

// Change describes one item whose persisted position must be rewritten.
type Change struct {
	// ItemID is the asset identifier.
	ItemID string `json:"item_id"`

	// From is the last-known persisted position.
	From int `json:"from"`

	// To is the target position derived from the list index.
	To int `json:"to"`
}

// UpdateFailure records a single failed position write.
type UpdateFailure struct {
	ItemID string
	Err    error
}

func (f UpdateFailure) Error() string {
	return fmt.Sprintf("update %s failed: %v", f.ItemID, f.Err)
}

func (f UpdateFailure) Unwrap() error {
	return f.Err
}

// FetchError wraps a failed list retrieval for a folder.
type FetchError struct {
	Folder string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch folder %q: %v", e.Folder, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFetchFailed) true for any FetchError.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

// Report is the outcome of a reconciliation.
type Report struct {
	// Folder is the folder the session belongs to.
	Folder string `json:"folder"`

	// Changes is the changed set that was pushed to the host.
	Changes []Change `json:"changes"`

	// Failures lists every change whose update failed. Empty means full success.
	Failures []UpdateFailure `json:"-"`
}

// Updated returns the number of successful position writes.
func (r *Report) Updated() int {
	return len(r.Changes) - len(r.Failures)
}

// OK reports whether every update succeeded.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// FailedIDs returns the item IDs of all failed updates in report order.
func (r *Report) FailedIDs() []string {
	ids := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		ids = append(ids, f.ItemID)
	}
	return ids
}

// Options controls reconcile behaviour.
type Options struct {
	// Concurrency caps the number of update calls in flight. Zero or negative means unbounded.
	Concurrency int
}
