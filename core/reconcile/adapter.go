package reconcile

import "context"

// Adapter defines how a session talks to the host that owns the folder.
// Implementations wrap a concrete host API client.
type Adapter interface {
	// Name returns the adapter name, used in logs and metrics.
	Name() string

	// Fetch returns the folder's items in persisted order.
	// Each item's Position is the persisted value; zero means the host has none.
	Fetch(ctx context.Context, folder string) ([]Item, error)

	// UpdatePosition persists a single item's position.
	// It is called concurrently for different items of the same folder.
	UpdatePosition(ctx context.Context, itemID string, position int) error
}
