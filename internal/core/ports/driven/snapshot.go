package driven

import "context"

// PageSnapshot is one captured page state: the URL parts that drive route
// classification and the framework's global state object as decoded JSON.
type PageSnapshot struct {
	// Domain is the page host.
	Domain string

	// Pathname is the page URL path.
	Pathname string

	// State is the decoded global state object.
	State map[string]any
}

// SnapshotSource provides page-state snapshots captured from the browser.
type SnapshotSource interface {
	// Load returns the current snapshot.
	// Returns domain.ErrNotFound when no snapshot has been captured yet.
	Load(ctx context.Context) (*PageSnapshot, error)

	// Watch delivers a notification each time the snapshot changes.
	// The channel is closed when the context is cancelled.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
