// Package file provides the file-based snapshot source. The browser side
// writes one JSON document per captured page; this adapter reads it and
// watches it for changes.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driven"
	"github.com/custodia-labs/keyscout-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.SnapshotSource = (*Source)(nil)

// snapshotDoc is the on-disk JSON shape of a captured page.
type snapshotDoc struct {
	Domain   string         `json:"domain"`
	Pathname string         `json:"pathname"`
	State    map[string]any `json:"state"`
}

// Source loads page snapshots from a JSON file.
type Source struct {
	path string
}

// NewSource creates a snapshot source for the given file path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path returns the snapshot file path.
func (s *Source) Path() string {
	return s.path
}

// Load reads and decodes the snapshot file.
// Returns domain.ErrNotFound when the file does not exist yet.
func (s *Source) Load(_ context.Context) (*driven.PageSnapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no snapshot at %s", domain.ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var doc snapshotDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode snapshot: %v", domain.ErrInvalidInput, err)
	}
	if doc.Domain == "" {
		return nil, fmt.Errorf("%w: snapshot missing domain", domain.ErrInvalidInput)
	}

	return &driven.PageSnapshot{
		Domain:   doc.Domain,
		Pathname: doc.Pathname,
		State:    doc.State,
	}, nil
}

// Watch delivers a notification each time the snapshot file is written.
// The watch covers the parent directory so atomic rename-into-place writes
// are observed too. The channel is closed when the context is cancelled.
func (s *Source) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(s.path)
	ch := make(chan struct{}, 1)

	go func() {
		defer close(ch)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				// Coalesce: drop the notification if one is already pending.
				select {
				case ch <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Snapshot watcher: %v", err)
			}
		}
	}()

	return ch, nil
}
