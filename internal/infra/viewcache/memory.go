package viewcache

import (
	"context"
	"log/slog"
	"sync"
)

// Memory caches rendered views per path. Every Revalidate bumps the path's
// generation, and Store refuses values that were computed under an older one,
// so a read racing with a mutation can never repopulate stale data.
type Memory struct {
	mu          sync.Mutex
	entries     map[string]any
	generations map[string]uint64
}

func NewMemory() *Memory {
	return &Memory{
		entries:     make(map[string]any),
		generations: make(map[string]uint64),
	}
}

func (m *Memory) Revalidate(ctx context.Context, path string) {
	m.mu.Lock()
	m.generations[path]++
	delete(m.entries, path)
	gen := m.generations[path]
	m.mu.Unlock()

	slog.DebugContext(ctx, "view revalidated", "path", path, "generation", gen)
}

// Lookup returns the cached value and the path's current generation.
func (m *Memory) Lookup(path string) (any, uint64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.entries[path]
	return v, m.generations[path], ok
}

// Store caches v only if no revalidation happened since gen was observed.
func (m *Memory) Store(path string, gen uint64, v any) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.generations[path] != gen {
		return false
	}
	m.entries[path] = v
	return true
}
