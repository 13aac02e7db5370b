package document

import (
	"io/fs"
	"sync"
)

// MemoryLoader serves documents from an in-memory map keyed by path.
// It is safe for concurrent use.
type MemoryLoader struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemoryLoader creates a loader seeded with the given path -> content map.
func NewMemoryLoader(files map[string]string) *MemoryLoader {
	m := &MemoryLoader{files: make(map[string][]byte, len(files))}
	for path, content := range files {
		m.files[path] = []byte(content)
	}
	return m
}

// Set stores (or replaces) the content served for path.
func (m *MemoryLoader) Set(path, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = []byte(content)
}

// Load decodes the content registered for path.
func (m *MemoryLoader) Load(path string) (any, error) {
	m.mu.RLock()
	data, ok := m.files[path]
	m.mu.RUnlock()

	if !ok {
		return nil, &ReadError{Path: path, Err: fs.ErrNotExist}
	}
	return Decode(path, data)
}
