// Package session keeps named raster buffers open between tool calls.
//
// raster.Buffer has no locking of its own. Store provides it: every buffer
// is held in an entry with its own lock, and callers reach the buffer only
// through View and Update, which run under that lock. Edits to different
// buffers proceed in parallel; edits to one buffer are serialized.
package session

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ironsheep/raster-tools-mcp/internal/raster"
)

// ErrUnknownBuffer is returned for a name that is not open.
var ErrUnknownBuffer = errors.New("unknown buffer")

type entry struct {
	mu   sync.RWMutex
	path string
	buf  *raster.Buffer
}

// Store maps buffer names to open buffers.
//
// Store is safe for concurrent use by multiple goroutines.
//
// # Example Usage
//
//	store := session.NewStore()
//	if err := store.Open("photo", "/path/to/photo.png"); err != nil {
//	    log.Fatal(err)
//	}
//	err := store.Update("photo", func(b *raster.Buffer) error {
//	    b.RotateRight()
//	    return b.Crop(0, 0, 100, 100)
//	})
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]*entry),
	}
}

// Open loads the PNG at path and stores it under name, replacing any buffer
// already open under that name.
func (s *Store) Open(name, path string) error {
	buf, err := raster.Load(path)
	if err != nil {
		return err
	}
	s.put(name, path, buf)
	return nil
}

// Put stores buf under name. The store takes ownership of buf.
func (s *Store) Put(name string, buf *raster.Buffer) {
	s.put(name, "", buf)
}

func (s *Store) put(name, path string, buf *raster.Buffer) {
	s.mu.Lock()
	s.entries[name] = &entry{path: path, buf: buf}
	s.mu.Unlock()
}

func (s *Store) lookup(name string) (*entry, error) {
	s.mu.RLock()
	e, ok := s.entries[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBuffer, name)
	}
	return e, nil
}

// Path returns the file a buffer was opened from, or "" if it was created
// in memory.
func (s *Store) Path(name string) (string, error) {
	e, err := s.lookup(name)
	if err != nil {
		return "", err
	}
	return e.path, nil
}

// View runs fn with the named buffer. Views of one buffer may run
// concurrently, so fn must not modify the buffer or retain it after
// returning.
func (s *Store) View(name string, fn func(*raster.Buffer) error) error {
	e, err := s.lookup(name)
	if err != nil {
		return err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return fn(e.buf)
}

// Update runs fn with the named buffer, holding off every other View and
// Update of that buffer until fn returns.
func (s *Store) Update(name string, fn func(*raster.Buffer) error) error {
	e, err := s.lookup(name)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.buf)
}

// Names returns the open buffer names in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	s.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Evict closes the named buffer. Unknown names are ignored.
func (s *Store) Evict(name string) {
	s.mu.Lock()
	delete(s.entries, name)
	s.mu.Unlock()
}

// Clear closes every buffer.
func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = make(map[string]*entry)
	s.mu.Unlock()
}
