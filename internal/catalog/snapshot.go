package catalog

import (
	"sync"

	"bookstore/internal/entity"
)

// Snapshot is the in-memory copy of the whole catalog, populated once at
// startup and refreshed after any admin mutation. Consumers that need the
// data before it arrives wait on Ready instead of polling.
type Snapshot struct {
	mu    sync.RWMutex
	books []entity.Book

	ready     chan struct{}
	readyOnce sync.Once
}

func NewSnapshot() *Snapshot {
	return &Snapshot{ready: make(chan struct{})}
}

// Populate replaces the snapshot contents. The first call also resolves
// the readiness signal; later calls are plain last-write-wins refreshes.
func (s *Snapshot) Populate(books []entity.Book) {
	s.mu.Lock()
	s.books = books
	s.mu.Unlock()

	s.readyOnce.Do(func() { close(s.ready) })
}

// Ready is closed once the snapshot has been populated for the first time.
func (s *Snapshot) Ready() <-chan struct{} {
	return s.ready
}

// Books returns the current snapshot contents. The returned slice must be
// treated as read-only.
func (s *Snapshot) Books() []entity.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.books
}

// Find returns the book with the given id.
func (s *Snapshot) Find(id int64) (entity.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.books {
		if b.ID == id {
			return b, true
		}
	}
	return entity.Book{}, false
}

// Len reports the number of books in the snapshot.
func (s *Snapshot) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}
