package gallery

import "time"

// how many past generations a session keeps around by default
const DefaultCapacity = 5

// Entry is one retained generation result. The store owns the bytes it
// retains; an evicted entry is discarded entirely.
type Entry struct {
	ImageBytes []byte
	Prompt     string
	ModelID    string
	CreatedAt  time.Time
}

// Store is a bounded, newest-first collection of recent generation
// results. Not safe for concurrent use; the owning session serializes
// access.
type Store struct {
	capacity int
	entries  []Entry
}

func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Store{
		capacity: capacity,
		entries:  make([]Entry, 0, capacity),
	}
}

// Record inserts the entry at the head and immediately drops anything
// beyond capacity from the tail.
func (s *Store) Record(entry Entry) {
	s.entries = append([]Entry{entry}, s.entries...)

	if len(s.entries) > s.capacity {
		s.entries = s.entries[:s.capacity]
	}
}

// List returns the retained entries newest-first. The returned slice is
// a copy; mutating it does not affect the store.
func (s *Store) List() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the entry at the given position, newest first.
func (s *Store) Get(index int) (Entry, bool) {
	if index < 0 || index >= len(s.entries) {
		return Entry{}, false
	}

	return s.entries[index], true
}

func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) Capacity() int {
	return s.capacity
}
