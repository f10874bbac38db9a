package gallery

import "sync"

// MediaReleaser frees the media handle owned by a removed entry.
type MediaReleaser interface {
	Release(ref string)
}

type noopReleaser struct{}

func (noopReleaser) Release(string) {}

// Store owns the ordered entry collection, most recent first. Every method
// runs to completion under the store lock, so callers observe each mutation
// atomically.
type Store struct {
	mu       sync.RWMutex
	entries  []Entry
	releaser MediaReleaser
}

// NewStore creates a store seeded with entries in the given order. A nil
// releaser means media handles need no explicit release.
func NewStore(releaser MediaReleaser, seed ...Entry) *Store {
	if releaser == nil {
		releaser = noopReleaser{}
	}
	entries := make([]Entry, 0, len(seed))
	for _, e := range seed {
		entries = append(entries, e.clone())
	}
	return &Store{entries: entries, releaser: releaser}
}

// Create prepends entry to the collection.
func (s *Store) Create(entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]Entry{entry.clone()}, s.entries...)
}

// ToggleLike flips the liked flag of the entry with the given id and moves
// the like count by one in the same direction. Unknown ids are ignored.
func (s *Store) ToggleLike(id string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Entry{}, false
	}

	e := &s.entries[i]
	if e.Liked {
		e.Liked = false
		if e.LikeCount > 0 {
			e.LikeCount--
		}
	} else {
		e.Liked = true
		e.LikeCount++
	}
	return e.clone(), true
}

// Edit merges the provided patch fields into the entry with the given id.
// Tags go through NormalizeTags, same as on creation. Unknown ids are ignored.
func (s *Store) Edit(id string, patch Patch) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Entry{}, false
	}

	e := &s.entries[i]
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.SetTags {
		e.Tags = NormalizeTags(patch.Tags)
	}
	return e.clone(), true
}

// Delete removes the entry with the given id and releases its media.
// Unknown ids are ignored.
func (s *Store) Delete(id string) (Entry, bool) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return Entry{}, false
	}
	removed := s.entries[i]
	s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
	s.mu.Unlock()

	s.releaser.Release(removed.Media)
	return removed, true
}

// Get returns a copy of the entry with the given id.
func (s *Store) Get(id string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return Entry{}, false
	}
	return s.entries[i].clone(), true
}

// Entries returns a snapshot of the collection in display order.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.clone()
	}
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close releases the media of every remaining entry and empties the store.
func (s *Store) Close() {
	s.mu.Lock()
	entries := s.entries
	s.entries = nil
	s.mu.Unlock()

	for _, e := range entries {
		s.releaser.Release(e.Media)
	}
}

func (s *Store) indexOf(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}
