package domain

import "time"

// HistoryLimit caps the recently-viewed list
const HistoryLimit = 100

// Collection is a user-defined named group of words
type Collection struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the whole per-installation progress store. It is loaded once,
// mutated in memory, and persisted as a single unit.
type Store struct {
	Words       map[string]*WordProgress `json:"words"`
	Stats       ActivityStats            `json:"stats"`
	Collections []Collection             `json:"collections,omitempty"`
	History     []string                 `json:"history,omitempty"`
}

// NewStore returns an empty store with all-zero defaults
func NewStore() *Store {
	return &Store{Words: make(map[string]*WordProgress)}
}

// Word returns the progress record for a word id, materializing a fresh
// zero-state record on first reference. Unknown ids are never an error.
func (s *Store) Word(wordID string) *WordProgress {
	if s.Words == nil {
		s.Words = make(map[string]*WordProgress)
	}
	if w, ok := s.Words[wordID]; ok {
		return w
	}
	w := &WordProgress{WordID: wordID}
	s.Words[wordID] = w
	return w
}

// PushHistory prepends a word id to the recently-viewed list. Pushing the id
// already at the head is a no-op; the list is capped at HistoryLimit entries,
// dropping the oldest.
func (s *Store) PushHistory(wordID string) {
	if len(s.History) > 0 && s.History[0] == wordID {
		return
	}
	s.History = append([]string{wordID}, s.History...)
	if len(s.History) > HistoryLimit {
		s.History = s.History[:HistoryLimit]
	}
}
