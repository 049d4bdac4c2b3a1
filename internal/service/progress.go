package service

import (
	"lexibox/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MarkSeen records a passive view of a word: touches last-seen, pushes the
// word onto the history list, counts a read, and updates the streak.
// Familiarity and scheduling are untouched.
func (t *Tracker) MarkSeen(wordID string) domain.WordProgress {
	now := t.clock.Now()
	w := t.store.Word(wordID)

	w.LastSeenAt = &now
	t.store.PushHistory(wordID)
	t.store.Stats.TotalRead++
	t.updateStreak(now)

	t.persist()
	return *w
}

// RecordCorrect registers a correct answer: familiarity steps up (capped),
// the lifetime correct counter grows, and the next review is scheduled from
// the ladder at the new score.
func (t *Tracker) RecordCorrect(wordID string) domain.WordProgress {
	now := t.clock.Now()
	w := t.store.Word(wordID)

	if w.Familiarity < domain.MaxFamiliarity {
		w.Familiarity++
	}
	w.CorrectCount++
	w.LastSeenAt = &now
	next := now.Add(domain.ReviewInterval(w.Familiarity))
	w.NextReviewAt = &next
	t.updateStreak(now)

	t.persist()
	return *w
}

// RecordIncorrect registers a wrong answer: familiarity steps down (floored
// at zero), the lifetime incorrect counter grows, and the word is rescheduled
// at the shortest interval regardless of its prior score.
func (t *Tracker) RecordIncorrect(wordID string) domain.WordProgress {
	now := t.clock.Now()
	w := t.store.Word(wordID)

	if w.Familiarity > 0 {
		w.Familiarity--
	}
	w.IncorrectCount++
	w.LastSeenAt = &now
	next := now.Add(domain.ReviewInterval(0))
	w.NextReviewAt = &next
	t.updateStreak(now)

	t.persist()
	return *w
}

// SwipeRight ("I know this word") scores exactly like a correct answer
func (t *Tracker) SwipeRight(wordID string) domain.WordProgress {
	return t.RecordCorrect(wordID)
}

// SwipeLeft ("needs review") reschedules the word at the shortest interval
// without scoring it as a wrong answer: familiarity and both counters stay
// untouched.
func (t *Tracker) SwipeLeft(wordID string) domain.WordProgress {
	now := t.clock.Now()
	w := t.store.Word(wordID)

	w.LastSeenAt = &now
	next := now.Add(domain.ReviewInterval(0))
	w.NextReviewAt = &next
	t.updateStreak(now)

	t.persist()
	return *w
}

// ToggleFavorite flips the favorite flag and adjusts the lifetime favorited
// counter, which never drops below zero.
func (t *Tracker) ToggleFavorite(wordID string) domain.WordProgress {
	w := t.store.Word(wordID)

	w.IsFavorite = !w.IsFavorite
	if w.IsFavorite {
		t.store.Stats.TotalFavorited++
	} else if t.store.Stats.TotalFavorited > 0 {
		t.store.Stats.TotalFavorited--
	}

	t.persist()
	return *w
}

// ToggleSaved flips the saved flag and adjusts the lifetime saved counter,
// which never drops below zero.
func (t *Tracker) ToggleSaved(wordID string) domain.WordProgress {
	w := t.store.Word(wordID)

	w.IsSaved = !w.IsSaved
	if w.IsSaved {
		t.store.Stats.TotalSaved++
	} else if t.store.Stats.TotalSaved > 0 {
		t.store.Stats.TotalSaved--
	}

	t.persist()
	return *w
}

// CreateCollection defines a new named collection and returns it
func (t *Tracker) CreateCollection(name string) domain.Collection {
	c := domain.Collection{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: t.clock.Now(),
	}
	t.store.Collections = append(t.store.Collections, c)

	t.logger.Info("Collection created", zap.String("collection_id", c.ID), zap.String("name", name))

	t.persist()
	return c
}

// Collections returns a snapshot of all collection definitions
func (t *Tracker) Collections() []domain.Collection {
	collections := make([]domain.Collection, len(t.store.Collections))
	copy(collections, t.store.Collections)
	return collections
}

// AddToCollection adds a word to a collection; adding twice is a no-op
func (t *Tracker) AddToCollection(wordID, collectionID string) domain.WordProgress {
	w := t.store.Word(wordID)
	w.AddCollection(collectionID)

	t.persist()
	return *w
}

// RemoveFromCollection removes a word from a collection if present
func (t *Tracker) RemoveFromCollection(wordID, collectionID string) domain.WordProgress {
	w := t.store.Word(wordID)
	w.RemoveCollection(collectionID)

	t.persist()
	return *w
}

// RemoveCollection deletes a collection definition and strips its membership
// from every word.
func (t *Tracker) RemoveCollection(collectionID string) {
	for i, c := range t.store.Collections {
		if c.ID == collectionID {
			t.store.Collections = append(t.store.Collections[:i], t.store.Collections[i+1:]...)
			break
		}
	}
	for _, w := range t.store.Words {
		w.RemoveCollection(collectionID)
	}

	t.persist()
}

// WordsInCollection returns the ids of all words in a collection
func (t *Tracker) WordsInCollection(collectionID string) []string {
	return t.wordIDsWhere(func(w *domain.WordProgress) bool { return w.InCollection(collectionID) })
}
