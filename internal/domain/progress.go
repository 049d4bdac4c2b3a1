package domain

import "time"

// MaxFamiliarity is the highest familiarity score a word can reach
const MaxFamiliarity = 6

// ReviewIntervalDays is the spaced-repetition ladder, indexed by familiarity score
var ReviewIntervalDays = [7]int{1, 3, 7, 14, 30, 60, 120}

// WordProgress tracks mastery and scheduling state for a single word
type WordProgress struct {
	WordID         string     `json:"word_id"`
	Familiarity    int        `json:"familiarity"`
	LastSeenAt     *time.Time `json:"last_seen_at,omitempty"`
	NextReviewAt   *time.Time `json:"next_review_at,omitempty"`
	IsFavorite     bool       `json:"is_favorite"`
	IsSaved        bool       `json:"is_saved"`
	Collections    []string   `json:"collections,omitempty"`
	CorrectCount   int        `json:"correct_count"`
	IncorrectCount int        `json:"incorrect_count"`
}

// ReviewInterval returns the review interval for a familiarity score.
// Scores outside the ladder clamp to its first/last entry.
func ReviewInterval(score int) time.Duration {
	if score < 0 {
		score = 0
	}
	if score > len(ReviewIntervalDays)-1 {
		score = len(ReviewIntervalDays) - 1
	}
	return time.Duration(ReviewIntervalDays[score]) * 24 * time.Hour
}

// IsDue reports whether the word is scheduled and its review time has passed
func (w *WordProgress) IsDue(now time.Time) bool {
	return w.NextReviewAt != nil && !w.NextReviewAt.After(now)
}

// InCollection reports whether the word belongs to the given collection
func (w *WordProgress) InCollection(collectionID string) bool {
	for _, id := range w.Collections {
		if id == collectionID {
			return true
		}
	}
	return false
}

// AddCollection adds the word to a collection; adding twice is a no-op
func (w *WordProgress) AddCollection(collectionID string) {
	if w.InCollection(collectionID) {
		return
	}
	w.Collections = append(w.Collections, collectionID)
}

// RemoveCollection removes the word from a collection if present
func (w *WordProgress) RemoveCollection(collectionID string) {
	for i, id := range w.Collections {
		if id == collectionID {
			w.Collections = append(w.Collections[:i], w.Collections[i+1:]...)
			return
		}
	}
}
