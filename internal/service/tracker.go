package service

import (
	"sort"

	"lexibox/internal/domain"
	"lexibox/internal/repository"

	"go.uber.org/zap"
)

// Tracker owns the in-memory progress store and drives both the per-word
// scheduling state and the aggregate activity statistics. All mutations run
// on the UI thread; after each one the whole store is written back. The
// in-memory state stays authoritative even when a write fails.
type Tracker struct {
	repo   repository.StoreRepository
	clock  domain.Clock
	logger *zap.Logger
	store  *domain.Store
}

// NewTracker loads the persisted store and returns a ready tracker
func NewTracker(repo repository.StoreRepository, clock domain.Clock, logger *zap.Logger) (*Tracker, error) {
	store, err := repo.Load()
	if err != nil {
		return nil, err
	}

	logger.Info("Progress store loaded",
		zap.Int("words", len(store.Words)),
		zap.Int("current_streak", store.Stats.CurrentStreak),
	)

	return &Tracker{
		repo:   repo,
		clock:  clock,
		logger: logger,
		store:  store,
	}, nil
}

// persist writes the whole store back. Failures are non-fatal: the in-memory
// state remains the source of truth until the next successful write.
func (t *Tracker) persist() {
	if err := t.repo.Save(t.store); err != nil {
		t.logger.Warn("Failed to persist progress store", zap.Error(err))
	}
}

// WordState returns a snapshot of the progress record for a word,
// materializing a fresh zero-state record for unknown ids.
func (t *Tracker) WordState(wordID string) domain.WordProgress {
	return *t.store.Word(wordID)
}

// Stats returns a read-only snapshot of the activity statistics
func (t *Tracker) Stats() domain.ActivityStats {
	return t.store.Stats
}

// History returns the recently-viewed word ids, most recent first
func (t *Tracker) History() []string {
	history := make([]string, len(t.store.History))
	copy(history, t.store.History)
	return history
}

// DueForReview returns the ids of all words whose review time has passed,
// most overdue first.
func (t *Tracker) DueForReview() []string {
	now := t.clock.Now()

	var due []*domain.WordProgress
	for _, w := range t.store.Words {
		if w.IsDue(now) {
			due = append(due, w)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].NextReviewAt.Equal(*due[j].NextReviewAt) {
			return due[i].WordID < due[j].WordID
		}
		return due[i].NextReviewAt.Before(*due[j].NextReviewAt)
	})

	ids := make([]string, len(due))
	for i, w := range due {
		ids[i] = w.WordID
	}
	return ids
}

// FavoriteWordIDs returns the ids of all favorited words
func (t *Tracker) FavoriteWordIDs() []string {
	return t.wordIDsWhere(func(w *domain.WordProgress) bool { return w.IsFavorite })
}

// SavedWordIDs returns the ids of all saved words
func (t *Tracker) SavedWordIDs() []string {
	return t.wordIDsWhere(func(w *domain.WordProgress) bool { return w.IsSaved })
}

func (t *Tracker) wordIDsWhere(match func(*domain.WordProgress) bool) []string {
	var ids []string
	for id, w := range t.store.Words {
		if match(w) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
