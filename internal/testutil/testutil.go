package testutil

import (
	"time"

	"lexibox/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// FakeClock is a manually-advanced Clock for simulating day boundaries
type FakeClock struct {
	Current time.Time
}

// NewFakeClock creates a fake clock pinned to the given moment
func NewFakeClock(current time.Time) *FakeClock {
	return &FakeClock{Current: current}
}

// Now returns the pinned time
func (c *FakeClock) Now() time.Time {
	return c.Current
}

// Advance moves the clock forward
func (c *FakeClock) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}

// AdvanceDays moves the clock forward by whole calendar days
func (c *FakeClock) AdvanceDays(days int) {
	c.Current = c.Current.AddDate(0, 0, days)
}

// NewTestProgress creates a word progress record at a given familiarity
func NewTestProgress(wordID string, familiarity int) *domain.WordProgress {
	return &domain.WordProgress{
		WordID:      wordID,
		Familiarity: familiarity,
	}
}

// NewTestStore creates an empty store pre-seeded with the given words
func NewTestStore(words ...*domain.WordProgress) *domain.Store {
	store := domain.NewStore()
	for _, w := range words {
		store.Words[w.WordID] = w
	}
	return store
}
