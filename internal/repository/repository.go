package repository

import "lexibox/internal/domain"

// StoreRepository persists the whole progress store as a single unit.
// Load on a fresh installation returns an empty store, not an error.
type StoreRepository interface {
	Load() (*domain.Store, error)
	Save(store *domain.Store) error
}
