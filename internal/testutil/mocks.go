package testutil

import (
	"lexibox/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockStoreRepository is a mock for StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Load() (*domain.Store, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

func (m *MockStoreRepository) Save(store *domain.Store) error {
	args := m.Called(store)
	return args.Error(0)
}
