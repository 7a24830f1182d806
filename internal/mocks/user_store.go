// Package mocks provides hand-written test doubles for the store and
// service interfaces.
package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/promanage/promanage-api/internal/domain"
	"github.com/promanage/promanage-api/internal/store"
)

// MockUserStore is an in-memory implementation of store.UserStore.
// Set Err to force every call to fail with that error.
type MockUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User

	Err error
}

// NewMockUserStore creates an empty MockUserStore.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		users: make(map[uuid.UUID]*domain.User),
	}
}

var _ store.UserStore = (*MockUserStore)(nil)

// Create implements store.UserStore.Create
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	copied := *user
	m.users[user.ID] = &copied
	return nil
}

// GetByID implements store.UserStore.GetByID
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// GetByEmail implements store.UserStore.GetByEmail
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByName implements store.UserStore.GetByName
func (m *MockUserStore) GetByName(ctx context.Context, name string) (*domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Name == name {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Update implements store.UserStore.Update
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.ID]; !ok {
		return store.ErrUserNotFound
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}
