package auth

import "sync"

// MockStore implements CredentialStore in memory, for testing.
type MockStore struct {
	mu    sync.Mutex
	creds *Credentials

	// StoreErr, when set, is returned from Store.
	StoreErr error
}

// NewMockStore creates a new in-memory credential store
func NewMockStore() *MockStore {
	return &MockStore{}
}

// Store saves the credentials in memory
func (m *MockStore) Store(creds *Credentials) error {
	if m.StoreErr != nil {
		return m.StoreErr
	}
	if creds == nil || creds.APIKey == "" {
		return ErrInvalidCredentials
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *creds
	m.creds = &copied
	return nil
}

// Retrieve gets the stored credentials
func (m *MockStore) Retrieve() (*Credentials, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.creds == nil {
		return nil, ErrCredentialsNotFound
	}
	copied := *m.creds
	return &copied, nil
}

// Delete removes the stored credentials
func (m *MockStore) Delete() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.creds == nil {
		return ErrCredentialsNotFound
	}
	m.creds = nil
	return nil
}

// Exists checks if credentials are stored
func (m *MockStore) Exists() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.creds != nil
}
