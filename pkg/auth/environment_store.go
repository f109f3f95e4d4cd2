package auth

import (
	"os"
	"time"
)

// EnvironmentStore implements CredentialStore using the FLICKR_API_KEY
// environment variable. It is read-only.
type EnvironmentStore struct{}

// NewEnvironmentStore creates a new environment-based credential store
func NewEnvironmentStore() *EnvironmentStore {
	return &EnvironmentStore{}
}

// Store is not supported for environment variables
func (e *EnvironmentStore) Store(creds *Credentials) error {
	return ErrStoreReadOnly
}

// Retrieve gets the API key from the environment
func (e *EnvironmentStore) Retrieve() (*Credentials, error) {
	apiKey := os.Getenv("FLICKR_API_KEY")
	if apiKey == "" {
		return nil, ErrCredentialsNotFound
	}

	return &Credentials{
		APIKey:       apiKey,
		LastModified: time.Now(),
	}, nil
}

// Delete is not supported for environment variables
func (e *EnvironmentStore) Delete() error {
	return ErrStoreReadOnly
}

// Exists checks if the environment holds an API key
func (e *EnvironmentStore) Exists() bool {
	return os.Getenv("FLICKR_API_KEY") != ""
}
