package auth

import (
	"fmt"

	"github.com/99designs/keyring"
)

// keyringStore backs SessionStore with the system keyring. The ring is
// opened per call; sessions are read once at startup and written once
// per sign-in, so there is nothing worth caching.
type keyringStore struct{}

func (keyringStore) open() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: "studydash",
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		// Fallback for hosts without a native keychain.
		FileDir:                  "~/.config/studydash/session",
		FilePasswordFunc:         keyring.FixedStringPrompt("studydash-session"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

func (s keyringStore) Get(key string) (string, error) {
	ring, err := s.open()
	if err != nil {
		return "", err
	}
	item, err := ring.Get(key)
	if err != nil {
		return "", fmt.Errorf("reading session %q: %w", key, err)
	}
	return string(item.Data), nil
}

func (s keyringStore) Set(key, value string) error {
	ring, err := s.open()
	if err != nil {
		return err
	}
	if err := ring.Set(keyring.Item{Key: key, Data: []byte(value)}); err != nil {
		return fmt.Errorf("storing session %q: %w", key, err)
	}
	return nil
}

func (s keyringStore) Delete(key string) error {
	ring, err := s.open()
	if err != nil {
		return err
	}
	if err := ring.Remove(key); err != nil {
		return fmt.Errorf("clearing session %q: %w", key, err)
	}
	return nil
}
