// Package account keeps the registered customers. It only exists to hand
// the billing core an authenticated identity string.
package account

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAlreadyRegistered  = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyUsername      = errors.New("username must not be empty")
	ErrEmptySecret        = errors.New("secret must not be empty")
)

// Store is an in-memory account registry keyed by username.
type Store struct {
	mu       sync.RWMutex
	accounts map[string][]byte // username -> bcrypt hash
}

func NewStore() *Store {
	return &Store{accounts: make(map[string][]byte)}
}

// Register adds a new account. Secrets are stored as bcrypt hashes.
func (s *Store) Register(username, secret string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}
	if secret == "" {
		return ErrEmptySecret
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[username]; exists {
		return ErrAlreadyRegistered
	}
	s.accounts[username] = hash
	return nil
}

// Authenticate checks the secret and returns the customer identity on success.
func (s *Store) Authenticate(username, secret string) (string, error) {
	username = strings.TrimSpace(username)

	s.mu.RLock()
	hash, exists := s.accounts[username]
	s.mu.RUnlock()

	if !exists {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(secret)); err != nil {
		return "", ErrInvalidCredentials
	}
	return username, nil
}
