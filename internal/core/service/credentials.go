package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Credentials turns a plaintext password into the opaque credential kept by
// the user store, and checks a supplied password against a stored one.
type Credentials interface {
	Hash(password string) (string, error)
	Match(stored, supplied string) bool
}

// BcryptCredentials stores bcrypt hashes. A zero Cost means bcrypt.DefaultCost.
type BcryptCredentials struct {
	Cost int
}

func (b BcryptCredentials) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (BcryptCredentials) Match(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// PlainCredentials keeps passwords as given and compares them for equality.
type PlainCredentials struct{}

func (PlainCredentials) Hash(password string) (string, error) { return password, nil }

func (PlainCredentials) Match(stored, supplied string) bool { return stored == supplied }
