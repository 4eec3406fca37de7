package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrMismatch         = errors.New("password does not match")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrPasswordTooShort = errors.New("password is too short")
)

const (
	DefaultCost = bcrypt.DefaultCost
	MinLength   = 6
)

// Hash returns a bcrypt hash of password.
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}
	if len(password) < MinLength {
		return "", ErrPasswordTooShort
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashed), nil
}

// Compare checks password against a bcrypt hash.
func Compare(hashed, password string) error {
	if hashed == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}
	return nil
}
