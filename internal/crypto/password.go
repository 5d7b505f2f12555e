package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)

// PasswordHandler hashes plaintext passwords and verifies attempts
// against stored hashes.
type PasswordHandler interface {
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the stored hash. A
	// malformed stored hash counts as a mismatch, never an error, so a
	// corrupt record can never be mistaken for a bypass.
	Verify(plaintext, hash string) bool
}

// Bcrypt implements PasswordHandler with a per-call random salt and a
// tunable work factor.
type Bcrypt struct {
	cost int
}

var _ PasswordHandler = (*Bcrypt)(nil)

func NewBcrypt(cost ...int) *Bcrypt {
	c := bcrypt.DefaultCost
	if len(cost) > 0 && cost[0] >= bcrypt.MinCost && cost[0] <= bcrypt.MaxCost {
		c = cost[0]
	}
	return &Bcrypt{cost: c}
}

func (b *Bcrypt) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	if len(plaintext) > 72 {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func (b *Bcrypt) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
