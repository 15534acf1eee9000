package password

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrTooLong is returned by Hash for passwords bcrypt cannot take (over 72 bytes).
var ErrTooLong = bcrypt.ErrPasswordTooLong

// Hasher hashes and verifies passwords with bcrypt. bcrypt embeds a fresh
// random salt in every hash it produces.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash runs bcrypt off the caller's goroutine and gives up waiting when ctx
// is done.
func (h *Hasher) Hash(ctx context.Context, plaintext string) (string, error) {
	type result struct {
		hash []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
		done <- result{b, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		if r.err != nil {
			return "", r.err
		}
		return string(r.hash), nil
	}
}

// Verify reports whether plaintext matches hash. A malformed hash yields
// false together with the bcrypt error.
func (h *Hasher) Verify(ctx context.Context, plaintext, hash string) (bool, error) {
	done := make(chan error, 1)
	go func() {
		done <- bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-done:
		if err == nil {
			return true, nil
		}
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
}
