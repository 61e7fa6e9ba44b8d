package hasher

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost matches the work factor used by earlier deployments of the service.
	DefaultCost = 12

	ErrInvalidCost = "bcrypt cost out of range"
)

// BcryptAdapter implements interfaces.Encrypter with bcrypt.
type BcryptAdapter struct {
	cost     int
	generate func(password []byte, cost int) ([]byte, error)
}

// NewBcryptAdapter creates a BcryptAdapter hashing with the given cost.
// A zero cost selects DefaultCost.
func NewBcryptAdapter(cost int) (*BcryptAdapter, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%s: %d not in [%d, %d]", ErrInvalidCost, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &BcryptAdapter{
		cost:     cost,
		generate: bcrypt.GenerateFromPassword,
	}, nil
}

// Cost returns the work factor used for new hashes.
func (b *BcryptAdapter) Cost() int {
	return b.cost
}

// Encrypt returns the bcrypt hash of value.
func (b *BcryptAdapter) Encrypt(ctx context.Context, value string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	hash, err := b.generate([]byte(value), b.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
