package interfaces

import (
	"context"

	"github.com/haguru/signup/internal/models"
)

// AddAccountRepository persists a new account and returns the stored record
// with its generated identifier.
type AddAccountRepository interface {
	Add(ctx context.Context, account models.AddAccountModel) (*models.AccountModel, error)
}

// AccountRepository is the storage contract implemented by every backend.
// This interface remains database-agnostic.
type AccountRepository interface {
	AddAccountRepository
	EnsureIndices(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
