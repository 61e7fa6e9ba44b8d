package interfaces

import (
	"context"

	"github.com/haguru/signup/internal/models"
)

// AddAccount is the account creation use case.
type AddAccount interface {
	Add(ctx context.Context, account models.AddAccountModel) (*models.AccountModel, error)
}
