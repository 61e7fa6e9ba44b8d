// dbaddaccount.go
package addaccount

import (
	"context"

	"github.com/haguru/signup/internal/interfaces"
	"github.com/haguru/signup/internal/models"
	"github.com/haguru/signup/pkg/helper"
)

// DBAddAccount creates accounts by hashing the password and handing the
// result to a repository.
type DBAddAccount struct {
	encrypter  interfaces.Encrypter
	repository interfaces.AddAccountRepository
	logger     interfaces.Logger
}

// NewDBAddAccount creates a new DBAddAccount instance.
func NewDBAddAccount(encrypter interfaces.Encrypter, repository interfaces.AddAccountRepository, logger interfaces.Logger) *DBAddAccount {
	return &DBAddAccount{
		encrypter:  encrypter,
		repository: repository,
		logger:     logger,
	}
}

// Add hashes the plaintext password and persists the account. Errors from
// the encrypter or the repository are returned unchanged and nothing is
// retried.
func (a *DBAddAccount) Add(ctx context.Context, account models.AddAccountModel) (*models.AccountModel, error) {
	funcName := helper.GetFuncName()
	a.logger.Debug("Entering function", "func", funcName, "email", account.Email)
	defer a.logger.Debug("Exiting function", "func", funcName, "email", account.Email)

	hashedPassword, err := a.encrypter.Encrypt(ctx, account.Password)
	if err != nil {
		a.logger.Error(MsgFailedToHashPassword, "func", funcName, "email", account.Email, "error", err)
		return nil, err
	}

	stored, err := a.repository.Add(ctx, models.AddAccountModel{
		Name:     account.Name,
		Email:    account.Email,
		Password: hashedPassword,
	})
	if err != nil {
		a.logger.Error(MsgFailedToAddAccount, "func", funcName, "email", account.Email, "error", err)
		return nil, err
	}

	if stored != nil {
		a.logger.Info(MsgAccountAdded, "func", funcName, "email", account.Email, "ID", stored.ID)
	}
	return stored, nil
}
