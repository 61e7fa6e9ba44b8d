package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/lib/pq" // PostgreSQL driver for database/sql

	"github.com/haguru/signup/internal/accountrepo/constants"
	"github.com/haguru/signup/internal/interfaces"
	"github.com/haguru/signup/internal/models"
	"github.com/haguru/signup/pkg/helper"
)

const (
	uniqueViolation = "23505"

	MsgFailedToInsertAccount = "failed to add account to PostgreSQL"
	MsgFailedToLoadAccount   = "failed to load inserted account from PostgreSQL"
	MsgFailedToDecodeAccount = "failed to decode account row"
	MsgUnexpectedInsertedID  = "failed to assert inserted ID to string (expected UUID)"
)

// PostgresAccountRepository implements AccountRepository for PostgreSQL databases.
type PostgresAccountRepository struct {
	dbClient interfaces.DBClient
	logger   interfaces.Logger
}

// NewPostgresAccountRepository creates a new PostgreSQL repository instance.
func NewPostgresAccountRepository(dbClient interfaces.DBClient, logger interfaces.Logger) (*PostgresAccountRepository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	return &PostgresAccountRepository{dbClient: dbClient, logger: logger}, nil
}

// Add saves a new account and returns the stored row. The client generates
// the UUID primary key.
func (r *PostgresAccountRepository) Add(ctx context.Context, account models.AddAccountModel) (*models.AccountModel, error) {
	funcName := helper.GetFuncName()
	r.logger.Debug("Entering function", "func", funcName, "email", account.Email)
	defer r.logger.Debug("Exiting function", "func", funcName, "email", account.Email)

	doc := map[string]interface{}{
		constants.FieldName:     account.Name,
		constants.FieldEmail:    account.Email,
		constants.FieldPassword: account.Password,
	}

	insertedID, err := r.dbClient.InsertOne(ctx, constants.AccountsCollection, doc)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("email '%s': %w", account.Email, constants.ErrEmailInUse)
		}
		return nil, fmt.Errorf("%s: %w", MsgFailedToInsertAccount, err)
	}

	id, ok := insertedID.(string)
	if !ok {
		return nil, errors.New(MsgUnexpectedInsertedID)
	}

	rows, err := r.dbClient.FindMany(ctx, constants.AccountsCollection, map[string]interface{}{constants.FieldID: id})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MsgFailedToLoadAccount, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", MsgFailedToLoadAccount, constants.ErrAccountNotFound)
	}

	var stored models.AccountModel
	if err := mapstructure.Decode(rows[0], &stored); err != nil {
		return nil, fmt.Errorf("%s: %w", MsgFailedToDecodeAccount, err)
	}

	return &stored, nil
}

// EnsureIndices creates the accounts table with its unique email constraint.
func (r *PostgresAccountRepository) EnsureIndices(ctx context.Context) error {
	return r.dbClient.EnsureSchema(ctx, constants.AccountsCollection, constants.AccountsTableSchema)
}

// Ping checks the underlying database connection.
func (r *PostgresAccountRepository) Ping(ctx context.Context) error {
	return r.dbClient.Ping(ctx)
}

// Close closes the PostgreSQL database connection.
func (r *PostgresAccountRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}
