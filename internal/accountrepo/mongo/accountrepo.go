package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/haguru/signup/internal/accountrepo/constants"
	"github.com/haguru/signup/internal/interfaces"
	"github.com/haguru/signup/internal/models"
	"github.com/haguru/signup/pkg/helper"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongosdk "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	MsgFailedToInsertAccount = "failed to add account to MongoDB"
	MsgFailedToLoadAccount   = "failed to load inserted account from MongoDB"
	MsgUnexpectedInsertedID  = "failed to assert inserted ID to ObjectID"
)

// mongoAccount is the BSON shape of an account document.
type mongoAccount struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
}

// MongoAccountRepository implements AccountRepository using the generic DBClient.
type MongoAccountRepository struct {
	dbClient interfaces.DBClient
	logger   interfaces.Logger
}

// NewMongoAccountRepository creates a new MongoDB repository instance.
func NewMongoAccountRepository(dbClient interfaces.DBClient, logger interfaces.Logger) (*MongoAccountRepository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	return &MongoAccountRepository{dbClient: dbClient, logger: logger}, nil
}

// Add inserts the account and reads it back so the caller receives the
// record as stored, with the ObjectID rendered as hex.
func (r *MongoAccountRepository) Add(ctx context.Context, account models.AddAccountModel) (*models.AccountModel, error) {
	funcName := helper.GetFuncName()
	r.logger.Debug("Entering function", "func", funcName, "email", account.Email)
	defer r.logger.Debug("Exiting function", "func", funcName, "email", account.Email)

	doc := bson.M{
		constants.FieldName:     account.Name,
		constants.FieldEmail:    account.Email,
		constants.FieldPassword: account.Password,
	}

	insertedID, err := r.dbClient.InsertOne(ctx, constants.AccountsCollection, doc)
	if err != nil {
		if mongosdk.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("email '%s': %w", account.Email, constants.ErrEmailInUse)
		}
		return nil, fmt.Errorf("%s: %w", MsgFailedToInsertAccount, err)
	}

	objID, ok := insertedID.(primitive.ObjectID)
	if !ok {
		return nil, errors.New(MsgUnexpectedInsertedID)
	}

	var stored mongoAccount
	err = r.dbClient.FindOne(ctx, constants.AccountsCollection, bson.M{"_id": objID}, &stored)
	if err != nil {
		if errors.Is(err, mongosdk.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", MsgFailedToLoadAccount, constants.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("%s: %w", MsgFailedToLoadAccount, err)
	}
	if stored.ID != objID {
		return nil, fmt.Errorf("%s: %w", MsgFailedToLoadAccount, constants.ErrAccountNotFound)
	}

	return &models.AccountModel{
		ID:       stored.ID.Hex(),
		Name:     stored.Name,
		Email:    stored.Email,
		Password: stored.Password,
	}, nil
}

// EnsureIndices creates the unique index on email.
func (r *MongoAccountRepository) EnsureIndices(ctx context.Context) error {
	indexModel := mongosdk.IndexModel{
		Keys:    bson.M{constants.FieldEmail: 1},
		Options: options.Index().SetUnique(true),
	}
	return r.dbClient.EnsureSchema(ctx, constants.AccountsCollection, indexModel)
}

// Ping checks the underlying database connection.
func (r *MongoAccountRepository) Ping(ctx context.Context) error {
	return r.dbClient.Ping(ctx)
}

// Close disconnects the MongoDB client.
func (r *MongoAccountRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}
