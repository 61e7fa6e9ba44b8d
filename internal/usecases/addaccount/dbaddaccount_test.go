package addaccount

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/haguru/signup/internal/interfaces/mocks"
	"github.com/haguru/signup/internal/models"
	"github.com/haguru/signup/pkg/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sutTypes struct {
	sut            *DBAddAccount
	encrypterStub  *mocks.MockEncrypter
	repositoryStub *mocks.MockAddAccountRepository
}

func makeSut(t *testing.T) sutTypes {
	encrypterStub := mocks.NewMockEncrypter(t)
	repositoryStub := mocks.NewMockAddAccountRepository(t)
	logger := zerolog.NewZerologLoggerWithWriter("test", io.Discard)

	return sutTypes{
		sut:            NewDBAddAccount(encrypterStub, repositoryStub, logger),
		encrypterStub:  encrypterStub,
		repositoryStub: repositoryStub,
	}
}

// echoAccount mirrors a repository that stores the input and assigns an id.
func echoAccount(_ context.Context, account models.AddAccountModel) (*models.AccountModel, error) {
	return models.NewAccountModel("valid_id", account), nil
}

var accountData = models.AddAccountModel{
	Name:     "valid_name",
	Email:    "valid_email",
	Password: "valid_password",
}

func TestDBAddAccount_CallsEncrypterWithPassword(t *testing.T) {
	s := makeSut(t)
	s.encrypterStub.On("Encrypt", mock.Anything, "valid_password").Return("hashed_password", nil).Once()
	s.repositoryStub.On("Add", mock.Anything, mock.Anything).Return(echoAccount).Once()

	_, err := s.sut.Add(context.Background(), accountData)
	require.NoError(t, err)
}

func TestDBAddAccount_EncrypterFails(t *testing.T) {
	s := makeSut(t)
	hashErr := errors.New("hash failure")
	s.encrypterStub.On("Encrypt", mock.Anything, "valid_password").Return("", hashErr).Once()

	got, err := s.sut.Add(context.Background(), accountData)

	assert.Nil(t, got)
	assert.Same(t, hashErr, err)
	s.repositoryStub.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestDBAddAccount_CallsRepositoryWithHashedPassword(t *testing.T) {
	s := makeSut(t)
	s.encrypterStub.On("Encrypt", mock.Anything, "valid_password").Return("hashed_password", nil).Once()
	s.repositoryStub.On("Add", mock.Anything, models.AddAccountModel{
		Name:     "valid_name",
		Email:    "valid_email",
		Password: "hashed_password",
	}).Return(echoAccount).Once()

	_, err := s.sut.Add(context.Background(), accountData)
	require.NoError(t, err)
}

func TestDBAddAccount_RepositoryFails(t *testing.T) {
	s := makeSut(t)
	repoErr := errors.New("insert failure")
	s.encrypterStub.On("Encrypt", mock.Anything, "valid_password").Return("hashed_password", nil).Once()
	s.repositoryStub.On("Add", mock.Anything, mock.Anything).Return(nil, repoErr).Once()

	got, err := s.sut.Add(context.Background(), accountData)

	assert.Nil(t, got)
	assert.Same(t, repoErr, err)
}

func TestDBAddAccount_ReturnsStoredAccount(t *testing.T) {
	s := makeSut(t)
	s.encrypterStub.On("Encrypt", mock.Anything, "valid_password").Return("hashed_password", nil).Once()
	s.repositoryStub.On("Add", mock.Anything, mock.Anything).Return(echoAccount).Once()

	got, err := s.sut.Add(context.Background(), accountData)

	require.NoError(t, err)
	assert.Equal(t, &models.AccountModel{
		ID:       "valid_id",
		Name:     "valid_name",
		Email:    "valid_email",
		Password: "hashed_password",
	}, got)
	assert.NotEqual(t, accountData.Password, got.Password)
}

func TestDBAddAccount_PassesContext(t *testing.T) {
	s := makeSut(t)
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "request")

	s.encrypterStub.On("Encrypt", ctx, "valid_password").Return("hashed_password", nil).Once()
	s.repositoryStub.On("Add", ctx, mock.Anything).Return(echoAccount).Once()

	_, err := s.sut.Add(ctx, accountData)
	require.NoError(t, err)
}
