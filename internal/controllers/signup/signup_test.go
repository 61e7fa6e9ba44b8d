package signup

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/haguru/signup/internal/httperrors"
	"github.com/haguru/signup/internal/interfaces/mocks"
	"github.com/haguru/signup/internal/models"
	"github.com/haguru/signup/internal/models/dto"
	"github.com/haguru/signup/internal/usecases/addaccount"
	"github.com/haguru/signup/pkg/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type sutTypes struct {
	sut                *Controller
	emailValidatorStub *mocks.MockEmailValidator
	addAccountStub     *mocks.MockAddAccount
}

func makeSut(t *testing.T) sutTypes {
	emailValidatorStub := mocks.NewMockEmailValidator(t)
	addAccountStub := mocks.NewMockAddAccount(t)
	logger := zerolog.NewZerologLoggerWithWriter("test", io.Discard)

	return sutTypes{
		sut:                NewController(emailValidatorStub, addAccountStub, logger),
		emailValidatorStub: emailValidatorStub,
		addAccountStub:     addAccountStub,
	}
}

func validRequest() dto.HttpRequest {
	return dto.HttpRequest{
		Body: dto.SignUpRequestDTO{
			Name:                 "any_name",
			Email:                "any_email@email.com",
			Password:             "any_password",
			PasswordConfirmation: "any_password",
		},
	}
}

func fakeAccount() *models.AccountModel {
	return &models.AccountModel{
		ID:       "valid_id",
		Name:     "valid_name",
		Email:    "valid_email@email.com",
		Password: "valid_password",
	}
}

func TestController_MissingParams(t *testing.T) {
	tests := []struct {
		name      string
		body      dto.SignUpRequestDTO
		wantParam string
	}{
		{
			name: "no name",
			body: dto.SignUpRequestDTO{
				Email:                "any_email@email.com",
				Password:             "any_password",
				PasswordConfirmation: "any_password",
			},
			wantParam: "name",
		},
		{
			name: "no email",
			body: dto.SignUpRequestDTO{
				Name:                 "any_name",
				Password:             "any_password",
				PasswordConfirmation: "any_password",
			},
			wantParam: "email",
		},
		{
			name: "no password",
			body: dto.SignUpRequestDTO{
				Name:                 "any_name",
				Email:                "any_email@email.com",
				PasswordConfirmation: "any_password",
			},
			wantParam: "password",
		},
		{
			name: "no password confirmation",
			body: dto.SignUpRequestDTO{
				Name:     "any_name",
				Email:    "any_email@email.com",
				Password: "any_password",
			},
			wantParam: "passwordConfirmation",
		},
		{
			name:      "empty body reports name first",
			body:      dto.SignUpRequestDTO{},
			wantParam: "name",
		},
		{
			name: "email checked before password",
			body: dto.SignUpRequestDTO{
				Name: "any_name",
			},
			wantParam: "email",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := makeSut(t)

			got := s.sut.Handle(context.Background(), dto.HttpRequest{Body: tt.body})

			assert.Equal(t, http.StatusBadRequest, got.StatusCode)
			assert.Equal(t, httperrors.NewMissingParamError(tt.wantParam), got.Err)
			assert.Nil(t, got.Account)
			s.emailValidatorStub.AssertNotCalled(t, "IsValid", mock.Anything)
			s.addAccountStub.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		})
	}
}

func TestController_PasswordConfirmationMismatch(t *testing.T) {
	s := makeSut(t)
	req := validRequest()
	req.Body.PasswordConfirmation = "invalid_password"

	got := s.sut.Handle(context.Background(), req)

	assert.Equal(t, http.StatusBadRequest, got.StatusCode)
	assert.Equal(t, httperrors.NewInvalidParamError("passwordConfirmation"), got.Err)
	s.emailValidatorStub.AssertNotCalled(t, "IsValid", mock.Anything)
}

func TestController_InvalidEmail(t *testing.T) {
	s := makeSut(t)
	req := validRequest()
	req.Body.Email = "invalid_email@email.com"
	s.emailValidatorStub.On("IsValid", "invalid_email@email.com").Return(false, nil).Once()

	got := s.sut.Handle(context.Background(), req)

	assert.Equal(t, http.StatusBadRequest, got.StatusCode)
	assert.Equal(t, httperrors.NewInvalidParamError("email"), got.Err)
	s.addAccountStub.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestController_CallsEmailValidatorWithEmail(t *testing.T) {
	s := makeSut(t)
	s.emailValidatorStub.On("IsValid", "any_email@email.com").Return(true, nil).Once()
	s.addAccountStub.On("Add", mock.Anything, mock.Anything).Return(fakeAccount(), nil).Once()

	s.sut.Handle(context.Background(), validRequest())

	s.emailValidatorStub.AssertCalled(t, "IsValid", "any_email@email.com")
}

func TestController_EmailValidatorFails(t *testing.T) {
	s := makeSut(t)
	s.emailValidatorStub.On("IsValid", mock.Anything).Return(false, errors.New("validator failure")).Once()

	got := s.sut.Handle(context.Background(), validRequest())

	assert.Equal(t, http.StatusInternalServerError, got.StatusCode)
	assert.Equal(t, httperrors.NewServerError(), got.Err)
	s.addAccountStub.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestController_EmailValidatorPanics(t *testing.T) {
	s := makeSut(t)
	s.emailValidatorStub.On("IsValid", mock.Anything).Run(func(mock.Arguments) {
		panic("validator exploded")
	}).Return(true, nil).Once()

	got := s.sut.Handle(context.Background(), validRequest())

	assert.Equal(t, http.StatusInternalServerError, got.StatusCode)
	assert.Equal(t, httperrors.NewServerError(), got.Err)
	assert.Nil(t, got.Account)
}

func TestController_CallsAddAccountWithValues(t *testing.T) {
	s := makeSut(t)
	s.emailValidatorStub.On("IsValid", mock.Anything).Return(true, nil).Once()
	s.addAccountStub.On("Add", mock.Anything, models.AddAccountModel{
		Name:     "any_name",
		Email:    "any_email@email.com",
		Password: "any_password",
	}).Return(fakeAccount(), nil).Once()

	got := s.sut.Handle(context.Background(), validRequest())

	assert.Equal(t, http.StatusOK, got.StatusCode)
}

func TestController_AddAccountFails(t *testing.T) {
	s := makeSut(t)
	s.emailValidatorStub.On("IsValid", mock.Anything).Return(true, nil).Once()
	s.addAccountStub.On("Add", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	got := s.sut.Handle(context.Background(), validRequest())

	assert.Equal(t, http.StatusInternalServerError, got.StatusCode)
	assert.Equal(t, httperrors.NewServerError(), got.Err)
	assert.NotContains(t, got.Err.Error(), "db down")
}

func TestController_AddAccountReturnsNothing(t *testing.T) {
	s := makeSut(t)
	s.emailValidatorStub.On("IsValid", mock.Anything).Return(true, nil).Once()
	s.addAccountStub.On("Add", mock.Anything, mock.Anything).Return(nil, nil).Once()

	got := s.sut.Handle(context.Background(), validRequest())

	assert.Equal(t, http.StatusInternalServerError, got.StatusCode)
}

func TestController_Success(t *testing.T) {
	s := makeSut(t)
	s.emailValidatorStub.On("IsValid", mock.Anything).Return(true, nil).Once()
	s.addAccountStub.On("Add", mock.Anything, mock.Anything).Return(fakeAccount(), nil).Once()

	got := s.sut.Handle(context.Background(), validRequest())

	assert.Equal(t, http.StatusOK, got.StatusCode)
	assert.Nil(t, got.Err)
	assert.Equal(t, fakeAccount(), got.Account)
}

func TestController_SignupFlow(t *testing.T) {
	logger := zerolog.NewZerologLoggerWithWriter("test", io.Discard)
	emailValidatorStub := mocks.NewMockEmailValidator(t)
	encrypterStub := mocks.NewMockEncrypter(t)
	repositoryStub := mocks.NewMockAddAccountRepository(t)

	emailValidatorStub.On("IsValid", "valid_email@email.com").Return(true, nil).Once()
	encrypterStub.On("Encrypt", mock.Anything, "valid_password").Return("hashed_password", nil).Once()
	repositoryStub.On("Add", mock.Anything, models.AddAccountModel{
		Name:     "valid_name",
		Email:    "valid_email@email.com",
		Password: "hashed_password",
	}).Return(func(_ context.Context, account models.AddAccountModel) (*models.AccountModel, error) {
		return models.NewAccountModel("valid_id", account), nil
	}).Once()

	sut := NewController(emailValidatorStub, addaccount.NewDBAddAccount(encrypterStub, repositoryStub, logger), logger)

	got := sut.Handle(context.Background(), dto.HttpRequest{
		Body: dto.SignUpRequestDTO{
			Name:                 "valid_name",
			Email:                "valid_email@email.com",
			Password:             "valid_password",
			PasswordConfirmation: "valid_password",
		},
	})

	assert.Equal(t, http.StatusOK, got.StatusCode)
	assert.Equal(t, &models.AccountModel{
		ID:       "valid_id",
		Name:     "valid_name",
		Email:    "valid_email@email.com",
		Password: "hashed_password",
	}, got.Account)
}
