package signup

import (
	"context"

	"github.com/haguru/signup/internal/httperrors"
	"github.com/haguru/signup/internal/httphelper"
	"github.com/haguru/signup/internal/interfaces"
	"github.com/haguru/signup/internal/models"
	"github.com/haguru/signup/internal/models/dto"
	"github.com/haguru/signup/pkg/helper"
)

// Controller handles signup requests.
type Controller struct {
	emailValidator interfaces.EmailValidator
	addAccount     interfaces.AddAccount
	logger         interfaces.Logger
}

// NewController creates a new signup Controller.
func NewController(emailValidator interfaces.EmailValidator, addAccount interfaces.AddAccount, logger interfaces.Logger) *Controller {
	return &Controller{
		emailValidator: emailValidator,
		addAccount:     addAccount,
		logger:         logger,
	}
}

// Handle validates the request and creates the account.
//
// Validation stops at the first failure: required fields are checked in the
// order name, email, password, passwordConfirmation, then the confirmation
// must match the password, then the email must be valid. Any failure of a
// collaborator, including a panic, becomes a 500 response.
func (c *Controller) Handle(ctx context.Context, request dto.HttpRequest) (response dto.HttpResponse) {
	funcName := helper.GetFuncName()

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error(MsgRecoveredPanic, "func", funcName, "panic", r)
			response = httphelper.ServerError()
		}
	}()

	body := request.Body
	if field, ok := firstMissingField(body); !ok {
		c.logger.Debug(MsgSignupRejected, "func", funcName, "missing", field)
		return httphelper.BadRequest(httperrors.NewMissingParamError(field))
	}

	if body.Password != body.PasswordConfirmation {
		c.logger.Debug(MsgSignupRejected, "func", funcName, "invalid", FieldPasswordConfirmation)
		return httphelper.BadRequest(httperrors.NewInvalidParamError(FieldPasswordConfirmation))
	}

	isValid, err := c.emailValidator.IsValid(body.Email)
	if err != nil {
		c.logger.Error(MsgEmailValidationFailed, "func", funcName, "error", err)
		return httphelper.ServerError()
	}
	if !isValid {
		c.logger.Debug(MsgSignupRejected, "func", funcName, "invalid", FieldEmail)
		return httphelper.BadRequest(httperrors.NewInvalidParamError(FieldEmail))
	}

	account, err := c.addAccount.Add(ctx, models.AddAccountModel{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		c.logger.Error(MsgAddAccountFailed, "func", funcName, "error", err)
		return httphelper.ServerError()
	}
	if account == nil {
		c.logger.Error(MsgAddAccountFailed, "func", funcName, "error", "no account returned")
		return httphelper.ServerError()
	}

	return httphelper.OK(account)
}

// firstMissingField returns the first empty required field in check order.
func firstMissingField(body dto.SignUpRequestDTO) (string, bool) {
	required := []struct {
		name  string
		value string
	}{
		{FieldName, body.Name},
		{FieldEmail, body.Email},
		{FieldPassword, body.Password},
		{FieldPasswordConfirmation, body.PasswordConfirmation},
	}
	for _, field := range required {
		if field.value == "" {
			return field.name, false
		}
	}
	return "", true
}
