package httphelper

import (
	"net/http"

	"github.com/haguru/signup/internal/httperrors"
	"github.com/haguru/signup/internal/models"
	"github.com/haguru/signup/internal/models/dto"
)

// BadRequest builds a 400 response carrying err.
func BadRequest(err error) dto.HttpResponse {
	return dto.HttpResponse{
		StatusCode: http.StatusBadRequest,
		Err:        err,
	}
}

// ServerError builds a 500 response. The cause is never part of the response.
func ServerError() dto.HttpResponse {
	return dto.HttpResponse{
		StatusCode: http.StatusInternalServerError,
		Err:        httperrors.NewServerError(),
	}
}

// OK builds a 200 response carrying the stored account.
func OK(account *models.AccountModel) dto.HttpResponse {
	return dto.HttpResponse{
		StatusCode: http.StatusOK,
		Account:    account,
	}
}
