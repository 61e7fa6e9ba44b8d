package httphelper

import (
	"net/http"
	"testing"

	"github.com/haguru/signup/internal/httperrors"
	"github.com/haguru/signup/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBadRequest(t *testing.T) {
	got := BadRequest(httperrors.NewMissingParamError("email"))

	assert.Equal(t, http.StatusBadRequest, got.StatusCode)
	assert.Equal(t, httperrors.NewMissingParamError("email"), got.Err)
	assert.Nil(t, got.Account)
}

func TestServerError(t *testing.T) {
	got := ServerError()

	assert.Equal(t, http.StatusInternalServerError, got.StatusCode)
	assert.Equal(t, httperrors.NewServerError(), got.Err)
	assert.Nil(t, got.Account)
}

func TestOK(t *testing.T) {
	account := &models.AccountModel{ID: "valid_id", Name: "valid_name"}
	got := OK(account)

	assert.Equal(t, http.StatusOK, got.StatusCode)
	assert.Same(t, account, got.Account)
	assert.Nil(t, got.Err)
}
