package dto

import "github.com/haguru/signup/internal/models"

// HttpRequest is the transport-independent request handed to a controller.
type HttpRequest struct {
	Body SignUpRequestDTO
}

// HttpResponse is the transport-independent result of a controller.
// Exactly one of Err or Account is set.
type HttpResponse struct {
	StatusCode int
	Err        error
	Account    *models.AccountModel
}
