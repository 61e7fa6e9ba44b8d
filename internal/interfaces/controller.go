package interfaces

import (
	"context"

	"github.com/haguru/signup/internal/models/dto"
)

// Controller translates a request into a use case call and a response.
// Handle never returns an error; every failure is encoded in the response.
type Controller interface {
	Handle(ctx context.Context, request dto.HttpRequest) dto.HttpResponse
}
