package dto

// SignUpRequestDTO is the body of a signup request.
// Presence of each field is checked by the signup controller so that the
// first missing field can be reported by name.
type SignUpRequestDTO struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

// AccountResponseDTO is the public view of a stored account.
type AccountResponseDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ErrorResponseDTO struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type RateLimitResponse struct {
	Message string `json:"message"`
}
