package routes

const (
	// API route constants
	SignupRouteAPI  = "/signup"
	MetricsRouteAPI = "/metrics"
	HealthRouteAPI  = "/health"

	// Content-Type constants
	ContentType     = "Content-Type"
	ContentTypeJson = "application/json"

	// MaxRequestBodyBytes bounds the size of a signup request body.
	MaxRequestBodyBytes = 1 << 20

	// error kinds produced before the controller is reached
	MethodNotAllowedKind   = "MethodNotAllowed"
	InvalidContentTypeKind = "InvalidContentType"
	InvalidRequestBodyKind = "InvalidRequestBody"
	UnavailableKind        = "Unavailable"

	// Error messages
	ErrMethodNotAllowedFormat   = "method %s not allowed"
	ErrInvalidContentTypeFormat = "invalid content-type: %s"
	ErrInvalidRequestBody       = "invalid request body"
	ErrFailedToEncodeResponse   = "failed to encode response"
	ErrFailedToGenerateToken    = "failed to generate session token"
	ErrDatabaseUnavailable      = "database unavailable"

	// log messages
	MsgSignupHandled = "Signup request handled"
	MsgHealthy       = "ok"
)
