package httperrors

const (
	MissingParamErrorKind = "MissingParamError"
	InvalidParamErrorKind = "InvalidParamError"
	ServerErrorKind       = "ServerError"

	msgMissingParam = "missing parameter: "
	msgInvalidParam = "invalid parameter: "
	msgServerError  = "internal server error"
)

// MissingParamError reports a required request field that was absent or empty.
type MissingParamError struct {
	Param string
}

func NewMissingParamError(param string) *MissingParamError {
	return &MissingParamError{Param: param}
}

func (e *MissingParamError) Error() string { return msgMissingParam + e.Param }

func (e *MissingParamError) Kind() string { return MissingParamErrorKind }

// InvalidParamError reports a request field whose value was rejected.
type InvalidParamError struct {
	Param string
}

func NewInvalidParamError(param string) *InvalidParamError {
	return &InvalidParamError{Param: param}
}

func (e *InvalidParamError) Error() string { return msgInvalidParam + e.Param }

func (e *InvalidParamError) Kind() string { return InvalidParamErrorKind }

// ServerError is the opaque error returned for every unexpected failure.
// It carries no detail about the cause.
type ServerError struct{}

func NewServerError() *ServerError {
	return &ServerError{}
}

func (e *ServerError) Error() string { return msgServerError }

func (e *ServerError) Kind() string { return ServerErrorKind }

// Kind returns the kind name of err, or the server error kind when err is
// not one of this package's errors.
func Kind(err error) string {
	if k, ok := err.(interface{ Kind() string }); ok {
		return k.Kind()
	}
	return ServerErrorKind
}
