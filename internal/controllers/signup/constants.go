package signup

const (
	FieldName                 = "name"
	FieldEmail                = "email"
	FieldPassword             = "password"
	FieldPasswordConfirmation = "passwordConfirmation"

	// Log messages
	MsgEmailValidationFailed = "email validation failed"
	MsgAddAccountFailed      = "failed to add account"
	MsgRecoveredPanic        = "recovered from panic while handling signup"
	MsgSignupRejected        = "signup request rejected"
)
