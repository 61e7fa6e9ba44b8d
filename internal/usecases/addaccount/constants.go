package addaccount

const (
	// Log messages for account creation
	MsgFailedToHashPassword = "failed to hash password" // #nosec G101
	MsgFailedToAddAccount   = "failed to add account"
	MsgAccountAdded         = "account added successfully"
)
