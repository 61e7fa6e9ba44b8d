package interfaces

// EmailValidator checks the syntax of an email address.
// An error means the check itself could not be performed.
type EmailValidator interface {
	IsValid(email string) (bool, error)
}
