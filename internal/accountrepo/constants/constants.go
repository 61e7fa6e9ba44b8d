package constants

import "errors"

const (
	AccountsCollection = "accounts"

	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"

	// AccountsTableSchema creates the PostgreSQL accounts table.
	AccountsTableSchema = `CREATE TABLE IF NOT EXISTS accounts (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL
)`
)

var (
	ErrEmailInUse      = errors.New("email already in use")
	ErrAccountNotFound = errors.New("account not found")
)
