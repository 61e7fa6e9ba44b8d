package models

// AddAccountModel carries the data needed to create an account.
// Password holds the plaintext before hashing and the hash afterwards.
type AddAccountModel struct {
	Name     string `bson:"name" mapstructure:"name" db:"name"`
	Email    string `bson:"email" mapstructure:"email" db:"email"`
	Password string `bson:"password" mapstructure:"password" db:"password"`
}

// AccountModel represents a stored account as returned by a repository.
type AccountModel struct {
	ID       string `bson:"id" mapstructure:"id" db:"id"`
	Name     string `bson:"name" mapstructure:"name" db:"name"`
	Email    string `bson:"email" mapstructure:"email" db:"email"`
	Password string `bson:"password" mapstructure:"password" db:"password"`
}

// NewAccountModel creates a new AccountModel from the id assigned by storage
// and the data that was persisted.
// Note: No validation is performed here.
func NewAccountModel(id string, data AddAccountModel) *AccountModel {
	return &AccountModel{
		ID:       id,
		Name:     data.Name,
		Email:    data.Email,
		Password: data.Password,
	}
}
