package interfaces

import "context"

// Encrypter turns a plaintext value into a one-way hash.
type Encrypter interface {
	Encrypt(ctx context.Context, value string) (string, error)
}
