package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/haguru/signup/internal/accountrepo/constants"
	"github.com/haguru/signup/internal/models"
)

// MemoryAccountRepository keeps accounts in process memory. It is safe for
// concurrent use and is intended for local development and tests.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]models.AccountModel
	byEmail  map[string]string
}

// NewMemoryAccountRepository creates an empty repository.
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		accounts: make(map[string]models.AccountModel),
		byEmail:  make(map[string]string),
	}
}

// Add stores the account under a new UUID. Emails are unique.
func (r *MemoryAccountRepository) Add(ctx context.Context, account models.AddAccountModel) (*models.AccountModel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[account.Email]; exists {
		return nil, fmt.Errorf("email '%s': %w", account.Email, constants.ErrEmailInUse)
	}

	stored := models.NewAccountModel(uuid.NewString(), account)
	r.accounts[stored.ID] = *stored
	r.byEmail[stored.Email] = stored.ID

	return stored, nil
}

// Len returns the number of stored accounts.
func (r *MemoryAccountRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}

// EnsureIndices is a no-op; the email index is maintained by Add.
func (r *MemoryAccountRepository) EnsureIndices(ctx context.Context) error {
	return nil
}

// Ping always succeeds.
func (r *MemoryAccountRepository) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op.
func (r *MemoryAccountRepository) Close(ctx context.Context) error {
	return nil
}
