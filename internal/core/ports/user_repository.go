package ports

import (
	"context"

	"github.com/pulsecure/accounts-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update persists the complete record in a single write.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)

	// MarkEmailVerified flips the verified flag false→true. It must be a
	// conditional write: if the flag is already true the call reports
	// domain.ErrAlreadyVerified so concurrent confirmations lose cleanly.
	MarkEmailVerified(ctx context.Context, id string) error

	Delete(ctx context.Context, id string) error
}
