package ports

import (
	"context"

	"github.com/pulsecure/accounts-api/internal/core/domain"
)

// UpdateProfileInput enumerates exactly the writable profile fields. Nil
// pointers mean "leave unchanged". The identifier and the verified flag are
// deliberately unrepresentable here: they cannot be mutated via this path.
type UpdateProfileInput struct {
	Email            *string
	FirstName        *string
	LastName         *string
	ProfilePicture   *string
	TwoFactorEnabled *bool

	// Write-only password pair. NewPassword requires CurrentPassword.
	CurrentPassword string
	NewPassword     string
}

// ProfileService covers the authenticated caller's own record. The user id
// always comes from the session claims, never from a path parameter.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
	Delete(ctx context.Context, userID string) error
}
