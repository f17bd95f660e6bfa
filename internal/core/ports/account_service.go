package ports

import (
	"context"

	"github.com/pulsecure/accounts-api/internal/core/domain"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// AccountService implements registration. Sessions are minted by a separate
// identity service; this API only consumes its tokens.
type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
}
