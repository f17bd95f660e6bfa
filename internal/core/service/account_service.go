package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulsecure/accounts-api/internal/core/domain"
	"github.com/pulsecure/accounts-api/internal/core/ports"
)

// AccountService implements registration.
type AccountService struct {
	repo         ports.UserRepository
	verification ports.VerificationService
	logger       zerolog.Logger
}

func NewAccountService(repo ports.UserRepository, verification ports.VerificationService, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, verification: verification, logger: logger}
}

// Register creates an account with a hashed password and kicks off the
// verification email. A dispatch failure does not fail registration; the
// resend endpoint exists for recovery.
func (s *AccountService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.verification.Send(ctx, created.ID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", created.ID).Msg("initial verification email failed")
	}

	s.logger.Info().Str("user_id", created.ID).Msg("account registered")
	return created, nil
}
