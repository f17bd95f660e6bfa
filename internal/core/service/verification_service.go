package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pulsecure/accounts-api/internal/core/domain"
	"github.com/pulsecure/accounts-api/internal/core/ports"
	"github.com/pulsecure/accounts-api/internal/pkg/token"
)

// VerificationService issues verification emails and confirms the links they
// carry.
type VerificationService struct {
	repo     ports.UserRepository
	signer   *token.Signer
	mailer   ports.Mailer
	registry ports.TokenRegistry
	baseURL  string
	logger   zerolog.Logger
}

func NewVerificationService(
	repo ports.UserRepository,
	signer *token.Signer,
	mailer ports.Mailer,
	registry ports.TokenRegistry,
	baseURL string,
	logger zerolog.Logger,
) *VerificationService {
	return &VerificationService{
		repo:     repo,
		signer:   signer,
		mailer:   mailer,
		registry: registry,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
	}
}

// Send issues a token bound to the user's current verification state and
// hands the link to the mail collaborator. Transport failures propagate to
// the caller; nothing is retried here.
func (s *VerificationService) Send(ctx context.Context, userID string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return domain.ErrAlreadyVerified
	}

	tok := s.signer.Issue(user)
	link := s.verificationLink(token.EncodeUID(user.ID), tok)

	if err := s.mailer.SendVerification(ctx, user.Email, link); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("verification email dispatch failed")
		return fmt.Errorf("send verification email: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("verification email sent")
	return nil
}

// Confirm validates the encoded identifier and token from a verification
// link and flips the verified flag. All failure modes collapse into
// domain.ErrInvalidVerificationLink so callers cannot probe for account
// existence.
func (s *VerificationService) Confirm(ctx context.Context, encodedID, tok string) error {
	uid, err := token.DecodeUID(encodedID)
	if err != nil {
		return s.invalid("undecodable identifier")
	}

	user, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return s.invalid("unknown user")
		}
		return err
	}

	if !s.signer.Verify(user, tok) {
		return s.invalid("token rejected")
	}

	// Single-use guard: the state hash alone leaves a replay window until
	// the flag flips, so consume the token first.
	fresh, err := s.registry.Consume(ctx, uid, tok)
	if err != nil {
		return err
	}
	if !fresh {
		return s.invalid("token replayed")
	}

	if err := s.repo.MarkEmailVerified(ctx, user.ID); err != nil {
		if errors.Is(err, domain.ErrAlreadyVerified) {
			return s.invalid("already verified")
		}
		return err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("email verified")
	return nil
}

func (s *VerificationService) invalid(reason string) error {
	s.logger.Debug().Str("reason", reason).Msg("verification link rejected")
	return domain.ErrInvalidVerificationLink
}

func (s *VerificationService) verificationLink(uid, tok string) string {
	return fmt.Sprintf("%s/verify-email/%s/%s/", s.baseURL, uid, tok)
}
