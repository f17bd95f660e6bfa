package ports

import "context"

// VerificationService drives the email-verification workflow.
type VerificationService interface {
	// Send issues a fresh token and dispatches the verification email.
	// Returns domain.ErrAlreadyVerified without dispatching when the user's
	// email is already verified; mail transport failures propagate.
	Send(ctx context.Context, userID string) error

	// Confirm validates an encoded identifier and token presented from a
	// verification link and flips the verified flag. Every failure mode
	// (bad encoding, unknown user, bad or expired token, replay) surfaces
	// as domain.ErrInvalidVerificationLink.
	Confirm(ctx context.Context, encodedID, token string) error
}

// Mailer is the outbound mail collaborator. Implementations must not
// swallow transport errors.
type Mailer interface {
	SendVerification(ctx context.Context, recipient, link string) error
}

// TokenRegistry records consumed verification tokens so a token cannot be
// replayed in the window before the state mutation lands. Consume returns
// false when the token was already consumed.
type TokenRegistry interface {
	Consume(ctx context.Context, uid, token string) (bool, error)
}
