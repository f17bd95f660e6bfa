package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulsecure/accounts-api/internal/core/domain"
	"github.com/pulsecure/accounts-api/internal/core/ports"
	"github.com/pulsecure/accounts-api/internal/pkg/token"
)

func newAccountFixture(t *testing.T) (*AccountService, *stubUserRepo, *stubMailer) {
	t.Helper()
	repo := newStubUserRepo()
	mailer := &stubMailer{}
	verification := NewVerificationService(
		repo, token.NewSigner("secret", time.Hour), mailer, newStubRegistry(),
		"https://app.example.com", zerolog.Nop(),
	)
	return NewAccountService(repo, verification, zerolog.Nop()), repo, mailer
}

func TestAccountService_Register(t *testing.T) {
	svc, repo, mailer := newAccountFixture(t)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:     "bob@example.com",
		FirstName: "Bob",
		LastName:  "Stone",
		Password:  "s3cret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.PasswordHash == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.EmailVerified {
		t.Fatalf("new account must start unverified")
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected verification email on registration, got %d", len(mailer.sent))
	}
	if _, err := repo.FindByEmail(context.Background(), "bob@example.com"); err != nil {
		t.Fatalf("account not persisted: %v", err)
	}
}

func TestAccountService_Register_Validation(t *testing.T) {
	svc, _, _ := newAccountFixture(t)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Password: "x"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@b.c"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAccountService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newAccountFixture(t)

	in := ports.RegisterInput{Email: "bob@example.com", Password: "pw"}
	_, _ = svc.Register(context.Background(), in)
	if _, err := svc.Register(context.Background(), in); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAccountService_Register_MailFailureNotFatal(t *testing.T) {
	svc, repo, mailer := newAccountFixture(t)
	mailer.err = errors.New("smtp down")

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "carol@example.com",
		Password: "pw",
	})
	if err != nil {
		t.Fatalf("register failed on mail outage: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), user.ID); err != nil {
		t.Fatalf("account missing after mail outage: %v", err)
	}
}
