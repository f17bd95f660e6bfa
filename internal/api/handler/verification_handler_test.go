package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pulsecure/accounts-api/internal/core/domain"
)

type stubVerificationService struct {
	sendFn    func(ctx context.Context, userID string) error
	confirmFn func(ctx context.Context, encodedID, token string) error
}

func (s *stubVerificationService) Send(ctx context.Context, userID string) error {
	return s.sendFn(ctx, userID)
}

func (s *stubVerificationService) Confirm(ctx context.Context, encodedID, token string) error {
	return s.confirmFn(ctx, encodedID, token)
}

func TestVerificationHandler_Resend(t *testing.T) {
	sent := ""
	stub := &stubVerificationService{
		sendFn: func(ctx context.Context, userID string) error {
			sent = userID
			return nil
		},
	}
	h := NewVerificationHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/resend-verification/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")

	if err := h.Resend(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if sent != "u1" {
		t.Fatalf("unexpected user id: %q", sent)
	}
	if !strings.Contains(rec.Body.String(), "sent") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestVerificationHandler_Resend_AlreadyVerified(t *testing.T) {
	stub := &stubVerificationService{
		sendFn: func(ctx context.Context, userID string) error {
			return domain.ErrAlreadyVerified
		},
	}
	h := NewVerificationHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/resend-verification/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")

	if err := h.Resend(c); !errors.Is(err, domain.ErrAlreadyVerified) {
		t.Fatalf("expected ErrAlreadyVerified to propagate, got %v", err)
	}
}

func TestVerificationHandler_Resend_Unauthenticated(t *testing.T) {
	h := NewVerificationHandler(&stubVerificationService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/resend-verification/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Resend(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestVerificationHandler_Confirm(t *testing.T) {
	var gotUID, gotToken string
	stub := &stubVerificationService{
		confirmFn: func(ctx context.Context, encodedID, token string) error {
			gotUID, gotToken = encodedID, token
			return nil
		},
	}
	h := NewVerificationHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/auth/verify-email/:uid/:token/")
	c.SetParamNames("uid", "token")
	c.SetParamValues("dWlk", "abc123-deadbeef")

	if err := h.Confirm(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUID != "dWlk" || gotToken != "abc123-deadbeef" {
		t.Fatalf("params not forwarded: %q %q", gotUID, gotToken)
	}
	if !strings.Contains(rec.Body.String(), "verified") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestVerificationHandler_Confirm_InvalidLink(t *testing.T) {
	stub := &stubVerificationService{
		confirmFn: func(ctx context.Context, encodedID, token string) error {
			return domain.ErrInvalidVerificationLink
		},
	}
	h := NewVerificationHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("uid", "token")
	c.SetParamValues("%%%", "garbage")

	if err := h.Confirm(c); !errors.Is(err, domain.ErrInvalidVerificationLink) {
		t.Fatalf("expected ErrInvalidVerificationLink to propagate, got %v", err)
	}
}
