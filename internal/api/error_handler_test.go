package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pulsecure/accounts-api/internal/core/domain"
)

func resolve(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	return resolveError(err, zerolog.Nop(), c)
}

func TestResolveError_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrCurrentPasswordRequired, http.StatusBadRequest, "current password is required to change password"},
		{domain.ErrCurrentPasswordIncorrect, http.StatusBadRequest, "current password is incorrect"},
		{domain.ErrAlreadyVerified, http.StatusBadRequest, "email is already verified"},
		{domain.ErrInvalidVerificationLink, http.StatusBadRequest, "invalid verification link"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrUserExists, http.StatusConflict, "user already exists"},
	}
	for _, tc := range cases {
		code, msg := resolve(t, tc.err)
		if code != tc.code || msg != tc.msg {
			t.Fatalf("%v resolved to (%d, %q), want (%d, %q)", tc.err, code, msg, tc.code, tc.msg)
		}
	}
}

func TestResolveError_EchoHTTPError(t *testing.T) {
	code, msg := resolve(t, echo.NewHTTPError(http.StatusUnauthorized, "invalid token"))
	if code != http.StatusUnauthorized || msg != "invalid token" {
		t.Fatalf("got (%d, %q)", code, msg)
	}
}

func TestResolveError_UnexpectedMasked(t *testing.T) {
	code, msg := resolve(t, errors.New("mongo: socket closed"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}

func TestResolveError_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("send verification email"), domain.ErrAlreadyVerified)
	code, _ := resolve(t, wrapped)
	if code != http.StatusBadRequest {
		t.Fatalf("wrapped domain error not resolved: %d", code)
	}
}
