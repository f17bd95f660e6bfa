package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func runAuth(t *testing.T, header string) (*httptest.ResponseRecorder, error, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUserID string
	next := func(c echo.Context) error {
		gotUserID, _ = c.Get("user_id").(string)
		return c.NoContent(http.StatusOK)
	}

	err := Auth(testSecret)(next)(c)
	return rec, err, gotUserID
}

func TestAuth_ValidToken(t *testing.T) {
	tok := signToken(t, testSecret, jwt.MapClaims{
		"sub": "64f1c0ffee",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err, userID := runAuth(t, "Bearer "+tok)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if userID != "64f1c0ffee" {
		t.Fatalf("user id not injected: %q", userID)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err, _ := runAuth(t, "")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	_, err, _ := runAuth(t, "Token abc")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	tok := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "64f1c0ffee",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err, _ := runAuth(t, "Bearer "+tok)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	tok := signToken(t, testSecret, jwt.MapClaims{
		"sub": "64f1c0ffee",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err, _ := runAuth(t, "Bearer "+tok)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MissingSubject(t *testing.T) {
	tok := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err, _ := runAuth(t, "Bearer "+tok)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
