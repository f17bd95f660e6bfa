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
	"github.com/pulsecure/accounts-api/internal/core/ports"
)

type stubAccountService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
}

func (s *stubAccountService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func newRegisterContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/auth/register/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAccountHandler_Register(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Email != "bob@example.com" || input.FirstName != "Bob" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "u2", Email: input.Email, FirstName: input.FirstName, LastName: input.LastName}, nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newRegisterContext(t, `{"email":"bob@example.com","firstName":"Bob","lastName":"Stone","password":"s3cret-pw"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "s3cret-pw") {
		t.Fatalf("password echoed in response")
	}
}

func TestAccountHandler_Register_Validation(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})

	cases := []string{
		`{"email":"not-an-email","firstName":"B","lastName":"S","password":"longenough"}`,
		`{"email":"bob@example.com","firstName":"B","lastName":"S","password":"short"}`,
		`{"firstName":"B","lastName":"S","password":"longenough"}`,
	}
	for _, body := range cases {
		c, _ := newRegisterContext(t, body)
		err := h.Register(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %v", body, err)
		}
	}
}

func TestAccountHandler_Register_Duplicate(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	})

	c, _ := newRegisterContext(t, `{"email":"bob@example.com","firstName":"B","lastName":"S","password":"longenough"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}
