package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsecure/accounts-api/internal/api/metrics"
	"github.com/pulsecure/accounts-api/internal/core/domain"
	"github.com/pulsecure/accounts-api/internal/core/ports"
)

// VerificationHandler handles the email-verification workflow.
type VerificationHandler struct {
	service ports.VerificationService
}

func NewVerificationHandler(service ports.VerificationService) *VerificationHandler {
	return &VerificationHandler{service: service}
}

// Resend dispatches a fresh verification email to the authenticated caller.
//
// @Summary      Resend verification email
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/resend-verification/ [post]
func (h *VerificationHandler) Resend(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Send(c.Request().Context(), userID); err != nil {
		if errors.Is(err, domain.ErrAlreadyVerified) {
			metrics.VerificationsRejectedTotal.WithLabelValues("already_verified").Inc()
		}
		return err
	}

	metrics.VerificationEmailsSentTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Verification email sent successfully"})
}

// Confirm validates a verification link. The route is unauthenticated: the
// link is opened from a mail client, not an app session.
//
// @Summary      Confirm email verification
// @Tags         auth
// @Produce      json
// @Param        uid    path      string  true  "Encoded user identifier"
// @Param        token  path      string  true  "Verification token"
// @Success      200    {object}  messageResponse
// @Failure      400    {object}  map[string]string
// @Router       /auth/verify-email/{uid}/{token}/ [get]
func (h *VerificationHandler) Confirm(c echo.Context) error {
	if err := h.service.Confirm(c.Request().Context(), c.Param("uid"), c.Param("token")); err != nil {
		if errors.Is(err, domain.ErrInvalidVerificationLink) {
			metrics.VerificationsRejectedTotal.WithLabelValues("invalid_link").Inc()
		}
		return err
	}

	metrics.VerificationsConfirmedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Email verified successfully"})
}
