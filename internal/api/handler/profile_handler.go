package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsecure/accounts-api/internal/api/metrics"
	"github.com/pulsecure/accounts-api/internal/core/domain"
	"github.com/pulsecure/accounts-api/internal/core/ports"
)

// ProfileHandler handles HTTP requests for the caller's own profile.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get returns the authenticated caller's profile.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Router       /profile/ [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProfileResponse(user))
}

// Update applies a partial update to the caller's profile, optionally
// changing the password.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /profile/ [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), userID, ports.UpdateProfileInput{
		Email:            req.Email,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		ProfilePicture:   req.ProfilePicture,
		TwoFactorEnabled: req.TwoFactorEnabled,
		CurrentPassword:  req.CurrentPassword,
		NewPassword:      req.NewPassword,
	})
	if err != nil {
		metrics.ProfileUpdatesTotal.WithLabelValues("rejected").Inc()
		return err
	}

	metrics.ProfileUpdatesTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, toProfileResponse(user))
}

// Delete removes the caller's account entirely.
//
// @Summary      Delete own account
// @Tags         profile
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /profile/ [delete]
func (h *ProfileHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func toProfileResponse(u *domain.User) profileResponse {
	return profileResponse{
		ID:               u.ID,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		EmailVerified:    u.EmailVerified,
		TwoFactorEnabled: u.TwoFactorEnabled,
		ProfilePicture:   u.ProfilePicture,
	}
}
