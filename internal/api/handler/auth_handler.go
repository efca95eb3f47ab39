package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medroster/roster-system/internal/api/metrics"
	"github.com/medroster/roster-system/internal/core/domain"
	"github.com/medroster/roster-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	audit       ports.AuditSink
}

func NewAuthHandler(authService ports.AuthService, audit ports.AuditSink) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit}
}

// Register creates a new user account. Admin only.
//
// @Summary      Register a new user (admin only)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  Envelope{data=registerData}
// @Failure      400   {object}  Envelope "Email already exists"
// @Failure      401   {object}  Envelope "No or invalid token"
// @Failure      403   {object}  Envelope "Not an admin"
// @Failure      406   {object}  Envelope "Validation error"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	if _, err := requireIdentity(c); err != nil {
		return err
	}

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(user.Role)).Inc()
	h.audit.Enqueue(domain.AuthEvent{
		Action:    domain.ActionUserRegistered,
		Email:     user.Email,
		SubjectID: user.ID,
		Role:      user.Role,
		RemoteIP:  c.RealIP(),
		At:        time.Now().UTC(),
	})

	return respond(c, http.StatusOK, "Registered", registerData{
		ID:    user.ID,
		Email: user.Email,
		Role:  string(user.Role),
	})
}

// Login verifies credentials and returns a signed session token.
//
// @Summary      Log in and get a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  Envelope{data=loginData}
// @Failure      401   {object}  Envelope "Invalid credentials"
// @Failure      406   {object}  Envelope "Validation error"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		// Normalize so case-variant attempts shard to the same audit
		// worker as the account's other events.
		h.audit.Enqueue(domain.AuthEvent{
			Action:   domain.ActionLoginFailed,
			Email:    normalizeEmail(req.Email),
			RemoteIP: c.RealIP(),
			At:       time.Now().UTC(),
		})
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.audit.Enqueue(domain.AuthEvent{
		Action:    domain.ActionLoginSucceeded,
		Email:     user.Email,
		SubjectID: user.ID,
		Role:      user.Role,
		RemoteIP:  c.RealIP(),
		At:        time.Now().UTC(),
	})

	return respond(c, http.StatusOK, "OK", loginData{
		Token: token,
		Role:  string(user.Role),
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
