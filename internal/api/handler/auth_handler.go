package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/linkshrink/linkshrink/internal/api/metrics"
	"github.com/linkshrink/linkshrink/internal/api/middleware"
	"github.com/linkshrink/linkshrink/internal/core/ports"
)

// AuthHandler serves the login and registration pages and their form actions.
type AuthHandler struct {
	auth     ports.AuthService
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewAuthHandler(auth ports.AuthService, sessions ports.SessionStore, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, log: log}
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", nil)
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", nil)
}

// Login authenticates the submitted credentials and binds the user to a new
// session. Bad credentials fail identically for unknown usernames and wrong
// passwords.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	token, err := h.sessions.Create(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	middleware.SetSessionCookie(c, token)

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.Redirect(http.StatusFound, "/")
}

// Register creates a new account with a fresh session and sends the caller
// to the login page.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.auth.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	token, err := h.sessions.Create(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	middleware.SetSessionCookie(c, token)

	return c.Redirect(http.StatusFound, "/login")
}

// Logout destroys the current session unconditionally. Store failures are
// logged, never surfaced; the caller always lands on the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
			h.log.Error().Err(err).Msg("failed to destroy session")
		}
	}
	middleware.ClearSessionCookie(c)

	return c.Redirect(http.StatusFound, "/login")
}
