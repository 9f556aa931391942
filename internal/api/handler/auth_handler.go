package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinivet/gateway/internal/api/middleware"
	"github.com/clinivet/gateway/internal/core/domain"
	"github.com/clinivet/gateway/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User       *domain.User `json:"user"`
	RedirectTo string       `json:"redirectTo"`
}

type loginScreenResponse struct {
	Authenticated bool `json:"authenticated"`
}

// LoginScreen serves GET /auth/login. The gate has already bounced active
// sessions to their home route, so whoever reaches this is anonymous.
func (h *AuthHandler) LoginScreen(c echo.Context) error {
	return c.JSON(http.StatusOK, loginScreenResponse{Authenticated: false})
}

// Login authenticates against the clinic backend and establishes the
// gateway session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        redirect  query     string        false  "Path remembered from a denied navigation"
// @Param        body      body      loginRequest  true   "Login credentials"
// @Success      200       {object}  loginResponse
// @Failure      400       {object}  map[string]string
// @Failure      422       {object}  map[string]string
// @Failure      502       {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, c.QueryParam("redirect"))
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    res.Cookie,
		Path:     "/",
		Expires:  res.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, loginResponse{User: res.User, RedirectTo: res.RedirectTo})
}

// Logout clears the stored session and expires the cookie. Token and user
// go together; there is no partial logout.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if sid := middleware.CurrentSessionID(c); sid != "" {
		if err := h.authService.Logout(c.Request().Context(), sid); err != nil {
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.NoContent(http.StatusNoContent)
}
