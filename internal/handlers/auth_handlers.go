package handlers

import (
	"errors"
	"net/http"
	"time"

	"sejahtera/internal/middleware"
	"sejahtera/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandlers handles admin login, logout and the order dashboard.
type AuthHandlers struct {
	auth   services.AuthService
	orders services.OrderServiceInterface
}

func NewAuthHandlers(auth services.AuthService, orders services.OrderServiceInterface) *AuthHandlers {
	return &AuthHandlers{
		auth:   auth,
		orders: orders,
	}
}

// LoginForm handles GET /login
func (h *AuthHandlers) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", nil)
}

// Login handles POST /login. On success it sets the signed session cookie;
// on bad credentials it re-renders the login page with an error line.
func (h *AuthHandlers) Login(c echo.Context) error {
	token, err := h.auth.Login(c.FormValue("username"), c.FormValue("password"))
	if errors.Is(err, services.ErrInvalidCredentials) {
		return c.Render(http.StatusUnauthorized, "login.html", map[string]interface{}{
			"Error": "Username atau password salah",
		})
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not log in")
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(services.SessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, "/admin")
}

// Logout handles GET /logout
func (h *AuthHandlers) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, "/login")
}

// Admin handles GET /admin, listing every order most recent first.
func (h *AuthHandlers) Admin(c echo.Context) error {
	orders, err := h.orders.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load orders")
	}
	return c.Render(http.StatusOK, "admin.html", map[string]interface{}{
		"Orders": orders,
	})
}
