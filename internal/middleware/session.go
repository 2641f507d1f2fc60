package middleware

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// SessionCookie is the cookie carrying the signed admin session token.
const SessionCookie = "session"

// AdminSession guards admin pages: it verifies the signed session cookie and
// redirects anonymous visitors to the login page instead of returning a bare
// 401.
func AdminSession(secretKey string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secretKey),
		TokenLookup: "cookie:" + SessionCookie,
		ErrorHandler: func(c echo.Context, err error) error {
			return c.Redirect(http.StatusFound, "/login")
		},
	})
}
