package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// DocsBasicAuth gates the generated API documentation behind a fixed
// username/password pair from configuration, transmitted via HTTP Basic
// framing. It has no role model and no session concept; it only keeps the
// docs off the open internet.
func DocsBasicAuth(username, password string) echo.MiddlewareFunc {
	return echomiddleware.BasicAuth(func(u, p string, _ echo.Context) (bool, error) {
		userOK := subtle.ConstantTimeCompare([]byte(u), []byte(username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(p), []byte(password)) == 1
		return userOK && passOK, nil
	})
}
