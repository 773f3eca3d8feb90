package middleware

import "github.com/labstack/echo/v4"

// Skipper decides per-request whether a middleware should pass through.
type Skipper func(c echo.Context) bool

var DefaultSkipper Skipper = func(c echo.Context) bool {
	return false
}

type Logger interface {
	Debugw(template string, args ...interface{})
	Infow(template string, args ...interface{})
	Warnw(template string, args ...interface{})
	Errorw(template string, args ...interface{})
}
