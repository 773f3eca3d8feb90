package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

type HTTPError struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("code: %d; message: %s", e.Code, e.Message)
}

// ErrorHandler renders every unhandled error as a JSON payload. Canceled
// requests get the non-standard 499 so they are distinguishable from real
// server failures in logs.
func ErrorHandler(log Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if err == nil || c.Response().Committed {
			return
		}

		resp := &HTTPError{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		}

		var echoErr *echo.HTTPError
		switch {
		case errors.As(err, &echoErr):
			resp.Code = echoErr.Code
			resp.Message = fmt.Sprint(echoErr.Message)
		case errors.Is(err, context.Canceled) && c.Request().Context().Err() == context.Canceled:
			resp.Code = 499
			resp.Message = "request canceled"
		}

		if err := c.JSON(resp.Code, resp); err != nil {
			log.Errorw("could not write error response", "code", resp.Code, "error", err)
		}
	}
}
