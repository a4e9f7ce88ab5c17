package apperror

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler returns the Echo error handler used by the HTTP front
// end. It renders app errors and plain echo errors in one envelope shape.
func HTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		errorObj := map[string]any{
			"code":    "internal_error",
			"message": "An internal error occurred",
		}

		var appErr *Error
		var he *echo.HTTPError
		if errors.As(err, &appErr) {
			code = appErr.HTTPStatus
			errorObj["code"] = appErr.Code
			errorObj["message"] = appErr.Message
			if len(appErr.Details) > 0 {
				errorObj["details"] = appErr.Details
			}
		} else if errors.As(err, &he) {
			code = he.Code
			if msg, ok := he.Message.(string); ok {
				errorObj["message"] = msg
				switch code {
				case http.StatusUnauthorized:
					errorObj["code"] = "unauthorized"
				case http.StatusNotFound:
					errorObj["code"] = "not_found"
				case http.StatusBadRequest:
					errorObj["code"] = "bad_request"
				case http.StatusMethodNotAllowed:
					errorObj["code"] = "method_not_allowed"
				}
			}
		}

		if code >= 500 {
			log.Error("request error",
				slog.Int("status", code),
				slog.String("error", err.Error()),
			)
		}

		response := map[string]any{
			"error": errorObj,
		}

		if c.Request().Method == http.MethodHead {
			c.NoContent(code)
		} else {
			c.JSON(code, response)
		}
	}
}
