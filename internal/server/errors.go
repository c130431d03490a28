package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/UnknownOlympus/mnemosyne/internal/dateparse"
	"github.com/UnknownOlympus/mnemosyne/internal/lib/logger/sl"
	"github.com/UnknownOlympus/mnemosyne/internal/repository"
)

var (
	errInvalidBody = errors.New("invalid request body")
	errEmptyBody   = errors.New("request body is required")
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// httpError maps an error returned by a handler to a status code and response body.
func httpError(err error) (int, ErrorResponse) {
	var (
		status         int
		msg            string
		validationErrs validator.ValidationErrors
		httpErr        *echo.HTTPError
	)

	switch {
	case errors.Is(err, repository.ErrEmployeeNotFound):
		status = http.StatusNotFound
		msg = "Employee not found"
	case errors.Is(err, dateparse.ErrUnrecognizedDate),
		errors.Is(err, errInvalidBody),
		errors.Is(err, errEmptyBody):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.As(err, &validationErrs):
		status = http.StatusBadRequest
		first := validationErrs[0]
		msg = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", first.Field(), first.Tag())
	case errors.As(err, &httpErr):
		status = httpErr.Code
		msg = fmt.Sprint(httpErr.Message)
	default:
		status = http.StatusInternalServerError
		msg = "Internal server error"
	}

	return status, ErrorResponse{
		Error: ErrorDetail{Code: errorCode(status), Message: msg},
	}
}

func errorCode(status int) string {
	switch {
	case status == http.StatusNotFound:
		return "not_found"
	case status == http.StatusMethodNotAllowed:
		return "method_not_allowed"
	case status >= http.StatusInternalServerError:
		return "internal_error"
	default:
		return "bad_request"
	}
}

// errorHandler renders handler errors as ErrorResponse. Server faults are logged at error level.
func errorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := httpError(err)
		body.Error.RequestID = c.Response().Header().Get(echo.HeaderXRequestID)

		if status >= http.StatusInternalServerError {
			log.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"route", c.Path(),
				"request_id", body.Error.RequestID,
				sl.Err(err),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			log.ErrorContext(c.Request().Context(), "failed to write error response", sl.Err(writeErr))
		}
	}
}
