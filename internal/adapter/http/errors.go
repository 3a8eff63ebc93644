package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"realestate-backend/internal/domain/apperr"
	"realestate-backend/internal/infrastructure/logger"
)

// validationError carries validator output to the error handler.
type validationError struct{ fields []FieldError }

func (e *validationError) Error() string { return "validation failed" }

var errInvalidBody = echo.NewHTTPError(http.StatusBadRequest, "invalid body")

// bindValid binds the JSON body into v and validates it.
func bindValid(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return errInvalidBody
	}
	if err := c.Validate(v); err != nil {
		return &validationError{fields: ToFieldErrors(err)}
	}
	return nil
}

func invalidParam(field, msg string) error {
	return &validationError{fields: []FieldError{{Field: field, Message: msg}}}
}

// statusOf maps an error to its HTTP status and client-facing payload.
func statusOf(err error) (int, ErrorResponse) {
	var ve *validationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, ErrorResponse{Detail: "validation failed", Errors: ve.fields}
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		return he.Code, ErrorResponse{Detail: msg}
	}
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Detail: apperr.Message(err)}
	case errors.Is(err, apperr.ErrDuplicateKey):
		return http.StatusBadRequest, ErrorResponse{Detail: apperr.Message(err)}
	case errors.Is(err, apperr.ErrInvalidInput):
		return http.StatusUnprocessableEntity, ErrorResponse{Detail: apperr.Message(err)}
	}
	return http.StatusInternalServerError, ErrorResponse{Detail: "internal server error"}
}

// ErrorHandler renders every error returned by a handler as an ErrorResponse.
// Only 5xx are logged; the access log already records the rest.
func ErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code, body := statusOf(err)
		if code >= http.StatusInternalServerError {
			log.Error("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"err", err,
			)
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, body)
		}
		if err != nil {
			log.Warn("write error response", "err", err)
		}
	}
}
