package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"driverapp/internal/devbackend/domain/account"
	"driverapp/internal/devbackend/domain/delivery"
	"driverapp/internal/pkg/errs"
)

// statusOf maps a use case error to an HTTP status and the message sent back.
// Unknown errors become 500 and keep their details out of the response.
func statusOf(err error) (int, string) {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code, fmt.Sprint(he.Message)
	case errors.Is(err, errs.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, account.ErrEmailTaken),
		errors.Is(err, delivery.ErrInvalidTransition),
		errors.Is(err, delivery.ErrAssignedToAnotherDriver):
		return http.StatusConflict, err.Error()
	case errs.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HTTPErrorHandler renders every error as the contract's Error object.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, message := statusOf(err)
	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, Error{Code: code, Message: message})
	}
	if writeErr != nil {
		c.Logger().Error(writeErr)
	}
}
