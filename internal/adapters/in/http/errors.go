package http

import (
	"errors"
	"net/http"

	"cargopay/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps the application error taxonomy onto HTTP status
// codes: validation failures are 400, unknown objects 404, state
// conflicts (consumed codes, locked identities, incomplete records) 409,
// anything else 500.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrRecordIncomplete):
		status = http.StatusConflict
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

// badRequest is the response for bodies that do not even bind.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
