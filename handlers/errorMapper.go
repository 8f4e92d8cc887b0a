package handlers

import (
	"errors"
	"net/http"

	"github.com/arthurhenrique02/doc-pay-manager/middlewares"
	"github.com/arthurhenrique02/doc-pay-manager/repositories"
	"github.com/arthurhenrique02/doc-pay-manager/services"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
)

// respondError maps typed service and engine failures to HTTP statuses.
// Anything unrecognized surfaces as a generic 500 without leaking
// internals.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var filterErr *repositories.InvalidFilterError
	var fieldErrs validation.Errors

	switch {
	case errors.As(err, &validationErr):
		middlewares.HttpError(c, validationErr.Error(), http.StatusBadRequest, err)
	case errors.As(err, &filterErr):
		middlewares.HttpError(c, filterErr.Error(), http.StatusBadRequest, err)
	case errors.As(err, &fieldErrs):
		middlewares.HttpError(c, fieldErrs.Error(), http.StatusBadRequest, err)
	case errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrScopeRequired):
		middlewares.HttpError(c, err.Error(), http.StatusBadRequest, err)
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		c.Header("WWW-Authenticate", "Bearer")
		middlewares.HttpError(c, err.Error(), http.StatusUnauthorized, err)
	case errors.Is(err, services.ErrForbidden):
		middlewares.HttpError(c, err.Error(), http.StatusForbidden, err)
	case errors.Is(err, services.ErrDoctorNotFound):
		middlewares.HttpError(c, err.Error(), http.StatusNotFound, err)
	default:
		middlewares.HttpError(c, "internal server error", http.StatusInternalServerError, err)
	}
}
