package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/olimarket/marketplace-service/internal/delivery/http/dto"
	"github.com/olimarket/marketplace-service/internal/domain"
)

// writeError maps the domain error taxonomy onto HTTP status codes.
// Invalid transitions carry the allowed targets so clients can recover
// without guessing.
func writeError(c echo.Context, err error) error {
	var transitionErr *domain.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		allowed := make([]string, len(transitionErr.Allowed))
		for i, status := range transitionErr.Allowed {
			allowed[i] = string(status)
		}
		return c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:   transitionErr.Error(),
			Allowed: allowed,
		})
	}

	var status int
	switch {
	case domain.IsInsufficientFunds(err):
		status = http.StatusPaymentRequired
	case errors.Is(err, domain.ErrPaymentFailed):
		status = http.StatusPaymentRequired
	case errors.Is(err, domain.ErrPaymentPending):
		// The charge is in flight on the provider side; nothing was
		// committed here yet.
		status = http.StatusAccepted
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrDeliveryNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrCodeMismatch):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrJobUnavailable),
		errors.Is(err, domain.ErrStatusConflict):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}
	return c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message})
}

// actor resolves the caller from the gateway-injected identity headers.
// Authentication itself happens upstream; these headers are trusted.
func actor(c echo.Context) (int64, domain.ActorRole, error) {
	id, err := strconv.ParseInt(c.Request().Header.Get("X-User-ID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, "", errors.New("missing or invalid X-User-ID header")
	}

	role := domain.ActorRole(c.Request().Header.Get("X-User-Role"))
	switch role {
	case domain.RoleBuyer, domain.RoleSeller, domain.RoleDeliverer, domain.RoleAdmin:
		return id, role, nil
	default:
		return 0, "", errors.New("missing or invalid X-User-Role header")
	}
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + name + " path parameter")
	}
	return id, nil
}
