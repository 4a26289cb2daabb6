package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/olimarket/marketplace-service/internal/delivery/http/dto"
	"github.com/olimarket/marketplace-service/internal/domain"
	deliveryusecase "github.com/olimarket/marketplace-service/internal/usecase/delivery"
)

type DeliveryHandler struct {
	deliveries deliveryusecase.DeliveryUsecase
}

func NewDeliveryHandler(deliveries deliveryusecase.DeliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{deliveries: deliveries}
}

// Available handles GET /deliveries/available.
func (h *DeliveryHandler) Available(c echo.Context) error {
	_, role, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if role != domain.RoleDeliverer {
		return writeError(c, domain.ErrUnauthorized)
	}

	jobs, err := h.deliveries.ListAvailable(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewAvailableDeliveryResponses(jobs))
}

// Accept handles POST /deliveries/:id/accept.
func (h *DeliveryHandler) Accept(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if role != domain.RoleDeliverer {
		return writeError(c, domain.ErrUnauthorized)
	}
	deliveryID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	delivery, err := h.deliveries.Accept(c.Request().Context(), deliveryID, actorID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewDeliveryResponse(delivery))
}

// UpdateStatus handles PATCH /deliveries/:id/status.
func (h *DeliveryHandler) UpdateStatus(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if role != domain.RoleDeliverer {
		return writeError(c, domain.ErrUnauthorized)
	}
	deliveryID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.DeliveryStatusRequest
	if err := c.Bind(&req); err != nil || req.Status == "" {
		return badRequest(c, "delivery status is required")
	}

	delivery, err := h.deliveries.UpdateStatus(c.Request().Context(), deliveryID, actorID,
		domain.DeliveryStatus(req.Status), req.Lat, req.Lng)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewDeliveryResponse(delivery))
}

// Mine handles GET /deliveries/mine.
func (h *DeliveryHandler) Mine(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if role != domain.RoleDeliverer {
		return writeError(c, domain.ErrUnauthorized)
	}

	deliveries, err := h.deliveries.MyDeliveries(c.Request().Context(), actorID)
	if err != nil {
		return writeError(c, err)
	}

	out := make([]*dto.DeliveryResponse, len(deliveries))
	for i, delivery := range deliveries {
		out[i] = dto.NewDeliveryResponse(delivery)
	}
	return c.JSON(http.StatusOK, out)
}
