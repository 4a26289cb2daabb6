package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/olimarket/marketplace-service/internal/delivery/http/dto"
	"github.com/olimarket/marketplace-service/internal/domain"
	orderusecase "github.com/olimarket/marketplace-service/internal/usecase/order"

	orderdto "github.com/olimarket/marketplace-service/internal/usecase/dto/order"
)

type OrderHandler struct {
	orders orderusecase.OrderUsecase
}

func NewOrderHandler(orders orderusecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create handles POST /orders.
func (h *OrderHandler) Create(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if role != domain.RoleBuyer {
		return writeError(c, domain.ErrUnauthorized)
	}

	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	items := make([]orderdto.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = orderdto.OrderItemInput{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ImageURL:    item.ImageURL,
			Price:       item.Price,
			Quantity:    item.Quantity,
			SellerID:    item.SellerID,
			SellerName:  item.SellerName,
		}
	}

	output, err := h.orders.CreateOrder(c.Request().Context(), &orderdto.CreateOrderInput{
		BuyerID:         actorID,
		Items:           items,
		DeliveryAddress: req.DeliveryAddress,
		PickupAddress:   req.PickupAddress,
		DeliveryFee:     req.DeliveryFee,
		PaymentMethod:   domain.PaymentMethod(req.PaymentMethod),
		PayNow:          req.PayNow,
		Provider:        req.Provider,
		PhoneOrCard:     req.PhoneOrCard(),
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := dto.NewOrderResponse(output.Order, role)
	resp.Message = output.Message
	return c.JSON(http.StatusCreated, resp)
}

// List handles GET /orders.
func (h *OrderHandler) List(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	orders, err := h.orders.GetBuyerOrders(c.Request().Context(), actorID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewOrderListResponse(orders, role))
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	order, err := h.orders.GetOrderByID(c.Request().Context(), orderID, actorID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewOrderResponse(order, role))
}

// Tracking handles GET /orders/:id/tracking.
func (h *OrderHandler) Tracking(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	tracking, err := h.orders.GetTracking(c.Request().Context(), orderID, actorID, role)
	if err != nil {
		return writeError(c, err)
	}

	history := make([]dto.HistoryEntryResponse, len(tracking.History))
	for i, entry := range tracking.History {
		history[i] = dto.HistoryEntryResponse{
			PreviousStatus: string(entry.PreviousStatus),
			NewStatus:      string(entry.NewStatus),
			ChangedByRole:  string(entry.ChangedByRole),
			Notes:          entry.Notes,
			CreatedAt:      entry.CreatedAt,
		}
	}
	allowed := make([]string, len(tracking.AllowedTransitions))
	for i, status := range tracking.AllowedTransitions {
		allowed[i] = string(status)
	}

	return c.JSON(http.StatusOK, dto.TrackingResponse{
		Order:              dto.NewOrderResponse(tracking.Order, role),
		History:            history,
		AllowedTransitions: allowed,
	})
}

// Pay handles POST /orders/:id/pay.
func (h *OrderHandler) Pay(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.PayOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	output, err := h.orders.PayOrder(c.Request().Context(), &orderdto.PayOrderInput{
		OrderID:     orderID,
		BuyerID:     actorID,
		Provider:    req.Provider,
		PhoneOrCard: req.PhoneOrCard(),
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := dto.NewOrderResponse(output.Order, role)
	resp.Message = output.Message
	status := http.StatusOK
	if output.Order.Status == domain.StatusPending {
		// Mobile-money charge still awaiting provider confirmation.
		status = http.StatusAccepted
	}
	return c.JSON(status, resp)
}

// Cancel handles POST /orders/:id/cancel.
func (h *OrderHandler) Cancel(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	order, err := h.orders.CancelOrder(c.Request().Context(), orderID, actorID, role)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewOrderResponse(order, role))
}

// MarkProcessing handles POST /orders/:id/processing.
func (h *OrderHandler) MarkProcessing(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	order, err := h.orders.MarkProcessing(c.Request().Context(), orderID, actorID, role)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewOrderResponse(order, role))
}

// MarkReady handles POST /orders/:id/ready.
func (h *OrderHandler) MarkReady(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	order, err := h.orders.MarkReady(c.Request().Context(), orderID, actorID, role)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewOrderResponse(order, role))
}

// VerifyPickup handles POST /orders/:id/verify-pickup.
func (h *OrderHandler) VerifyPickup(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if role != domain.RoleDeliverer {
		return writeError(c, domain.ErrUnauthorized)
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.VerifyCodeRequest
	if err := c.Bind(&req); err != nil || req.Code == "" {
		return badRequest(c, "verification code is required")
	}

	order, err := h.orders.VerifyPickup(c.Request().Context(), orderID, actorID, req.Code)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewOrderResponse(order, role))
}

// VerifyDelivery handles POST /orders/:id/verify-delivery.
func (h *OrderHandler) VerifyDelivery(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if role != domain.RoleBuyer {
		return writeError(c, domain.ErrUnauthorized)
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.VerifyCodeRequest
	if err := c.Bind(&req); err != nil || req.Code == "" {
		return badRequest(c, "verification code is required")
	}

	order, err := h.orders.VerifyDelivery(c.Request().Context(), orderID, actorID, req.Code)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewOrderResponse(order, role))
}

// SellerOrders handles GET /seller/orders.
func (h *OrderHandler) SellerOrders(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if role != domain.RoleSeller && role != domain.RoleAdmin {
		return writeError(c, domain.ErrUnauthorized)
	}

	status := domain.OrderStatus(c.QueryParam("status"))
	output, err := h.orders.GetSellerOrders(c.Request().Context(), actorID, status)
	if err != nil {
		return writeError(c, err)
	}

	counts := make(map[string]int64, len(output.StatusCounts))
	for s, n := range output.StatusCounts {
		counts[string(s)] = n
	}
	return c.JSON(http.StatusOK, dto.SellerOrdersResponse{
		Orders:       dto.NewOrderListResponse(output.Orders, role),
		StatusCounts: counts,
	})
}

// SellerUpdateStatus handles PATCH /seller/orders/:id/status.
func (h *OrderHandler) SellerUpdateStatus(c echo.Context) error {
	actorID, role, err := actor(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if role != domain.RoleSeller {
		return writeError(c, domain.ErrUnauthorized)
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.SellerStatusRequest
	if err := c.Bind(&req); err != nil || req.Status == "" {
		return badRequest(c, "target status is required")
	}

	order, err := h.orders.SellerUpdateStatus(c.Request().Context(), orderID, actorID, domain.OrderStatus(req.Status), req.Notes)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewOrderResponse(order, role))
}
