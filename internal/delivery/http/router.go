package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/olimarket/marketplace-service/internal/delivery/http/handlers"
)

// NewRouter wires the handlers onto an echo instance. Request identity
// arrives through X-User-ID / X-User-Role headers set by the upstream
// gateway.
func NewRouter(
	orderHandler *handlers.OrderHandler,
	walletHandler *handlers.WalletHandler,
	deliveryHandler *handlers.DeliveryHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	orders := e.Group("/orders")
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.GET("/:id/tracking", orderHandler.Tracking)
	orders.POST("/:id/pay", orderHandler.Pay)
	orders.POST("/:id/cancel", orderHandler.Cancel)
	orders.POST("/:id/processing", orderHandler.MarkProcessing)
	orders.POST("/:id/ready", orderHandler.MarkReady)
	orders.POST("/:id/verify-pickup", orderHandler.VerifyPickup)
	orders.POST("/:id/verify-delivery", orderHandler.VerifyDelivery)

	seller := e.Group("/seller/orders")
	seller.GET("", orderHandler.SellerOrders)
	seller.PATCH("/:id/status", orderHandler.SellerUpdateStatus)

	wallet := e.Group("/wallet")
	wallet.GET("/balance", walletHandler.Balance)
	wallet.GET("/transactions", walletHandler.Transactions)
	wallet.POST("/deposit", walletHandler.Deposit)
	wallet.POST("/withdraw", walletHandler.Withdraw)

	deliveries := e.Group("/deliveries")
	deliveries.GET("/available", deliveryHandler.Available)
	deliveries.POST("/:id/accept", deliveryHandler.Accept)
	deliveries.PATCH("/:id/status", deliveryHandler.UpdateStatus)
	deliveries.GET("/mine", deliveryHandler.Mine)

	return e
}
