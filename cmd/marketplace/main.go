package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/olimarket/marketplace-service/internal/config"
	httpapi "github.com/olimarket/marketplace-service/internal/delivery/http"
	"github.com/olimarket/marketplace-service/internal/delivery/http/handlers"
	"github.com/olimarket/marketplace-service/internal/infrastructure/kafka"
	"github.com/olimarket/marketplace-service/internal/infrastructure/metrics"
	"github.com/olimarket/marketplace-service/internal/infrastructure/migrate"
	"github.com/olimarket/marketplace-service/internal/infrastructure/mobilemoney"
	"github.com/olimarket/marketplace-service/internal/infrastructure/notifier"
	"github.com/olimarket/marketplace-service/internal/infrastructure/postgres"
	"github.com/olimarket/marketplace-service/internal/infrastructure/postgres/repository"
	deliveryusecase "github.com/olimarket/marketplace-service/internal/usecase/delivery"
	orderusecase "github.com/olimarket/marketplace-service/internal/usecase/order"
	walletusecase "github.com/olimarket/marketplace-service/internal/usecase/wallet"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg.LogConfig)

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.MarketplaceDB.MigrationsPath != "" {
		if err := migrate.Run(db, cfg.MarketplaceDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Collaborators
	publisher := kafka.NewDefaultPublisher(cfg.KafkaService.Brokers)
	defer publisher.Close()
	gateway := mobilemoney.NewHTTPGateway(cfg.PaymentService.Address)
	dispatcher := notifier.NewHTTPNotifier(cfg.NotificationService.Address)
	marketplaceMetrics := metrics.NewMarketplaceMetrics()

	// Store and usecases
	store := repository.NewStore(db)
	walletUc := walletusecase.NewDefaultWalletUsecase(store, gateway, dispatcher, marketplaceMetrics)
	orderUc, err := orderusecase.NewDefaultOrderUsecase(store, gateway, dispatcher, publisher, publisher, marketplaceMetrics)
	if err != nil {
		log.Fatalf("failed to init order usecase: %v", err)
	}
	deliveryUc := deliveryusecase.NewDefaultDeliveryUsecase(store, orderUc, publisher, marketplaceMetrics)

	// HTTP API
	e := httpapi.NewRouter(
		handlers.NewOrderHandler(orderUc),
		handlers.NewWalletHandler(walletUc),
		handlers.NewDeliveryHandler(deliveryUc),
	)

	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
		slog.Info("starting http server", "addr", addr)
		if err := e.Start(addr); err != nil {
			slog.Error("http server stopped", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
