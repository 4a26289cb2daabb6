package postgres

import (
	"log"

	"github.com/olimarket/marketplace-service/internal/config"
	"github.com/olimarket/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.MarketplaceConfig) *gorm.DB {
	dsn := cfg.MarketplaceDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.UserModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.OrderStatusHistoryModel{},
		&models.WalletTransactionModel{},
		&models.DeliveryOrderModel{},
	)

	return db
}
