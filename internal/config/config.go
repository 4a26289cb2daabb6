package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type MarketplaceConfig struct {
	Env                 string `yaml:"env"`
	HTTPServer          `yaml:"http_server"`
	MarketplaceDB       `yaml:"marketplace_db"`
	LogConfig           `yaml:"log_config"`
	PaymentService      `yaml:"payment-service"`
	NotificationService `yaml:"notification-service"`
	KafkaService        `yaml:"kafka-service"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type MarketplaceDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type PaymentService struct {
	Address string `yaml:"address"`
}

type NotificationService struct {
	Address string `yaml:"address"`
}

type KafkaService struct {
	Brokers []string `yaml:"brokers"`
}

func MustLoad() *MarketplaceConfig {
	configPath := os.Getenv("MARKETPLACE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("MARKETPLACE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg MarketplaceConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
