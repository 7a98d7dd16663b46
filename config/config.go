package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the database selected by DB_DRIVER (sqlite by default,
// mysql for production).
func InitDB() (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	switch getEnv("DB_DRIVER", "sqlite") {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			getEnv("DB_USER", "root"),
			os.Getenv("DB_PASSWORD"),
			getEnv("DB_HOST", "127.0.0.1"),
			getEnv("DB_PORT", "3306"),
			getEnv("DB_NAME", "restaurant"),
		)
		return gorm.Open(mysql.Open(dsn), gormCfg)
	default:
		return gorm.Open(sqlite.Open(getEnv("DB_PATH", "restaurant.db")), gormCfg)
	}
}

// RestaurantSettings holds the operating parameters of the restaurant.
// Values come from the environment with defaults matching the live site.
type RestaurantSettings struct {
	VatRate               float64
	DeliveryFee           decimal.Decimal
	FreeDeliveryThreshold decimal.Decimal
	DeliveryRadiusKm      int
	ContactEmail          string
	ContactPhone          string
}

func LoadRestaurantSettings() RestaurantSettings {
	return RestaurantSettings{
		VatRate:               envFloat("RESTAURANT_VAT_RATE", 0.10),
		DeliveryFee:           envDecimal("RESTAURANT_DELIVERY_FEE", "5.00"),
		FreeDeliveryThreshold: envDecimal("RESTAURANT_FREE_DELIVERY_THRESHOLD", "30.00"),
		DeliveryRadiusKm:      envInt("RESTAURANT_DELIVERY_RADIUS_KM", 10),
		ContactEmail:          getEnv("RESTAURANT_CONTACT_EMAIL", "contact@restaurant.example"),
		ContactPhone:          getEnv("RESTAURANT_CONTACT_PHONE", "01 23 45 67 89"),
	}
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDecimal(key, fallback string) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	d, _ := decimal.NewFromString(fallback)
	return d
}
