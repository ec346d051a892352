package config

import (
	"log"
	"os"
	"strconv"

	"github.com/example/sneaker-cart-service/internal/domain"
)

type Config struct {
	Port                 string
	DatabaseURL          string
	SnapshotSlot         string
	NATSURL              string
	StanClusterID        string
	StanClientID         string
	ReceiptSubject       string
	CouponRulesPath      string
	CatalogPath          string
	StandardShippingCost float64
}

// Load reads configuration from environment with sensible defaults.
// An empty DATABASE_URL keeps cart snapshots in memory; an empty
// NATS_URL disables receipt publishing.
func Load() Config {
	return Config{
		Port:                 getEnv("PORT", "8080"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		SnapshotSlot:         getEnv("SNAPSHOT_SLOT", "cart"),
		NATSURL:              getEnv("NATS_URL", ""),
		StanClusterID:        getEnv("STAN_CLUSTER_ID", "cart-cluster"),
		StanClientID:         getEnv("STAN_CLIENT_ID", ""),
		ReceiptSubject:       getEnv("RECEIPT_SUBJECT", "receipts"),
		CouponRulesPath:      getEnv("COUPON_RULES", ""),
		CatalogPath:          getEnv("CATALOG_FILE", ""),
		StandardShippingCost: parseFloat("SHIPPING_STANDARD_COST", domain.DefaultStandardShippingCost),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		log.Printf("invalid value for %s: %s", key, v)
		return def
	}
	return f
}
