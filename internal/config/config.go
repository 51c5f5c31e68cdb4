package config

import (
	"os"
	"strings"
)

// Config holds everything the API reads from the environment.
type Config struct {
	AppEnv   string
	LogLevel string

	HTTPAddr string
	RunLocal bool

	ProductsTable string
	CartTable     string
	OrdersTable   string

	OrderEventsQueueURL string
	MetricsNamespace    string

	// CORSOrigins is the parsed CORS_ORIGINS list; ["*"] allows everyone.
	CORSOrigins []string
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		RunLocal: getEnv("RUN_LOCAL", "") == "true",

		ProductsTable: getEnv("PRODUCTS_TABLE", "products"),
		CartTable:     getEnv("CART_TABLE", "cart"),
		OrdersTable:   getEnv("ORDERS_TABLE", "orders"),

		OrderEventsQueueURL: getEnv("ORDER_EVENTS_QUEUE_URL", ""),
		MetricsNamespace:    getEnv("METRICS_NAMESPACE", ""),

		CORSOrigins: splitOrigins(getEnv("CORS_ORIGINS", "*")),
	}
}

func (c Config) AllowAllOrigins() bool {
	return len(c.CORSOrigins) == 1 && c.CORSOrigins[0] == "*"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = []string{"*"}
	}
	return out
}
