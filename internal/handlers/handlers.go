package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/aws"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/cart"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/catalog"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/orders"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/payment"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/validation"
)

// HandlerConfig groups dependencies for the API handlers.
type HandlerConfig struct {
	DynamoDBClient   aws.DynamoDBAPI
	SQSClient        aws.SQSAPI
	CloudWatchClient aws.CloudWatchAPI

	ProductsTable string
	CartTable     string
	OrdersTable   string

	// OrderEventsQueueURL enables the best-effort order-created event when
	// non-empty.
	OrderEventsQueueURL string
	// MetricsNamespace enables CloudWatch counters when non-empty.
	MetricsNamespace string

	Gateway payment.Gateway
	Logger  *slog.Logger
}

// RegisterRoutes wires every API route under the /api prefix.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Gateway == nil {
		cfg.Gateway = payment.NewSandbox()
	}

	v := validation.New()
	products := catalog.NewStore(cfg.DynamoDBClient, cfg.ProductsTable)
	cartStore := cart.NewStore(cfg.DynamoDBClient, cfg.CartTable)
	orderStore := orders.NewStore(cfg.DynamoDBClient, cfg.OrdersTable)
	publisher := aws.NewPublisher(cfg.SQSClient, cfg.OrderEventsQueueURL)
	metrics := aws.NewMetricsRecorder(cfg.CloudWatchClient, cfg.MetricsNamespace)

	api := r.Group("/api")
	registerProductRoutes(api, products, v, cfg.Logger)
	registerCartRoutes(api, cartStore, v, metrics, cfg.Logger)
	registerOrderRoutes(api, orderStore, v, publisher, metrics, cfg.Logger)
	registerPaymentRoutes(api, cfg.Gateway, metrics, cfg.Logger)
	registerSeedRoutes(api, products, cfg.Logger)
}
