package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/aws"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/config"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/handlers"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/logger"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/payment"
)

func setupRouter(cfg config.Config, hcfg handlers.HandlerConfig, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))
	r.Use(corsMiddleware(cfg))

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterRoutes(r, hcfg)

	return r
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

func corsMiddleware(cfg config.Config) gin.HandlerFunc {
	cc := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
	}
	if cfg.AllowAllOrigins() {
		// credentials + wildcard origins is rejected by the middleware
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = cfg.CORSOrigins
		cc.AllowCredentials = true
	}
	return cors.New(cc)
}

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "novaeletro-api",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	clients, err := aws.NewAWSClients(context.Background())
	if err != nil {
		log.Error("failed to init aws clients", "err", err)
		os.Exit(1)
	}

	hcfg := handlers.HandlerConfig{
		DynamoDBClient:      clients.DynamoDB,
		SQSClient:           clients.SQS,
		CloudWatchClient:    clients.CloudWatch,
		ProductsTable:       cfg.ProductsTable,
		CartTable:           cfg.CartTable,
		OrdersTable:         cfg.OrdersTable,
		OrderEventsQueueURL: cfg.OrderEventsQueueURL,
		MetricsNamespace:    cfg.MetricsNamespace,
		Gateway:             payment.NewSandbox(),
		Logger:              log,
	}

	r := setupRouter(cfg, hcfg, log)

	// if RUN_LOCAL is set to "true", run a local HTTP server for development.
	if cfg.RunLocal {
		runLocal(cfg, r, log)
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}

func runLocal(cfg config.Config, r *gin.Engine, log *slog.Logger) {
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("running local server", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("local server", "err", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "err", err)
	}
}
