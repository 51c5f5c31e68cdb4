package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/aws"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/orders"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/validation"
)

func registerOrderRoutes(api *gin.RouterGroup, store *orders.Store, v *validatorv10.Validate, publisher *aws.Publisher, metrics *aws.MetricsRecorder, log *slog.Logger) {
	api.POST("/orders", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.CreateOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		order := orders.Order{
			ID:            uuid.NewString(),
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Items:         req.Items,
			TotalAmount:   *req.TotalAmount,
			Status:        orders.StatusPending,
			CreatedAt:     time.Now().UTC(),
		}

		if err := store.Create(ctx, order); err != nil {
			log.Error("create order", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "create_order_failed"})
			return
		}

		// Best-effort notification; the order is already committed, so a
		// queue failure must not fail the request.
		if publisher.Enabled() {
			payload, _ := json.Marshal(map[string]interface{}{
				"order_id":     order.ID,
				"total_amount": order.TotalAmount,
				"status":       order.Status,
			})
			attrs := map[string]string{
				"order_id":       order.ID,
				"correlation_id": c.GetHeader("X-Request-Id"),
			}
			if err := publisher.SendOrderEvent(ctx, string(payload), attrs); err != nil {
				log.Warn("order created event", "order_id", order.ID, "err", err)
			}
		}
		if err := metrics.Count(ctx, aws.MetricOrdersCreated, 1); err != nil {
			log.Warn("order created metric", "err", err)
		}

		c.JSON(http.StatusOK, order)
	})

	api.GET("/orders/:id", func(c *gin.Context) {
		order, err := store.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			log.Error("get order", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "get_order_failed"})
			return
		}
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	})
}
