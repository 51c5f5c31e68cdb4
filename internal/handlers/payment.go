package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/aws"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/payment"
)

func registerPaymentRoutes(api *gin.RouterGroup, gateway payment.Gateway, metrics *aws.MetricsRecorder, log *slog.Logger) {
	api.POST("/paypal/create-order", func(c *gin.Context) {
		// The body shape is not part of the contract; pick up a total if
		// one happens to be there and ignore everything else.
		var body map[string]interface{}
		_ = c.ShouldBindJSON(&body)
		amount, _ := body["total_amount"].(float64)

		remote, err := gateway.CreateRemoteOrder(c.Request.Context(), amount)
		if err != nil {
			log.Error("create remote order", "err", err)
			c.JSON(paymentStatus(err), gin.H{"error": "payment_failed"})
			return
		}
		c.JSON(http.StatusOK, remote)
	})

	// Capture deliberately does not write anything back onto the Order
	// record; the two flows are unconnected in this API.
	api.POST("/paypal/capture-order/:id", func(c *gin.Context) {
		capture, err := gateway.CaptureRemoteOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			log.Error("capture remote order", "remote_order_id", c.Param("id"), "err", err)
			c.JSON(paymentStatus(err), gin.H{"error": "payment_failed"})
			return
		}
		if err := metrics.Count(c.Request.Context(), aws.MetricPaymentsCaptured, 1); err != nil {
			log.Warn("payment captured metric", "err", err)
		}
		c.JSON(http.StatusOK, capture)
	})
}

func paymentStatus(err error) int {
	if errors.Is(err, payment.ErrPaymentFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
