package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/aws"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/cart"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/validation"
)

func registerCartRoutes(api *gin.RouterGroup, store *cart.Store, v *validatorv10.Validate, metrics *aws.MetricsRecorder, log *slog.Logger) {
	api.GET("/cart", func(c *gin.Context) {
		items, err := store.List(c.Request.Context())
		if err != nil {
			log.Error("list cart", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list_cart_failed"})
			return
		}
		c.JSON(http.StatusOK, items)
	})

	api.POST("/cart", func(c *gin.Context) {
		var req validation.AddCartItemRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		// Product existence is deliberately not checked; referential
		// integrity is the caller's problem.
		item, err := store.Add(c.Request.Context(), req.ProductID, *req.Quantity)
		if err != nil {
			log.Error("add to cart", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "add_to_cart_failed"})
			return
		}
		if err := metrics.Count(c.Request.Context(), aws.MetricCartAdds, 1); err != nil {
			log.Warn("cart add metric", "err", err)
		}
		c.JSON(http.StatusOK, item)
	})

	api.PUT("/cart/:id", func(c *gin.Context) {
		quantity, err := strconv.Atoi(c.Query("quantity"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_quantity"})
			return
		}
		if err := store.UpdateQuantity(c.Request.Context(), c.Param("id"), quantity); err != nil {
			log.Error("update cart item", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update_cart_failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
	})

	api.DELETE("/cart/:id", func(c *gin.Context) {
		if err := store.Remove(c.Request.Context(), c.Param("id")); err != nil {
			log.Error("remove cart item", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "remove_cart_item_failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	})

	api.DELETE("/cart", func(c *gin.Context) {
		if err := store.Clear(c.Request.Context()); err != nil {
			log.Error("clear cart", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "clear_cart_failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	})
}
