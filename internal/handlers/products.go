package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/catalog"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/validation"
)

func registerProductRoutes(api *gin.RouterGroup, store *catalog.Store, v *validatorv10.Validate, log *slog.Logger) {
	api.GET("/products", func(c *gin.Context) {
		products, err := store.List(c.Request.Context())
		if err != nil {
			log.Error("list products", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list_products_failed"})
			return
		}
		c.JSON(http.StatusOK, products)
	})

	api.GET("/products/category/:category", func(c *gin.Context) {
		products, err := store.ListByCategory(c.Request.Context(), c.Param("category"))
		if err != nil {
			log.Error("list products by category", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list_products_failed"})
			return
		}
		c.JSON(http.StatusOK, products)
	})

	api.GET("/products/:id", func(c *gin.Context) {
		product, err := store.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			log.Error("get product", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "get_product_failed"})
			return
		}
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	})

	api.POST("/products", func(c *gin.Context) {
		var req validation.CreateProductRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 400
			return
		}

		inStock := true
		if req.InStock != nil {
			inStock = *req.InStock
		}
		specs := req.Specifications
		if specs == nil {
			specs = map[string]interface{}{}
		}

		product := catalog.Product{
			ID:             uuid.NewString(),
			Name:           req.Name,
			Description:    req.Description,
			Price:          req.Price,
			Category:       req.Category,
			Brand:          req.Brand,
			ImageURL:       req.ImageURL,
			InStock:        inStock,
			Specifications: specs,
			CreatedAt:      time.Now().UTC(),
		}

		if err := store.Create(c.Request.Context(), product); err != nil {
			log.Error("create product", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "create_product_failed"})
			return
		}
		c.JSON(http.StatusOK, product)
	})
}
