package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/catalog"
)

func registerSeedRoutes(api *gin.RouterGroup, store *catalog.Store, log *slog.Logger) {
	api.POST("/init-data", func(c *gin.Context) {
		ctx := c.Request.Context()

		count, err := store.Count(ctx)
		if err != nil {
			log.Error("count products", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "init_data_failed"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusOK, gin.H{"message": "Sample data already exists"})
			return
		}

		if err := store.BatchCreate(ctx, catalog.SampleProducts(time.Now())); err != nil {
			log.Error("seed products", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "init_data_failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Sample data initialized"})
	})
}
