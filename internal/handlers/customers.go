package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kunal-oza/churn-prediction-service/internal/models"
)

// ProfileReader is the read-side of the store used by the customer endpoints.
type ProfileReader interface {
	GetProfile(ctx context.Context, customerID int) (*models.CustomerProfile, error)
	ListPredictions(ctx context.Context, customerID int) ([]models.PredictionRecord, error)
}

// RegisterCustomerRoutes registers the read-path endpoints.
//
// GET /customers/:id              latest known profile
// GET /customers/:id/predictions  full prediction history, oldest first
func RegisterCustomerRoutes(r gin.IRoutes, st ProfileReader) {
	r.GET("/customers/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "customer id must be an integer"})
			return
		}

		profile, err := st.GetProfile(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "db query failed"})
			return
		}
		if profile == nil {
			c.JSON(http.StatusNotFound, gin.H{"detail": "customer not found"})
			return
		}

		c.JSON(http.StatusOK, profile)
	})

	r.GET("/customers/:id/predictions", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "customer id must be an integer"})
			return
		}

		records, err := st.ListPredictions(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "db query failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"customer_id": id,
			"predictions": records,
		})
	})
}
