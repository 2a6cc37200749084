package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kunal-oza/churn-prediction-service/internal/churn"
	"github.com/kunal-oza/churn-prediction-service/internal/models"
	"github.com/kunal-oza/churn-prediction-service/internal/validation"
)

// RegisterPredictRoutes registers the inference-path endpoint.
//
// POST /predict
// - 422 lists every violated field, not just the first
// - 200 only after the profile upsert and prediction record are committed
// - any failure after validation leaves the database untouched
func RegisterPredictRoutes(r gin.IRoutes, orc *churn.Orchestrator, timeout time.Duration) {
	r.POST("/predict", func(c *gin.Context) {
		var req models.PredictionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid JSON payload"})
			return
		}

		if fieldErrs := validation.Validate(&req); len(fieldErrs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": fieldErrs})
			return
		}

		// Inference and both DB writes must finish within the request budget.
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		resp, err := orc.Predict(ctx, &req)
		if err != nil {
			log.Printf("predict: customer %d: %v", *req.CustomerID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, resp)
	})
}
