package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kunal-oza/churn-prediction-service/internal/churn"
	"github.com/kunal-oza/churn-prediction-service/internal/config"
	"github.com/kunal-oza/churn-prediction-service/internal/handlers"
	"github.com/kunal-oza/churn-prediction-service/internal/store"
)

// NewRouter wires the public endpoints and the prediction API.
// Public: /, /health, /ready
// API: /predict, /customers/:id, /customers/:id/predictions
func NewRouter(cfg config.Config, st *store.PostgresStore, orc *churn.Orchestrator) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Customer Churn Prediction API"})
	})

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// Readiness: confirms the DB dependency is reachable.
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := st.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	handlers.RegisterPredictRoutes(r, orc, cfg.RequestTimeout)
	handlers.RegisterCustomerRoutes(r, st)

	return r
}
