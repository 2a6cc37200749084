package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/kunal-oza/churn-prediction-service/internal/churn"
	"github.com/kunal-oza/churn-prediction-service/internal/config"
	"github.com/kunal-oza/churn-prediction-service/internal/httpserver"
	"github.com/kunal-oza/churn-prediction-service/internal/model"
	"github.com/kunal-oza/churn-prediction-service/internal/store"
)

// main boots the service: config → model → DB → schema → HTTP server.
func main() {
	// Local dev convenience; production relies on real environment variables.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using OS environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// The model is loaded exactly once and held for the process lifetime.
	// Retraining requires a restart.
	mdl, err := model.Load(cfg.ModelPath)
	if err != nil {
		log.Fatal(err)
	}

	// Connect to durable storage (Postgres) using a connection pool.
	db, err := store.NewPostgresStore(cfg.DBURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Ensure required tables/indexes exist so `docker compose up --build` is enough.
	if err := db.EnsureSchema(); err != nil {
		log.Fatal(err)
	}

	orc := &churn.Orchestrator{Store: db, Model: mdl}
	router := httpserver.NewRouter(cfg, db, orc)

	log.Printf("server started on %s", cfg.Addr)
	log.Fatal(router.Run(cfg.Addr))
}
