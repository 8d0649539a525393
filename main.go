package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"relic-search/internal/api"
	"relic-search/internal/config"
	"relic-search/internal/database"
	"relic-search/internal/services/relic"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	db, err := database.Initialize(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer database.Close(db)

	svc := relic.NewService(relic.NewStore(db, cfg.Database.QueryTimeout))
	r := api.NewRouter(svc)

	log.Println("Starting Warframe Relic Search API...")
	log.Println("Available endpoints:")
	log.Println("- GET /api/search?q=<search_term> - Search relics")
	log.Println("- GET /api/search/advanced?q=<search_term>&field=<field> - Advanced search")
	log.Println("- GET /relics - Get all relics")
	log.Println("- GET /api/health - Health check")

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
