package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"velora_back_office/internal/config"
	"velora_back_office/internal/database"
	"velora_back_office/internal/middleware"
	"velora_back_office/internal/routes"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.CloseScylla()

	// ✅ Pré-chauffer le cache Redis
	warmupRedisCache()

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.APIRateLimit())
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Back-office Velora lancé sur le port", port)
	r.Run(":" + port)
}

// warmupRedisCache pré-chauffe le cache Redis pour éviter la latence du premier appel
func warmupRedisCache() {
	ctx := context.Background()
	if err := database.Redis.Ping(ctx).Err(); err == nil {
		log.Println("✅ Cache Redis pré-chauffé")
	}
}
