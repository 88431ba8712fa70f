package middleware

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS autorise l'origine du dashboard (DASHBOARD_ORIGIN, localhost:5173 en dev)
func CORS() gin.HandlerFunc {
	origin := os.Getenv("DASHBOARD_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}

	return cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
