package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"velora_back_office/internal/database"
	"velora_back_office/internal/response"
)

const (
	// Limite générale par IP pour les endpoints du back-office
	APIMaxRequests = 300
	APIWindow      = 1 * time.Minute
)

// APIRateLimit limite le nombre de requêtes par IP sur une fenêtre fixe
func APIRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		key := "api_requests:" + c.ClientIP()

		count, err := database.Redis.Incr(ctx, key).Result()
		if err != nil {
			// Redis indisponible : on laisse passer plutôt que de bloquer tout le dashboard
			c.Next()
			return
		}

		if count == 1 {
			database.Redis.Expire(ctx, key, APIWindow)
		}

		if count > APIMaxRequests {
			ttl := database.Redis.TTL(ctx, key).Val()
			c.JSON(http.StatusTooManyRequests, response.Error(
				fmt.Sprintf("Trop de requêtes. Réessayez dans %d secondes", int(ttl.Seconds()))))
			c.Abort()
			return
		}

		c.Next()
	}
}
