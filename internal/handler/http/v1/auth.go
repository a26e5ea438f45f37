package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/smolentsev/lostradar/internal/config"
	"github.com/sirupsen/logrus"
)

const userIDKey = "userID"

// SessionAuthMiddleware - middleware для аутентификации по сессионному токену.
// Сессии выпускает внешний провайдер и кладет в redis под session:<token>,
// значением лежит uuid пользователя.
func SessionAuthMiddleware(rdb *redis.Client, cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Warn("Session token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		raw, err := rdb.Get(c.Request.Context(), cfg.SessionKeyPrefix+token).Result()
		if errors.Is(err, redis.Nil) {
			log.Warn("Unknown session token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
			return
		}
		if err != nil {
			log.WithError(err).Error("Failed to look up session in redis")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			log.WithError(err).Error("Malformed user id in session store")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUserID возвращает пользователя, установленного session middleware
func currentUserID(c *gin.Context) uuid.UUID {
	v, _ := c.Get(userIDKey)
	id, _ := v.(uuid.UUID)
	return id
}
