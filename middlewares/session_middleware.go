package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bw3sley/ignite-daily-diet-api/models"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "sessionId"

// UserIDKey is the context key the resolved user id is stored under.
const UserIDKey = "userID"

// SessionMiddleware resolves the caller from the session cookie and aborts
// with 401 when the cookie is missing or matches no user. On success the
// resolved user id is stored in the request context for the handlers
// downstream.
func SessionMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized."})
			return
		}

		var user models.User
		if err := db.WithContext(c.Request.Context()).
			Where("session_id = ?", sessionID).
			First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized."})
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Next()
	}
}
