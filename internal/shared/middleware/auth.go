package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"openblog-backend/pkg/jwt"
)

const (
	// ContextUserID holds the authenticated viewer's uuid.UUID.
	// Absent for guests on optional-auth routes.
	ContextUserID = "userID"
	// ContextUsername holds the authenticated viewer's username.
	ContextUsername = "username"
)

// AuthRequired rejects requests without a valid bearer token.
func AuthRequired(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, manager)
		if !ok {
			c.JSON(401, gin.H{"success": false, "error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "authentication required",
			}})
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// AuthOptional resolves the viewer identity when a token is present and
// lets guests through. Feed routes use this: visibility rules differ
// for guests but the routes themselves are public.
func AuthOptional(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(c, manager); ok {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context, manager *jwt.Manager) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := manager.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setIdentity(c *gin.Context, claims *jwt.Claims) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return
	}
	c.Set(ContextUserID, userID)
	c.Set(ContextUsername, claims.Username)
}

// ViewerID extracts the authenticated viewer from the request context.
// ok=false means a guest.
func ViewerID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
