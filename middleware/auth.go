package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/HITENDRAS940/E-commerce1/models"
	"github.com/HITENDRAS940/E-commerce1/pkg/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	userIDKey    = "userID"
	userEmailKey = "userEmail"
	userRoleKey  = "userRole"
)

// AuthMiddleware resolves the acting identity from gateway-injected headers,
// falling back to a bearer token signed with jwtSecret. Downstream handlers
// read the resolved identity via GetAuthUser and pass it explicitly into the
// service layer.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	jwtSecret = strings.TrimSpace(jwtSecret)
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		email := c.GetHeader("X-User-Email")
		role := c.GetHeader("X-User-Role")

		if userID == "" {
			claims, err := parseBearerToken(c.GetHeader("Authorization"), jwtSecret)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrUnauthorized)
				return
			}
			if sub, ok := claims["sub"].(string); ok {
				userID = sub
			}
			if em, ok := claims["email"].(string); ok {
				email = em
			}
			if rl, ok := claims["role"].(string); ok {
				role = rl
			}
		}

		id, err := strconv.ParseUint(userID, 10, 64)
		if err != nil || id == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrUnauthorized)
			return
		}

		c.Set(userIDKey, uint(id))
		c.Set(userEmailKey, email)
		c.Set(userRoleKey, role)
		c.Next()
	}
}

func parseBearerToken(header, secret string) (jwt.MapClaims, error) {
	tokenStr, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenStr == "" {
		return nil, fmt.Errorf("missing bearer token")
	}
	if secret == "" {
		return nil, fmt.Errorf("JWT secret not configured")
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// GetAuthUser extracts the resolved identity from the gin context.
func GetAuthUser(c *gin.Context) (models.AuthUser, error) {
	id, ok := c.Get(userIDKey)
	if !ok {
		return models.AuthUser{}, fmt.Errorf("user not found in context")
	}
	email, _ := c.Get(userEmailKey)
	emailStr, _ := email.(string)
	return models.AuthUser{ID: id.(uint), Email: emailStr}, nil
}

// AdminOnly restricts access to admin role.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(userRoleKey)
		if !exists || role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, apperrors.ErrForbidden)
			return
		}
		c.Next()
	}
}
