package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret = []byte("pms-tracker-secret-2026")

// SetSecret overrides the signing key from config. Call before routes are served.
func SetSecret(s string) {
	if s != "" {
		jwtSecret = []byte(s)
	}
}

func SignToken(uid int, name, role string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  uid,
		"name": name,
		"role": role,
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
	}).SignedString(jwtSecret)
}

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		token, err := jwt.Parse(auth[7:], func(t *jwt.Token) (interface{}, error) {
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		claims := token.Claims.(jwt.MapClaims)
		c.Set("user_id", int(claims["uid"].(float64)))
		c.Set("user_name", claims["name"].(string))
		if role, ok := claims["role"].(string); ok {
			c.Set("user_role", role)
		}

		// Renew when less than a day remains.
		if exp, ok := claims["exp"].(float64); ok {
			if time.Until(time.Unix(int64(exp), 0)) < 24*time.Hour {
				role, _ := claims["role"].(string)
				newToken, _ := SignToken(int(claims["uid"].(float64)), claims["name"].(string), role)
				c.Header("X-New-Token", newToken)
			}
		}

		c.Next()
	}
}

// RequireRole is the single authorization gate: every role-restricted route
// goes through it rather than checking the role inline.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_role") != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
		c.Next()
	}
}
