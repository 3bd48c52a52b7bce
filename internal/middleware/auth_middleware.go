package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ferremas-storefront/internal/pkg/response"
)

// Roles this service gates on. The backend vocabulary is wider (bodeguero,
// contador); only the roles with a storefront surface are named here.
const (
	RoleAdmin    = "ADMINISTRADOR"
	RoleSeller   = "VENDEDOR"
	RoleCustomer = "CLIENTE"
)

const guestCookie = "cart_session"

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if tok, err := c.Cookie("access_token"); err == nil {
		return tok
	}
	return ""
}

func parseToken(tokenString string) (userID, role string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return "", "", err
	}
	if !token.Valid {
		return "", "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fmt.Errorf("invalid token claims")
	}
	userID, ok = claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user id not found in token")
	}
	role, _ = claims["role"].(string)
	return userID, role, nil
}

// SessionMiddleware resolves the caller's cart session: authenticated users
// are keyed by user id, anonymous visitors by a guest cookie minted on first
// contact. It also stashes the credentials the backend client forwards.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if csrf, err := c.Cookie("csrftoken"); err == nil {
			c.Set("csrf_token", csrf)
		}

		if tok := bearerToken(c); tok != "" {
			if userID, role, err := parseToken(tok); err == nil {
				c.Set("user_id_validated", userID)
				c.Set("role", role)
				c.Set("bearer_token", tok)
				c.Set("session_key", "user:"+userID)
				c.Next()
				return
			}
		}

		guestID, err := c.Cookie(guestCookie)
		if err != nil || guestID == "" {
			guestID = uuid.NewString()
			c.SetCookie(guestCookie, guestID, 60*60*24*7, "/", "", false, true)
		}
		c.Set("session_key", "guest:"+guestID)

		c.Next()
	}
}

// AuthMiddleware requires a valid token; the role-gated groups build on it.
// Like SessionMiddleware it stashes the csrftoken cookie, so state-changing
// calls from staff routes forward the same credentials as storefront ones.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if csrf, err := c.Cookie("csrftoken"); err == nil {
			c.Set("csrf_token", csrf)
		}

		tok := bearerToken(c)
		if tok == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
			c.Abort()
			return
		}

		userID, role, err := parseToken(tok)
		if err != nil {
			msg := "invalid token"
			if strings.Contains(err.Error(), "expired") {
				msg = "token expired"
			}
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", msg, nil)
			c.Abort()
			return
		}

		c.Set("user_id_validated", userID)
		c.Set("role", role)
		c.Set("bearer_token", tok)
		c.Set("session_key", "user:"+userID)

		c.Next()
	}
}

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "access denied", nil)
			c.Abort()
			return
		}

		isAllowed := false
		for _, role := range allowedRoles {
			if userRole == role {
				isAllowed = true
				break
			}
		}
		if !isAllowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "access denied", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
