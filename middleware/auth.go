package middleware

import (
	"strings"

	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/bandhub/band-management-backend/internal/auth"
	"github.com/bandhub/band-management-backend/internal/httpx"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthMiddleware requires a valid bearer token and loads the caller. The
// role is read from the stored user, so role changes apply before the token
// expires.
func AuthMiddleware(secret string, users auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httpx.RespondError(c, apperror.Unauthorized("missing Authorization header"))
			return
		}
		if err := authenticate(c, authHeader, secret, users); err != nil {
			httpx.RespondError(c, err)
			return
		}
		c.Next()
	}
}

// OptionalAuth identifies the caller when a token is sent and lets anonymous
// requests through. A bad token is still rejected.
func OptionalAuth(secret string, users auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		if err := authenticate(c, authHeader, secret, users); err != nil {
			httpx.RespondError(c, err)
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, authHeader, secret string, users auth.Service) error {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return apperror.Unauthorized("invalid Authorization header")
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return apperror.Unauthorized("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return apperror.Unauthorized("invalid claims")
	}

	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return apperror.Unauthorized("user_id missing in token")
	}

	user, err := users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			return apperror.Unauthorized("user not found")
		}
		return err
	}

	c.Set("user", *user)
	c.Set(httpx.KeyUserID, user.ID)
	c.Set(httpx.KeyRole, user.Role)
	c.Set(keyAccessContext, AccessContext{UserID: user.ID, Username: user.Username, Role: user.Role})
	return nil
}
