package middleware

import (
	"net"
	"strings"

	"github.com/bandhub/band-management-backend/internal/httpx"
	"github.com/gin-gonic/gin"
)

// AuditMiddleware stores the caller's IP for audit records.
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(httpx.KeyClientIP, getClientIP(c))
		c.Next()
	}
}

// getClientIP prefers proxy headers and falls back to the remote address.
func getClientIP(c *gin.Context) string {
	// X-Forwarded-For may carry a chain; the first hop is the client
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ip := strings.TrimSpace(strings.Split(xff, ",")[0])
		if isValidIP(ip) {
			return ip
		}
	}

	for _, header := range []string{"X-Real-Ip", "CF-Connecting-IP"} {
		if ip := strings.TrimSpace(c.GetHeader(header)); isValidIP(ip) {
			return ip
		}
	}

	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}

func isValidIP(ip string) bool {
	return net.ParseIP(ip) != nil
}
