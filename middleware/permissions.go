package middleware

import (
	"github.com/bandhub/band-management-backend/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const keyAccessContext = "access_context"

// AccessContext stores what the authenticated caller may do.
type AccessContext struct {
	UserID   uuid.UUID
	Username string
	Role     auth.Role
}

// CanWrite reports whether the caller may change events, setlists and songs.
func (ac AccessContext) CanWrite() bool {
	return ac.Role == auth.RoleAdmin || ac.Role == auth.RoleEditor
}

func (ac AccessContext) IsAdmin() bool {
	return ac.Role == auth.RoleAdmin
}

// HasRole reports whether the caller holds one of roles.
func (ac AccessContext) HasRole(roles ...auth.Role) bool {
	for _, r := range roles {
		if ac.Role == r {
			return true
		}
	}
	return false
}

// GetAccessContext returns the context set by AuthMiddleware.
func GetAccessContext(c *gin.Context) (AccessContext, bool) {
	raw, exists := c.Get(keyAccessContext)
	if !exists {
		return AccessContext{}, false
	}
	ac, ok := raw.(AccessContext)
	return ac, ok
}
