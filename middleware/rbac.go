package middleware

import (
	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/bandhub/band-management-backend/internal/auth"
	"github.com/bandhub/band-management-backend/internal/httpx"
	"github.com/gin-gonic/gin"
)

// RBACMiddleware lets the request through when the caller holds one of
// allowedRoles. It must run after AuthMiddleware.
func RBACMiddleware(allowedRoles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ac, ok := GetAccessContext(c)
		if !ok {
			httpx.RespondError(c, apperror.Unauthorized("unauthenticated"))
			return
		}
		if !ac.HasRole(allowedRoles...) {
			httpx.RespondError(c, apperror.Forbidden("role %s may not perform this action", ac.Role))
			return
		}
		c.Next()
	}
}

// RequireWriteAccess admits editors and admins.
func RequireWriteAccess() gin.HandlerFunc {
	return RBACMiddleware(auth.RoleEditor, auth.RoleAdmin)
}

// RequireAdmin admits admins only.
func RequireAdmin() gin.HandlerFunc {
	return RBACMiddleware(auth.RoleAdmin)
}
