package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lorenzobigazzi0/cassa/internal/domain/user"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
	"github.com/lorenzobigazzi0/cassa/internal/shared/utils"
)

// PolicyEnforcer answers whether a role subject may perform action on resource.
type PolicyEnforcer interface {
	Enforce(role, resource, action string) (bool, error)
}

type PermissionMiddleware struct {
	enforcer PolicyEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer PolicyEnforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// Allowed checks the role of the authenticated caller. It writes the 401 or
// 403 response itself and returns false when the request must stop.
func (m *PermissionMiddleware) Allowed(c *gin.Context, resource, action string) bool {
	role := GetUserRole(c)
	if role == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return false
	}

	allowed, err := m.enforcer.Enforce(user.Role(role).PolicySubject(), resource, action)
	if err != nil {
		m.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
		utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
		return false
	}

	if !allowed {
		m.logger.Warnw("permission denied", "user_id", GetUserID(c), "role", role, "resource", resource, "action", action)
		utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
		return false
	}

	return true
}

func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.Allowed(c, resource, action) {
			c.Abort()
			return
		}
		c.Next()
	}
}
