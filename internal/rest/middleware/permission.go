package middleware

import (
	"fmt"
	"net/http"

	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/rbac"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/gin-gonic/gin"
)

// PermissionMiddleware handles RBAC permission checks
type PermissionMiddleware struct {
	rbacService *rbac.Service
	logger      *logger.Logger
}

func NewPermissionMiddleware(rbacService *rbac.Service, logger *logger.Logger) *PermissionMiddleware {
	return &PermissionMiddleware{
		rbacService: rbacService,
		logger:      logger,
	}
}

// RequirePermission returns a middleware that checks for entity.action,
// called explicitly in route definitions.
func (pm *PermissionMiddleware) RequirePermission(entity string, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		role := types.GetUserRole(ctx)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			return
		}

		if !pm.rbacService.HasPermission(role, entity, action) {
			pm.logger.Infow("permission denied",
				"user_id", types.GetUserID(ctx),
				"role", role,
				"entity", entity,
				"action", action,
				"path", c.Request.URL.Path,
			)

			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "Forbidden",
				"message": fmt.Sprintf("Insufficient permissions to %s %s", action, entity),
			})
			return
		}

		c.Next()
	}
}
