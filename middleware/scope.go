package middleware

import (
	"errors"
	"net/http"
	"strings"

	"luxora/config"
	"luxora/models"
	"luxora/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

const scopeContextKey = "tenantScope"

// CompanyScopeMiddleware extracts the tenant scope from the caller's
// bearer token. Authentication itself happens upstream; this layer only
// trusts the signed companyId claim and turns it into a models.Scope
// that every engine call receives. Requests without a resolvable
// company are rejected, never defaulted.
func CompanyScopeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing scope", "a bearer token with a company claim is required")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(config.AppConfig.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			utils.JSONError(c, http.StatusUnauthorized, "invalid token", "token validation failed")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "invalid token", "unreadable claims")
			c.Abort()
			return
		}
		companyID, _ := claims["companyId"].(string)
		if companyID == "" {
			utils.GetLogger().Warn("token without company claim", zap.String("path", c.FullPath()))
			utils.JSONError(c, http.StatusForbidden, "missing scope", "token carries no companyId claim")
			c.Abort()
			return
		}

		c.Set(scopeContextKey, models.Scope{CompanyID: companyID})
		c.Next()
	}
}

// ScopeFromContext returns the tenant scope set by CompanyScopeMiddleware.
func ScopeFromContext(c *gin.Context) models.Scope {
	if v, ok := c.Get(scopeContextKey); ok {
		if scope, ok := v.(models.Scope); ok {
			return scope
		}
	}
	return models.Scope{}
}
