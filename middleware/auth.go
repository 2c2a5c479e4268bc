package middleware

import (
	"net/http"
	"strings"

	"hotel-management/auth"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
)

const ClaimsKey = "claims"

// JWTAuth validates the Bearer token and stores its claims on the context.
func JWTAuth(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}

		claims, err := svc.Parse(parts[1])
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRole must run after JWTAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}
		if claims.HasRole(roles...) {
			c.Next()
			return
		}
		utils.JSONError(c, http.StatusForbidden, "forbidden")
		c.Abort()
	}
}

func Claims(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// RequireSelfOrRole lets a user reach their own resource, named by the path parameter
// param, and any user holding one of roles reach everyone's. It must run after JWTAuth.
func RequireSelfOrRole(param string, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}
		if claims.UserID == c.Param(param) || claims.HasRole(roles...) {
			c.Next()
			return
		}
		utils.JSONError(c, http.StatusForbidden, "forbidden")
		c.Abort()
	}
}
