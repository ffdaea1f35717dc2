package user

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pronofoot/football-prediction-backend/pkg/response"
	"github.com/pronofoot/football-prediction-backend/pkg/token"
)

const (
	// CookieName 是存放JWT的cookie名
	CookieName = "token"

	// Gin上下文中存放当前用户信息的键
	UserIDKey   = "userID"
	UsernameKey = "username"
	UserRoleKey = "userRole"
)

// tokenFromRequest 先查cookie，再查Authorization头。
func tokenFromRequest(c *gin.Context) string {
	if t, err := c.Cookie(CookieName); err == nil && t != "" {
		return t
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// RequireAuth 验证请求携带的JWT，并把用户信息放入Gin上下文。
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		t := tokenFromRequest(c)
		if t == "" {
			response.Fail(c, http.StatusUnauthorized, "需要登录")
			c.Abort()
			return
		}

		claims, err := token.Parse(t)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "Token无效或已过期")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UsernameKey, claims.Username())
		c.Set(UserRoleKey, claims.Role)
		c.Next()
	}
}

// RequireAdmin 在RequireAuth之后使用，要求全站管理员角色。
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(UserRoleKey) != RoleAdmin {
			response.Fail(c, http.StatusForbidden, "需要管理员权限")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID 从Gin上下文取出当前用户ID。
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(UserIDKey)
	id, _ := v.(uint)
	return id
}
