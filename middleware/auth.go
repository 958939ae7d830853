package middleware

import (
	"net/http"
	"strings"

	gincontext "Newsline/pkg/context"
	"Newsline/pkg/jwt"
	"Newsline/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 强制登录，解析 Bearer Token 注入 user_id
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseBearer(c, secret)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(gincontext.CtxUserID, int64(claims.UserID))
		c.Next()
	}
}

// OptionalAuth 可选登录
// 带合法 Token 注入 user_id，没带或无效按匿名观众放行
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := parseBearer(c, secret); err == nil {
			c.Set(gincontext.CtxUserID, int64(claims.UserID))
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context, secret []byte) (*jwt.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errMissingAuth
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errBadAuthFormat
	}

	return jwt.ParseToken(secret, "access", parts[1])
}

var (
	errMissingAuth   = response.NewError(http.StatusUnauthorized, "缺少 Authorization")
	errBadAuthFormat = response.NewError(http.StatusUnauthorized, "Authorization 格式错误")
)
