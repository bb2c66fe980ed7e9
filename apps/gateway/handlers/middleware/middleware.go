package middleware

import (
	"strings"

	"vershash/internal/responses"
	"vershash/pkg/config"
	"vershash/pkg/logger"
	"vershash/pkg/reply"
	"vershash/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var (
	Module = fx.Provide(NewMiddleware)
)

// CookieName is where the admin session token lands on login.
const CookieName = "auth-token"

type (
	Middleware interface {
		CheckAuth() gin.HandlerFunc
		Ctx() gin.HandlerFunc
	}

	Params struct {
		fx.In

		Logger logger.Logger
		Config config.IConfig
	}

	mw struct {
		logger logger.Logger
		config config.IConfig
	}
)

func NewMiddleware(params Params) Middleware {
	return &mw{
		logger: params.Logger,
		config: params.Config,
	}
}

// CheckAuth guards the admin surface. The token is taken from the
// Authorization header first, the auth-token cookie second.
func (m *mw) CheckAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			response = responses.Unauthorized
			ctx      = c.Request.Context()
		)

		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if utils.StrEmpty(token) {
			token, _ = c.Cookie(CookieName)
		}

		if utils.StrEmpty(token) {
			m.logger.Warn(ctx, "empty auth token")
			c.Abort()
			reply.Json(c.Writer, response.Status, &response)
			return
		}

		claims, err := utils.ParseJWT(token)
		if err != nil {
			m.logger.Warn(ctx, "invalid auth token")
			c.Abort()
			reply.Json(c.Writer, response.Status, &response)
			return
		}

		if username, ok := claims["username"].(string); ok {
			c.Set("username", username)
		}

		c.Next()
	}
}

func (m *mw) Ctx() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := m.logger.Context(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
