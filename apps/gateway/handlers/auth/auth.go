package auth

import (
	"errors"
	"net/http"

	"vershash/internal/auth"
	"vershash/internal/responses"
	"vershash/internal/structs"
	"vershash/pkg/logger"
	"vershash/pkg/reply"
	"vershash/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

const cookieName = "auth-token"

type (
	Handler interface {
		Login(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger      logger.Logger
		AuthService auth.Service
	}

	handler struct {
		logger      logger.Logger
		authService auth.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:      p.Logger,
		authService: p.AuthService,
	}
}

func (h *handler) Login(c *gin.Context) {
	var (
		response structs.Response
		req      structs.AdminLogin
		ctx      = c.Request.Context()
	)
	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	if err := c.ShouldBindJSON(&req); err != nil {
		response = responses.BadRequest
		return
	}

	resp, err := h.authService.Login(ctx, req)
	if err != nil {
		if errors.Is(err, structs.ErrBadRequest) {
			response = responses.BadRequest
			response.Message = err.Error()
			return
		}
		if errors.Is(err, structs.ErrUnauthorized) {
			response = responses.Unauthorized
			return
		}
		h.logger.Error(ctx, "err on h.authService.Login", zap.Error(err))
		response = responses.InternalErr
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, resp.Token, int(utils.TokenLifetime.Seconds()), "/", "", false, true)

	response = responses.Success
	response.Payload = resp
}
