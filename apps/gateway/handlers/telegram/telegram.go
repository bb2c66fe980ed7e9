package telegram

import (
	"errors"

	"vershash/internal/botconfig"
	"vershash/internal/responses"
	"vershash/internal/stats"
	"vershash/internal/structs"
	"vershash/pkg/logger"
	"vershash/pkg/reply"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		GetBotConfig(c *gin.Context)
		PostBotConfig(c *gin.Context)
		GetStats(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger           logger.Logger
		BotConfigService botconfig.Service
		StatsService     stats.Service
	}

	handler struct {
		logger           logger.Logger
		botConfigService botconfig.Service
		statsService     stats.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:           p.Logger,
		botConfigService: p.BotConfigService,
		statsService:     p.StatsService,
	}
}

func (h *handler) GetBotConfig(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	resp, err := h.botConfigService.Get(ctx)
	if err != nil {
		h.logger.Error(ctx, "err on h.botConfigService.Get", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = resp
}

func (h *handler) PostBotConfig(c *gin.Context) {
	var (
		response structs.Response
		req      structs.PatchBotConfig
		ctx      = c.Request.Context()
	)
	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	if err := c.ShouldBindJSON(&req); err != nil {
		response = responses.BadRequest
		return
	}

	resp, err := h.botConfigService.Patch(ctx, req)
	if err != nil {
		if errors.Is(err, structs.ErrBadRequest) {
			response = responses.BadRequest
			response.Message = err.Error()
			return
		}
		h.logger.Error(ctx, "err on h.botConfigService.Patch", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = resp
}

func (h *handler) GetStats(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	response = responses.Success
	response.Payload = h.statsService.Snapshot(ctx)
}
