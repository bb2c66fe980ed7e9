package settings

import (
	"errors"
	"net/http"

	"vershash/internal/checkout"
	"vershash/internal/responses"
	"vershash/internal/settings"
	"vershash/internal/structs"
	"vershash/pkg/logger"
	"vershash/pkg/reply"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		GetSettings(c *gin.Context)
		PutSettings(c *gin.Context)
		GetSettingsQR(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger          logger.Logger
		SettingsService settings.Service
	}

	handler struct {
		logger          logger.Logger
		settingsService settings.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:          p.Logger,
		settingsService: p.SettingsService,
	}
}

func (h *handler) GetSettings(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	resp, err := h.settingsService.Get(ctx)
	if err != nil {
		h.logger.Error(ctx, "err on h.settingsService.Get", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = resp
}

func (h *handler) PutSettings(c *gin.Context) {
	var (
		response structs.Response
		req      structs.PatchSettings
		ctx      = c.Request.Context()
	)
	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	if err := c.ShouldBindJSON(&req); err != nil {
		response = responses.BadRequest
		return
	}

	resp, err := h.settingsService.Patch(ctx, req)
	if err != nil {
		if errors.Is(err, structs.ErrBadRequest) {
			response = responses.BadRequest
			response.Message = err.Error()
			return
		}
		h.logger.Error(ctx, "err on h.settingsService.Patch", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = resp
}

// GetSettingsQR renders the order-forwarding destination as a QR PNG.
func (h *handler) GetSettingsQR(c *gin.Context) {
	ctx := c.Request.Context()

	settingsDoc, err := h.settingsService.Get(ctx)
	if err != nil {
		h.logger.Error(ctx, "err on h.settingsService.Get", zap.Error(err))
		response := responses.InternalErr
		reply.Json(c.Writer, response.Status, &response)
		return
	}

	target := checkout.Target(settingsDoc.OrderLink)
	if target == "" {
		response := responses.NotFound
		response.Message = "no order link configured"
		reply.Json(c.Writer, response.Status, &response)
		return
	}

	png, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		h.logger.Error(ctx, "err on qrcode.Encode", zap.Error(err))
		response := responses.InternalErr
		reply.Json(c.Writer, response.Status, &response)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
