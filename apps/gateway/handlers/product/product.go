package product

import (
	"errors"

	"vershash/internal/product"
	"vershash/internal/responses"
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
		CreateProduct(c *gin.Context)
		GetListProduct(c *gin.Context)
		GetByIDProduct(c *gin.Context)
		UpdateProduct(c *gin.Context)
		DeleteProduct(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger         logger.Logger
		ProductService product.Service
	}

	handler struct {
		logger         logger.Logger
		productService product.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:         p.Logger,
		productService: p.ProductService,
	}
}

func (h *handler) CreateProduct(c *gin.Context) {
	var (
		response structs.Response
		req      structs.CreateProduct
		ctx      = c.Request.Context()
	)
	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	if err := c.ShouldBindJSON(&req); err != nil {
		response = responses.BadRequest
		return
	}

	resp, err := h.productService.Create(ctx, req)
	if err != nil {
		if errors.Is(err, structs.ErrBadRequest) {
			response = responses.BadRequest
			response.Message = err.Error()
			return
		}
		h.logger.Error(ctx, "err on h.productService.Create", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Created
	response.Payload = resp
}

func (h *handler) GetListProduct(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	resp, err := h.productService.GetList(ctx)
	if err != nil {
		h.logger.Error(ctx, "err on h.productService.GetList", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = resp
}

func (h *handler) GetByIDProduct(c *gin.Context) {
	var (
		response structs.Response
		id       = c.Param("id")
		ctx      = c.Request.Context()
	)
	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	resp, err := h.productService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.NotFound
			return
		}
		h.logger.Error(ctx, "err on h.productService.GetByID", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = resp
}

func (h *handler) UpdateProduct(c *gin.Context) {
	var (
		response structs.Response
		id       = c.Param("id")
		req      structs.CreateProduct
		ctx      = c.Request.Context()
	)
	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	if err := c.ShouldBindJSON(&req); err != nil {
		response = responses.BadRequest
		return
	}

	resp, err := h.productService.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, structs.ErrBadRequest) {
			response = responses.BadRequest
			response.Message = err.Error()
			return
		}
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.NotFound
			return
		}
		h.logger.Error(ctx, "err on h.productService.Update", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = resp
}

func (h *handler) DeleteProduct(c *gin.Context) {
	var (
		response structs.Response
		id       = c.Param("id")
		ctx      = c.Request.Context()
	)
	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	if err := h.productService.Delete(ctx, id); err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.NotFound
			return
		}
		h.logger.Error(ctx, "err on h.productService.Delete", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
}
