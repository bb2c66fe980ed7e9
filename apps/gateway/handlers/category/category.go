package category

import (
	"errors"

	"vershash/internal/category"
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
		CreateCategory(c *gin.Context)
		GetListCategory(c *gin.Context)
		UpdateCategory(c *gin.Context)
		DeleteCategory(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger          logger.Logger
		CategoryService category.Service
	}

	handler struct {
		logger          logger.Logger
		categoryService category.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:          p.Logger,
		categoryService: p.CategoryService,
	}
}

func (h *handler) CreateCategory(c *gin.Context) {
	var (
		response structs.Response
		req      structs.CreateCategory
		ctx      = c.Request.Context()
	)
	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	if err := c.ShouldBindJSON(&req); err != nil {
		response = responses.BadRequest
		return
	}

	resp, err := h.categoryService.Create(ctx, req)
	if err != nil {
		if errors.Is(err, structs.ErrBadRequest) {
			response = responses.BadRequest
			response.Message = err.Error()
			return
		}
		if errors.Is(err, structs.ErrUniqueViolation) {
			response = responses.BadRequest
			response.Message = "category already exists"
			return
		}
		h.logger.Error(ctx, "err on h.categoryService.Create", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Created
	response.Payload = resp
}

func (h *handler) GetListCategory(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	resp, err := h.categoryService.GetList(ctx)
	if err != nil {
		h.logger.Error(ctx, "err on h.categoryService.GetList", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = resp
}

func (h *handler) UpdateCategory(c *gin.Context) {
	var (
		response structs.Response
		id       = c.Param("id")
		req      structs.CreateCategory
		ctx      = c.Request.Context()
	)
	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	if err := c.ShouldBindJSON(&req); err != nil {
		response = responses.BadRequest
		return
	}

	resp, err := h.categoryService.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, structs.ErrBadRequest) {
			response = responses.BadRequest
			response.Message = err.Error()
			return
		}
		if errors.Is(err, structs.ErrUniqueViolation) {
			response = responses.BadRequest
			response.Message = "category already exists"
			return
		}
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.NotFound
			return
		}
		h.logger.Error(ctx, "err on h.categoryService.Update", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = resp
}

func (h *handler) DeleteCategory(c *gin.Context) {
	var (
		response structs.Response
		ref      = c.Param("id")
		ctx      = c.Request.Context()
	)
	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	if err := h.categoryService.Delete(ctx, ref); err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.NotFound
			return
		}
		h.logger.Error(ctx, "err on h.categoryService.Delete", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
}
