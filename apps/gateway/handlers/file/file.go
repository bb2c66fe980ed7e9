package file

import (
	"path/filepath"

	"vershash/internal/responses"
	"vershash/internal/structs"
	"vershash/pkg/filemanager"
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

const uploadDir = "media"

type (
	Handler interface {
		CreateFile(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger      logger.Logger
		FileManager filemanager.File
	}

	handler struct {
		logger      logger.Logger
		fileManager filemanager.File
	}
)

func New(p Params) Handler {
	return &handler{
		logger:      p.Logger,
		fileManager: p.FileManager,
	}
}

// CreateFile stores a multipart upload and answers its public URL. The
// catalog only ever references media by URL, so nothing is written to the
// store here.
func (h *handler) CreateFile(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer func() { reply.Json(c.Writer, response.Status, &response) }()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response = responses.BadRequest
		response.Message = "missing required field \"file\""
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.logger.Error(ctx, "err on fileHeader.Open", zap.Error(err))
		response = responses.InternalErr
		return
	}
	defer src.Close()

	filename := utils.GenKSUID() + filepath.Ext(fileHeader.Filename)

	if err := h.fileManager.Upload(ctx, src, uploadDir, filename); err != nil {
		h.logger.Error(ctx, "err on fileManager.Upload", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Created
	response.Payload = gin.H{"url": h.fileManager.PublicURL(uploadDir, filename)}
}
