package handler

import (
	"github.com/MrSingh0729/transs-flow-final/internal/qc/service"
	"github.com/gin-gonic/gin"
)

// UploadHandler 证据照片上传处理器
type UploadHandler struct {
	svc       *service.UploadService
	maxSizeMB int
}

func NewUploadHandler(svc *service.UploadService, maxSizeMB int) *UploadHandler {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	return &UploadHandler{svc: svc, maxSizeMB: maxSizeMB}
}

// Upload 上传证据照片，返回可填入清单photo字段的URL
// POST /api/v1/qc/uploads
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "缺少上传文件")
		return
	}

	if fileHeader.Size > int64(h.maxSizeMB)*1024*1024 {
		BadRequest(c, "文件大小超出限制")
		return
	}

	result, err := h.svc.Upload(c.Request.Context(), fileHeader)
	if err != nil {
		InternalError(c, "上传失败: "+err.Error())
		return
	}
	Created(c, result)
}
