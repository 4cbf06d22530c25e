package handler

import (
	"errors"

	"github.com/MrSingh0729/transs-flow-final/internal/qc/repository"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/service"
	"github.com/gin-gonic/gin"
)

// ExportHandler 报表导出处理器
type ExportHandler struct {
	svc *service.ExportService
}

func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// ExportNCIssues 导出NC问题追踪表为Excel
// GET /api/v1/qc/nc-issues/export
func (h *ExportHandler) ExportNCIssues(c *gin.Context) {
	filters := checklistFilters(c)
	if v := c.Query("status"); v != "" {
		filters["status"] = v
	}

	f, filename, err := h.svc.ExportNCIssues(c.Request.Context(), filters)
	if err != nil {
		InternalError(c, "导出失败: "+err.Error())
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}

// ExportBTBChecksheet 导出单张BTB压合检查表为Excel
// GET /api/v1/qc/btb-fitment/:id/export
func (h *ExportHandler) ExportBTBChecksheet(c *gin.Context) {
	f, filename, err := h.svc.ExportBTBChecksheet(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "检查表不存在")
			return
		}
		InternalError(c, "导出失败: "+err.Error())
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}

// ExportDummyTests 导出Dummy测试记录为Excel
// GET /api/v1/qc/dummy-tests/export
func (h *ExportHandler) ExportDummyTests(c *gin.Context) {
	filters := checklistFilters(c)
	if v := c.Query("result"); v != "" {
		filters["result"] = v
	}

	f, filename, err := h.svc.ExportDummyTests(c.Request.Context(), filters)
	if err != nil {
		InternalError(c, "导出失败: "+err.Error())
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}
