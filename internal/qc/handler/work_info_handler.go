package handler

import (
	"errors"

	"github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/repository"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/service"
	"github.com/gin-gonic/gin"
)

// WorkInfoHandler 班次工作信息处理器
type WorkInfoHandler struct {
	svc *service.WorkInfoService
}

func NewWorkInfoHandler(svc *service.WorkInfoService) *WorkInfoHandler {
	return &WorkInfoHandler{svc: svc}
}

// Create 登记当班工作信息
// POST /api/v1/qc/work-info
func (h *WorkInfoHandler) Create(c *gin.Context) {
	var w entity.WorkInfo
	if err := c.ShouldBindJSON(&w); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	created, err := h.svc.Create(c.Request.Context(), &w)
	if err != nil && !errors.Is(err, service.ErrSyncFailed) {
		InternalError(c, "创建工作信息失败: "+err.Error())
		return
	}
	CreatedMaybeSynced(c, created, err)
}

// Get 工作信息详情
// GET /api/v1/qc/work-info/:id
func (h *WorkInfoHandler) Get(c *gin.Context) {
	w, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "工作信息不存在")
			return
		}
		InternalError(c, "获取工作信息失败: "+err.Error())
		return
	}
	Success(c, w)
}

// List 工作信息列表
// GET /api/v1/qc/work-info
func (h *WorkInfoHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, checklistFilters(c))
	if err != nil {
		InternalError(c, "获取工作信息列表失败: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: items, Pagination: listMeta(page, pageSize, total)})
}

// Latest 当前员工今天最近一次登记，供清单表单预填
// GET /api/v1/qc/work-info/latest?emp_id=xxx
func (h *WorkInfoHandler) Latest(c *gin.Context) {
	empID := c.Query("emp_id")
	if empID == "" {
		BadRequest(c, "缺少emp_id参数")
		return
	}

	w, err := h.svc.Latest(c.Request.Context(), empID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "今日尚未登记工作信息")
			return
		}
		InternalError(c, "获取工作信息失败: "+err.Error())
		return
	}
	Success(c, w)
}
