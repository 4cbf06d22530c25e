package handler

import (
	"errors"

	"github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/repository"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/service"
	"github.com/gin-gonic/gin"
)

// FAIHandler 测试FAI报告处理器。公开路由供QE扫码确认，无需登录
type FAIHandler struct {
	svc *service.FAIService
}

func NewFAIHandler(svc *service.FAIService) *FAIHandler {
	return &FAIHandler{svc: svc}
}

// Create 提交FAI报告，生成供QE扫码确认的公开token
// POST /api/v1/qc/testing-fai
func (h *FAIHandler) Create(c *gin.Context) {
	var f entity.TestingFAI
	if err := c.ShouldBindJSON(&f); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	created, err := h.svc.Create(c.Request.Context(), &f)
	if err != nil && !errors.Is(err, service.ErrSyncFailed) {
		InternalError(c, "创建FAI报告失败: "+err.Error())
		return
	}
	CreatedMaybeSynced(c, created, err)
}

// Get FAI报告详情
// GET /api/v1/qc/testing-fai/:id
func (h *FAIHandler) Get(c *gin.Context) {
	f, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "FAI报告不存在")
			return
		}
		InternalError(c, "获取FAI报告失败: "+err.Error())
		return
	}
	Success(c, f)
}

// List FAI报告列表
// GET /api/v1/qc/testing-fai
func (h *FAIHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	filters := checklistFilters(c)
	if v := c.Query("qe_confirm_status"); v != "" {
		filters["qe_confirm_status"] = v
	}
	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		InternalError(c, "获取FAI报告列表失败: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: items, Pagination: listMeta(page, pageSize, total)})
}

// PublicView QE扫码后查看报告，无需登录
// GET /public/fai/:token
func (h *FAIHandler) PublicView(c *gin.Context) {
	f, err := h.svc.GetByPublicToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "FAI报告不存在或链接已失效")
			return
		}
		InternalError(c, "获取FAI报告失败: "+err.Error())
		return
	}
	Success(c, f)
}

// QEConfirmRequest QE确认请求
type QEConfirmRequest struct {
	ConfirmName string `json:"confirm_name" binding:"required"`
	Status      string `json:"status" binding:"required"`
}

// QEConfirm QE扫码确认FAI结果，无需登录
// POST /public/fai/:token/confirm
func (h *FAIHandler) QEConfirm(c *gin.Context) {
	var req QEConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	f, err := h.svc.QEConfirm(c.Request.Context(), c.Param("token"), req.ConfirmName, req.Status)
	if err != nil && !errors.Is(err, service.ErrSyncFailed) {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "FAI报告不存在或链接已失效")
			return
		}
		if errors.Is(err, service.ErrInvalidStatus) {
			BadRequest(c, "确认状态只能为APPROVED或REJECTED")
			return
		}
		InternalError(c, "QE确认失败: "+err.Error())
		return
	}
	SuccessMaybeSynced(c, f, err)
}

// Confirm QE在站内确认FAI结果（登录态，按记录ID）
// POST /api/v1/qc/testing-fai/:id/confirm
func (h *FAIHandler) Confirm(c *gin.Context) {
	var req QEConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	f, err := h.svc.QEConfirmByID(c.Request.Context(), c.Param("id"), req.ConfirmName, req.Status)
	if err != nil && !errors.Is(err, service.ErrSyncFailed) {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "FAI报告不存在")
			return
		}
		if errors.Is(err, service.ErrInvalidStatus) {
			BadRequest(c, "确认状态只能为APPROVED或REJECTED")
			return
		}
		InternalError(c, "QE确认失败: "+err.Error())
		return
	}
	SuccessMaybeSynced(c, f, err)
}
