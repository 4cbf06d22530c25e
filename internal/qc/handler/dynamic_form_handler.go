package handler

import (
	"errors"

	"github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/repository"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/service"
	"github.com/gin-gonic/gin"
)

// DynamicFormHandler 动态表单处理器，表单定义由管理员维护
type DynamicFormHandler struct {
	svc *service.DynamicFormService
}

func NewDynamicFormHandler(svc *service.DynamicFormService) *DynamicFormHandler {
	return &DynamicFormHandler{svc: svc}
}

// CreateForm 创建表单定义
// POST /api/v1/qc/forms
func (h *DynamicFormHandler) CreateForm(c *gin.Context) {
	var form entity.DynamicForm
	if err := c.ShouldBindJSON(&form); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	created, err := h.svc.CreateForm(c.Request.Context(), &form)
	if err != nil {
		if errors.Is(err, service.ErrUnknownFieldType) {
			BadRequest(c, "不支持的字段类型")
			return
		}
		InternalError(c, "创建表单失败: "+err.Error())
		return
	}
	Created(c, created)
}

// GetForm 表单定义详情，含字段列表
// GET /api/v1/qc/forms/:id
func (h *DynamicFormHandler) GetForm(c *gin.Context) {
	form, err := h.svc.GetForm(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "表单不存在")
			return
		}
		InternalError(c, "获取表单失败: "+err.Error())
		return
	}
	Success(c, form)
}

// ListForms 表单定义列表
// GET /api/v1/qc/forms
func (h *DynamicFormHandler) ListForms(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.svc.ListForms(c.Request.Context(), page, pageSize)
	if err != nil {
		InternalError(c, "获取表单列表失败: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: items, Pagination: listMeta(page, pageSize, total)})
}

// DeleteForm 删除表单定义及其字段
// DELETE /api/v1/qc/forms/:id
func (h *DynamicFormHandler) DeleteForm(c *gin.Context) {
	if err := h.svc.DeleteForm(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "表单不存在")
			return
		}
		InternalError(c, "删除表单失败: "+err.Error())
		return
	}
	Success(c, gin.H{"message": "deleted"})
}

// SubmitRequest 表单提交请求
type SubmitRequest struct {
	Data entity.JSONB `json:"data" binding:"required"`
}

// Submit 提交表单数据，必填字段缺失时拒绝
// POST /api/v1/qc/forms/:id/submissions
func (h *DynamicFormHandler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	sub, err := h.svc.Submit(c.Request.Context(), c.Param("id"), GetUserID(c), req.Data)
	if err != nil && !errors.Is(err, service.ErrSyncFailed) {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "表单不存在")
			return
		}
		if errors.Is(err, service.ErrMissingField) {
			BadRequest(c, "必填字段缺失: "+err.Error())
			return
		}
		InternalError(c, "提交表单失败: "+err.Error())
		return
	}
	CreatedMaybeSynced(c, sub, err)
}

// ListSubmissions 表单提交记录列表
// GET /api/v1/qc/forms/:id/submissions
func (h *DynamicFormHandler) ListSubmissions(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.svc.ListSubmissions(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		InternalError(c, "获取提交记录失败: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: items, Pagination: listMeta(page, pageSize, total)})
}
