package handler

import (
	"errors"

	"github.com/MrSingh0729/transs-flow-final/internal/accounts/repository"
	"github.com/MrSingh0729/transs-flow-final/internal/accounts/service"
	"github.com/gin-gonic/gin"
)

// EmployeeHandler 员工管理处理器
type EmployeeHandler struct {
	svc *service.EmployeeService
}

func NewEmployeeHandler(svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// List 员工列表
// GET /api/v1/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	filters := map[string]string{
		"role":         c.Query("role"),
		"department":   c.Query("department"),
		"factory_code": c.Query("factory_code"),
		"q":            c.Query("q"),
	}

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		InternalError(c, "获取员工列表失败: "+err.Error())
		return
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	Success(c, ListResponse{
		Items: items,
		Pagination: &Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      int(total),
			TotalPages: totalPages,
		},
	})
}

// Get 员工详情
// GET /api/v1/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	emp, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "员工不存在")
			return
		}
		InternalError(c, "获取员工失败: "+err.Error())
		return
	}
	Success(c, emp)
}

// Create 创建员工
// POST /api/v1/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	emp, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			BadRequest(c, "工号已存在: "+req.EmployeeID)
			return
		}
		InternalError(c, "创建员工失败: "+err.Error())
		return
	}

	Created(c, emp)
}

// Update 更新员工
// PUT /api/v1/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req service.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	emp, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "员工不存在")
			return
		}
		InternalError(c, "更新员工失败: "+err.Error())
		return
	}

	Success(c, emp)
}

// Delete 删除员工
// DELETE /api/v1/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "员工不存在")
			return
		}
		InternalError(c, "删除员工失败: "+err.Error())
		return
	}
	Success(c, gin.H{"message": "deleted"})
}

// Import 从CSV导入员工名册（支持GBK编码）
// POST /api/v1/employees/import
func (h *EmployeeHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "缺少上传文件")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		InternalError(c, "读取上传文件失败: "+err.Error())
		return
	}
	defer f.Close()

	result, err := h.svc.ImportRoster(c.Request.Context(), f)
	if err != nil {
		BadRequest(c, "导入失败: "+err.Error())
		return
	}

	Success(c, result)
}

// Dashboard 管理看板统计
// GET /api/v1/employees/dashboard
func (h *EmployeeHandler) Dashboard(c *gin.Context) {
	total, err := h.svc.Count(c.Request.Context())
	if err != nil {
		InternalError(c, "获取统计失败: "+err.Error())
		return
	}
	Success(c, gin.H{"total_employees": total})
}
