package handler

import (
	"errors"

	"github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/repository"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/service"
	"github.com/gin-gonic/gin"
)

// ChecklistHandler 各类IPQC检查表处理器
type ChecklistHandler struct {
	svc *service.ChecklistService
}

func NewChecklistHandler(svc *service.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{svc: svc}
}

// =====================
// BTB贴合检查表
// =====================

// CreateBTBFitment 提交BTB贴合检查表，合计列服务端重新计算
// POST /api/v1/qc/btb-fitment
func (h *ChecklistHandler) CreateBTBFitment(c *gin.Context) {
	var b entity.BTBFitmentChecksheet
	if err := c.ShouldBindJSON(&b); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	created, err := h.svc.CreateBTBFitment(c.Request.Context(), &b)
	if err != nil && !errors.Is(err, service.ErrSyncFailed) {
		InternalError(c, "创建BTB检查表失败: "+err.Error())
		return
	}
	CreatedMaybeSynced(c, created, err)
}

// GetBTBFitment BTB检查表详情
// GET /api/v1/qc/btb-fitment/:id
func (h *ChecklistHandler) GetBTBFitment(c *gin.Context) {
	b, err := h.svc.GetBTBFitment(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "检查表不存在")
			return
		}
		InternalError(c, "获取检查表失败: "+err.Error())
		return
	}
	Success(c, b)
}

// ListBTBFitment BTB检查表列表
// GET /api/v1/qc/btb-fitment
func (h *ChecklistHandler) ListBTBFitment(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.svc.ListBTBFitment(c.Request.Context(), page, pageSize, checklistFilters(c))
	if err != nil {
		InternalError(c, "获取检查表列表失败: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: items, Pagination: listMeta(page, pageSize, total)})
}

// =====================
// Dummy测试记录
// =====================

// CreateDummyTest 提交Dummy测试记录
// POST /api/v1/qc/dummy-tests
func (h *ChecklistHandler) CreateDummyTest(c *gin.Context) {
	var d entity.DummyTest
	if err := c.ShouldBindJSON(&d); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	created, err := h.svc.CreateDummyTest(c.Request.Context(), &d)
	if err != nil && !errors.Is(err, service.ErrSyncFailed) {
		InternalError(c, "创建Dummy测试记录失败: "+err.Error())
		return
	}
	CreatedMaybeSynced(c, created, err)
}

// GetDummyTest Dummy测试记录详情
// GET /api/v1/qc/dummy-tests/:id
func (h *ChecklistHandler) GetDummyTest(c *gin.Context) {
	d, err := h.svc.GetDummyTest(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "测试记录不存在")
			return
		}
		InternalError(c, "获取测试记录失败: "+err.Error())
		return
	}
	Success(c, d)
}

// ListDummyTests Dummy测试记录列表
// GET /api/v1/qc/dummy-tests
func (h *ChecklistHandler) ListDummyTests(c *gin.Context) {
	page, pageSize := GetPagination(c)
	filters := checklistFilters(c)
	if v := c.Query("result"); v != "" {
		filters["result"] = v
	}
	items, total, err := h.svc.ListDummyTests(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		InternalError(c, "获取测试记录列表失败: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: items, Pagination: listMeta(page, pageSize, total)})
}

// =====================
// 拆解检查表
// =====================

// CreateDisassemble 提交拆解检查表。存在Not OK项时必须附照片或缺陷原因
// POST /api/v1/qc/disassemble
func (h *ChecklistHandler) CreateDisassemble(c *gin.Context) {
	var d entity.DisassembleChecklist
	if err := c.ShouldBindJSON(&d); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	created, err := h.svc.CreateDisassemble(c.Request.Context(), &d)
	if err != nil && !errors.Is(err, service.ErrSyncFailed) {
		if errors.Is(err, service.ErrEvidenceRequired) {
			BadRequest(c, "存在Not OK项时必须上传证据照片或填写缺陷原因分析")
			return
		}
		InternalError(c, "创建拆解检查表失败: "+err.Error())
		return
	}
	CreatedMaybeSynced(c, created, err)
}

// GetDisassemble 拆解检查表详情
// GET /api/v1/qc/disassemble/:id
func (h *ChecklistHandler) GetDisassemble(c *gin.Context) {
	d, err := h.svc.GetDisassemble(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "检查表不存在")
			return
		}
		InternalError(c, "获取检查表失败: "+err.Error())
		return
	}
	Success(c, d)
}

// ListDisassembles 拆解检查表列表
// GET /api/v1/qc/disassemble
func (h *ChecklistHandler) ListDisassembles(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.svc.ListDisassembles(c.Request.Context(), page, pageSize, checklistFilters(c))
	if err != nil {
		InternalError(c, "获取检查表列表失败: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: items, Pagination: listMeta(page, pageSize, total)})
}

// =====================
// 装配4M1E稽核
// =====================

// CreateAssemblyAudit 提交装配4M1E稽核表
// POST /api/v1/qc/assembly-audits
func (h *ChecklistHandler) CreateAssemblyAudit(c *gin.Context) {
	var a entity.AssemblyAudit
	if err := c.ShouldBindJSON(&a); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	created, err := h.svc.CreateAssemblyAudit(c.Request.Context(), &a)
	if err != nil && !errors.Is(err, service.ErrSyncFailed) {
		if errors.Is(err, service.ErrEvidenceRequired) {
			BadRequest(c, "存在Not OK项时必须上传证据照片或填写缺陷原因分析")
			return
		}
		InternalError(c, "创建稽核表失败: "+err.Error())
		return
	}
	CreatedMaybeSynced(c, created, err)
}

// GetAssemblyAudit 稽核表详情
// GET /api/v1/qc/assembly-audits/:id
func (h *ChecklistHandler) GetAssemblyAudit(c *gin.Context) {
	a, err := h.svc.GetAssemblyAudit(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "稽核表不存在")
			return
		}
		InternalError(c, "获取稽核表失败: "+err.Error())
		return
	}
	Success(c, a)
}

// ListAssemblyAudits 稽核表列表
// GET /api/v1/qc/assembly-audits
func (h *ChecklistHandler) ListAssemblyAudits(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.svc.ListAssemblyAudits(c.Request.Context(), page, pageSize, checklistFilters(c))
	if err != nil {
		InternalError(c, "获取稽核表列表失败: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: items, Pagination: listMeta(page, pageSize, total)})
}

// =====================
// NC问题追踪
// =====================

// CreateNCIssue 登记NC问题
// POST /api/v1/qc/nc-issues
func (h *ChecklistHandler) CreateNCIssue(c *gin.Context) {
	var n entity.NCIssue
	if err := c.ShouldBindJSON(&n); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	created, err := h.svc.CreateNCIssue(c.Request.Context(), &n)
	if err != nil && !errors.Is(err, service.ErrSyncFailed) {
		InternalError(c, "创建NC问题失败: "+err.Error())
		return
	}
	CreatedMaybeSynced(c, created, err)
}

// CloseNCIssueRequest 关闭NC问题请求
type CloseNCIssueRequest struct {
	Solution string `json:"solution"`
}

// CloseNCIssue 关闭NC问题，记录关闭时间和对策
// POST /api/v1/qc/nc-issues/:id/close
func (h *ChecklistHandler) CloseNCIssue(c *gin.Context) {
	var req CloseNCIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	n, err := h.svc.CloseNCIssue(c.Request.Context(), c.Param("id"), req.Solution)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "NC问题不存在")
			return
		}
		if errors.Is(err, service.ErrInvalidStatus) {
			BadRequest(c, "该NC问题已关闭")
			return
		}
		InternalError(c, "关闭NC问题失败: "+err.Error())
		return
	}
	Success(c, n)
}

// GetNCIssue NC问题详情
// GET /api/v1/qc/nc-issues/:id
func (h *ChecklistHandler) GetNCIssue(c *gin.Context) {
	n, err := h.svc.GetNCIssue(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "NC问题不存在")
			return
		}
		InternalError(c, "获取NC问题失败: "+err.Error())
		return
	}
	Success(c, n)
}

// ListNCIssues NC问题列表
// GET /api/v1/qc/nc-issues
func (h *ChecklistHandler) ListNCIssues(c *gin.Context) {
	page, pageSize := GetPagination(c)
	filters := checklistFilters(c)
	if v := c.Query("status"); v != "" {
		filters["status"] = v
	}
	items, total, err := h.svc.ListNCIssues(c.Request.Context(), page, pageSize, filters)
	if err != nil {
		InternalError(c, "获取NC问题列表失败: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: items, Pagination: listMeta(page, pageSize, total)})
}

// =====================
// ESD静电防护点检
// =====================

// CreateESDCompliance 提交ESD点检表
// POST /api/v1/qc/esd-compliance
func (h *ChecklistHandler) CreateESDCompliance(c *gin.Context) {
	var e entity.ESDCompliance
	if err := c.ShouldBindJSON(&e); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	created, err := h.svc.CreateESDCompliance(c.Request.Context(), &e)
	if err != nil && !errors.Is(err, service.ErrSyncFailed) {
		InternalError(c, "创建ESD点检表失败: "+err.Error())
		return
	}
	CreatedMaybeSynced(c, created, err)
}

// GetESDCompliance ESD点检表详情
// GET /api/v1/qc/esd-compliance/:id
func (h *ChecklistHandler) GetESDCompliance(c *gin.Context) {
	e, err := h.svc.GetESDCompliance(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "点检表不存在")
			return
		}
		InternalError(c, "获取点检表失败: "+err.Error())
		return
	}
	Success(c, e)
}

// ListESDCompliances ESD点检表列表
// GET /api/v1/qc/esd-compliance
func (h *ChecklistHandler) ListESDCompliances(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.svc.ListESDCompliances(c.Request.Context(), page, pageSize, checklistFilters(c))
	if err != nil {
		InternalError(c, "获取点检表列表失败: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: items, Pagination: listMeta(page, pageSize, total)})
}

// =====================
// 洁净度尘埃粒子记录
// =====================

// CreateDustCount 提交尘埃粒子记录
// POST /api/v1/qc/dust-counts
func (h *ChecklistHandler) CreateDustCount(c *gin.Context) {
	var d entity.DustCount
	if err := c.ShouldBindJSON(&d); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	created, err := h.svc.CreateDustCount(c.Request.Context(), &d)
	if err != nil && !errors.Is(err, service.ErrSyncFailed) {
		InternalError(c, "创建尘埃粒子记录失败: "+err.Error())
		return
	}
	CreatedMaybeSynced(c, created, err)
}

// GetDustCount 尘埃粒子记录详情
// GET /api/v1/qc/dust-counts/:id
func (h *ChecklistHandler) GetDustCount(c *gin.Context) {
	d, err := h.svc.GetDustCount(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "记录不存在")
			return
		}
		InternalError(c, "获取记录失败: "+err.Error())
		return
	}
	Success(c, d)
}

// ListDustCounts 尘埃粒子记录列表
// GET /api/v1/qc/dust-counts
func (h *ChecklistHandler) ListDustCounts(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.svc.ListDustCounts(c.Request.Context(), page, pageSize, checklistFilters(c))
	if err != nil {
		InternalError(c, "获取记录列表失败: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: items, Pagination: listMeta(page, pageSize, total)})
}

// =====================
// 作业员上岗资格核查
// =====================

// CreateOperatorQualification 提交作业员资格核查记录
// POST /api/v1/qc/operator-qualifications
func (h *ChecklistHandler) CreateOperatorQualification(c *gin.Context) {
	var o entity.OperatorQualification
	if err := c.ShouldBindJSON(&o); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	created, err := h.svc.CreateOperatorQualification(c.Request.Context(), &o)
	if err != nil {
		InternalError(c, "创建资格核查记录失败: "+err.Error())
		return
	}
	Created(c, created)
}

// GetOperatorQualification 资格核查记录详情
// GET /api/v1/qc/operator-qualifications/:id
func (h *ChecklistHandler) GetOperatorQualification(c *gin.Context) {
	o, err := h.svc.GetOperatorQualification(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "记录不存在")
			return
		}
		InternalError(c, "获取记录失败: "+err.Error())
		return
	}
	Success(c, o)
}

// ListOperatorQualifications 资格核查记录列表
// GET /api/v1/qc/operator-qualifications
func (h *ChecklistHandler) ListOperatorQualifications(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.svc.ListOperatorQualifications(c.Request.Context(), page, pageSize, checklistFilters(c))
	if err != nil {
		InternalError(c, "获取记录列表失败: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: items, Pagination: listMeta(page, pageSize, total)})
}
