package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

// Repositories 质检模块数据访问层集合
type Repositories struct {
	WorkInfo       *WorkInfoRepository
	BTBFitment     *BTBFitmentRepository
	DummyTest      *DummyTestRepository
	Disassemble    *DisassembleRepository
	AssemblyAudit  *AssemblyAuditRepository
	NCIssue        *NCIssueRepository
	ESDCompliance  *ESDComplianceRepository
	DustCount      *DustCountRepository
	TestingFAI     *TestingFAIRepository
	OperatorQualif *OperatorQualificationRepository
	DynamicForm    *DynamicFormRepository
}

// NewRepositories 创建数据访问层集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		WorkInfo:       NewWorkInfoRepository(db),
		BTBFitment:     NewBTBFitmentRepository(db),
		DummyTest:      NewDummyTestRepository(db),
		Disassemble:    NewDisassembleRepository(db),
		AssemblyAudit:  NewAssemblyAuditRepository(db),
		NCIssue:        NewNCIssueRepository(db),
		ESDCompliance:  NewESDComplianceRepository(db),
		DustCount:      NewDustCountRepository(db),
		TestingFAI:     NewTestingFAIRepository(db),
		OperatorQualif: NewOperatorQualificationRepository(db),
		DynamicForm:    NewDynamicFormRepository(db),
	}
}

// applyCommonFilters 所有清单共享的工作上下文过滤条件
func applyCommonFilters(query *gorm.DB, filters map[string]interface{}) *gorm.DB {
	if v, ok := filters["emp_id"]; ok && v != "" {
		query = query.Where("emp_id = ?", v)
	}
	if v, ok := filters["shift"]; ok && v != "" {
		query = query.Where("shift = ?", v)
	}
	if v, ok := filters["section"]; ok && v != "" {
		query = query.Where("section = ?", v)
	}
	if v, ok := filters["line"]; ok && v != "" {
		query = query.Where("line = ?", v)
	}
	if v, ok := filters["model"]; ok && v != "" {
		query = query.Where("model = ?", v)
	}
	if v, ok := filters["date"]; ok && v != "" {
		query = query.Where("date = ?", v)
	}
	if v, ok := filters["date_from"]; ok && v != "" {
		query = query.Where("date >= ?", v)
	}
	if v, ok := filters["date_to"]; ok && v != "" {
		query = query.Where("date <= ?", v)
	}
	return query
}
