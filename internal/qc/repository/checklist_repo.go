package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
)

// =============================================================================
// 各巡检清单的数据访问，结构一致：创建、按ID查询、分页列表
// =============================================================================

// BTBFitmentRepository BTB压合检查表数据访问
type BTBFitmentRepository struct {
	db *gorm.DB
}

func NewBTBFitmentRepository(db *gorm.DB) *BTBFitmentRepository {
	return &BTBFitmentRepository{db: db}
}

func (r *BTBFitmentRepository) Create(ctx context.Context, b *entity.BTBFitmentChecksheet) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BTBFitmentRepository) FindByID(ctx context.Context, id string) (*entity.BTBFitmentChecksheet, error) {
	var b entity.BTBFitmentChecksheet
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BTBFitmentRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.BTBFitmentChecksheet, int64, error) {
	var items []entity.BTBFitmentChecksheet
	var total int64

	query := applyCommonFilters(r.db.WithContext(ctx).Model(&entity.BTBFitmentChecksheet{}), filters)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&items).Error
	return items, total, err
}

// DummyTestRepository Dummy测试数据访问
type DummyTestRepository struct {
	db *gorm.DB
}

func NewDummyTestRepository(db *gorm.DB) *DummyTestRepository {
	return &DummyTestRepository{db: db}
}

func (r *DummyTestRepository) Create(ctx context.Context, d *entity.DummyTest) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DummyTestRepository) FindByID(ctx context.Context, id string) (*entity.DummyTest, error) {
	var d entity.DummyTest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DummyTestRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.DummyTest, int64, error) {
	var items []entity.DummyTest
	var total int64

	query := applyCommonFilters(r.db.WithContext(ctx).Model(&entity.DummyTest{}), filters)
	if v, ok := filters["result"]; ok && v != "" {
		query = query.Where("result = ?", v)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&items).Error
	return items, total, err
}

// DisassembleRepository 拆解检查表数据访问
type DisassembleRepository struct {
	db *gorm.DB
}

func NewDisassembleRepository(db *gorm.DB) *DisassembleRepository {
	return &DisassembleRepository{db: db}
}

func (r *DisassembleRepository) Create(ctx context.Context, d *entity.DisassembleChecklist) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DisassembleRepository) FindByID(ctx context.Context, id string) (*entity.DisassembleChecklist, error) {
	var d entity.DisassembleChecklist
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DisassembleRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.DisassembleChecklist, int64, error) {
	var items []entity.DisassembleChecklist
	var total int64

	query := applyCommonFilters(r.db.WithContext(ctx).Model(&entity.DisassembleChecklist{}), filters)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&items).Error
	return items, total, err
}

// AssemblyAuditRepository 组装线审核数据访问
type AssemblyAuditRepository struct {
	db *gorm.DB
}

func NewAssemblyAuditRepository(db *gorm.DB) *AssemblyAuditRepository {
	return &AssemblyAuditRepository{db: db}
}

func (r *AssemblyAuditRepository) Create(ctx context.Context, a *entity.AssemblyAudit) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AssemblyAuditRepository) FindByID(ctx context.Context, id string) (*entity.AssemblyAudit, error) {
	var a entity.AssemblyAudit
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AssemblyAuditRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.AssemblyAudit, int64, error) {
	var items []entity.AssemblyAudit
	var total int64

	query := applyCommonFilters(r.db.WithContext(ctx).Model(&entity.AssemblyAudit{}), filters)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&items).Error
	return items, total, err
}

// ESDComplianceRepository 静电防护检查数据访问
type ESDComplianceRepository struct {
	db *gorm.DB
}

func NewESDComplianceRepository(db *gorm.DB) *ESDComplianceRepository {
	return &ESDComplianceRepository{db: db}
}

func (r *ESDComplianceRepository) Create(ctx context.Context, e *entity.ESDCompliance) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *ESDComplianceRepository) FindByID(ctx context.Context, id string) (*entity.ESDCompliance, error) {
	var e entity.ESDCompliance
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *ESDComplianceRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.ESDCompliance, int64, error) {
	var items []entity.ESDCompliance
	var total int64

	query := applyCommonFilters(r.db.WithContext(ctx).Model(&entity.ESDCompliance{}), filters)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&items).Error
	return items, total, err
}

// DustCountRepository 尘埃粒子计数数据访问
type DustCountRepository struct {
	db *gorm.DB
}

func NewDustCountRepository(db *gorm.DB) *DustCountRepository {
	return &DustCountRepository{db: db}
}

func (r *DustCountRepository) Create(ctx context.Context, d *entity.DustCount) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DustCountRepository) FindByID(ctx context.Context, id string) (*entity.DustCount, error) {
	var d entity.DustCount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DustCountRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.DustCount, int64, error) {
	var items []entity.DustCount
	var total int64

	query := applyCommonFilters(r.db.WithContext(ctx).Model(&entity.DustCount{}), filters)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&items).Error
	return items, total, err
}

// OperatorQualificationRepository 操作员资质检查数据访问
type OperatorQualificationRepository struct {
	db *gorm.DB
}

func NewOperatorQualificationRepository(db *gorm.DB) *OperatorQualificationRepository {
	return &OperatorQualificationRepository{db: db}
}

func (r *OperatorQualificationRepository) Create(ctx context.Context, o *entity.OperatorQualification) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OperatorQualificationRepository) FindByID(ctx context.Context, id string) (*entity.OperatorQualification, error) {
	var o entity.OperatorQualification
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OperatorQualificationRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.OperatorQualification, int64, error) {
	var items []entity.OperatorQualification
	var total int64

	query := applyCommonFilters(r.db.WithContext(ctx).Model(&entity.OperatorQualification{}), filters)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&items).Error
	return items, total, err
}
