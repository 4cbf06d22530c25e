package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
)

// WorkInfoRepository 工作信息数据访问
type WorkInfoRepository struct {
	db *gorm.DB
}

func NewWorkInfoRepository(db *gorm.DB) *WorkInfoRepository {
	return &WorkInfoRepository{db: db}
}

func (r *WorkInfoRepository) Create(ctx context.Context, w *entity.WorkInfo) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WorkInfoRepository) FindByID(ctx context.Context, id string) (*entity.WorkInfo, error) {
	var w entity.WorkInfo
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&w).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

// FindLatestByEmpID 查找某员工当天最近一条工作信息，用于清单表单预填
func (r *WorkInfoRepository) FindLatestByEmpID(ctx context.Context, empID string, date time.Time) (*entity.WorkInfo, error) {
	var w entity.WorkInfo
	err := r.db.WithContext(ctx).
		Where("emp_id = ? AND date = ?", empID, date.Format("2006-01-02")).
		Order("created_at DESC").
		First(&w).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *WorkInfoRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.WorkInfo, int64, error) {
	var items []entity.WorkInfo
	var total int64

	query := applyCommonFilters(r.db.WithContext(ctx).Model(&entity.WorkInfo{}), filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&items).Error
	return items, total, err
}

