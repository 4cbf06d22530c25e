package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
)

// NCIssueRepository 不符合项问题数据访问
// 问题有Open/Close生命周期，支持更新
type NCIssueRepository struct {
	db *gorm.DB
}

func NewNCIssueRepository(db *gorm.DB) *NCIssueRepository {
	return &NCIssueRepository{db: db}
}

func (r *NCIssueRepository) Create(ctx context.Context, n *entity.NCIssue) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NCIssueRepository) FindByID(ctx context.Context, id string) (*entity.NCIssue, error) {
	var n entity.NCIssue
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&n).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *NCIssueRepository) Update(ctx context.Context, n *entity.NCIssue) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *NCIssueRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.NCIssue, int64, error) {
	var items []entity.NCIssue
	var total int64

	query := applyCommonFilters(r.db.WithContext(ctx).Model(&entity.NCIssue{}), filters)
	if v, ok := filters["status"]; ok && v != "" {
		query = query.Where("status = ?", v)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&items).Error
	return items, total, err
}

// CountOpen 统计未关闭的问题数，用于仪表盘
func (r *NCIssueRepository) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.NCIssue{}).
		Where("status = ?", entity.NCStatusOpen).
		Count(&count).Error
	return count, err
}
