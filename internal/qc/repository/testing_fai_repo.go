package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
)

// TestingFAIRepository 测试段首件检验数据访问
type TestingFAIRepository struct {
	db *gorm.DB
}

func NewTestingFAIRepository(db *gorm.DB) *TestingFAIRepository {
	return &TestingFAIRepository{db: db}
}

func (r *TestingFAIRepository) Create(ctx context.Context, f *entity.TestingFAI) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *TestingFAIRepository) FindByID(ctx context.Context, id string) (*entity.TestingFAI, error) {
	var f entity.TestingFAI
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindByPublicToken 按公开令牌查找，QE免登录确认使用
func (r *TestingFAIRepository) FindByPublicToken(ctx context.Context, token string) (*entity.TestingFAI, error) {
	var f entity.TestingFAI
	err := r.db.WithContext(ctx).Where("public_token = ?", token).First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *TestingFAIRepository) Update(ctx context.Context, f *entity.TestingFAI) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *TestingFAIRepository) FindAll(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.TestingFAI, int64, error) {
	var items []entity.TestingFAI
	var total int64

	query := applyCommonFilters(r.db.WithContext(ctx).Model(&entity.TestingFAI{}), filters)
	if v, ok := filters["qe_confirm_status"]; ok && v != "" {
		query = query.Where("qe_confirm_status = ?", v)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	err := query.Order("date DESC, created_at DESC").Offset(offset).Limit(pageSize).Find(&items).Error
	return items, total, err
}
