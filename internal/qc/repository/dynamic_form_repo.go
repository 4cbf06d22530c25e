package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
)

// DynamicFormRepository 动态表单及提交数据访问
type DynamicFormRepository struct {
	db *gorm.DB
}

func NewDynamicFormRepository(db *gorm.DB) *DynamicFormRepository {
	return &DynamicFormRepository{db: db}
}

// CreateForm 在事务中创建表单及其字段定义
func (r *DynamicFormRepository) CreateForm(ctx context.Context, form *entity.DynamicForm) error {
	return r.db.WithContext(ctx).Create(form).Error
}

func (r *DynamicFormRepository) FindFormByID(ctx context.Context, id string) (*entity.DynamicForm, error) {
	var form entity.DynamicForm
	err := r.db.WithContext(ctx).
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("field_order ASC")
		}).
		Where("id = ?", id).First(&form).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &form, nil
}

func (r *DynamicFormRepository) FindAllForms(ctx context.Context, page, pageSize int) ([]entity.DynamicForm, int64, error) {
	var forms []entity.DynamicForm
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.DynamicForm{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	err := query.Preload("Fields", func(db *gorm.DB) *gorm.DB {
		return db.Order("field_order ASC")
	}).Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&forms).Error
	return forms, total, err
}

func (r *DynamicFormRepository) DeleteForm(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("form_id = ?", id).Delete(&entity.DynamicFormField{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entity.DynamicForm{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *DynamicFormRepository) CreateSubmission(ctx context.Context, sub *entity.DynamicFormSubmission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *DynamicFormRepository) FindSubmissions(ctx context.Context, formID string, page, pageSize int) ([]entity.DynamicFormSubmission, int64, error) {
	var subs []entity.DynamicFormSubmission
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.DynamicFormSubmission{}).Where("form_id = ?", formID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&subs).Error
	return subs, total, err
}
