package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MrSingh0729/transs-flow-final/internal/larksync"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/repository"
)

// DynamicFormService 动态表单业务逻辑
// 管理员定义表单结构，普通用户提交，提交数据同步到表单绑定的Bitable表
type DynamicFormService struct {
	repo   *repository.DynamicFormRepository
	syncer *larksync.Syncer
	logger *zap.Logger
}

func NewDynamicFormService(repo *repository.DynamicFormRepository, syncer *larksync.Syncer, logger *zap.Logger) *DynamicFormService {
	return &DynamicFormService{repo: repo, syncer: syncer, logger: logger}
}

var validFieldTypes = map[string]bool{
	entity.FieldTypeText:     true,
	entity.FieldTypeNumber:   true,
	entity.FieldTypeDate:     true,
	entity.FieldTypeSelect:   true,
	entity.FieldTypeCheckbox: true,
}

func (s *DynamicFormService) CreateForm(ctx context.Context, form *entity.DynamicForm) (*entity.DynamicForm, error) {
	form.ID = newID()
	for i := range form.Fields {
		if !validFieldTypes[form.Fields[i].FieldType] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFieldType, form.Fields[i].FieldType)
		}
		form.Fields[i].ID = newID()
		form.Fields[i].FormID = form.ID
	}

	if err := s.repo.CreateForm(ctx, form); err != nil {
		return nil, err
	}
	s.logger.Info("动态表单已创建",
		zap.String("id", form.ID),
		zap.String("title", form.Title),
		zap.Int("fields", len(form.Fields)))
	return form, nil
}

func (s *DynamicFormService) GetForm(ctx context.Context, id string) (*entity.DynamicForm, error) {
	return s.repo.FindFormByID(ctx, id)
}

func (s *DynamicFormService) ListForms(ctx context.Context, page, pageSize int) ([]entity.DynamicForm, int64, error) {
	return s.repo.FindAllForms(ctx, page, pageSize)
}

func (s *DynamicFormService) DeleteForm(ctx context.Context, id string) error {
	return s.repo.DeleteForm(ctx, id)
}

// Submit 校验必填字段后保存提交，并尽力同步到表单绑定的表
func (s *DynamicFormService) Submit(ctx context.Context, formID, userID string, data entity.JSONB) (*entity.DynamicFormSubmission, error) {
	form, err := s.repo.FindFormByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	for _, field := range form.Fields {
		if !field.Required {
			continue
		}
		value, ok := data[field.Label]
		if !ok || value == nil || value == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, field.Label)
		}
	}

	sub := &entity.DynamicFormSubmission{
		ID:            newID(),
		FormID:        form.ID,
		SubmittedByID: userID,
		Data:          data,
	}
	if err := s.repo.CreateSubmission(ctx, sub); err != nil {
		return nil, err
	}
	s.logger.Info("动态表单提交已保存",
		zap.String("form_id", form.ID),
		zap.String("submission_id", sub.ID))

	if serr := s.syncer.SyncDynamicSubmission(ctx, form, sub); serr != nil {
		return sub, fmt.Errorf("%w: %v", ErrSyncFailed, serr)
	}
	return sub, nil
}

func (s *DynamicFormService) ListSubmissions(ctx context.Context, formID string, page, pageSize int) ([]entity.DynamicFormSubmission, int64, error) {
	return s.repo.FindSubmissions(ctx, formID, page, pageSize)
}
