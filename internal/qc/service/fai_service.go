package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MrSingh0729/transs-flow-final/internal/larksync"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/repository"
)

// FAIService 首件检验业务逻辑
// 创建时生成公开确认令牌，QE通过免登录链接或Lark回调写回确认结果
type FAIService struct {
	repo    *repository.TestingFAIRepository
	syncer  *larksync.Syncer
	baseURL string // 对外访问地址，拼接公开确认链接
	logger  *zap.Logger
}

func NewFAIService(repo *repository.TestingFAIRepository, syncer *larksync.Syncer, baseURL string, logger *zap.Logger) *FAIService {
	return &FAIService{repo: repo, syncer: syncer, baseURL: baseURL, logger: logger}
}

func (s *FAIService) Create(ctx context.Context, f *entity.TestingFAI) (*entity.TestingFAI, error) {
	f.ID = newID()
	f.PublicToken = uuid.New().String()
	f.PublicURL = fmt.Sprintf("%s/public/fai/%s", s.baseURL, f.PublicToken)
	if f.QEConfirmStatus == "" {
		f.QEConfirmStatus = entity.FAIApprovalPending
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	s.logger.Info("首件检验已保存",
		zap.String("id", f.ID),
		zap.String("model", f.Model),
		zap.String("public_token", f.PublicToken))

	if serr := s.syncer.SyncTestingFAI(ctx, f); serr != nil {
		return f, fmt.Errorf("%w: %v", ErrSyncFailed, serr)
	}
	return f, nil
}

func (s *FAIService) Get(ctx context.Context, id string) (*entity.TestingFAI, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByPublicToken 公开确认页面按令牌查看
func (s *FAIService) GetByPublicToken(ctx context.Context, token string) (*entity.TestingFAI, error) {
	return s.repo.FindByPublicToken(ctx, token)
}

func (s *FAIService) List(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.TestingFAI, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize, filters)
}

// QEConfirm QE确认首件结果，本地更新后回写远端表格
func (s *FAIService) QEConfirm(ctx context.Context, token, confirmName, status string) (*entity.TestingFAI, error) {
	if status != entity.FAIApprovalApproved && status != entity.FAIApprovalRejected {
		return nil, ErrInvalidStatus
	}

	f, err := s.repo.FindByPublicToken(ctx, token)
	if err != nil {
		return nil, err
	}

	f.QEConfirmName = confirmName
	f.QEConfirmStatus = status
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	s.logger.Info("QE确认已记录",
		zap.String("id", f.ID),
		zap.String("status", status),
		zap.String("qe", confirmName))

	if serr := s.syncer.UpdateTestingFAI(ctx, f); serr != nil {
		return f, fmt.Errorf("%w: %v", ErrSyncFailed, serr)
	}
	return f, nil
}

// QEConfirmByID QE登录系统后在站内确认，按记录ID定位
func (s *FAIService) QEConfirmByID(ctx context.Context, id, confirmName, status string) (*entity.TestingFAI, error) {
	if status != entity.FAIApprovalApproved && status != entity.FAIApprovalRejected {
		return nil, ErrInvalidStatus
	}

	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	f.QEConfirmName = confirmName
	f.QEConfirmStatus = status
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	s.logger.Info("QE确认已记录",
		zap.String("id", f.ID),
		zap.String("status", status),
		zap.String("qe", confirmName))

	if serr := s.syncer.UpdateTestingFAI(ctx, f); serr != nil {
		return f, fmt.Errorf("%w: %v", ErrSyncFailed, serr)
	}
	return f, nil
}

// QEConfirmByCorrelation Lark自动化流程回传时按工号+机型+日期定位记录
// 命中多条时取最新一条
func (s *FAIService) QEConfirmByCorrelation(ctx context.Context, empID, model, date, confirmName, status string) (*entity.TestingFAI, error) {
	if status != entity.FAIApprovalApproved && status != entity.FAIApprovalRejected {
		return nil, ErrInvalidStatus
	}

	filters := map[string]interface{}{
		"emp_id": empID,
		"model":  model,
	}
	if date != "" {
		filters["date"] = date
	}
	items, _, err := s.repo.FindAll(ctx, 1, 1, filters)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, repository.ErrNotFound
	}

	f := &items[0]
	f.QEConfirmName = confirmName
	f.QEConfirmStatus = status
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	s.logger.Info("QE确认已通过回调记录",
		zap.String("id", f.ID),
		zap.String("emp_id", empID),
		zap.String("model", model),
		zap.String("status", status))

	if serr := s.syncer.UpdateTestingFAI(ctx, f); serr != nil {
		return f, fmt.Errorf("%w: %v", ErrSyncFailed, serr)
	}
	return f, nil
}
