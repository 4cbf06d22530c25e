package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MrSingh0729/transs-flow-final/internal/larksync"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/repository"
)

// WorkInfoService 工作信息业务逻辑
type WorkInfoService struct {
	repo   *repository.WorkInfoRepository
	syncer *larksync.Syncer
	logger *zap.Logger
}

func NewWorkInfoService(repo *repository.WorkInfoRepository, syncer *larksync.Syncer, logger *zap.Logger) *WorkInfoService {
	return &WorkInfoService{repo: repo, syncer: syncer, logger: logger}
}

// Create 保存工作信息，本地保存成功后尽力同步到多维表格
// 同步失败不影响本地记录
func (s *WorkInfoService) Create(ctx context.Context, w *entity.WorkInfo) (*entity.WorkInfo, error) {
	w.ID = newID()
	if w.Shift == "" {
		w.Shift = entity.ShiftDay
	}

	if err := s.repo.Create(ctx, w); err != nil {
		return nil, err
	}

	s.logger.Info("工作信息已保存",
		zap.String("id", w.ID),
		zap.String("emp_id", w.EmpID),
		zap.String("model", w.Model))

	if serr := s.syncer.SyncWorkInfo(ctx, w); serr != nil {
		return w, fmt.Errorf("%w: %v", ErrSyncFailed, serr)
	}
	return w, nil
}

func (s *WorkInfoService) Get(ctx context.Context, id string) (*entity.WorkInfo, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *WorkInfoService) List(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.WorkInfo, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize, filters)
}

// Latest 某员工当天最近一条工作信息，清单表单预填使用
func (s *WorkInfoService) Latest(ctx context.Context, empID string) (*entity.WorkInfo, error) {
	return s.repo.FindLatestByEmpID(ctx, empID, nowFactoryDate())
}
