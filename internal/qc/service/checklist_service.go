package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/MrSingh0729/transs-flow-final/internal/larksync"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/repository"
)

// =============================================================================
// ChecklistService — 各巡检清单的业务逻辑
// 统一流程：校验 → 本地保存 → 显式调用同步器（失败只记日志）
// =============================================================================

type ChecklistService struct {
	repos  *repository.Repositories
	syncer *larksync.Syncer
	logger *zap.Logger
}

func NewChecklistService(repos *repository.Repositories, syncer *larksync.Syncer, logger *zap.Logger) *ChecklistService {
	return &ChecklistService{repos: repos, syncer: syncer, logger: logger}
}

// --- BTB压合检查表 ---

// CreateBTBFitment 合计字段在保存时由实体钩子重算，客户端提交的合计值被忽略
func (s *ChecklistService) CreateBTBFitment(ctx context.Context, b *entity.BTBFitmentChecksheet) (*entity.BTBFitmentChecksheet, error) {
	b.ID = newID()
	if b.Frequency == "" {
		b.Frequency = "Per Hour"
	}
	if err := s.repos.BTBFitment.Create(ctx, b); err != nil {
		return nil, err
	}
	s.logger.Info("BTB压合检查表已保存", zap.String("id", b.ID), zap.String("emp_id", b.EmpID))
	if serr := s.syncer.SyncBTBFitment(ctx, b); serr != nil {
		return b, fmt.Errorf("%w: %v", ErrSyncFailed, serr)
	}
	return b, nil
}

func (s *ChecklistService) GetBTBFitment(ctx context.Context, id string) (*entity.BTBFitmentChecksheet, error) {
	return s.repos.BTBFitment.FindByID(ctx, id)
}

func (s *ChecklistService) ListBTBFitment(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.BTBFitmentChecksheet, int64, error) {
	return s.repos.BTBFitment.FindAll(ctx, page, pageSize, filters)
}

// --- Dummy测试 ---

func (s *ChecklistService) CreateDummyTest(ctx context.Context, d *entity.DummyTest) (*entity.DummyTest, error) {
	d.ID = newID()
	if err := s.repos.DummyTest.Create(ctx, d); err != nil {
		return nil, err
	}
	s.logger.Info("Dummy测试已保存", zap.String("id", d.ID), zap.String("result", d.Result))
	if serr := s.syncer.SyncDummyTest(ctx, d); serr != nil {
		return d, fmt.Errorf("%w: %v", ErrSyncFailed, serr)
	}
	return d, nil
}

func (s *ChecklistService) GetDummyTest(ctx context.Context, id string) (*entity.DummyTest, error) {
	return s.repos.DummyTest.FindByID(ctx, id)
}

func (s *ChecklistService) ListDummyTests(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.DummyTest, int64, error) {
	return s.repos.DummyTest.FindAll(ctx, page, pageSize, filters)
}

// --- 拆解检查表 ---

// CreateDisassemble 任一检查项为Not OK时，必须有证据照片或缺陷原因分析
func (s *ChecklistService) CreateDisassemble(ctx context.Context, d *entity.DisassembleChecklist) (*entity.DisassembleChecklist, error) {
	hasNotOK := false
	for _, answer := range d.CheckItems() {
		if answer == entity.CheckNotOK {
			hasNotOK = true
			break
		}
	}
	if hasNotOK && !d.HasEvidencePhoto() && d.DefectCause == "" {
		return nil, ErrEvidenceRequired
	}

	d.ID = newID()
	if err := s.repos.Disassemble.Create(ctx, d); err != nil {
		return nil, err
	}
	s.logger.Info("拆解检查表已保存", zap.String("id", d.ID), zap.String("model", d.Model))
	if serr := s.syncer.SyncDisassemble(ctx, d); serr != nil {
		return d, fmt.Errorf("%w: %v", ErrSyncFailed, serr)
	}
	return d, nil
}

func (s *ChecklistService) GetDisassemble(ctx context.Context, id string) (*entity.DisassembleChecklist, error) {
	return s.repos.Disassemble.FindByID(ctx, id)
}

func (s *ChecklistService) ListDisassembles(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.DisassembleChecklist, int64, error) {
	return s.repos.Disassemble.FindAll(ctx, page, pageSize, filters)
}

// --- 组装线审核 ---

// CreateAssemblyAudit 任一检查项为Not OK时，必须有证据照片或缺陷原因分析
func (s *ChecklistService) CreateAssemblyAudit(ctx context.Context, a *entity.AssemblyAudit) (*entity.AssemblyAudit, error) {
	for _, answer := range a.CheckItems() {
		if answer == entity.CheckNotOK {
			if !a.HasEvidencePhoto() && a.DefectCause == "" {
				return nil, ErrEvidenceRequired
			}
			break
		}
	}

	a.ID = newID()
	if err := s.repos.AssemblyAudit.Create(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Info("组装线审核已保存", zap.String("id", a.ID), zap.String("line", a.Line))
	if serr := s.syncer.SyncAssemblyAudit(ctx, a); serr != nil {
		return a, fmt.Errorf("%w: %v", ErrSyncFailed, serr)
	}
	return a, nil
}

func (s *ChecklistService) GetAssemblyAudit(ctx context.Context, id string) (*entity.AssemblyAudit, error) {
	return s.repos.AssemblyAudit.FindByID(ctx, id)
}

func (s *ChecklistService) ListAssemblyAudits(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.AssemblyAudit, int64, error) {
	return s.repos.AssemblyAudit.FindAll(ctx, page, pageSize, filters)
}

// --- 不符合项问题追踪 ---

func (s *ChecklistService) CreateNCIssue(ctx context.Context, n *entity.NCIssue) (*entity.NCIssue, error) {
	n.ID = newID()
	if n.Status == "" {
		n.Status = entity.NCStatusOpen
	}
	if n.Time.IsZero() {
		n.Time = time.Now()
	}
	if err := s.repos.NCIssue.Create(ctx, n); err != nil {
		return nil, err
	}
	s.logger.Info("不符合项问题已保存", zap.String("id", n.ID), zap.String("stage", n.Stage))
	if serr := s.syncer.SyncNCIssue(ctx, n); serr != nil {
		return n, fmt.Errorf("%w: %v", ErrSyncFailed, serr)
	}
	return n, nil
}

// CloseNCIssue 关闭问题并记录关闭时间
func (s *ChecklistService) CloseNCIssue(ctx context.Context, id, solution string) (*entity.NCIssue, error) {
	n, err := s.repos.NCIssue.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.Status == entity.NCStatusClose {
		return nil, ErrInvalidStatus
	}
	now := time.Now()
	n.Status = entity.NCStatusClose
	n.CloseTime = &now
	if solution != "" {
		n.Solution = solution
	}
	if err := s.repos.NCIssue.Update(ctx, n); err != nil {
		return nil, err
	}
	s.logger.Info("不符合项问题已关闭", zap.String("id", n.ID))
	return n, nil
}

func (s *ChecklistService) GetNCIssue(ctx context.Context, id string) (*entity.NCIssue, error) {
	return s.repos.NCIssue.FindByID(ctx, id)
}

func (s *ChecklistService) ListNCIssues(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.NCIssue, int64, error) {
	return s.repos.NCIssue.FindAll(ctx, page, pageSize, filters)
}

// --- 静电防护合规 ---

func (s *ChecklistService) CreateESDCompliance(ctx context.Context, e *entity.ESDCompliance) (*entity.ESDCompliance, error) {
	e.ID = newID()
	if err := s.repos.ESDCompliance.Create(ctx, e); err != nil {
		return nil, err
	}
	s.logger.Info("静电防护检查已保存", zap.String("id", e.ID), zap.String("line", e.Line))
	if serr := s.syncer.SyncESDCompliance(ctx, e); serr != nil {
		return e, fmt.Errorf("%w: %v", ErrSyncFailed, serr)
	}
	return e, nil
}

func (s *ChecklistService) GetESDCompliance(ctx context.Context, id string) (*entity.ESDCompliance, error) {
	return s.repos.ESDCompliance.FindByID(ctx, id)
}

func (s *ChecklistService) ListESDCompliances(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.ESDCompliance, int64, error) {
	return s.repos.ESDCompliance.FindAll(ctx, page, pageSize, filters)
}

// --- 尘埃粒子计数 ---

func (s *ChecklistService) CreateDustCount(ctx context.Context, d *entity.DustCount) (*entity.DustCount, error) {
	d.ID = newID()
	if err := s.repos.DustCount.Create(ctx, d); err != nil {
		return nil, err
	}
	s.logger.Info("尘埃粒子计数已保存", zap.String("id", d.ID))
	if serr := s.syncer.SyncDustCount(ctx, d); serr != nil {
		return d, fmt.Errorf("%w: %v", ErrSyncFailed, serr)
	}
	return d, nil
}

func (s *ChecklistService) GetDustCount(ctx context.Context, id string) (*entity.DustCount, error) {
	return s.repos.DustCount.FindByID(ctx, id)
}

func (s *ChecklistService) ListDustCounts(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.DustCount, int64, error) {
	return s.repos.DustCount.FindAll(ctx, page, pageSize, filters)
}

// --- 操作员资质检查 ---

// CreateOperatorQualification 该清单不同步到远端表格，仅本地留存
func (s *ChecklistService) CreateOperatorQualification(ctx context.Context, o *entity.OperatorQualification) (*entity.OperatorQualification, error) {
	o.ID = newID()
	if err := s.repos.OperatorQualif.Create(ctx, o); err != nil {
		return nil, err
	}
	s.logger.Info("操作员资质检查已保存", zap.String("id", o.ID), zap.String("emp_id", o.EmpID))
	return o, nil
}

func (s *ChecklistService) GetOperatorQualification(ctx context.Context, id string) (*entity.OperatorQualification, error) {
	return s.repos.OperatorQualif.FindByID(ctx, id)
}

func (s *ChecklistService) ListOperatorQualifications(ctx context.Context, page, pageSize int, filters map[string]interface{}) ([]entity.OperatorQualification, int64, error) {
	return s.repos.OperatorQualif.FindAll(ctx, page, pageSize, filters)
}
