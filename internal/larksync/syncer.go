package larksync

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/MrSingh0729/transs-flow-final/internal/config"
	qcentity "github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/shared/lark"
)

// =============================================================================
// Syncer — 本地记录到Lark多维表格的尽力而为同步
// 同步由各service在本地保存成功后显式调用，失败只记录日志，
// 永远不影响本地数据
// =============================================================================

// Bitable 多维表格操作接口，测试时可用桩实现替换
type Bitable interface {
	CreateRecord(ctx context.Context, appToken, tableID string, fields map[string]interface{}) (*lark.BitableRecord, error)
	ListRecords(ctx context.Context, appToken, tableID string) ([]lark.BitableRecord, error)
	UpdateRecord(ctx context.Context, appToken, tableID, recordID string, fields map[string]interface{}) (*lark.BitableRecord, error)
}

// Syncer 同步器
type Syncer struct {
	bitable  Bitable
	appToken string
	tables   config.LarkTablesConfig
	logger   *zap.Logger
}

// NewSyncer 创建同步器。bitable为nil时所有同步调用直接跳过
func NewSyncer(bitable Bitable, cfg *config.LarkConfig, logger *zap.Logger) *Syncer {
	return &Syncer{
		bitable:  bitable,
		appToken: cfg.BitableAppToken,
		tables:   cfg.Tables,
		logger:   logger,
	}
}

// create 通用的创建记录同步，返回分类后的同步错误
func (s *Syncer) create(ctx context.Context, op, tableID string, fields map[string]interface{}) error {
	if s.bitable == nil {
		return nil
	}
	if tableID == "" {
		s.logger.Warn("多维表格table_id未配置，跳过同步", zap.String("op", op))
		return nil
	}

	record, err := s.bitable.CreateRecord(ctx, s.appToken, tableID, fields)
	if err != nil {
		serr := classify(op, err)
		s.logger.Warn("同步到多维表格失败",
			zap.String("op", op),
			zap.String("kind", serr.Kind.String()),
			zap.Error(err))
		return serr
	}

	s.logger.Info("已同步到多维表格",
		zap.String("op", op),
		zap.String("record_id", record.RecordID))
	return nil
}

func (s *Syncer) SyncWorkInfo(ctx context.Context, w *qcentity.WorkInfo) error {
	return s.create(ctx, "work_info", s.tables.WorkInfo, mapWorkInfo(w))
}

func (s *Syncer) SyncBTBFitment(ctx context.Context, b *qcentity.BTBFitmentChecksheet) error {
	return s.create(ctx, "btb_fitment", s.tables.BTBFitment, mapBTBFitment(b))
}

func (s *Syncer) SyncDummyTest(ctx context.Context, d *qcentity.DummyTest) error {
	return s.create(ctx, "dummy_test", s.tables.DummyTest, mapDummyTest(d))
}

func (s *Syncer) SyncDisassemble(ctx context.Context, d *qcentity.DisassembleChecklist) error {
	return s.create(ctx, "disassemble", s.tables.Disassemble, mapDisassemble(d))
}

func (s *Syncer) SyncAssemblyAudit(ctx context.Context, a *qcentity.AssemblyAudit) error {
	return s.create(ctx, "assembly_audit", s.tables.AssemblyAudit, mapAssemblyAudit(a))
}

func (s *Syncer) SyncNCIssue(ctx context.Context, n *qcentity.NCIssue) error {
	return s.create(ctx, "nc_issue", s.tables.NCIssueTracking, mapNCIssue(n))
}

func (s *Syncer) SyncESDCompliance(ctx context.Context, e *qcentity.ESDCompliance) error {
	return s.create(ctx, "esd_compliance", s.tables.ESDCompliance, mapESDCompliance(e))
}

func (s *Syncer) SyncDustCount(ctx context.Context, d *qcentity.DustCount) error {
	return s.create(ctx, "dust_count", s.tables.DustCount, mapDustCount(d))
}

func (s *Syncer) SyncTestingFAI(ctx context.Context, f *qcentity.TestingFAI) error {
	return s.create(ctx, "testing_fai", s.tables.TestingFAI, mapTestingFAI(f))
}

// SyncDynamicSubmission 把动态表单提交同步到表单绑定的表
// 提交数据的键即远端列名，时间值统一转为毫秒时间戳
func (s *Syncer) SyncDynamicSubmission(ctx context.Context, form *qcentity.DynamicForm, sub *qcentity.DynamicFormSubmission) error {
	fields := make(map[string]interface{}, len(sub.Data))
	for key, value := range sub.Data {
		if t, ok := value.(time.Time); ok {
			fields[key] = TimeToMillis(t)
			continue
		}
		fields[key] = value
	}
	return s.create(ctx, "dynamic_form", form.LarkBitableTableID, fields)
}

// UpdateTestingFAI QE确认后回写远端记录
// 远端没有本地记录ID，按"Public Token"列逐条比对找到对应记录再更新
func (s *Syncer) UpdateTestingFAI(ctx context.Context, f *qcentity.TestingFAI) error {
	const op = "testing_fai_update"
	if s.bitable == nil {
		return nil
	}
	tableID := s.tables.TestingFAI
	if tableID == "" {
		s.logger.Warn("多维表格table_id未配置，跳过同步", zap.String("op", op))
		return nil
	}

	records, err := s.bitable.ListRecords(ctx, s.appToken, tableID)
	if err != nil {
		serr := classify(op, err)
		s.logger.Warn("拉取多维表格记录失败",
			zap.String("op", op),
			zap.String("kind", serr.Kind.String()),
			zap.Error(err))
		return serr
	}

	token := strings.TrimSpace(f.PublicToken)
	var recordID string
	for _, record := range records {
		remote, _ := record.Fields["Public Token"].(string)
		if strings.TrimSpace(remote) == token {
			recordID = record.RecordID
			break
		}
	}
	if recordID == "" {
		serr := &SyncError{Kind: KindCorrelationNotFound, Op: op}
		s.logger.Warn("远端未找到对应记录",
			zap.String("op", op),
			zap.String("public_token", token))
		return serr
	}

	if _, err := s.bitable.UpdateRecord(ctx, s.appToken, tableID, recordID, mapTestingFAIUpdate(f)); err != nil {
		serr := classify(op, err)
		s.logger.Warn("更新多维表格记录失败",
			zap.String("op", op),
			zap.String("kind", serr.Kind.String()),
			zap.Error(err))
		return serr
	}

	s.logger.Info("已更新多维表格记录",
		zap.String("op", op),
		zap.String("record_id", recordID))
	return nil
}
