package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/MrSingh0729/transs-flow-final/internal/config"
	"github.com/MrSingh0729/transs-flow-final/internal/larksync"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/repository"
	"github.com/MrSingh0729/transs-flow-final/internal/testutil"
)

func setupChecklistService(t *testing.T) *ChecklistService {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	syncer := larksync.NewSyncer(nil, &config.LarkConfig{}, zap.NewNop())
	return NewChecklistService(repos, syncer, zap.NewNop())
}

func testWorkContext() entity.WorkContext {
	return entity.WorkContext{
		Date:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Shift: entity.ShiftDay,
		EmpID: "E001",
		Name:  "Tester",
		Line:  "L1",
		Model: "X670",
	}
}

func TestCreateDisassembleRejectsNotOKWithoutEvidence(t *testing.T) {
	svc := setupChecklistService(t)
	ctx := context.Background()

	d := &entity.DisassembleChecklist{
		WorkContext: testWorkContext(),
		ColorMatch:  entity.CheckNotOK,
	}
	if _, err := svc.CreateDisassemble(ctx, d); !errors.Is(err, ErrEvidenceRequired) {
		t.Fatalf("expected ErrEvidenceRequired, got %v", err)
	}
}

func TestCreateDisassembleNotOKWithPhoto(t *testing.T) {
	svc := setupChecklistService(t)
	ctx := context.Background()

	d := &entity.DisassembleChecklist{
		WorkContext: testWorkContext(),
		ScrewLoose:  entity.CheckNotOK,
		ScrewPhoto:  "/evidence/2024/03/abc123.jpg",
	}
	saved, err := svc.CreateDisassemble(ctx, d)
	if err != nil {
		t.Fatalf("CreateDisassemble: %v", err)
	}
	if saved.ID == "" {
		t.Error("expected generated ID")
	}
}

func TestCreateDisassembleNotOKWithDefectCause(t *testing.T) {
	svc := setupChecklistService(t)
	ctx := context.Background()

	d := &entity.DisassembleChecklist{
		WorkContext: testWorkContext(),
		MicSolder:   entity.CheckNotOK,
		DefectCause: "焊点虚焊，回流焊温度偏低",
	}
	if _, err := svc.CreateDisassemble(ctx, d); err != nil {
		t.Fatalf("CreateDisassemble: %v", err)
	}
}

func TestCreateDisassembleAllOK(t *testing.T) {
	svc := setupChecklistService(t)
	ctx := context.Background()

	d := &entity.DisassembleChecklist{
		WorkContext: testWorkContext(),
		ColorMatch:  entity.CheckOK,
		ScrewLoose:  entity.CheckOK,
	}
	if _, err := svc.CreateDisassemble(ctx, d); err != nil {
		t.Fatalf("CreateDisassemble: %v", err)
	}
}

func TestCreateAssemblyAuditEvidenceRule(t *testing.T) {
	svc := setupChecklistService(t)
	ctx := context.Background()

	a := &entity.AssemblyAudit{
		WorkContext:  testWorkContext(),
		MachEPACheck: entity.CheckNotOK,
	}
	if _, err := svc.CreateAssemblyAudit(ctx, a); !errors.Is(err, ErrEvidenceRequired) {
		t.Fatalf("expected ErrEvidenceRequired, got %v", err)
	}

	a.DefectCause = "EPA接地线松脱"
	if _, err := svc.CreateAssemblyAudit(ctx, a); err != nil {
		t.Fatalf("CreateAssemblyAudit with defect cause: %v", err)
	}

	b := &entity.AssemblyAudit{
		WorkContext:    testWorkContext(),
		Env5S:          entity.CheckNotOK,
		EvidencePhoto1: "/evidence/2024/03/5s.jpg",
	}
	if _, err := svc.CreateAssemblyAudit(ctx, b); err != nil {
		t.Fatalf("CreateAssemblyAudit with photo: %v", err)
	}
}

func TestNCIssueLifecycle(t *testing.T) {
	svc := setupChecklistService(t)
	ctx := context.Background()

	n := &entity.NCIssue{
		WorkContext: testWorkContext(),
		Stage:       "Assembly",
		Issue:       "屏幕压伤",
	}
	saved, err := svc.CreateNCIssue(ctx, n)
	if err != nil {
		t.Fatalf("CreateNCIssue: %v", err)
	}
	if saved.Status != entity.NCStatusOpen {
		t.Errorf("status = %q, want Open", saved.Status)
	}
	if saved.Time.IsZero() {
		t.Error("expected Time defaulted to now")
	}

	closed, err := svc.CloseNCIssue(ctx, saved.ID, "更换治具并复查前后50台")
	if err != nil {
		t.Fatalf("CloseNCIssue: %v", err)
	}
	if closed.Status != entity.NCStatusClose {
		t.Errorf("status = %q, want Close", closed.Status)
	}
	if closed.CloseTime == nil {
		t.Error("expected CloseTime set")
	}
	if closed.Solution != "更换治具并复查前后50台" {
		t.Errorf("solution = %q", closed.Solution)
	}

	// 重复关闭
	if _, err := svc.CloseNCIssue(ctx, saved.ID, ""); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus on double close, got %v", err)
	}
}

func TestCloseNCIssueNotFound(t *testing.T) {
	svc := setupChecklistService(t)
	if _, err := svc.CloseNCIssue(context.Background(), "no-such-id", ""); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListNCIssuesStatusFilter(t *testing.T) {
	svc := setupChecklistService(t)
	ctx := context.Background()

	a, _ := svc.CreateNCIssue(ctx, &entity.NCIssue{WorkContext: testWorkContext(), Issue: "问题A"})
	if _, err := svc.CreateNCIssue(ctx, &entity.NCIssue{WorkContext: testWorkContext(), Issue: "问题B"}); err != nil {
		t.Fatalf("CreateNCIssue: %v", err)
	}
	if _, err := svc.CloseNCIssue(ctx, a.ID, "done"); err != nil {
		t.Fatalf("CloseNCIssue: %v", err)
	}

	open, total, err := svc.ListNCIssues(ctx, 1, 20, map[string]interface{}{"status": entity.NCStatusOpen})
	if err != nil {
		t.Fatalf("ListNCIssues: %v", err)
	}
	if total != 1 || len(open) != 1 {
		t.Fatalf("expected 1 open issue, got total=%d len=%d", total, len(open))
	}
	if open[0].Issue != "问题B" {
		t.Errorf("unexpected open issue: %q", open[0].Issue)
	}
}

func TestCreateDummyTestPersists(t *testing.T) {
	svc := setupChecklistService(t)
	ctx := context.Background()

	created, err := svc.CreateDummyTest(ctx, &entity.DummyTest{
		WorkContext: testWorkContext(),
		Area:        "Assembly Line 3",
		TestStage:   "Pre-MP",
		TestItem:    "Drop Test",
		Result:      entity.ResultPass,
	})
	if err != nil {
		t.Fatalf("CreateDummyTest: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated ID")
	}

	got, err := svc.GetDummyTest(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetDummyTest: %v", err)
	}
	if got.TestItem != "Drop Test" || got.Result != entity.ResultPass {
		t.Fatalf("unexpected record: %+v", got)
	}

	_, total, err := svc.ListDummyTests(ctx, 1, 20, map[string]interface{}{"emp_id": "E001"})
	if err != nil {
		t.Fatalf("ListDummyTests: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 record, got %d", total)
	}
}
