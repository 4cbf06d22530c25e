package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/MrSingh0729/transs-flow-final/internal/config"
	"github.com/MrSingh0729/transs-flow-final/internal/larksync"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/repository"
	"github.com/MrSingh0729/transs-flow-final/internal/testutil"
)

func setupFAIService(t *testing.T) *FAIService {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	syncer := larksync.NewSyncer(nil, &config.LarkConfig{}, zap.NewNop())
	return NewFAIService(repos.TestingFAI, syncer, "http://qc.example.com", zap.NewNop())
}

func TestFAICreateGeneratesPublicToken(t *testing.T) {
	svc := setupFAIService(t)
	ctx := context.Background()

	f := &entity.TestingFAI{
		WorkContext:      testWorkContext(),
		FirstArticleType: entity.FAITypeModelChange,
		InspectorName:    "Tester",
	}
	saved, err := svc.Create(ctx, f)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if saved.PublicToken == "" {
		t.Fatal("expected public token")
	}
	if !strings.HasPrefix(saved.PublicURL, "http://qc.example.com/public/fai/") {
		t.Errorf("unexpected public URL: %q", saved.PublicURL)
	}
	if saved.QEConfirmStatus != entity.FAIApprovalPending {
		t.Errorf("status = %q, want PENDING", saved.QEConfirmStatus)
	}

	// 令牌可以免登录取回记录
	got, err := svc.GetByPublicToken(ctx, saved.PublicToken)
	if err != nil {
		t.Fatalf("GetByPublicToken: %v", err)
	}
	if got.ID != saved.ID {
		t.Errorf("got id %q, want %q", got.ID, saved.ID)
	}
}

func TestFAIQEConfirm(t *testing.T) {
	svc := setupFAIService(t)
	ctx := context.Background()

	saved, err := svc.Create(ctx, &entity.TestingFAI{WorkContext: testWorkContext()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// 非法状态
	if _, err := svc.QEConfirm(ctx, saved.PublicToken, "QE Zhang", "MAYBE"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	confirmed, err := svc.QEConfirm(ctx, saved.PublicToken, "QE Zhang", entity.FAIApprovalApproved)
	if err != nil {
		t.Fatalf("QEConfirm: %v", err)
	}
	if confirmed.QEConfirmStatus != entity.FAIApprovalApproved {
		t.Errorf("status = %q, want APPROVED", confirmed.QEConfirmStatus)
	}
	if confirmed.QEConfirmName != "QE Zhang" {
		t.Errorf("confirm name = %q", confirmed.QEConfirmName)
	}
}

func TestFAIQEConfirmUnknownToken(t *testing.T) {
	svc := setupFAIService(t)
	if _, err := svc.QEConfirm(context.Background(), "bogus-token", "QE", entity.FAIApprovalRejected); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFAIQEConfirmByCorrelation(t *testing.T) {
	svc := setupFAIService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &entity.TestingFAI{WorkContext: testWorkContext()}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	confirmed, err := svc.QEConfirmByCorrelation(ctx, "E001", "X670", "2024-03-01", "QE Li", entity.FAIApprovalRejected)
	if err != nil {
		t.Fatalf("QEConfirmByCorrelation: %v", err)
	}
	if confirmed.QEConfirmStatus != entity.FAIApprovalRejected {
		t.Errorf("status = %q, want REJECTED", confirmed.QEConfirmStatus)
	}

	// 工号不匹配
	if _, err := svc.QEConfirmByCorrelation(ctx, "E999", "X670", "", "QE", entity.FAIApprovalApproved); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown correlation, got %v", err)
	}
}

func TestFAIQEConfirmByID(t *testing.T) {
	svc := setupFAIService(t)
	ctx := context.Background()

	saved, err := svc.Create(ctx, &entity.TestingFAI{WorkContext: testWorkContext()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.QEConfirmByID(ctx, saved.ID, "QE Zhang", "MAYBE"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	confirmed, err := svc.QEConfirmByID(ctx, saved.ID, "QE Zhang", entity.FAIApprovalApproved)
	if err != nil {
		t.Fatalf("QEConfirmByID: %v", err)
	}
	if confirmed.QEConfirmStatus != entity.FAIApprovalApproved || confirmed.QEConfirmName != "QE Zhang" {
		t.Fatalf("unexpected confirm result: %+v", confirmed)
	}

	if _, err := svc.QEConfirmByID(ctx, "no-such-id", "QE", entity.FAIApprovalApproved); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
