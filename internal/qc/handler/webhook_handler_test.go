package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MrSingh0729/transs-flow-final/internal/config"
	"github.com/MrSingh0729/transs-flow-final/internal/larksync"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/repository"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/service"
	"github.com/MrSingh0729/transs-flow-final/internal/testutil"
)

func setupWebhookTest(t *testing.T) (*gin.Engine, *service.FAIService) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	syncer := larksync.NewSyncer(nil, &config.LarkConfig{}, zap.NewNop())
	faiSvc := service.NewFAIService(repos.TestingFAI, syncer, "http://qc.example.com", zap.NewNop())
	h := NewWebhookHandler(faiSvc, zap.NewNop())

	router := testutil.SetupRouter()
	router.POST("/api/v1/webhooks/lark", h.Handle)
	return router, faiSvc
}

func TestWebhookEchoesChallenge(t *testing.T) {
	router, _ := setupWebhookTest(t)

	w := testutil.DoRequest(router, "POST", "/api/v1/webhooks/lark", map[string]interface{}{
		"type":      "url_verification",
		"challenge": "xyz789",
		"token":     "verify-token",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["challenge"] != "xyz789" {
		t.Errorf("challenge = %v, want xyz789", resp["challenge"])
	}
}

func TestWebhookIgnoresUnknownEvents(t *testing.T) {
	router, _ := setupWebhookTest(t)

	w := testutil.DoRequest(router, "POST", "/api/v1/webhooks/lark", map[string]interface{}{
		"schema": "2.0",
		"header": map[string]interface{}{"event_type": "im.message.receive_v1"},
		"event":  map[string]interface{}{},
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 0 {
		t.Errorf("code = %v, want 0", resp["code"])
	}
}

func TestWebhookQEConfirmUpdatesRecord(t *testing.T) {
	router, faiSvc := setupWebhookTest(t)
	ctx := context.Background()

	saved, err := faiSvc.Create(ctx, &entity.TestingFAI{
		WorkContext: entity.WorkContext{
			EmpID: "E001",
			Model: "X670",
		},
	})
	if err != nil {
		t.Fatalf("Create FAI: %v", err)
	}

	w := testutil.DoRequest(router, "POST", "/api/v1/webhooks/lark", map[string]interface{}{
		"schema": "2.0",
		"header": map[string]interface{}{"event_type": "qa.fai.qe_confirm"},
		"event": map[string]interface{}{
			"emp_id":          "E001",
			"model":           "X670",
			"qe_confirm_name": "QE Auto",
			"status":          "APPROVED",
		},
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	got, err := faiSvc.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.QEConfirmStatus != entity.FAIApprovalApproved || got.QEConfirmName != "QE Auto" {
		t.Errorf("record not updated: status=%q name=%q", got.QEConfirmStatus, got.QEConfirmName)
	}
}

func TestWebhookQEConfirmNoMatchStillOK(t *testing.T) {
	router, _ := setupWebhookTest(t)

	// 关联不到本地记录时也要应答成功，避免Lark反复重试
	w := testutil.DoRequest(router, "POST", "/api/v1/webhooks/lark", map[string]interface{}{
		"schema": "2.0",
		"header": map[string]interface{}{"event_type": "qa.fai.qe_confirm"},
		"event": map[string]interface{}{
			"emp_id": "E999",
			"model":  "NOPE",
			"status": "APPROVED",
		},
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
