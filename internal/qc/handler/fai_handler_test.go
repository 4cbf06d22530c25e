package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	accountsentity "github.com/MrSingh0729/transs-flow-final/internal/accounts/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/config"
	"github.com/MrSingh0729/transs-flow-final/internal/larksync"
	"github.com/MrSingh0729/transs-flow-final/internal/middleware"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/repository"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/service"
	"github.com/MrSingh0729/transs-flow-final/internal/testutil"
)

func setupFAITest(t *testing.T) *gin.Engine {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	syncer := larksync.NewSyncer(nil, &config.LarkConfig{}, zap.NewNop())
	svc := service.NewFAIService(repos.TestingFAI, syncer, "http://qc.example.com", zap.NewNop())
	h := NewFAIHandler(svc)

	router := testutil.SetupRouter()

	public := router.Group("/public")
	public.GET("/fai/:token", h.PublicView)
	public.PUT("/fai/:token", h.QEConfirm)

	api := testutil.AuthGroup(router, "/api/v1")
	api.POST("/qc/testing-fai", h.Create)
	api.GET("/qc/testing-fai", h.List)
	api.GET("/qc/testing-fai/:id", h.Get)
	api.POST("/qc/testing-fai/:id/confirm", middleware.RequirePermission(accountsentity.ActionQEConfirm), h.Confirm)

	return router
}

func TestFAICreateAndPublicConfirmFlow(t *testing.T) {
	router := setupFAITest(t)
	token := testutil.DefaultTestToken()

	// 提交FAI报告
	w := testutil.DoRequest(router, "POST", "/api/v1/qc/testing-fai", map[string]interface{}{
		"date":               "2024-03-01T00:00:00Z",
		"shift":              "Day",
		"emp_id":             "E001",
		"model":              "X670",
		"first_article_type": "MODEL_CHANGE",
		"inspector_name":     "Tester",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	publicToken, _ := data["public_token"].(string)
	if publicToken == "" {
		t.Fatal("expected public_token in response")
	}
	if data["qe_confirm_status"] != "PENDING" {
		t.Errorf("qe_confirm_status = %v, want PENDING", data["qe_confirm_status"])
	}

	// 公开链接免登录查看
	w = testutil.DoRequest(router, "GET", "/public/fai/"+publicToken, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on public view, got %d: %s", w.Code, w.Body.String())
	}

	// 非法确认状态
	w = testutil.DoRequest(router, "PUT", "/public/fai/"+publicToken, map[string]interface{}{
		"confirm_name": "QE Zhang",
		"status":       "MAYBE",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for invalid status, got %d: %s", w.Code, w.Body.String())
	}

	// 正常确认
	w = testutil.DoRequest(router, "PUT", "/public/fai/"+publicToken, map[string]interface{}{
		"confirm_name": "QE Zhang",
		"status":       "APPROVED",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp = testutil.ParseResponse(w)
	confirmed := resp["data"].(map[string]interface{})
	if confirmed["qe_confirm_status"] != "APPROVED" || confirmed["qe_confirm_name"] != "QE Zhang" {
		t.Errorf("unexpected confirm result: %v", confirmed)
	}
}

func TestFAIPublicViewUnknownToken(t *testing.T) {
	router := setupFAITest(t)
	w := testutil.DoRequest(router, "GET", "/public/fai/does-not-exist", nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestFAIListRequiresAuth(t *testing.T) {
	router := setupFAITest(t)
	w := testutil.DoRequest(router, "GET", "/api/v1/qc/testing-fai", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without token, got %d", w.Code)
	}
}

func TestFAIListFilterByConfirmStatus(t *testing.T) {
	router := setupFAITest(t)
	token := testutil.DefaultTestToken()

	for i := 0; i < 3; i++ {
		w := testutil.DoRequest(router, "POST", "/api/v1/qc/testing-fai", map[string]interface{}{
			"date":   "2024-03-01T00:00:00Z",
			"emp_id": fmt.Sprintf("E%03d", i),
			"model":  "X670",
		}, token)
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}
	}

	w := testutil.DoRequest(router, "GET", "/api/v1/qc/testing-fai?qe_confirm_status=PENDING", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	pagination := data["pagination"].(map[string]interface{})
	if pagination["total"].(float64) != 3 {
		t.Errorf("total = %v, want 3", pagination["total"])
	}
}

func TestFAIConfirmByIDRequiresPermission(t *testing.T) {
	router := setupFAITest(t)
	adminToken := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/qc/testing-fai", map[string]interface{}{
		"date":   "2024-03-01T00:00:00Z",
		"emp_id": "E001",
		"model":  "X670",
	}, adminToken)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	id := resp["data"].(map[string]interface{})["id"].(string)

	body := map[string]interface{}{"confirm_name": "QE Li", "status": "APPROVED"}

	// QA无确认权限
	qaToken := testutil.GenerateTestToken("qa-user-001", "QA User", "TCL0300", string(accountsentity.RoleQA))
	w = testutil.DoRequest(router, "POST", "/api/v1/qc/testing-fai/"+id+"/confirm", body, qaToken)
	if w.Code != http.StatusForbidden {
		t.Fatalf("Expected 403 for QA, got %d", w.Code)
	}

	// PQE可确认
	pqeToken := testutil.GenerateTestToken("pqe-user-001", "PQE User", "TCL0100", string(accountsentity.RolePQE))
	w = testutil.DoRequest(router, "POST", "/api/v1/qc/testing-fai/"+id+"/confirm", body, pqeToken)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for PQE, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/qc/testing-fai/"+id, nil, adminToken)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	got := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if got["qe_confirm_status"] != "APPROVED" || got["qe_confirm_name"] != "QE Li" {
		t.Errorf("unexpected confirm fields: %v %v", got["qe_confirm_status"], got["qe_confirm_name"])
	}
}
