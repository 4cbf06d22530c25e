package handler

import (
	"net/http"
	"testing"

	"github.com/MrSingh0729/transs-flow-final/internal/accounts/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/accounts/repository"
	"github.com/MrSingh0729/transs-flow-final/internal/accounts/service"
	"github.com/MrSingh0729/transs-flow-final/internal/middleware"
	"github.com/MrSingh0729/transs-flow-final/internal/testutil"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 路由布局与主程序保持一致：看板单独用看板权限，员工管理走管理权限分组
func setupEmployeeTest(t *testing.T) *gin.Engine {
	db := testutil.SetupTestDB(t)
	repo := repository.NewEmployeeRepository(db)
	svc := service.NewEmployeeService(repo, zap.NewNop())
	h := NewEmployeeHandler(svc)

	r := testutil.SetupRouter()
	authorized := testutil.AuthGroup(r, "/api/v1")
	authorized.GET("/employees/dashboard", middleware.RequirePermission(entity.ActionViewDashboard), h.Dashboard)
	employees := authorized.Group("/employees", middleware.RequirePermission(entity.ActionManageEmployees))
	{
		employees.GET("", h.List)
	}
	return r
}

func TestDashboardAccessibleToPQE(t *testing.T) {
	r := setupEmployeeTest(t)
	token := testutil.GenerateTestToken("pqe-user-001", "PQE User", "TCL0100", string(entity.RolePQE))

	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/employees/dashboard", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// PQE可看看板但不能管理账号
	w = testutil.DoRequest(r, http.MethodGet, "/api/v1/employees", nil, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 on employee list, got %d", w.Code)
	}
}

func TestDashboardForbiddenForOperator(t *testing.T) {
	r := setupEmployeeTest(t)
	token := testutil.GenerateTestToken("op-user-001", "Line Operator", "TCL0200", string(entity.RoleOperator))

	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/employees/dashboard", nil, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestDashboardAccessibleToAdmin(t *testing.T) {
	r := setupEmployeeTest(t)

	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/employees/dashboard", nil, testutil.DefaultTestToken())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
