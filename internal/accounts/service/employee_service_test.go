package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/MrSingh0729/transs-flow-final/internal/accounts/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/accounts/repository"
	"github.com/MrSingh0729/transs-flow-final/internal/testutil"
)

func setupEmployeeService(t *testing.T) *EmployeeService {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repo := repository.NewEmployeeRepository(db)
	return NewEmployeeService(repo, zap.NewNop())
}

func TestEmployeeCreateRejectsDuplicateID(t *testing.T) {
	svc := setupEmployeeService(t)
	ctx := context.Background()

	req := &CreateEmployeeRequest{
		EmployeeID: "TCL0042",
		FullName:   "Zhang Wei",
		Password:   "secret123",
		Role:       "IPQC",
	}
	emp, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if emp.Role != entity.RoleIPQC {
		t.Errorf("role = %s, want IPQC", emp.Role)
	}
	if !emp.IsActive {
		t.Error("new employee should be active")
	}

	// 工号重复，包括带空白的写法
	req2 := &CreateEmployeeRequest{
		EmployeeID: " TCL0042 ",
		FullName:   "Someone Else",
		Password:   "secret456",
		Role:       "QA",
	}
	if _, err := svc.Create(ctx, req2); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestEmployeeCreateNormalizesRole(t *testing.T) {
	svc := setupEmployeeService(t)

	emp, err := svc.Create(context.Background(), &CreateEmployeeRequest{
		EmployeeID: "TCL0100",
		FullName:   "Li Na",
		Password:   "secret123",
		Role:       "machinist", // 未知角色归为OPERATOR
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if emp.Role != entity.RoleOperator {
		t.Errorf("role = %s, want OPERATOR", emp.Role)
	}
}

func TestImportRoster(t *testing.T) {
	svc := setupEmployeeService(t)
	ctx := context.Background()

	csv := strings.Join([]string{
		"employee_id,full_name,role,department",
		"TCL0201,Wang Fang,IPQC,QC",
		"TCL0202,Chen Jie,QA,QC",
		"TCL0201,Duplicate Row,IPQC,QC",
	}, "\n")

	result, err := svc.ImportRoster(ctx, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportRoster: %v", err)
	}
	if result.Created != 2 {
		t.Errorf("created = %d, want 2", result.Created)
	}
	if result.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", result.Skipped)
	}

	total, err := svc.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if total != 2 {
		t.Errorf("count = %d, want 2", total)
	}
}
