package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/MrSingh0729/transs-flow-final/internal/config"
	"github.com/MrSingh0729/transs-flow-final/internal/larksync"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/repository"
	"github.com/MrSingh0729/transs-flow-final/internal/testutil"
)

func setupDynamicFormService(t *testing.T) *DynamicFormService {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	syncer := larksync.NewSyncer(nil, &config.LarkConfig{}, zap.NewNop())
	return NewDynamicFormService(repos.DynamicForm, syncer, zap.NewNop())
}

func inspectionPointForm() *entity.DynamicForm {
	return &entity.DynamicForm{
		Title: "巡检点检表",
		Fields: []entity.DynamicFormField{
			{Label: "Station", FieldType: entity.FieldTypeText, Required: true, Order: 1},
			{Label: "Temperature", FieldType: entity.FieldTypeNumber, Required: false, Order: 2},
			{Label: "Result", FieldType: entity.FieldTypeSelect, Required: true, Options: "OK,Not OK", Order: 3},
		},
	}
}

func TestCreateFormRejectsUnknownFieldType(t *testing.T) {
	svc := setupDynamicFormService(t)

	form := &entity.DynamicForm{
		Title:  "bad",
		Fields: []entity.DynamicFormField{{Label: "X", FieldType: "signature"}},
	}
	if _, err := svc.CreateForm(context.Background(), form); !errors.Is(err, ErrUnknownFieldType) {
		t.Fatalf("expected ErrUnknownFieldType, got %v", err)
	}
}

func TestSubmitValidatesRequiredFields(t *testing.T) {
	svc := setupDynamicFormService(t)
	ctx := context.Background()

	form, err := svc.CreateForm(ctx, inspectionPointForm())
	if err != nil {
		t.Fatalf("CreateForm: %v", err)
	}

	// 缺少必填的Result
	_, err = svc.Submit(ctx, form.ID, "user-1", entity.JSONB{"Station": "ST-05"})
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}

	// 必填字段为空字符串同样拒绝
	_, err = svc.Submit(ctx, form.ID, "user-1", entity.JSONB{"Station": "", "Result": "OK"})
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField for empty value, got %v", err)
	}

	sub, err := svc.Submit(ctx, form.ID, "user-1", entity.JSONB{"Station": "ST-05", "Result": "OK"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sub.FormID != form.ID || sub.SubmittedByID != "user-1" {
		t.Errorf("unexpected submission: %+v", sub)
	}

	subs, total, err := svc.ListSubmissions(ctx, form.ID, 1, 20)
	if err != nil {
		t.Fatalf("ListSubmissions: %v", err)
	}
	if total != 1 || len(subs) != 1 {
		t.Fatalf("expected 1 submission, got total=%d len=%d", total, len(subs))
	}
	if subs[0].Data["Station"] != "ST-05" {
		t.Errorf("data round-trip failed: %+v", subs[0].Data)
	}
}

func TestSubmitUnknownForm(t *testing.T) {
	svc := setupDynamicFormService(t)
	if _, err := svc.Submit(context.Background(), "no-such-form", "u", entity.JSONB{}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateFormAssignsFieldIDs(t *testing.T) {
	svc := setupDynamicFormService(t)
	ctx := context.Background()

	form, err := svc.CreateForm(ctx, inspectionPointForm())
	if err != nil {
		t.Fatalf("CreateForm: %v", err)
	}

	got, err := svc.GetForm(ctx, form.ID)
	if err != nil {
		t.Fatalf("GetForm: %v", err)
	}
	if len(got.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(got.Fields))
	}
	for _, f := range got.Fields {
		if f.ID == "" || f.FormID != form.ID {
			t.Errorf("field not wired to form: %+v", f)
		}
	}
}
