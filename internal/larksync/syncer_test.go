package larksync

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/MrSingh0729/transs-flow-final/internal/config"
	qcentity "github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/shared/lark"
)

// stubBitable 可编程的多维表格桩
type stubBitable struct {
	createErr    error
	createFields map[string]interface{}
	createTable  string

	listRecords []lark.BitableRecord
	listErr     error

	updatedRecordID string
	updatedFields   map[string]interface{}
	updateErr       error
}

func (s *stubBitable) CreateRecord(ctx context.Context, appToken, tableID string, fields map[string]interface{}) (*lark.BitableRecord, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.createTable = tableID
	s.createFields = fields
	return &lark.BitableRecord{RecordID: "rec123", Fields: fields}, nil
}

func (s *stubBitable) ListRecords(ctx context.Context, appToken, tableID string) ([]lark.BitableRecord, error) {
	return s.listRecords, s.listErr
}

func (s *stubBitable) UpdateRecord(ctx context.Context, appToken, tableID, recordID string, fields map[string]interface{}) (*lark.BitableRecord, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	s.updatedRecordID = recordID
	s.updatedFields = fields
	return &lark.BitableRecord{RecordID: recordID, Fields: fields}, nil
}

func newTestSyncer(stub *stubBitable) *Syncer {
	cfg := &config.LarkConfig{
		BitableAppToken: "appTokenXXX",
		Tables: config.LarkTablesConfig{
			WorkInfo:   "tblWorkInfo",
			BTBFitment: "tblBTB",
			TestingFAI: "tblFAI",
		},
	}
	return NewSyncer(stub, cfg, zap.NewNop())
}

func TestSyncBTBFitmentSuccess(t *testing.T) {
	stub := &stubBitable{}
	s := newTestSyncer(stub)

	b := &qcentity.BTBFitmentChecksheet{
		WorkContext: qcentity.WorkContext{
			Date:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Shift: qcentity.ShiftDay,
			EmpID: "E001",
			Name:  "Tester",
		},
		CamBTB9: 3,
		Input9:  100,
	}
	b.Recompute()

	if err := s.SyncBTBFitment(context.Background(), b); err != nil {
		t.Fatalf("SyncBTBFitment: %v", err)
	}
	if stub.createTable != "tblBTB" {
		t.Errorf("table = %q, want tblBTB", stub.createTable)
	}
	if got := stub.createFields["CAM BTB - 9:00"]; got != 3 {
		t.Errorf("CAM BTB - 9:00 = %v, want 3", got)
	}
	if got := stub.createFields["Employee ID"]; got != "E001" {
		t.Errorf("Employee ID = %v, want E001", got)
	}
	// Input不计入总合计
	if got := stub.createFields["Grand Total"]; got != 3 {
		t.Errorf("Grand Total = %v, want 3", got)
	}
}

func TestSyncAuthFailureClassified(t *testing.T) {
	stub := &stubBitable{
		createErr: fmt.Errorf("%w: credentials rejected", lark.ErrTokenUnavailable),
	}
	s := newTestSyncer(stub)

	err := s.SyncWorkInfo(context.Background(), &qcentity.WorkInfo{
		Date: time.Now(), Shift: qcentity.ShiftDay,
	})

	var serr *SyncError
	if !errors.As(err, &serr) {
		t.Fatalf("want *SyncError, got %T", err)
	}
	if serr.Kind != KindAuthFailed {
		t.Errorf("kind = %s, want auth_failed", serr.Kind)
	}
}

func TestSyncRemoteRejectedClassified(t *testing.T) {
	stub := &stubBitable{
		createErr: &lark.APIError{Code: 1254045, Msg: "FieldNameNotFound"},
	}
	s := newTestSyncer(stub)

	err := s.SyncWorkInfo(context.Background(), &qcentity.WorkInfo{Date: time.Now()})

	var serr *SyncError
	if !errors.As(err, &serr) {
		t.Fatalf("want *SyncError, got %T", err)
	}
	if serr.Kind != KindRemoteRejected {
		t.Errorf("kind = %s, want remote_rejected", serr.Kind)
	}
}

func TestSyncTransportErrorClassified(t *testing.T) {
	stub := &stubBitable{createErr: errors.New("dial tcp: connection refused")}
	s := newTestSyncer(stub)

	err := s.SyncWorkInfo(context.Background(), &qcentity.WorkInfo{Date: time.Now()})

	var serr *SyncError
	if !errors.As(err, &serr) {
		t.Fatalf("want *SyncError, got %T", err)
	}
	if serr.Kind != KindTransportError {
		t.Errorf("kind = %s, want transport_error", serr.Kind)
	}
}

func TestSyncSkipsWhenUnconfigured(t *testing.T) {
	// bitable为nil时同步是空操作
	s := NewSyncer(nil, &config.LarkConfig{}, zap.NewNop())
	if err := s.SyncWorkInfo(context.Background(), &qcentity.WorkInfo{Date: time.Now()}); err != nil {
		t.Fatalf("nil bitable should be a no-op, got %v", err)
	}
}

func TestUpdateTestingFAIByPublicToken(t *testing.T) {
	stub := &stubBitable{
		listRecords: []lark.BitableRecord{
			{RecordID: "recA", Fields: map[string]interface{}{"Public Token": "other-token"}},
			{RecordID: "recB", Fields: map[string]interface{}{"Public Token": " target-token "}},
		},
	}
	s := newTestSyncer(stub)

	f := &qcentity.TestingFAI{
		PublicToken:     "target-token",
		QEConfirmName:   "QE Zhang",
		QEConfirmStatus: qcentity.FAIApprovalApproved,
		PublicURL:       "https://qa.example.com/fai/target-token",
	}
	if err := s.UpdateTestingFAI(context.Background(), f); err != nil {
		t.Fatalf("UpdateTestingFAI: %v", err)
	}
	if stub.updatedRecordID != "recB" {
		t.Errorf("updated record = %q, want recB", stub.updatedRecordID)
	}
	if got := stub.updatedFields["QE Confirm Name"]; got != "QE Zhang" {
		t.Errorf("QE Confirm Name = %v", got)
	}
	if got := stub.updatedFields["QE Confirm Status"]; got != qcentity.FAIApprovalApproved {
		t.Errorf("QE Confirm Status = %v", got)
	}
}

func TestUpdateTestingFAICorrelationNotFound(t *testing.T) {
	stub := &stubBitable{
		listRecords: []lark.BitableRecord{
			{RecordID: "recA", Fields: map[string]interface{}{"Public Token": "unrelated"}},
		},
	}
	s := newTestSyncer(stub)

	err := s.UpdateTestingFAI(context.Background(), &qcentity.TestingFAI{PublicToken: "missing"})

	var serr *SyncError
	if !errors.As(err, &serr) {
		t.Fatalf("want *SyncError, got %T", err)
	}
	if serr.Kind != KindCorrelationNotFound {
		t.Errorf("kind = %s, want correlation_not_found", serr.Kind)
	}
	if stub.updatedRecordID != "" {
		t.Errorf("update should not be attempted")
	}
}
