package lark

import "testing"

func TestHandleVerification(t *testing.T) {
	body := []byte(`{"challenge":"abc123","token":"tok","type":"url_verification"}`)

	if !IsVerificationEvent(body) {
		t.Fatal("expected IsVerificationEvent to be true")
	}

	challenge, err := HandleVerification(body)
	if err != nil {
		t.Fatalf("HandleVerification: %v", err)
	}
	if challenge != "abc123" {
		t.Errorf("challenge = %q, want abc123", challenge)
	}
}

func TestHandleVerificationRejectsOtherEvents(t *testing.T) {
	body := []byte(`{"type":"some_other_event"}`)

	if IsVerificationEvent(body) {
		t.Error("expected IsVerificationEvent to be false")
	}
	if _, err := HandleVerification(body); err == nil {
		t.Error("expected error for non-verification event")
	}
}

func TestHandleVerificationMissingChallenge(t *testing.T) {
	body := []byte(`{"type":"url_verification"}`)
	if _, err := HandleVerification(body); err == nil {
		t.Error("expected error for missing challenge")
	}
}

func TestGetEventTypeV2(t *testing.T) {
	body := []byte(`{"schema":"2.0","header":{"event_id":"e1","event_type":"qa.fai.qe_confirm"},"event":{}}`)
	if got := GetEventType(body); got != EventTypeQEConfirm {
		t.Errorf("GetEventType = %q, want %q", got, EventTypeQEConfirm)
	}
}

func TestGetEventTypeV1(t *testing.T) {
	body := []byte(`{"type":"url_verification","challenge":"x"}`)
	if got := GetEventType(body); got != EventTypeURLVerification {
		t.Errorf("GetEventType = %q, want %q", got, EventTypeURLVerification)
	}
}

func TestHandleQEConfirmEventV2(t *testing.T) {
	body := []byte(`{
		"schema": "2.0",
		"header": {"event_type": "qa.fai.qe_confirm"},
		"event": {"emp_id":"E001","model":"X670","date":"2024-03-01","qe_confirm_name":"QE Zhang","status":"APPROVED"}
	}`)

	event, err := HandleQEConfirmEvent(body)
	if err != nil {
		t.Fatalf("HandleQEConfirmEvent: %v", err)
	}
	if event.EmpID != "E001" || event.Model != "X670" || event.Date != "2024-03-01" {
		t.Errorf("unexpected correlation fields: %+v", event)
	}
	if event.QEConfirmName != "QE Zhang" || event.Status != "APPROVED" {
		t.Errorf("unexpected confirm fields: %+v", event)
	}
}

func TestHandleQEConfirmEventV1(t *testing.T) {
	body := []byte(`{
		"type": "event_callback",
		"event": {"emp_id":"E002","model":"A17","status":"REJECTED"}
	}`)

	event, err := HandleQEConfirmEvent(body)
	if err != nil {
		t.Fatalf("HandleQEConfirmEvent: %v", err)
	}
	if event.EmpID != "E002" || event.Status != "REJECTED" {
		t.Errorf("unexpected event: %+v", event)
	}
}

func TestHandleQEConfirmEventUnrecognized(t *testing.T) {
	if _, err := HandleQEConfirmEvent([]byte(`{"schema":"2.0"}`)); err == nil {
		t.Error("expected error for event without body")
	}
}
