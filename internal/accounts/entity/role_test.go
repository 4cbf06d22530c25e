package entity

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"ADMIN", RoleAdmin},
		{"admin", RoleAdmin},
		{" pqe ", RolePQE},
		{"IPQC", RoleIPQC},
		{"qa", RoleQA},
		{"OPERATOR", RoleOperator},
		{"", RoleOperator},
		{"something-else", RoleOperator},
	}
	for _, c := range cases {
		if got := ParseRole(c.in); got != c.want {
			t.Errorf("ParseRole(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestHasPermissionAdminAlwaysAllowed(t *testing.T) {
	actions := []Action{
		ActionManageEmployees, ActionViewDashboard,
		ActionSubmitChecklist, ActionViewChecklist,
		ActionQEConfirm, ActionExportReport,
		ActionManageForms, ActionUseChat,
	}
	for _, a := range actions {
		if !HasPermission(RoleAdmin, a) {
			t.Errorf("ADMIN should be allowed %s", a)
		}
	}
}

func TestHasPermissionMatrix(t *testing.T) {
	cases := []struct {
		role   Role
		action Action
		want   bool
	}{
		{RolePQE, ActionQEConfirm, true},
		{RolePQE, ActionManageForms, true},
		{RolePQE, ActionManageEmployees, false},
		{RoleIPQC, ActionSubmitChecklist, true},
		{RoleIPQC, ActionExportReport, false},
		{RoleIPQC, ActionQEConfirm, false},
		{RoleQA, ActionExportReport, true},
		{RoleQA, ActionManageForms, false},
		{RoleOperator, ActionViewChecklist, true},
		{RoleOperator, ActionSubmitChecklist, false},
		{RoleOperator, ActionUseChat, true},
		{Role("UNKNOWN"), ActionViewChecklist, false},
	}
	for _, c := range cases {
		if got := HasPermission(c.role, c.action); got != c.want {
			t.Errorf("HasPermission(%s, %s) = %v, want %v", c.role, c.action, got, c.want)
		}
	}
}
