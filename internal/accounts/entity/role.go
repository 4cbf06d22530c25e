package entity

import "strings"

// =============================================================================
// 角色与权限策略
// 所有角色判断收敛到HasPermission一个入口，由授权中间件统一消费
// =============================================================================

// Role 员工角色
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RolePQE      Role = "PQE"
	RoleIPQC     Role = "IPQC"
	RoleQA       Role = "QA"
	RoleOperator Role = "OPERATOR"
)

// Action 受控操作
type Action string

const (
	ActionManageEmployees Action = "accounts:manage"   // 员工账号增删改
	ActionViewDashboard   Action = "accounts:dashboard" // 管理看板
	ActionSubmitChecklist Action = "qc:submit"          // 提交巡检清单
	ActionViewChecklist   Action = "qc:view"            // 查看巡检清单
	ActionQEConfirm       Action = "qc:qe_confirm"      // QE确认FAI
	ActionExportReport    Action = "qc:export"          // 导出报表
	ActionManageForms     Action = "qc:manage_forms"    // 动态表单管理
	ActionUseChat         Action = "chat:use"           // 聊天
)

// ParseRole 解析角色字符串（大小写不敏感），未知角色归为OPERATOR
func ParseRole(s string) Role {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	case RolePQE:
		return RolePQE
	case RoleIPQC:
		return RoleIPQC
	case RoleQA:
		return RoleQA
	default:
		return RoleOperator
	}
}

// rolePermissions 各角色允许的操作集合，ADMIN不在表内（始终放行）
var rolePermissions = map[Role]map[Action]bool{
	RolePQE: {
		ActionViewDashboard:   true,
		ActionSubmitChecklist: true,
		ActionViewChecklist:   true,
		ActionQEConfirm:       true,
		ActionExportReport:    true,
		ActionManageForms:     true,
		ActionUseChat:         true,
	},
	RoleIPQC: {
		ActionSubmitChecklist: true,
		ActionViewChecklist:   true,
		ActionUseChat:         true,
	},
	RoleQA: {
		ActionSubmitChecklist: true,
		ActionViewChecklist:   true,
		ActionExportReport:    true,
		ActionUseChat:         true,
	},
	RoleOperator: {
		ActionViewChecklist: true,
		ActionUseChat:       true,
	},
}

// HasPermission 角色是否允许执行操作。ADMIN始终允许
func HasPermission(role Role, action Action) bool {
	if role == RoleAdmin {
		return true
	}
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	return perms[action]
}
