package lark

import "encoding/json"

// =============================================================================
// 数据模型 — Lark API请求/响应结构
// =============================================================================

// BaseResponse Lark API统一响应结构
type BaseResponse struct {
	Code int    `json:"code"` // 错误码，0表示成功
	Msg  string `json:"msg"`  // 错误描述
}

// BitableRecord 多维表格记录
type BitableRecord struct {
	RecordID string                 `json:"record_id"`
	Fields   map[string]interface{} `json:"fields"`
}

// bitableRecordResponse 单条记录操作响应
type bitableRecordResponse struct {
	BaseResponse
	Data struct {
		Record BitableRecord `json:"record"`
	} `json:"data"`
}

// bitableListResponse 记录列表响应（分页）
type bitableListResponse struct {
	BaseResponse
	Data struct {
		HasMore   bool            `json:"has_more"`
		PageToken string          `json:"page_token"`
		Total     int             `json:"total"`
		Items     []BitableRecord `json:"items"`
	} `json:"data"`
}

// =============================================================================
// Webhook事件结构
// =============================================================================

// 事件类型常量
const (
	EventTypeURLVerification = "url_verification"
	EventTypeQEConfirm       = "qa.fai.qe_confirm" // 自动化流程回传QE确认状态
)

// WebhookEvent webhook事件信封（v2格式）
type WebhookEvent struct {
	Schema string          `json:"schema"`
	Header *WebhookHeader  `json:"header"`
	Event  json.RawMessage `json:"event"`

	// v1格式字段
	Type      string `json:"type"`
	Challenge string `json:"challenge"`
	Token     string `json:"token"`
}

// WebhookHeader v2事件头
type WebhookHeader struct {
	EventID    string `json:"event_id"`
	EventType  string `json:"event_type"`
	CreateTime string `json:"create_time"`
	Token      string `json:"token"`
	AppID      string `json:"app_id"`
	TenantKey  string `json:"tenant_key"`
}

// URLVerificationEvent URL验证事件
type URLVerificationEvent struct {
	Challenge string `json:"challenge"`
	Token     string `json:"token"`
	Type      string `json:"type"`
}

// QEConfirmEvent 自动化流程回传的QE确认事件
// 按员工工号+机型+日期匹配本地记录
type QEConfirmEvent struct {
	EmpID         string `json:"emp_id"`
	Model         string `json:"model"`
	Date          string `json:"date"` // YYYY-MM-DD
	QEConfirmName string `json:"qe_confirm_name"`
	Status        string `json:"status"`
}

// =============================================================================
// OAuth登录结构
// =============================================================================

// OAuthTokenResponse 用户access_token响应
type OAuthTokenResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		TokenType    string `json:"token_type"`
		ExpiresIn    int    `json:"expires_in"`
	} `json:"data"`
}

// UserInfoResponse 用户信息响应
type UserInfoResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		Name      string `json:"name"`
		EnName    string `json:"en_name"`
		AvatarURL string `json:"avatar_url"`
		OpenID    string `json:"open_id"`
		UnionID   string `json:"union_id"`
		Email     string `json:"email"`
		UserID    string `json:"user_id"`
		Mobile    string `json:"mobile"`
	} `json:"data"`
}
