package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// =============================================================================
// 公共类型与枚举
// 所有巡检清单共享的工作上下文、答案枚举
// =============================================================================

// 班次
const (
	ShiftDay   = "Day"
	ShiftNight = "Night"
)

// 区段
const (
	SectionAssembly = "Assembly"
	SectionNT       = "NT"
	SectionSMT      = "SMT"
)

// 检查结果（OK / Not OK / NA）
const (
	CheckOK    = "OK"
	CheckNotOK = "Not OK"
	CheckNA    = "NA"
)

// 是/否/不适用
const (
	AnswerYes = "YES"
	AnswerNo  = "NO"
	AnswerNA  = "NA"
)

// 测试结果（Pass / Fail / NA）
const (
	ResultPass = "Pass"
	ResultFail = "Fail"
	ResultNA   = "NA"
)

// NC问题状态
const (
	NCStatusOpen  = "Open"
	NCStatusClose = "Close"
)

// WorkContext 工作上下文，所有清单类型共享的识别字段
// WorkInfoID是到当天工作信息的可选关联（尽力而为，不强制）
type WorkContext struct {
	Date       time.Time `json:"date" gorm:"type:date;not null;index"`
	Shift      string    `json:"shift" gorm:"size:20" binding:"omitempty,shiftname"`
	EmpID      string    `json:"emp_id" gorm:"size:20;index"`
	Name       string    `json:"name" gorm:"size:100"`
	Section    string    `json:"section" gorm:"size:50"`
	Line       string    `json:"line" gorm:"size:50"`
	Group      string    `json:"group" gorm:"column:line_group;size:50"`
	Model      string    `json:"model" gorm:"size:100;index"`
	Color      string    `json:"color" gorm:"size:50"`
	WorkInfoID *string   `json:"work_info_id" gorm:"size:32"`
}

// JSONB JSONB类型
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan JSONB: %v", value)
	}
	return json.Unmarshal(bytes, j)
}
