package entity

import "time"

// WorkInfo IPQC每日工作信息
// 每位巡检员每天填报一次，后续清单通过WorkInfoID关联到当天的信息
type WorkInfo struct {
	ID        string     `json:"id" gorm:"primaryKey;size:32"`
	Date      time.Time  `json:"date" gorm:"type:date;not null;index"`
	Shift     string     `json:"shift" gorm:"size:20;not null" binding:"omitempty,shiftname"`
	EmpID     string     `json:"emp_id" gorm:"size:20;not null;index"`
	Name      string     `json:"name" gorm:"size:100"`
	Section   string     `json:"section" gorm:"size:50"`
	Line      string     `json:"line" gorm:"size:50"`
	Group     string     `json:"group" gorm:"column:line_group;size:50"`
	Model     string     `json:"model" gorm:"size:100"`
	Color     string     `json:"color" gorm:"size:50"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-" gorm:"index"`
}

func (WorkInfo) TableName() string {
	return "qc_work_infos"
}
