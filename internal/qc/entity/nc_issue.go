package entity

import "time"

// NCIssue 不符合项问题追踪
type NCIssue struct {
	ID          string `json:"id" gorm:"primaryKey;size:32"`
	WorkContext `gorm:"embedded"`

	Stage             string     `json:"stage" gorm:"size:100"`
	Time              time.Time  `json:"time"`
	Issue             string     `json:"issue" gorm:"type:text"`
	ThreeWhy          string     `json:"three_why" gorm:"type:text"`
	Solution          string     `json:"solution" gorm:"type:text"`
	OperatorName      string     `json:"operator_name" gorm:"size:100"`
	OperatorID        string     `json:"operator_id" gorm:"size:50"`
	ResponsibleDept   string     `json:"responsible_dept" gorm:"size:100"`
	ResponsiblePerson string     `json:"responsible_person" gorm:"size:100"`
	CloseTime         *time.Time `json:"close_time"`
	Status            string     `json:"status" gorm:"size:50"`
	Remark            string     `json:"remark" gorm:"type:text"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-" gorm:"index"`
}

func (NCIssue) TableName() string {
	return "qc_nc_issues"
}
