package entity

import "time"

// DummyTest 组装段Dummy测试记录
type DummyTest struct {
	ID          string `json:"id" gorm:"primaryKey;size:32"`
	WorkContext `gorm:"embedded"`

	Area         string `json:"area" gorm:"size:100"`
	TestStage    string `json:"test_stage" gorm:"size:100"`
	TestItem     string `json:"test_item" gorm:"size:200"`
	OperatorName string `json:"operator_name" gorm:"size:100"`
	OperatorID   string `json:"operator_id" gorm:"size:50"`

	// Pass / Fail / NA
	Result string `json:"result" gorm:"size:10"`

	Cause     string `json:"cause" gorm:"type:text"`
	Measure   string `json:"measure" gorm:"type:text"`
	LLConfirm bool   `json:"ll_confirm"`
	Remark    string `json:"remark" gorm:"type:text"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-" gorm:"index"`
}

func (DummyTest) TableName() string {
	return "qc_dummy_tests"
}
