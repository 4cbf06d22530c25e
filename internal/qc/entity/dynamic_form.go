package entity

import "time"

// 动态表单字段类型
const (
	FieldTypeText     = "text"
	FieldTypeNumber   = "number"
	FieldTypeDate     = "date"
	FieldTypeSelect   = "select"
	FieldTypeCheckbox = "checkbox"
)

// DynamicForm 管理员自定义表单，提交数据同步到指定的Bitable表
type DynamicForm struct {
	ID                 string             `json:"id" gorm:"primaryKey;size:32"`
	Title              string             `json:"title" gorm:"size:200;not null"`
	Description        string             `json:"description" gorm:"type:text"`
	LarkBitableTableID string             `json:"lark_bitable_table_id" gorm:"size:200"`
	Fields             []DynamicFormField `json:"fields,omitempty" gorm:"foreignKey:FormID"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	DeletedAt          *time.Time         `json:"-" gorm:"index"`
}

func (DynamicForm) TableName() string {
	return "qc_dynamic_forms"
}

// DynamicFormField 表单字段定义，Options为select类型的逗号分隔选项
type DynamicFormField struct {
	ID        string `json:"id" gorm:"primaryKey;size:32"`
	FormID    string `json:"form_id" gorm:"size:32;index;not null"`
	Label     string `json:"label" gorm:"size:200;not null"`
	FieldType string `json:"field_type" gorm:"size:20;not null"`
	Required  bool   `json:"required" gorm:"default:true"`
	Options   string `json:"options" gorm:"type:text"`
	Order     int    `json:"order" gorm:"column:field_order;default:0"`
}

func (DynamicFormField) TableName() string {
	return "qc_dynamic_form_fields"
}

// DynamicFormSubmission 表单提交记录
type DynamicFormSubmission struct {
	ID            string     `json:"id" gorm:"primaryKey;size:32"`
	FormID        string     `json:"form_id" gorm:"size:32;index;not null"`
	SubmittedByID string     `json:"submitted_by_id" gorm:"size:32;index"`
	Data          JSONB      `json:"data" gorm:"type:jsonb"`
	CreatedAt     time.Time  `json:"created_at"`
	DeletedAt     *time.Time `json:"-" gorm:"index"`
}

func (DynamicFormSubmission) TableName() string {
	return "qc_dynamic_form_submissions"
}
