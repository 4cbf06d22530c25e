package entity

import (
	"time"
)

// Employee 员工账号实体
// EmployeeID是登录账号（工号），全局唯一
type Employee struct {
	ID           string     `json:"id" gorm:"primaryKey;size:32"`
	EmployeeID   string     `json:"employee_id" gorm:"size:20;not null;uniqueIndex"`
	FullName     string     `json:"full_name" gorm:"size:100;not null"`
	PasswordHash string     `json:"-" gorm:"size:128;not null"`
	Role         Role       `json:"role" gorm:"size:50;not null;default:OPERATOR"`
	Department   string     `json:"department" gorm:"size:50"`
	FactoryCode  string     `json:"factory_code" gorm:"size:20"`
	FactoryName  string     `json:"factory_name" gorm:"size:100"`
	CountryCode  string     `json:"country_code" gorm:"size:10"`
	CountryName  string     `json:"country_name" gorm:"size:50"`
	LarkOpenID   string     `json:"lark_open_id" gorm:"size:64;index"`
	AvatarURL    string     `json:"avatar_url" gorm:"size:512"`
	IsActive     bool       `json:"is_active" gorm:"not null;default:true"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at" gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
