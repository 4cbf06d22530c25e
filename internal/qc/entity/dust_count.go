package entity

import "time"

// DustCount 无尘车间尘埃粒子计数检查
type DustCount struct {
	ID          string `json:"id" gorm:"primaryKey;size:32"`
	WorkContext `gorm:"embedded"`

	// 粒子计数（个/立方米）
	Micrometer03 int `json:"micrometer_0_3"`
	Micrometer05 int `json:"micrometer_0_5"`
	Micrometer10 int `json:"micrometer_1_0"`

	CheckedBy  string `json:"checked_by" gorm:"size:100"`
	VerifiedBy string `json:"verified_by" gorm:"size:100"`
	Remark     string `json:"remark" gorm:"type:text"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-" gorm:"index"`
}

func (DustCount) TableName() string {
	return "qc_dust_counts"
}
