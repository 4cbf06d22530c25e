package entity

import "time"

// OperatorQualification 关键岗位操作员资质检查
type OperatorQualification struct {
	ID          string `json:"id" gorm:"primaryKey;size:32"`
	WorkContext `gorm:"embedded"`

	// 岗位卡扫描
	KeyStationName          string `json:"key_station_name" gorm:"type:text"`
	KeyStationJobCardStatus string `json:"key_station_job_card_status" gorm:"size:50"`
	ScannedBarcodeImage     string `json:"scanned_barcode_image" gorm:"size:500"`
	ScannedBarcodeText      string `json:"scanned_barcode_text" gorm:"size:500"`

	// 核查结果
	KeyStationOperatorStatus         string `json:"key_station_operator_status" gorm:"size:50"`
	NewOrRotatingOperatorStatus      string `json:"new_or_rotating_operator_status" gorm:"size:50"`
	CheckOperatorWorkInstruction     string `json:"check_operator_work_instruction" gorm:"size:50"`
	OperatorJobCardImage             string `json:"operator_job_card_image" gorm:"size:500"`
	PQETrainingAndVerificationStatus string `json:"pqe_training_and_verification_status" gorm:"size:50"`
	JobCardVerificationSummary       string `json:"job_card_verification_summary" gorm:"type:text"`

	// 同步返回的远端记录
	FeishuRecordData JSONB `json:"feishu_record_data" gorm:"type:jsonb"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-" gorm:"index"`
}

func (OperatorQualification) TableName() string {
	return "qc_operator_qualifications"
}
