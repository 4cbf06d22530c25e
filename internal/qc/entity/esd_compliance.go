package entity

import "time"

// ESDCompliance 静电防护合规检查表
// 检查项答案均为 YES / NO / NA
type ESDCompliance struct {
	ID          string `json:"id" gorm:"primaryKey;size:32"`
	WorkContext `gorm:"embedded"`

	// 着装规范
	EPAClothes       string `json:"epa_clothes" gorm:"size:10;default:'NA'"`
	EPAClothesPhoto  string `json:"epa_clothes_photo" gorm:"size:500"`
	ForbidWearOut    string `json:"forbid_wear_out" gorm:"size:10;default:'NA'"`
	NoAccessories    string `json:"no_accessories" gorm:"size:10;default:'NA'"`
	ClothesClean     string `json:"clothes_clean" gorm:"size:10;default:'NA'"`
	CollarCover      string `json:"collar_cover" gorm:"size:10;default:'NA'"`
	AllButtonsClosed string `json:"all_buttons_closed" gorm:"size:10;default:'NA'"`
	ClothesLength    string `json:"clothes_length" gorm:"size:10;default:'NA'"`
	WatchExpose      string `json:"watch_expose" gorm:"size:10;default:'NA'"`
	HairCap          string `json:"hair_cap" gorm:"size:10;default:'NA'"`
	HairCapPhoto     string `json:"hair_cap_photo" gorm:"size:500"`

	// 静电手环和拖鞋
	SlipperCheck   string `json:"slipper_check" gorm:"size:10;default:'NA'"`
	WristbandCheck string `json:"wristband_check" gorm:"size:10;default:'NA'"`
	PreLineCheck   string `json:"pre_line_check" gorm:"size:10;default:'NA'"`
	WristTouchSkin string `json:"wrist_touch_skin" gorm:"size:10;default:'NA'"`
	WristbandPhoto string `json:"wristband_photo" gorm:"size:500"`

	// 操作规范
	NoTouchPCBA  string `json:"no_touch_pcba" gorm:"size:10;default:'NA'"`
	AlertPlugOut string `json:"alert_plug_out" gorm:"size:10;default:'NA'"`

	// 接地与设备
	TrolleyGrounding     string `json:"trolley_grounding" gorm:"size:10;default:'NA'"`
	TrolleyPhoto         string `json:"trolley_photo" gorm:"size:500"`
	DeviceGrounded       string `json:"device_grounded" gorm:"size:10;default:'NA'"`
	GroundingPointsTight string `json:"grounding_points_tight" gorm:"size:10;default:'NA'"`
	IonFanDistance       string `json:"ion_fan_distance" gorm:"size:10;default:'NA'"`
	IonFanDirection      string `json:"ion_fan_direction" gorm:"size:10;default:'NA'"`
	IonFanPhoto          string `json:"ion_fan_photo" gorm:"size:500"`

	// 耗材
	GlovesCondition string `json:"gloves_condition" gorm:"size:10;default:'NA'"`
	MatGrounded     string `json:"mat_grounded" gorm:"size:10;default:'NA'"`
	MatPhoto        string `json:"mat_photo" gorm:"size:500"`
	AuditLabelValid string `json:"audit_label_valid" gorm:"size:10;default:'NA'"`

	// 物料搬运
	ESDSBox       string `json:"esds_box" gorm:"size:10;default:'NA'"`
	TableNoSource string `json:"table_no_source" gorm:"size:10;default:'NA'"`
	TablePhoto    string `json:"table_photo" gorm:"size:500"`

	// 工具与环境
	ToolsAudit   string `json:"tools_audit" gorm:"size:10;default:'NA'"`
	TempHumidity string `json:"temp_humidity" gorm:"size:10;default:'NA'"`
	TrayVoltage  string `json:"tray_voltage" gorm:"size:10;default:'NA'"`

	// 实测环境读数
	TemperatureValue *float64 `json:"temperature_value"`
	HumidityValue    *float64 `json:"humidity_value"`
	TrayVoltageValue *float64 `json:"tray_voltage_value"`

	Remark        string `json:"remark" gorm:"type:text"`
	PhotoOverview string `json:"photo_overview" gorm:"size:500"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-" gorm:"index"`
}

func (ESDCompliance) TableName() string {
	return "qc_esd_compliances"
}
