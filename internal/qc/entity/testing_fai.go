package entity

import "time"

// 首件类型
const (
	FAITypeNormalWorkOrder  = "NORMAL_WORK_ORDER_PROD"
	FAITypeChangeLine       = "CHANGE_LINE"
	FAITypeModelChange      = "MODEL_CHANGE"
	FAITypeChangeMaterial   = "CHANGE_MATERIAL"
	FAITypeProdReturnNormal = "PROD_RETURN_NORMAL"
	FAITypeSpecialOrRework  = "SPECIAL_OR_REWORK_ORDER"
)

// 整体判定结果
const (
	FAIResultMeetReq        = "MEET_REQ"
	FAIResultQualified      = "QUALIFIED"
	FAIResultUnqualified    = "UNQUALIFIED"
	FAIResultConditionalAcc = "CONDITIONAL_ACC"
)

// QE确认状态
const (
	FAIApprovalApproved = "APPROVED"
	FAIApprovalRejected = "REJECTED"
	FAIApprovalPending  = "PENDING"
)

// TestingFAI 测试段首件检验
// PublicToken用于生成免登录的QE确认链接，QE确认结果通过
// 公开接口或Lark回调写回
type TestingFAI struct {
	ID          string `json:"id" gorm:"primaryKey;size:32"`
	WorkContext `gorm:"embedded"`

	// 生产信息
	ProductionWorkOrderNo string `json:"production_work_order_no" gorm:"size:100"`
	FirstArticleType      string `json:"first_article_type" gorm:"size:100"`

	// 订单与软件检查
	SoftwareVerCheck   string `json:"software_ver_check" gorm:"size:20"`
	AndroidVerCheck    string `json:"android_ver_check" gorm:"size:20"`
	MemoryInbuiltCheck string `json:"memory_inbuilt_check" gorm:"size:20"`
	OrderConfirmCheck  string `json:"order_confirm_check" gorm:"size:20"`

	// 标签检查
	LabelCheck                 string `json:"label_check" gorm:"size:20"`
	LabelCheckEvidence         string `json:"label_check_evidence" gorm:"size:500"`
	LabelPositionCheck         string `json:"label_position_check" gorm:"size:20"`
	LabelPositionCheckEvidence string `json:"label_position_check_evidence" gorm:"size:500"`

	// 外观检查
	VisualInspectionHandset      string `json:"visual_inspection_handset" gorm:"size:20"`
	LogoCheck                    string `json:"logo_check" gorm:"size:20"`
	LogoCheckEvidence            string `json:"logo_check_evidence" gorm:"size:500"`
	AssemblyBatteryCheck         string `json:"assembly_battery_check" gorm:"size:20"`
	AssemblyBatteryCheckEvidence string `json:"assembly_battery_check_evidence" gorm:"size:500"`
	NetColorCheck                string `json:"net_color_check" gorm:"size:20"`
	TPWithKeyCheck               string `json:"tp_with_key_check" gorm:"size:20"`
	ScrewCheck                   string `json:"screw_check" gorm:"size:20"`

	// 功能测试
	TPWithChargeTest     string `json:"tp_with_charge_test" gorm:"size:20"`
	Charge15MinTest      string `json:"charge_15min_test" gorm:"size:20"`
	BootTimeTest         string `json:"boot_time_test" gorm:"size:20"`
	BootTimeTestEvidence string `json:"boot_time_test_evidence" gorm:"size:500"`
	InitSettingsTest     string `json:"init_settings_test" gorm:"size:20"`
	ButtonsKeysTest      string `json:"buttons_keys_test" gorm:"size:20"`
	TouchScreenPenTest   string `json:"touch_screen_pen_test" gorm:"size:20"`
	CallingTest          string `json:"calling_test" gorm:"size:20"`

	// 附加功能
	BluetoothTest           string `json:"bluetooth_test" gorm:"size:20"`
	FlashlightTest          string `json:"flashlight_test" gorm:"size:20"`
	CameraFlashTest         string `json:"camera_flash_test" gorm:"size:20"`
	CameraPhotoTest         string `json:"camera_photo_test" gorm:"size:20"`
	CameraFrontTestEvidence string `json:"camera_front_test_evidence" gorm:"size:500"`
	CameraBackTestEvidence  string `json:"camera_back_test_evidence" gorm:"size:500"`
	CameraDarkTest          string `json:"camera_dark_test" gorm:"size:20"`
	CameraDarkTestEvidence  string `json:"camera_dark_test_evidence" gorm:"size:500"`
	CameraLongDistanceCheck string `json:"camera_long_distance_check" gorm:"size:20"`
	HighlightDefectCheck    string `json:"highlight_defect_check" gorm:"size:20"`

	// 多媒体与特殊功能
	MultimediaPlayTest      string `json:"multimedia_play_test" gorm:"size:20"`
	FMPlayTest              string `json:"fm_play_test" gorm:"size:20"`
	TVFnTest                string `json:"tv_fn_test" gorm:"size:20"`
	TapingFnTest            string `json:"taping_fn_test" gorm:"size:20"`
	ShakingScreenTest       string `json:"shaking_screen_test" gorm:"size:20"`
	WiFiTest                string `json:"wifi_test" gorm:"size:20"`
	GravitySensorTest       string `json:"gravity_sensor_test" gorm:"size:20"`
	LightDistanceSensorTest string `json:"light_distance_sensor_test" gorm:"size:20"`
	HallFnTest              string `json:"hall_fn_test" gorm:"size:20"`
	QRScanTest              string `json:"qr_scan_test" gorm:"size:20"`
	RAMROMCapTest           string `json:"ram_rom_cap_test" gorm:"size:20"`
	ModeSwitchTest          string `json:"mode_switch_test" gorm:"size:20"`
	TouchInDevOptTest       string `json:"touch_in_dev_opt_test" gorm:"size:20"`
	MACAddTest              string `json:"mac_add_test" gorm:"size:20"`
	OTGFnTest               string `json:"otg_fn_test" gorm:"size:20"`

	// 可靠性测试
	TCardSIMPlugTest          string `json:"tcard_sim_plug_test" gorm:"size:20"`
	FocusTest                 string `json:"focus_test" gorm:"size:20"`
	FrontBackCamTest          string `json:"front_back_cam_test" gorm:"size:20"`
	SlightDropTest            string `json:"slight_drop_test" gorm:"size:20"`
	SlightTouchTest           string `json:"slight_touch_test" gorm:"size:20"`
	CoumplingRFTest           string `json:"coumpling_rf_test" gorm:"size:20"`
	PowerConsumptionTest      string `json:"power_consumption_test" gorm:"size:20"`
	HighTempSimulTest         string `json:"high_temp_simul_test" gorm:"size:20"`
	FactoryResetFnTest        string `json:"factory_reset_fn_test" gorm:"size:20"`
	SARValueTest              string `json:"sar_value_test" gorm:"size:20"`
	FactoryResetCallNoiseTest string `json:"factory_reset_call_noise_test" gorm:"size:20"`
	FactoryResetTest          string `json:"factory_reset_test" gorm:"size:20"`

	// 高温测试
	HighTempBootCheck          string `json:"high_temp_boot_check" gorm:"size:20"`
	HighTempEngiModeTest       string `json:"high_temp_engi_mode_test" gorm:"size:20"`
	HighTempCallTest           string `json:"high_temp_call_test" gorm:"size:20"`
	HighTempChargingTest       string `json:"high_temp_charging_test" gorm:"size:20"`
	HighTempCameraTest         string `json:"high_temp_camera_test" gorm:"size:20"`
	HighTempCameraTestEvidence string `json:"high_temp_camera_test_evidence" gorm:"size:500"`

	// 最终结果
	ShutdownTest           string `json:"shutdown_test" gorm:"size:100"`
	SampleSerialNumber     string `json:"sample_serial_number" gorm:"size:100"`
	IMEINumber             string `json:"imei_number" gorm:"size:100"`
	IMEIPhoto              string `json:"imei_photo" gorm:"size:500"`
	VisualFunctionalResult string `json:"visual_functional_result" gorm:"size:30"`
	ReliabilityResult      string `json:"reliability_result" gorm:"size:30"`
	InspectorName          string `json:"inspector_name" gorm:"size:100"`
	QEConfirmName          string `json:"qe_confirm_name" gorm:"size:100"`
	QEConfirmStatus        string `json:"qe_confirm_status" gorm:"size:100"`

	PublicToken string `json:"public_token" gorm:"size:36;uniqueIndex"`
	PublicURL   string `json:"public_url" gorm:"size:255"`
	Remarks     string `json:"remarks" gorm:"type:text"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-" gorm:"index"`
}

func (TestingFAI) TableName() string {
	return "qc_testing_fais"
}
