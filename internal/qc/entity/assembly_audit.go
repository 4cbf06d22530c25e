package entity

import "time"

// AssemblyAudit 组装线4M1E巡检审核
// 检查项答案均为 OK / Not OK / NA
type AssemblyAudit struct {
	ID          string `json:"id" gorm:"primaryKey;size:32"`
	WorkContext `gorm:"embedded"`

	// 机器
	MachEPACheck        string `json:"mach_epa_check" gorm:"size:20"`
	MachScrewTorque     string `json:"mach_screw_torque" gorm:"size:20"`
	MachSholderingTemp  string `json:"mach_sholdering_temp" gorm:"size:20"`
	MachLight           string `json:"mach_light" gorm:"size:20"`
	MachFixtureClean    string `json:"mach_fixture_clean" gorm:"size:20"`
	MachJigLabel        string `json:"mach_jig_label" gorm:"size:20"`
	MachTeflon          string `json:"mach_teflon" gorm:"size:20"`
	MachPressParams     string `json:"mach_press_params" gorm:"size:20"`
	MachGlueParams      string `json:"mach_glue_params" gorm:"size:20"`
	MachEqMoveNotify    string `json:"mach_eq_move_notify" gorm:"size:20"`
	MachFeelerGauge     string `json:"mach_feeler_gauge" gorm:"size:20"`
	MachHotColdPress    string `json:"mach_hot_cold_press" gorm:"size:20"`
	MachIonFan          string `json:"mach_ion_fan" gorm:"size:20"`
	MachCleanroomEq     string `json:"mach_cleanroom_eq" gorm:"size:20"`
	MachRTICheck        string `json:"mach_rti_check" gorm:"size:20"`
	MachCurrentTest     string `json:"mach_current_test" gorm:"size:20"`
	MachPALQR           string `json:"mach_pal_qr" gorm:"size:20"`
	MachAutoScrew       string `json:"mach_auto_screw" gorm:"size:20"`

	// 物料
	MatKeyCheck        string `json:"mat_key_check" gorm:"size:20"`
	MatSpecialStop     string `json:"mat_special_stop" gorm:"size:20"`
	MatImprovedMonitor string `json:"mat_improved_monitor" gorm:"size:20"`
	MatResultCheck     string `json:"mat_result_check" gorm:"size:20"`
	MatBatteryIssue    string `json:"mat_battery_issue" gorm:"size:20"`
	MatIPACheck        string `json:"mat_ipa_check" gorm:"size:20"`
	MatThermalGel      string `json:"mat_thermal_gel" gorm:"size:20"`
	MatVerification    string `json:"mat_verification" gorm:"size:20"`

	// 方法
	MethSOPSeq            string `json:"meth_sop_seq" gorm:"size:20"`
	MethDistanceSensor    string `json:"meth_distance_sensor" gorm:"size:20"`
	MethRearCamera        string `json:"meth_rear_camera" gorm:"size:20"`
	MethMaterialHandling  string `json:"meth_material_handling" gorm:"size:20"`
	MethGuidelineDoc      string `json:"meth_guideline_doc" gorm:"size:20"`
	MethOperationDoc      string `json:"meth_operation_doc" gorm:"size:20"`
	MethDefectiveFeedback string `json:"meth_defective_feedback" gorm:"size:20"`
	MethLineRecord        string `json:"meth_line_record" gorm:"size:20"`
	MethNoSelfRepair      string `json:"meth_no_self_repair" gorm:"size:20"`
	MethBatteryFix        string `json:"meth_battery_fix" gorm:"size:20"`
	MethLineChange        string `json:"meth_line_change" gorm:"size:20"`
	MethTrailRun          string `json:"meth_trail_run" gorm:"size:20"`
	MethDummyConduct      string `json:"meth_dummy_conduct" gorm:"size:20"`

	// 环境
	EnvProdMonitor string `json:"env_prod_monitor" gorm:"size:20"`
	Env5S          string `json:"env_5s" gorm:"size:20"`

	// TRC / FAI / 缺陷 / 抽检
	TRCFlowChart    string `json:"trc_flow_chart" gorm:"size:20"`
	FAICheck        string `json:"fai_check" gorm:"size:20"`
	DefectMonitor   string `json:"defect_monitor" gorm:"size:20"`
	SpotCheck       string `json:"spot_check" gorm:"size:20"`
	AutoScrewSample string `json:"auto_screw_sample" gorm:"size:20"`

	// 手填字段
	Manufacture  string `json:"manufacture" gorm:"size:100"`
	WorkOrder    string `json:"work_order" gorm:"size:100"`
	Brand        string `json:"brand" gorm:"size:50"`
	MaterialCode string `json:"material_code" gorm:"size:50"`
	WOInputQty   int    `json:"wo_input_qty"`

	Top3Defects string `json:"top3_defects" gorm:"size:200"`
	Remarks     string `json:"remarks" gorm:"type:text"`

	EvidencePhoto1 string `json:"evidence_photo_1" gorm:"size:500"`
	EvidencePhoto2 string `json:"evidence_photo_2" gorm:"size:500"`
	EvidencePhoto3 string `json:"evidence_photo_3" gorm:"size:500"`
	DefectCause    string `json:"defect_cause" gorm:"type:text"`

	IPQCSign  string `json:"ipqc_sign" gorm:"size:100"`
	PQETLSign string `json:"pqe_tl_sign" gorm:"size:100"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-" gorm:"index"`
}

func (AssemblyAudit) TableName() string {
	return "qc_assembly_audits"
}

// CheckItems 所有4M1E检查项答案，用于Not OK校验
func (a *AssemblyAudit) CheckItems() []string {
	return []string{
		a.MachEPACheck, a.MachScrewTorque, a.MachSholderingTemp, a.MachLight,
		a.MachFixtureClean, a.MachJigLabel, a.MachTeflon, a.MachPressParams,
		a.MachGlueParams, a.MachEqMoveNotify, a.MachFeelerGauge,
		a.MachHotColdPress, a.MachIonFan, a.MachCleanroomEq, a.MachRTICheck,
		a.MachCurrentTest, a.MachPALQR, a.MachAutoScrew,
		a.MatKeyCheck, a.MatSpecialStop, a.MatImprovedMonitor, a.MatResultCheck,
		a.MatBatteryIssue, a.MatIPACheck, a.MatThermalGel, a.MatVerification,
		a.MethSOPSeq, a.MethDistanceSensor, a.MethRearCamera,
		a.MethMaterialHandling, a.MethGuidelineDoc, a.MethOperationDoc,
		a.MethDefectiveFeedback, a.MethLineRecord, a.MethNoSelfRepair,
		a.MethBatteryFix, a.MethLineChange, a.MethTrailRun, a.MethDummyConduct,
		a.EnvProdMonitor, a.Env5S,
		a.TRCFlowChart, a.FAICheck, a.DefectMonitor, a.SpotCheck,
		a.AutoScrewSample,
	}
}

// HasEvidencePhoto 任一证据照片是否已上传
func (a *AssemblyAudit) HasEvidencePhoto() bool {
	return a.EvidencePhoto1 != "" || a.EvidencePhoto2 != "" || a.EvidencePhoto3 != ""
}
