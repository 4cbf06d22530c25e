package entity

import "time"

// DisassembleChecklist 整机拆解检查表
// 任一检查项为 Not OK 时，必须附缺陷照片或填写缺陷原因分析，
// 校验在service层完成
type DisassembleChecklist struct {
	ID          string `json:"id" gorm:"primaryKey;size:32"`
	WorkContext `gorm:"embedded"`

	// 外观 / 组装质量
	ColorMatch         string `json:"color_match" gorm:"size:10" binding:"omitempty,checkanswer"`
	ColorMatchPhoto    string `json:"color_match_photo" gorm:"size:500"`
	CamLensAssembly    string `json:"cam_lens_assembly" gorm:"size:10" binding:"omitempty,checkanswer"`
	CamLensCleanliness string `json:"cam_lens_cleanliness" gorm:"size:10" binding:"omitempty,checkanswer"`
	CamLensPhoto       string `json:"cam_lens_photo" gorm:"size:500"`
	KeyFeel            string `json:"key_feel" gorm:"size:10" binding:"omitempty,checkanswer"`
	KeyAlignment       string `json:"key_alignment" gorm:"size:10" binding:"omitempty,checkanswer"`
	KeyPhoto           string `json:"key_photo" gorm:"size:500"`
	ScrewMissing       string `json:"screw_missing" gorm:"size:10" binding:"omitempty,checkanswer"`
	ScrewLoose         string `json:"screw_loose" gorm:"size:10" binding:"omitempty,checkanswer"`
	ScrewSpec          string `json:"screw_spec" gorm:"size:10" binding:"omitempty,checkanswer"`
	ScrewPhoto         string `json:"screw_photo" gorm:"size:500"`
	FrontHousingDamage string `json:"front_housing_damage" gorm:"size:10" binding:"omitempty,checkanswer"`
	BackHousingDamage  string `json:"back_housing_damage" gorm:"size:10" binding:"omitempty,checkanswer"`
	HousingSnapFit     string `json:"housing_snap_fit" gorm:"size:10" binding:"omitempty,checkanswer"`
	HousingPhoto       string `json:"housing_photo" gorm:"size:500"`
	ProofLabelPosition string `json:"proof_label_position" gorm:"size:10" binding:"omitempty,checkanswer"`
	ProofLabelPhoto    string `json:"proof_label_photo" gorm:"size:500"`

	// 按SOP组装
	TPSOP             string `json:"tp_sop" gorm:"size:10" binding:"omitempty,checkanswer"`
	MicSolder         string `json:"mic_solder" gorm:"size:10" binding:"omitempty,checkanswer"`
	LEDSolder         string `json:"led_solder" gorm:"size:10" binding:"omitempty,checkanswer"`
	LCDStick          string `json:"lcd_stick" gorm:"size:10" binding:"omitempty,checkanswer"`
	SpeakerSolder     string `json:"speaker_solder" gorm:"size:10" binding:"omitempty,checkanswer"`
	MotorSolder       string `json:"motor_solder" gorm:"size:10" binding:"omitempty,checkanswer"`
	KeySolder         string `json:"key_solder" gorm:"size:10" binding:"omitempty,checkanswer"`
	SIMSubboardSolder string `json:"sim_subboard_solder" gorm:"size:10" binding:"omitempty,checkanswer"`
	SubboardSolder    string `json:"subboard_solder" gorm:"size:10" binding:"omitempty,checkanswer"`
	CameraSolder      string `json:"camera_solder" gorm:"size:10" binding:"omitempty,checkanswer"`
	ReceiverSolder    string `json:"receiver_solder" gorm:"size:10" binding:"omitempty,checkanswer"`

	// 部件与连接检查
	CoaxialLine      string `json:"coaxial_line" gorm:"size:10" binding:"omitempty,checkanswer"`
	AntennaShrapnel  string `json:"antenna_shrapnel" gorm:"size:10" binding:"omitempty,checkanswer"`
	AntennaFPC       string `json:"antenna_fpc" gorm:"size:10" binding:"omitempty,checkanswer"`
	ConductiveFabric string `json:"conductive_fabric" gorm:"size:10" binding:"omitempty,checkanswer"`
	InsulationPaste  string `json:"insulation_paste" gorm:"size:10" binding:"omitempty,checkanswer"`
	InsPasteCover    string `json:"ins_paste_cover" gorm:"size:10" binding:"omitempty,checkanswer"`

	LCDFPCDefect string `json:"lcd_fpc_defect" gorm:"size:10" binding:"omitempty,checkanswer"`
	TPFPCDefect  string `json:"tp_fpc_defect" gorm:"size:10" binding:"omitempty,checkanswer"`
	KeyFPCSolder string `json:"key_fpc_solder" gorm:"size:10" binding:"omitempty,checkanswer"`
	KeypadDefect string `json:"keypad_defect" gorm:"size:10" binding:"omitempty,checkanswer"`

	MainboardComponentOK string `json:"mainboard_component_ok" gorm:"size:10" binding:"omitempty,checkanswer"`

	SolderSplash string `json:"solder_splash" gorm:"size:10" binding:"omitempty,checkanswer"`
	FoamStick    string `json:"foam_stick" gorm:"size:10" binding:"omitempty,checkanswer"`
	CamGlue      string `json:"cam_glue" gorm:"size:10" binding:"omitempty,checkanswer"`
	LEDPosition  string `json:"led_position" gorm:"size:10" binding:"omitempty,checkanswer"`

	// 点胶 / 治具验证
	JigFixtureTest string   `json:"jig_fixture_test" gorm:"size:10" binding:"omitempty,checkanswer"`
	GlueLocation   string   `json:"glue_location" gorm:"size:10" binding:"omitempty,checkanswer"`
	GlueWeight1    *float64 `json:"glue_weight_1"`
	GlueWeight2    *float64 `json:"glue_weight_2"`
	GlueWeight3    *float64 `json:"glue_weight_3"`

	AssemblyOverviewPhoto string `json:"assembly_overview_photo" gorm:"size:500"`
	DefectPhoto           string `json:"defect_photo" gorm:"size:500"`

	IMEI1       string `json:"imei1" gorm:"size:20"`
	IMEI2       string `json:"imei2" gorm:"size:20"`
	DefectCause string `json:"defect_cause" gorm:"type:text"`
	PQE         string `json:"pqe" gorm:"size:100"`
	PE          string `json:"pe" gorm:"size:100"`
	APDLL       string `json:"apd_ll" gorm:"size:100"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-" gorm:"index"`
}

func (DisassembleChecklist) TableName() string {
	return "qc_disassemble_checklists"
}

// CheckItems 所有检查项答案，按固定顺序返回，用于Not OK校验
func (d *DisassembleChecklist) CheckItems() []string {
	return []string{
		d.ColorMatch, d.CamLensAssembly, d.CamLensCleanliness,
		d.KeyFeel, d.KeyAlignment,
		d.ScrewMissing, d.ScrewLoose, d.ScrewSpec,
		d.FrontHousingDamage, d.BackHousingDamage, d.HousingSnapFit,
		d.ProofLabelPosition,
		d.TPSOP, d.MicSolder, d.LEDSolder, d.LCDStick, d.SpeakerSolder,
		d.MotorSolder, d.KeySolder, d.SIMSubboardSolder, d.SubboardSolder,
		d.CameraSolder, d.ReceiverSolder,
		d.CoaxialLine, d.AntennaShrapnel, d.AntennaFPC,
		d.ConductiveFabric, d.InsulationPaste, d.InsPasteCover,
		d.LCDFPCDefect, d.TPFPCDefect, d.KeyFPCSolder, d.KeypadDefect,
		d.MainboardComponentOK,
		d.SolderSplash, d.FoamStick, d.CamGlue, d.LEDPosition,
		d.JigFixtureTest, d.GlueLocation,
	}
}

// HasEvidencePhoto 任一证据照片是否已上传
func (d *DisassembleChecklist) HasEvidencePhoto() bool {
	photos := []string{
		d.ColorMatchPhoto, d.CamLensPhoto, d.KeyPhoto, d.ScrewPhoto,
		d.HousingPhoto, d.ProofLabelPhoto, d.AssemblyOverviewPhoto, d.DefectPhoto,
	}
	for _, p := range photos {
		if p != "" {
			return true
		}
	}
	return false
}
