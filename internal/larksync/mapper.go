package larksync

import (
	qcentity "github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
)

// =============================================================================
// 字段映射
// 把本地实体转换成多维表格的字段字典，列名必须与远端表格完全一致
// 映射只做宽容转换，永远不会失败
// =============================================================================

func mapWorkInfo(w *qcentity.WorkInfo) map[string]interface{} {
	return map[string]interface{}{
		"Date":    DateToMillis(w.Date),
		"Shift":   w.Shift,
		"Emp_ID":  w.EmpID,
		"Name":    w.Name,
		"Section": w.Section,
		"Line":    w.Line,
		"Group":   w.Group,
		"Model":   w.Model,
		"Color":   w.Color,
	}
}

func mapBTBFitment(b *qcentity.BTBFitmentChecksheet) map[string]interface{} {
	return map[string]interface{}{
		"Date":          DateToMillis(b.Date),
		"Shift":         b.Shift,
		"Employee ID":   b.EmpID,
		"Employee Name": b.Name,
		"Line":          b.Line,
		"Group":         b.Group,
		"Model":         b.Model,
		"Colour":        b.Color,
		"Frequency":     b.Frequency,
		"Submitted By":  b.Name,
		"Created At":    DateToMillis(b.CreatedAt),

		"Input - 9:00":  SafeInt(b.Input9),
		"Input - 10:00": SafeInt(b.Input10),
		"Input - 11:00": SafeInt(b.Input11),
		"Input - 12:00": SafeInt(b.Input12),
		"Input - 1:00":  SafeInt(b.Input1),
		"Input - 2:00":  SafeInt(b.Input2),
		"Input - 3:00":  SafeInt(b.Input3),
		"Input - 4:00":  SafeInt(b.Input4),
		"Input - 5:00":  SafeInt(b.Input5),
		"Input - 6:00":  SafeInt(b.Input6),
		"Input - Total": SafeInt(b.InputTotal),

		"CAM BTB - 9:00":  SafeInt(b.CamBTB9),
		"CAM BTB - 10:00": SafeInt(b.CamBTB10),
		"CAM BTB - 11:00": SafeInt(b.CamBTB11),
		"CAM BTB - 12:00": SafeInt(b.CamBTB12),
		"CAM BTB - 1:00":  SafeInt(b.CamBTB1),
		"CAM BTB - 2:00":  SafeInt(b.CamBTB2),
		"CAM BTB - 3:00":  SafeInt(b.CamBTB3),
		"CAM BTB - 4:00":  SafeInt(b.CamBTB4),
		"CAM BTB - 5:00":  SafeInt(b.CamBTB5),
		"CAM BTB - 6:00":  SafeInt(b.CamBTB6),
		"CAM BTB - Total": SafeInt(b.CamBTBTotal),

		"LCD Fitment - 9:00":  SafeInt(b.LCDFitment9),
		"LCD Fitment - 10:00": SafeInt(b.LCDFitment10),
		"LCD Fitment - 11:00": SafeInt(b.LCDFitment11),
		"LCD Fitment - 12:00": SafeInt(b.LCDFitment12),
		"LCD Fitment - 1:00":  SafeInt(b.LCDFitment1),
		"LCD Fitment - 2:00":  SafeInt(b.LCDFitment2),
		"LCD Fitment - 3:00":  SafeInt(b.LCDFitment3),
		"LCD Fitment - 4:00":  SafeInt(b.LCDFitment4),
		"LCD Fitment - 5:00":  SafeInt(b.LCDFitment5),
		"LCD Fitment - 6:00":  SafeInt(b.LCDFitment6),
		"LCD Fitment - Total": SafeInt(b.LCDFitmentTotal),

		"MAIN FPC - 9:00":  SafeInt(b.MainFPC9),
		"MAIN FPC - 10:00": SafeInt(b.MainFPC10),
		"MAIN FPC - 11:00": SafeInt(b.MainFPC11),
		"MAIN FPC - 12:00": SafeInt(b.MainFPC12),
		"MAIN FPC - 1:00":  SafeInt(b.MainFPC1),
		"MAIN FPC - 2:00":  SafeInt(b.MainFPC2),
		"MAIN FPC - 3:00":  SafeInt(b.MainFPC3),
		"MAIN FPC - 4:00":  SafeInt(b.MainFPC4),
		"MAIN FPC - 5:00":  SafeInt(b.MainFPC5),
		"MAIN FPC - 6:00":  SafeInt(b.MainFPC6),
		"MAIN FPC - Total": SafeInt(b.MainFPCTotal),

		"Battery - 9:00":  SafeInt(b.Battery9),
		"Battery - 10:00": SafeInt(b.Battery10),
		"Battery - 11:00": SafeInt(b.Battery11),
		"Battery - 12:00": SafeInt(b.Battery12),
		"Battery - 1:00":  SafeInt(b.Battery1),
		"Battery - 2:00":  SafeInt(b.Battery2),
		"Battery - 3:00":  SafeInt(b.Battery3),
		"Battery - 4:00":  SafeInt(b.Battery4),
		"Battery - 5:00":  SafeInt(b.Battery5),
		"Battery - 6:00":  SafeInt(b.Battery6),
		"Battery - Total": SafeInt(b.BatteryTotal),

		"Finger Printer - 9:00":  SafeInt(b.FingerPrinter9),
		"Finger Printer - 10:00": SafeInt(b.FingerPrinter10),
		"Finger Printer - 11:00": SafeInt(b.FingerPrinter11),
		"Finger Printer - 12:00": SafeInt(b.FingerPrinter12),
		"Finger Printer - 1:00":  SafeInt(b.FingerPrinter1),
		"Finger Printer - 2:00":  SafeInt(b.FingerPrinter2),
		"Finger Printer - 3:00":  SafeInt(b.FingerPrinter3),
		"Finger Printer - 4:00":  SafeInt(b.FingerPrinter4),
		"Finger Printer - 5:00":  SafeInt(b.FingerPrinter5),
		"Finger Printer - 6:00":  SafeInt(b.FingerPrinter6),
		"Finger Printer - Total": SafeInt(b.FingerPrinterTotal),

		"Total - 9:00":  SafeInt(b.Total9),
		"Total - 10:00": SafeInt(b.Total10),
		"Total - 11:00": SafeInt(b.Total11),
		"Total - 12:00": SafeInt(b.Total12),
		"Total - 1:00":  SafeInt(b.Total1),
		"Total - 2:00":  SafeInt(b.Total2),
		"Total - 3:00":  SafeInt(b.Total3),
		"Total - 4:00":  SafeInt(b.Total4),
		"Total - 5:00":  SafeInt(b.Total5),
		"Total - 6:00":  SafeInt(b.Total6),

		"Remark - CAM BTB":        b.RemarkCamBTB,
		"Remark - LCD Fitment":    b.RemarkLCDFitment,
		"Remark - MAIN FPC":       b.RemarkMainFPC,
		"Remark - Battery":        b.RemarkBattery,
		"Remark - Finger Printer": b.RemarkFingerPrinter,

		"Grand Total": b.GrandTotal,
	}
}

func mapDummyTest(d *qcentity.DummyTest) map[string]interface{} {
	return map[string]interface{}{
		"Date":          DateToMillis(d.Date),
		"Shift":         d.Shift,
		"Emp ID":        d.EmpID,
		"Name":          d.Name,
		"Area":          d.Area,
		"Section":       d.Section,
		"Line":          d.Line,
		"Group":         d.Group,
		"Model":         d.Model,
		"Color":         d.Color,
		"Test Stage":    d.TestStage,
		"Test Item":     d.TestItem,
		"Operator Name": d.OperatorName,
		"Operator ID":   d.OperatorID,
		"Result":        d.Result,
		"Cause":         d.Cause,
		"Measure":       d.Measure,
		"LL Confirm":    YesNo(d.LLConfirm),
		"Remark":        d.Remark,
		"Created At":    DateToMillis(d.CreatedAt),
		"Updated At":    DateToMillis(d.UpdatedAt),
	}
}

func mapDisassemble(d *qcentity.DisassembleChecklist) map[string]interface{} {
	return map[string]interface{}{
		"Date":          DateToMillis(d.Date),
		"Shift":         d.Shift,
		"Employee ID":   d.EmpID,
		"Employee Name": d.Name,
		"Section":       d.Section,
		"Line":          d.Line,
		"Group":         d.Group,
		"Model":         d.Model,
		"Color":         d.Color,

		"Colour Match":      d.ColorMatch,
		"TP SOP":            d.TPSOP,
		"Camera Lens":       d.CamLensAssembly,
		"Key Feel":          d.KeyFeel,
		"Screw Check":       d.ScrewMissing,
		"Front Housing":     d.FrontHousingDamage,
		"Back Housing":      d.BackHousingDamage,
		"Proof Label":       d.ProofLabelPosition,
		"Mic SOP":           d.MicSolder,
		"LED SOP":           d.LEDSolder,
		"Coaxial Line":      d.CoaxialLine,
		"LCD SOP":           d.LCDStick,
		"Speaker SOP":       d.SpeakerSolder,
		"Motor SOP":         d.MotorSolder,
		"Key SOP":           d.KeySolder,
		"SIM Subboard":      d.SIMSubboardSolder,
		"Subboard SOP":      d.SubboardSolder,
		"Antenna Shrapnel":  d.AntennaShrapnel,
		"Conductive Fabric": d.ConductiveFabric,
		"Insulation Paste":  d.InsulationPaste,
		"Camera SOP":        d.CameraSolder,
		"Mainboard OK":      d.MainboardComponentOK,
		"Antenna FPC":       d.AntennaFPC,
		"Receiver SOP":      d.ReceiverSolder,
		"LCD FPC Defect":    d.LCDFPCDefect,
		"TP FPC Defect":     d.TPFPCDefect,
		"Key FPC Solder":    d.KeyFPCSolder,
		"Keypad Defect":     d.KeypadDefect,
		"Solder Splash":     d.SolderSplash,
		"Foam Stick":        d.FoamStick,
		"Camera Glue":       d.CamGlue,
		"Paste Cover":       d.InsPasteCover,
		"LED Position":      d.LEDPosition,
		"Jig/Fixture Test":  d.JigFixtureTest,
		"Glue Location":     d.GlueLocation,

		"IMEI 1":                d.IMEI1,
		"IMEI 2":                d.IMEI2,
		"Defect cause analysis": d.DefectCause,
		"PQE":                   d.PQE,
		"PE":                    d.PE,
		"APD LL":                d.APDLL,

		"Created At": DateToMillis(d.CreatedAt),
		"Updated At": DateToMillis(d.UpdatedAt),
	}
}

func mapAssemblyAudit(a *qcentity.AssemblyAudit) map[string]interface{} {
	return map[string]interface{}{
		"Date":        DateToMillis(a.Date),
		"Shift":       a.Shift,
		"IPQC Name":   a.Name,
		"Employee ID": a.EmpID,
		"Section":     a.Section,
		"Group":       a.Group,
		"Line":        a.Line,
		"Model":       a.Model,
		"Colour":      a.Color,
		"Created At":  DateToMillis(a.CreatedAt),

		"EPA Check":                   a.MachEPACheck,
		"Screw Torque":                a.MachScrewTorque,
		"Light Illuminance":           a.MachLight,
		"Fixture Cleanliness":         a.MachFixtureClean,
		"Jig Label Validity":          a.MachJigLabel,
		"Teflon Condition":            a.MachTeflon,
		"Press Parameters":            a.MachPressParams,
		"Glue Parameters":             a.MachGlueParams,
		"Equipment Move Notification": a.MachEqMoveNotify,
		"Feeler Gauge Check":          a.MachFeelerGauge,
		"Hot/Cold Press Parameters":   a.MachHotColdPress,
		"Ion Fan Position":            a.MachIonFan,
		"Clean Room Equipment":        a.MachCleanroomEq,
		"RTI Check":                   a.MachRTICheck,
		"Current Test Parameters":     a.MachCurrentTest,
		"PAL QR Check":                a.MachPALQR,
		"Automatic Screwing":          a.MachAutoScrew,

		"Key Material Check":        a.MatKeyCheck,
		"Special Stop Material":     a.MatSpecialStop,
		"Improved Material Monitor": a.MatImprovedMonitor,
		"Material Result Check":     a.MatResultCheck,
		"Battery Issue Handling":    a.MatBatteryIssue,
		"IPA Usage Check":           a.MatIPACheck,
		"Thermal Gel Check":         a.MatThermalGel,
		"Material Verification":     a.MatVerification,

		"SOP Sequence Verification":  a.MethSOPSeq,
		"Distance Sensor Height":     a.MethDistanceSensor,
		"Rear Camera Seal Check":     a.MethRearCamera,
		"Material Handling":          a.MethMaterialHandling,
		"Guideline Document":         a.MethGuidelineDoc,
		"Operation Document":         a.MethOperationDoc,
		"Defective Feedback Process": a.MethDefectiveFeedback,
		"Line Record Verification":   a.MethLineRecord,
		"No Self Repair":             a.MethNoSelfRepair,
		"Battery Fix Check":          a.MethBatteryFix,
		"Line Change Verification":   a.MethLineChange,
		"Trial Run Monitoring":       a.MethTrailRun,
		"Dummy Conduct Check":        a.MethDummyConduct,

		"Production Environment Monitoring": a.EnvProdMonitor,
		"5S Check":                          a.Env5S,

		"TRC Flow Chart":      a.TRCFlowChart,
		"FAI Check":           a.FAICheck,
		"Defect Monitoring":   a.DefectMonitor,
		"Spot Check":          a.SpotCheck,
		"Auto Screw Sampling": a.AutoScrewSample,

		"Manufacture":    a.Manufacture,
		"Work Order":     a.WorkOrder,
		"Brand":          a.Brand,
		"Material Code":  a.MaterialCode,
		"WO / Input Qty": SafeInt(a.WOInputQty),

		"Top 3 Defects": a.Top3Defects,
		"Remarks":       a.Remarks,

		"IPQC Sign":   a.IPQCSign,
		"PQE/TL Sign": a.PQETLSign,
	}
}

func mapNCIssue(n *qcentity.NCIssue) map[string]interface{} {
	fields := map[string]interface{}{
		"Date":          DateToMillis(n.Date),
		"Shift":         n.Shift,
		"Employee ID":   n.EmpID,
		"Employee Name": n.Name,
		"Section":       n.Section,
		"Line":          n.Line,
		"Group":         n.Group,
		"Model":         n.Model,
		"Color":         n.Color,

		"Stage":              n.Stage,
		"Time":               TimeToMillis(n.Time),
		"Issue":              n.Issue,
		"3 Why":              n.ThreeWhy,
		"Solution":           n.Solution,
		"Operator Name":      n.OperatorName,
		"Operator ID":        n.OperatorID,
		"Responsible Dept.":  n.ResponsibleDept,
		"Responsible Person": n.ResponsiblePerson,
		"Status":             n.Status,
		"Remark":             n.Remark,

		"Created At": DateToMillis(n.CreatedAt),
		"Updated At": DateToMillis(n.UpdatedAt),
	}
	if n.CloseTime != nil {
		fields["Close Time"] = TimeToMillis(*n.CloseTime)
	}
	return fields
}

func mapESDCompliance(e *qcentity.ESDCompliance) map[string]interface{} {
	return map[string]interface{}{
		"Date":        DateToMillis(e.Date),
		"Shift":       e.Shift,
		"Employee ID": e.EmpID,
		"Name":        e.Name,
		"Line":        e.Line,
		"Group":       e.Group,
		"Model":       e.Model,
		"Color":       e.Color,

		"EPA Wear ESD Clothes":      e.EPAClothes,
		"No ESD Clothes Outside":    e.ForbidWearOut,
		"No Accessories on Clothes": e.NoAccessories,
		"Clothes Clean & Tidy":      e.ClothesClean,
		"Collar & Button Rules":     e.CollarCover,
		"Hair Inside Cap":           e.HairCap,
		"Check Slipper & Band":      e.SlipperCheck,
		"Wrist Band Precheck":       e.PreLineCheck,
		"Wrist Band Touch Skin":     e.WristTouchSkin,
		"No Touch PCBA/ESDS":        e.NoTouchPCBA,
		"Alert When Plug Out":       e.AlertPlugOut,
		"Trolley Grounded":          e.TrolleyGrounding,
		"Ion Fan Distance OK":       e.IonFanDistance,
		"Ion Fan Direction OK":      e.IonFanDirection,
		"Audit Label Valid":         e.AuditLabelValid,
		"Devices Grounded":          e.DeviceGrounded,
		"Gloves/Fingers OK":         e.GlovesCondition,
		"Mat Grounded":              e.MatGrounded,
		"ESDS in ESD Box":           e.ESDSBox,
		"Table No ESD Source":       e.TableNoSource,
		"Tools Daily Audit":         e.ToolsAudit,
		"Temp & Humidity SPEC":      e.TempHumidity,
		"Tray Voltage < ±100V":      e.TrayVoltage,

		"Remark":     e.Remark,
		"Created At": DateToMillis(e.CreatedAt),
		"Updated At": DateToMillis(e.UpdatedAt),
	}
}

func mapDustCount(d *qcentity.DustCount) map[string]interface{} {
	return map[string]interface{}{
		"Date":        DateToMillis(d.Date),
		"Shift":       d.Shift,
		"Employee ID": d.EmpID,
		"Name":        d.Name,
		"Line":        d.Line,
		"Group":       d.Group,
		"Model":       d.Model,
		"Color":       d.Color,

		"≥0.3 micrometer": d.Micrometer03,
		"≥0.5 micrometer": d.Micrometer05,
		"≥1.0 micrometer": d.Micrometer10,

		"Checked By":  d.CheckedBy,
		"Verified By": d.VerifiedBy,
		"Remark":      d.Remark,
		"Created At":  DateToMillis(d.CreatedAt),
		"Updated At":  DateToMillis(d.UpdatedAt),
	}
}

func mapTestingFAI(f *qcentity.TestingFAI) map[string]interface{} {
	return map[string]interface{}{
		"Date":          DateToMillis(f.Date),
		"Shift":         f.Shift,
		"Employee ID":   f.EmpID,
		"Employee Name": f.Name,
		"Section":       f.Section,
		"Line":          f.Line,
		"Group":         f.Group,
		"Model":         f.Model,
		"Color":         f.Color,

		"Production Work Order No":    f.ProductionWorkOrderNo,
		"First Article Type":          f.FirstArticleType,
		"Software Version Check":      f.SoftwareVerCheck,
		"Android Version Check":       f.AndroidVerCheck,
		"Memory Inbuilt Check Result": f.MemoryInbuiltCheck,
		"Order Confirmation Check":    f.OrderConfirmCheck,

		"Label Check":          f.LabelCheck,
		"Label Position Check": f.LabelPositionCheck,

		"Visual Handset Appearance Check": f.VisualInspectionHandset,
		"Logo Check":                      f.LogoCheck,
		"Battery Assembly Check":          f.AssemblyBatteryCheck,
		"Net Color Check":                 f.NetColorCheck,
		"TP Key Function Check":           f.TPWithKeyCheck,
		"Screw Check":                     f.ScrewCheck,

		"TP Charge Test":                 f.TPWithChargeTest,
		"15-Min Charge Test":             f.Charge15MinTest,
		"Boot Time Test":                 f.BootTimeTest,
		"Initialization & Settings Test": f.InitSettingsTest,
		"Button & Key Feel Test":         f.ButtonsKeysTest,
		"Touch Screen Pen Test":          f.TouchScreenPenTest,
		"Calling Test":                   f.CallingTest,

		"Bluetooth Function Test":    f.BluetoothTest,
		"Flashlight/Induction Test":  f.FlashlightTest,
		"Camera Flash Test":          f.CameraFlashTest,
		"Front/Rear Camera Test":     f.CameraPhotoTest,
		"Camera Dark Test":           f.CameraDarkTest,
		"Long Distance Camera Check": f.CameraLongDistanceCheck,
		"High Light Defect Check":    f.HighlightDefectCheck,

		"Multimedia Play Test":            f.MultimediaPlayTest,
		"FM Play Test":                    f.FMPlayTest,
		"TV Function Test":                f.TVFnTest,
		"Taping Function Test":            f.TapingFnTest,
		"Shaking Screen Test":             f.ShakingScreenTest,
		"WiFi Function Test":              f.WiFiTest,
		"Gravity Sensor Test":             f.GravitySensorTest,
		"Light & Distance Sensor Test":    f.LightDistanceSensorTest,
		"Hall Function Test":              f.HallFnTest,
		"QR Code Scan Test":               f.QRScanTest,
		"RAM/ROM/T Card Capacity Test":    f.RAMROMCapTest,
		"Mode Switch Test":                f.ModeSwitchTest,
		"Touch in Developer Options Test": f.TouchInDevOptTest,
		"MAC Address Check":               f.MACAddTest,
		"OTG Function Test":               f.OTGFnTest,

		"T-Card/SIM Plug-Pull Test":          f.TCardSIMPlugTest,
		"Auto Focus Clarity Test":            f.FocusTest,
		"Front/Back Camera Photo Test":       f.FrontBackCamTest,
		"Slight Drop Test":                   f.SlightDropTest,
		"Charging & USB Stability Test":      f.SlightTouchTest,
		"Coupling RF Test":                   f.CoumplingRFTest,
		"Power Consumption Test":             f.PowerConsumptionTest,
		"High Temperature Simulation Test":   f.HighTempSimulTest,
		"Post Factory Reset Function Test":   f.FactoryResetFnTest,
		"SAR Value Test":                     f.SARValueTest,
		"Post Factory Reset Call Noise Test": f.FactoryResetCallNoiseTest,
		"Factory Reset Visual Test":          f.FactoryResetTest,

		"High Temp Boot Test":             f.HighTempBootCheck,
		"High Temp Engineering Mode Test": f.HighTempEngiModeTest,
		"High Temp Call Test":             f.HighTempCallTest,
		"High Temp Charging Test":         f.HighTempChargingTest,
		"High Temp Camera Test":           f.HighTempCameraTest,
		"High Temp Camera Photo":          f.HighTempCameraTestEvidence,

		"Shutdown Behavior Test":     f.ShutdownTest,
		"Sample Serial Number":       f.SampleSerialNumber,
		"IMEI Number":                f.IMEINumber,
		"Visual & Functional Result": f.VisualFunctionalResult,
		"Reliability Test Result":    f.ReliabilityResult,

		"Public Token": f.PublicToken,
		"Remarks":      f.Remarks,
	}
}

// mapTestingFAIUpdate QE确认后回写远端的字段
func mapTestingFAIUpdate(f *qcentity.TestingFAI) map[string]interface{} {
	return map[string]interface{}{
		"QE Confirm Name":   f.QEConfirmName,
		"QE Confirm Status": f.QEConfirmStatus,
		"Public URL":        f.PublicURL,
	}
}
