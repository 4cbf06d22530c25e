package entity

import (
	"time"

	"gorm.io/gorm"
)

// BTBFitmentChecksheet BTB压合检查表
// 按小时记录五个检查类别加进料数量，保存时自动重算各类合计、
// 各小时合计与总合计（总合计不含Input）
type BTBFitmentChecksheet struct {
	ID          string `json:"id" gorm:"primaryKey;size:32"`
	WorkContext `gorm:"embedded"`

	Frequency string `json:"frequency" gorm:"size:50;default:'Per Hour'"`

	// Input 进料数量（不计入合计）
	Input9  int `json:"input_9"`
	Input10 int `json:"input_10"`
	Input11 int `json:"input_11"`
	Input12 int `json:"input_12"`
	Input1  int `json:"input_1"`
	Input2  int `json:"input_2"`
	Input3  int `json:"input_3"`
	Input4  int `json:"input_4"`
	Input5  int `json:"input_5"`
	Input6  int `json:"input_6"`

	CamBTB9  int `json:"cam_btb_9"`
	CamBTB10 int `json:"cam_btb_10"`
	CamBTB11 int `json:"cam_btb_11"`
	CamBTB12 int `json:"cam_btb_12"`
	CamBTB1  int `json:"cam_btb_1"`
	CamBTB2  int `json:"cam_btb_2"`
	CamBTB3  int `json:"cam_btb_3"`
	CamBTB4  int `json:"cam_btb_4"`
	CamBTB5  int `json:"cam_btb_5"`
	CamBTB6  int `json:"cam_btb_6"`

	LCDFitment9  int `json:"lcd_fitment_9"`
	LCDFitment10 int `json:"lcd_fitment_10"`
	LCDFitment11 int `json:"lcd_fitment_11"`
	LCDFitment12 int `json:"lcd_fitment_12"`
	LCDFitment1  int `json:"lcd_fitment_1"`
	LCDFitment2  int `json:"lcd_fitment_2"`
	LCDFitment3  int `json:"lcd_fitment_3"`
	LCDFitment4  int `json:"lcd_fitment_4"`
	LCDFitment5  int `json:"lcd_fitment_5"`
	LCDFitment6  int `json:"lcd_fitment_6"`

	MainFPC9  int `json:"main_fpc_9"`
	MainFPC10 int `json:"main_fpc_10"`
	MainFPC11 int `json:"main_fpc_11"`
	MainFPC12 int `json:"main_fpc_12"`
	MainFPC1  int `json:"main_fpc_1"`
	MainFPC2  int `json:"main_fpc_2"`
	MainFPC3  int `json:"main_fpc_3"`
	MainFPC4  int `json:"main_fpc_4"`
	MainFPC5  int `json:"main_fpc_5"`
	MainFPC6  int `json:"main_fpc_6"`

	Battery9  int `json:"battery_9"`
	Battery10 int `json:"battery_10"`
	Battery11 int `json:"battery_11"`
	Battery12 int `json:"battery_12"`
	Battery1  int `json:"battery_1"`
	Battery2  int `json:"battery_2"`
	Battery3  int `json:"battery_3"`
	Battery4  int `json:"battery_4"`
	Battery5  int `json:"battery_5"`
	Battery6  int `json:"battery_6"`

	FingerPrinter9  int `json:"finger_printer_9"`
	FingerPrinter10 int `json:"finger_printer_10"`
	FingerPrinter11 int `json:"finger_printer_11"`
	FingerPrinter12 int `json:"finger_printer_12"`
	FingerPrinter1  int `json:"finger_printer_1"`
	FingerPrinter2  int `json:"finger_printer_2"`
	FingerPrinter3  int `json:"finger_printer_3"`
	FingerPrinter4  int `json:"finger_printer_4"`
	FingerPrinter5  int `json:"finger_printer_5"`
	FingerPrinter6  int `json:"finger_printer_6"`

	// 各类别合计（保存时重算）
	InputTotal         int `json:"input_total"`
	CamBTBTotal        int `json:"cam_btb_total"`
	LCDFitmentTotal    int `json:"lcd_fitment_total"`
	MainFPCTotal       int `json:"main_fpc_total"`
	BatteryTotal       int `json:"battery_total"`
	FingerPrinterTotal int `json:"finger_printer_total"`

	// 各小时合计（五个检查类别之和，不含Input）
	Total9  int `json:"total_9"`
	Total10 int `json:"total_10"`
	Total11 int `json:"total_11"`
	Total12 int `json:"total_12"`
	Total1  int `json:"total_1"`
	Total2  int `json:"total_2"`
	Total3  int `json:"total_3"`
	Total4  int `json:"total_4"`
	Total5  int `json:"total_5"`
	Total6  int `json:"total_6"`

	GrandTotal int `json:"grand_total"`

	RemarkCamBTB        string `json:"remark_cam_btb" gorm:"type:text"`
	RemarkLCDFitment    string `json:"remark_lcd_fitment" gorm:"type:text"`
	RemarkMainFPC       string `json:"remark_main_fpc" gorm:"type:text"`
	RemarkBattery       string `json:"remark_battery" gorm:"type:text"`
	RemarkFingerPrinter string `json:"remark_finger_printer" gorm:"type:text"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-" gorm:"index"`
}

func (BTBFitmentChecksheet) TableName() string {
	return "qc_btb_fitment_checksheets"
}

func sumCells(cells ...int) int {
	total := 0
	for _, c := range cells {
		total += c
	}
	return total
}

// Recompute 重算所有合计字段
func (b *BTBFitmentChecksheet) Recompute() {
	b.InputTotal = sumCells(b.Input9, b.Input10, b.Input11, b.Input12, b.Input1, b.Input2, b.Input3, b.Input4, b.Input5, b.Input6)
	b.CamBTBTotal = sumCells(b.CamBTB9, b.CamBTB10, b.CamBTB11, b.CamBTB12, b.CamBTB1, b.CamBTB2, b.CamBTB3, b.CamBTB4, b.CamBTB5, b.CamBTB6)
	b.LCDFitmentTotal = sumCells(b.LCDFitment9, b.LCDFitment10, b.LCDFitment11, b.LCDFitment12, b.LCDFitment1, b.LCDFitment2, b.LCDFitment3, b.LCDFitment4, b.LCDFitment5, b.LCDFitment6)
	b.MainFPCTotal = sumCells(b.MainFPC9, b.MainFPC10, b.MainFPC11, b.MainFPC12, b.MainFPC1, b.MainFPC2, b.MainFPC3, b.MainFPC4, b.MainFPC5, b.MainFPC6)
	b.BatteryTotal = sumCells(b.Battery9, b.Battery10, b.Battery11, b.Battery12, b.Battery1, b.Battery2, b.Battery3, b.Battery4, b.Battery5, b.Battery6)
	b.FingerPrinterTotal = sumCells(b.FingerPrinter9, b.FingerPrinter10, b.FingerPrinter11, b.FingerPrinter12, b.FingerPrinter1, b.FingerPrinter2, b.FingerPrinter3, b.FingerPrinter4, b.FingerPrinter5, b.FingerPrinter6)

	b.Total9 = sumCells(b.CamBTB9, b.LCDFitment9, b.MainFPC9, b.Battery9, b.FingerPrinter9)
	b.Total10 = sumCells(b.CamBTB10, b.LCDFitment10, b.MainFPC10, b.Battery10, b.FingerPrinter10)
	b.Total11 = sumCells(b.CamBTB11, b.LCDFitment11, b.MainFPC11, b.Battery11, b.FingerPrinter11)
	b.Total12 = sumCells(b.CamBTB12, b.LCDFitment12, b.MainFPC12, b.Battery12, b.FingerPrinter12)
	b.Total1 = sumCells(b.CamBTB1, b.LCDFitment1, b.MainFPC1, b.Battery1, b.FingerPrinter1)
	b.Total2 = sumCells(b.CamBTB2, b.LCDFitment2, b.MainFPC2, b.Battery2, b.FingerPrinter2)
	b.Total3 = sumCells(b.CamBTB3, b.LCDFitment3, b.MainFPC3, b.Battery3, b.FingerPrinter3)
	b.Total4 = sumCells(b.CamBTB4, b.LCDFitment4, b.MainFPC4, b.Battery4, b.FingerPrinter4)
	b.Total5 = sumCells(b.CamBTB5, b.LCDFitment5, b.MainFPC5, b.Battery5, b.FingerPrinter5)
	b.Total6 = sumCells(b.CamBTB6, b.LCDFitment6, b.MainFPC6, b.Battery6, b.FingerPrinter6)

	// 总合计为五个检查类别的合计之和，不包含Input
	b.GrandTotal = b.CamBTBTotal + b.LCDFitmentTotal + b.MainFPCTotal + b.BatteryTotal + b.FingerPrinterTotal
}

func (b *BTBFitmentChecksheet) BeforeSave(tx *gorm.DB) error {
	b.Recompute()
	return nil
}
