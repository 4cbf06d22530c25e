package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
	"github.com/MrSingh0729/transs-flow-final/internal/qc/repository"
)

// ExportService 检查记录导出为xlsx
type ExportService struct {
	repos *repository.Repositories
}

func NewExportService(repos *repository.Repositories) *ExportService {
	return &ExportService{repos: repos}
}

// 导出上限，防止一次拉全表
const exportMaxRows = 5000

var ncIssueExportHeaders = []string{
	"Date", "Shift", "Employee ID", "Employee Name", "Section", "Line", "Group",
	"Model", "Stage", "Issue", "3 Why", "Solution", "Operator Name", "Operator ID",
	"Responsible Dept.", "Responsible Person", "Status", "Close Time", "Remark",
}

// ExportNCIssues 导出不符合项问题列表
func (s *ExportService) ExportNCIssues(ctx context.Context, filters map[string]interface{}) (*excelize.File, string, error) {
	items, _, err := s.repos.NCIssue.FindAll(ctx, 1, exportMaxRows, filters)
	if err != nil {
		return nil, "", fmt.Errorf("list nc issues: %w", err)
	}

	f := excelize.NewFile()
	sheet := "NC Issues"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range ncIssueExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for rowIdx, item := range items {
		row := rowIdx + 2
		closeTime := ""
		if item.CloseTime != nil {
			closeTime = item.CloseTime.Format("2006-01-02 15:04")
		}
		values := []interface{}{
			item.Date.Format("2006-01-02"), item.Shift, item.EmpID, item.Name,
			item.Section, item.Line, item.Group, item.Model,
			item.Stage, item.Issue, item.ThreeWhy, item.Solution,
			item.OperatorName, item.OperatorID,
			item.ResponsibleDept, item.ResponsiblePerson,
			item.Status, closeTime, item.Remark,
		}
		for i, v := range values {
			col, _ := excelize.ColumnNumberToName(i + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
		}
	}

	colWidths := []float64{12, 8, 12, 14, 10, 8, 8, 14, 12, 30, 30, 30, 14, 12, 14, 14, 8, 16, 20}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	filename := fmt.Sprintf("NC_Issues_%s.xlsx", time.Now().Format("20060102"))
	return f, filename, nil
}

// btbHours 检查表列顺序：早9点到晚6点
var btbHours = []string{"9:00", "10:00", "11:00", "12:00", "1:00", "2:00", "3:00", "4:00", "5:00", "6:00"}

// ExportBTBChecksheet 导出单张BTB压合检查表，按小时网格布局
func (s *ExportService) ExportBTBChecksheet(ctx context.Context, id string) (*excelize.File, string, error) {
	b, err := s.repos.BTBFitment.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheet := "BTB Fitment"
	f.SetSheetName("Sheet1", sheet)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	f.MergeCell(sheet, "A1", "L1")
	f.SetCellValue(sheet, "A1", "BTB Fitment Check Sheet")
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	// 表头信息
	info := [][2]interface{}{
		{"Date", b.Date.Format("2006-01-02")},
		{"Shift", b.Shift},
		{"Line", b.Line},
		{"Model", b.Model},
		{"Employee ID", b.EmpID},
		{"Frequency", b.Frequency},
	}
	for i, kv := range info {
		row := i/2 + 2
		colOffset := (i % 2) * 3
		keyCol, _ := excelize.ColumnNumberToName(colOffset + 1)
		valCol, _ := excelize.ColumnNumberToName(colOffset + 2)
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", keyCol, row), kv[0])
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", valCol, row), kv[1])
	}

	// 网格：行=检查类别，列=小时，末列合计
	const gridTop = 6
	f.SetCellValue(sheet, fmt.Sprintf("A%d", gridTop), "Check Item")
	for i, h := range btbHours {
		col, _ := excelize.ColumnNumberToName(i + 2)
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, gridTop), h)
	}
	totalCol, _ := excelize.ColumnNumberToName(len(btbHours) + 2)
	f.SetCellValue(sheet, fmt.Sprintf("%s%d", totalCol, gridTop), "Total")
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", gridTop), fmt.Sprintf("%s%d", totalCol, gridTop), boldStyle)

	grid := []struct {
		label string
		cells []int
		total int
	}{
		{"Input", []int{b.Input9, b.Input10, b.Input11, b.Input12, b.Input1, b.Input2, b.Input3, b.Input4, b.Input5, b.Input6}, b.InputTotal},
		{"CAM BTB", []int{b.CamBTB9, b.CamBTB10, b.CamBTB11, b.CamBTB12, b.CamBTB1, b.CamBTB2, b.CamBTB3, b.CamBTB4, b.CamBTB5, b.CamBTB6}, b.CamBTBTotal},
		{"LCD Fitment", []int{b.LCDFitment9, b.LCDFitment10, b.LCDFitment11, b.LCDFitment12, b.LCDFitment1, b.LCDFitment2, b.LCDFitment3, b.LCDFitment4, b.LCDFitment5, b.LCDFitment6}, b.LCDFitmentTotal},
		{"Main FPC", []int{b.MainFPC9, b.MainFPC10, b.MainFPC11, b.MainFPC12, b.MainFPC1, b.MainFPC2, b.MainFPC3, b.MainFPC4, b.MainFPC5, b.MainFPC6}, b.MainFPCTotal},
		{"Battery", []int{b.Battery9, b.Battery10, b.Battery11, b.Battery12, b.Battery1, b.Battery2, b.Battery3, b.Battery4, b.Battery5, b.Battery6}, b.BatteryTotal},
		{"Finger Printer", []int{b.FingerPrinter9, b.FingerPrinter10, b.FingerPrinter11, b.FingerPrinter12, b.FingerPrinter1, b.FingerPrinter2, b.FingerPrinter3, b.FingerPrinter4, b.FingerPrinter5, b.FingerPrinter6}, b.FingerPrinterTotal},
		{"Hourly Total", []int{b.Total9, b.Total10, b.Total11, b.Total12, b.Total1, b.Total2, b.Total3, b.Total4, b.Total5, b.Total6}, b.GrandTotal},
	}
	for r, g := range grid {
		row := gridTop + 1 + r
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), g.label)
		for i, v := range g.cells {
			col, _ := excelize.ColumnNumberToName(i + 2)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
		}
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", totalCol, row), g.total)
	}

	// 备注区
	remarkRow := gridTop + len(grid) + 2
	remarks := [][2]string{
		{"Remark CAM BTB", b.RemarkCamBTB},
		{"Remark LCD Fitment", b.RemarkLCDFitment},
		{"Remark Main FPC", b.RemarkMainFPC},
		{"Remark Battery", b.RemarkBattery},
		{"Remark Finger Printer", b.RemarkFingerPrinter},
	}
	for i, kv := range remarks {
		if kv[1] == "" {
			continue
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", remarkRow+i), kv[0])
		f.SetCellValue(sheet, fmt.Sprintf("B%d", remarkRow+i), kv[1])
	}

	f.SetColWidth(sheet, "A", "A", 16)
	lastCol, _ := excelize.ColumnNumberToName(len(btbHours) + 2)
	f.SetColWidth(sheet, "B", lastCol, 8)

	filename := fmt.Sprintf("BTB_Fitment_%s_%s.xlsx", b.Line, b.Date.Format("20060102"))
	return f, filename, nil
}

var dummyTestExportHeaders = []string{
	"Date", "Shift", "Emp ID", "Name", "Area", "Section", "Line", "Group",
	"Model", "Color", "Test Stage", "Test Item", "Operator Name", "Operator ID",
	"Result", "Cause", "Measure", "LL Confirm", "Remark",
}

// ExportDummyTests 导出Dummy测试记录
func (s *ExportService) ExportDummyTests(ctx context.Context, filters map[string]interface{}) (*excelize.File, string, error) {
	items, _, err := s.repos.DummyTest.FindAll(ctx, 1, exportMaxRows, filters)
	if err != nil {
		return nil, "", fmt.Errorf("list dummy tests: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Dummy Tests"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range dummyTestExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	var failCount int
	for rowIdx, item := range items {
		row := rowIdx + 2
		confirm := "No"
		if item.LLConfirm {
			confirm = "Yes"
		}
		if item.Result == entity.ResultFail {
			failCount++
		}
		values := []interface{}{
			item.Date.Format("2006-01-02"), item.Shift, item.EmpID, item.Name,
			item.Area, item.Section, item.Line, item.Group, item.Model, item.Color,
			item.TestStage, item.TestItem, item.OperatorName, item.OperatorID,
			item.Result, item.Cause, item.Measure, confirm, item.Remark,
		}
		for i, v := range values {
			col, _ := excelize.ColumnNumberToName(i + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
		}
	}

	// 底部汇总行
	summaryRow := len(items) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "汇总")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("记录数: %d", len(items)))
	f.SetCellValue(sheet, fmt.Sprintf("O%d", summaryRow), fmt.Sprintf("Fail: %d", failCount))
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("S%d", summaryRow), summaryStyle)

	colWidths := []float64{12, 8, 12, 14, 10, 10, 8, 8, 14, 10, 14, 24, 14, 12, 8, 24, 24, 10, 20}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	filename := fmt.Sprintf("Dummy_Tests_%s.xlsx", time.Now().Format("20060102"))
	return f, filename, nil
}
