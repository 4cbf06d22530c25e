package entity

import "testing"

func TestBTBRecomputeTotals(t *testing.T) {
	b := &BTBFitmentChecksheet{
		Input9:         100,
		CamBTB9:        1,
		LCDFitment9:    1,
		MainFPC9:       1,
		Battery9:       1,
		FingerPrinter9: 1,
	}
	b.Recompute()

	if b.Total9 != 5 {
		t.Errorf("Total9 = %d, want 5", b.Total9)
	}
	// Input不计入总合计
	if b.GrandTotal != 5 {
		t.Errorf("GrandTotal = %d, want 5", b.GrandTotal)
	}
	if b.InputTotal != 100 {
		t.Errorf("InputTotal = %d, want 100", b.InputTotal)
	}
}

func TestBTBRecomputeCategoryTotals(t *testing.T) {
	b := &BTBFitmentChecksheet{
		CamBTB9: 2, CamBTB10: 3, CamBTB6: 5,
		Battery12: 4, Battery1: 6,
	}
	b.Recompute()

	if b.CamBTBTotal != 10 {
		t.Errorf("CamBTBTotal = %d, want 10", b.CamBTBTotal)
	}
	if b.BatteryTotal != 10 {
		t.Errorf("BatteryTotal = %d, want 10", b.BatteryTotal)
	}
	if b.GrandTotal != 20 {
		t.Errorf("GrandTotal = %d, want 20", b.GrandTotal)
	}
	if b.Total12 != 4 || b.Total1 != 6 {
		t.Errorf("hourly totals = %d/%d, want 4/6", b.Total12, b.Total1)
	}
}

func TestBTBRecomputeZeroSheet(t *testing.T) {
	b := &BTBFitmentChecksheet{}
	b.Recompute()
	if b.GrandTotal != 0 {
		t.Errorf("GrandTotal = %d, want 0", b.GrandTotal)
	}
}

func TestDisassembleCheckItemsAndPhotos(t *testing.T) {
	d := &DisassembleChecklist{ColorMatch: CheckNotOK}
	found := false
	for _, item := range d.CheckItems() {
		if item == CheckNotOK {
			found = true
		}
	}
	if !found {
		t.Errorf("CheckItems should include the Not OK answer")
	}
	if d.HasEvidencePhoto() {
		t.Errorf("no photos uploaded, HasEvidencePhoto should be false")
	}
	d.DefectPhoto = "/uploads/2024/01/defect.jpg"
	if !d.HasEvidencePhoto() {
		t.Errorf("defect photo uploaded, HasEvidencePhoto should be true")
	}
}
