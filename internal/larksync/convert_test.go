package larksync

import (
	"testing"
	"time"
)

func TestSafeInt(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want int
	}{
		{"nil", nil, 0},
		{"empty string", "", 0},
		{"blank string", "   ", 0},
		{"numeric string", "42", 42},
		{"junk string", "abc", 0},
		{"int", 7, 7},
		{"int64", int64(9), 9},
		{"float", 3.9, 3},
		{"bool true", true, 1},
		{"bool false", false, 0},
		{"unsupported type", []string{"x"}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SafeInt(tc.in); got != tc.want {
				t.Errorf("SafeInt(%v) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestYesNo(t *testing.T) {
	if YesNo(true) != "Yes" {
		t.Errorf("YesNo(true) = %q, want Yes", YesNo(true))
	}
	if YesNo(false) != "No" {
		t.Errorf("YesNo(false) = %q, want No", YesNo(false))
	}
}

func TestDateToMillis(t *testing.T) {
	// 2024-01-15 零点IST = 2024-01-14T18:30:00Z
	d := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	got := DateToMillis(d)
	want := int64(1705257000000)
	if got != want {
		t.Errorf("DateToMillis = %d, want %d", got, want)
	}

	// 无论输入时刻在当天几点，结果都是当天零点
	evening := time.Date(2024, 1, 15, 23, 45, 0, 0, time.UTC)
	if DateToMillis(evening) != want {
		t.Errorf("DateToMillis should ignore time of day")
	}
}

func TestDateMillisRoundtrip(t *testing.T) {
	d := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	back := MillisToDate(DateToMillis(d))
	if back.Year() != 2025 || back.Month() != time.June || back.Day() != 30 {
		t.Errorf("roundtrip date = %v, want 2025-06-30", back)
	}
}
