package logbook

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2024-03-01", "2024-03-01", false},
		{"2024-3-1", "2024-03-01", false}, // single digits accepted
		{"2024/03/01", "", true},
		{"not a date", "", true},
		{"", "", true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) should fail", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDate_Ordering(t *testing.T) {
	a := NewDate(2024, time.March, 1)
	b := NewDate(2024, time.March, 2)
	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Error("Before is broken")
	}
	if !b.After(a) {
		t.Error("After is broken")
	}
}

func TestDate_Add(t *testing.T) {
	d := NewDate(2024, time.February, 28).Add(1)
	if d.String() != "2024-02-29" {
		t.Errorf("2024 is a leap year, got %s", d)
	}
	if got := d.Add(1).String(); got != "2024-03-01" {
		t.Errorf("Add(1) = %s, want 2024-03-01", got)
	}
}

func TestDate_JSON(t *testing.T) {
	data, err := json.Marshal(NewDate(2024, time.March, 1))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-03-01"` {
		t.Errorf("Marshal = %s", data)
	}
	var d Date
	if err := json.Unmarshal(data, &d); err != nil {
		t.Fatal(err)
	}
	if d.Year() != 2024 || d.Month() != time.March || d.Day() != 1 {
		t.Errorf("Unmarshal = %v", d)
	}
}

func TestDate_IsZero(t *testing.T) {
	if !(Date{}).IsZero() {
		t.Error("zero Date should be IsZero")
	}
	if Today().IsZero() {
		t.Error("Today() should not be IsZero")
	}
}
