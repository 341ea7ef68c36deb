package cleaner

import (
	"testing"
	"time"
)

func TestToTime(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"September 25, 2021", time.Date(2021, 9, 25, 0, 0, 0, 0, time.UTC), false},
		{"  August 4, 2017", time.Date(2017, 8, 4, 0, 0, 0, 0, time.UTC), false},
		{"Sep 5, 2019", time.Date(2019, 9, 5, 0, 0, 0, 0, time.UTC), false},
		{"2020-01-31", time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC), false},
		{"yesterday", time.Time{}, true},
		{"", time.Time{}, true},
	}

	for _, tt := range tests {
		got, err := toTime(tt.in, defaultDateLayouts)
		if tt.wantErr {
			if err == nil {
				t.Errorf("toTime(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("toTime(%q): unexpected error %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("toTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToInt(t *testing.T) {
	if v, err := toInt(" 2019 "); err != nil || v != 2019 {
		t.Errorf("Expected 2019, got %d (%v)", v, err)
	}
	if _, err := toInt("2019.5"); err == nil {
		t.Error("Expected error for non-integer")
	}
	if _, err := toInt(""); err == nil {
		t.Error("Expected error for empty value")
	}
}

func TestExtractDurationOverflow(t *testing.T) {
	got, op := extractDurationMinutes("99999999999999999999999 min", true, "s1")
	if got != nil {
		t.Errorf("Expected nil for overflowing digits, got %d", *got)
	}
	if op == nil {
		t.Error("Expected a cleaning operation for overflow")
	}
}
