package usecase

import (
	"math"
	"testing"
)

func TestResolvePriceRange(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		wantMin    float64
		wantMax    float64
		wantMaxInf bool
	}{
		{"under 100", "Under $100", 0, 100, false},
		{"mid range", "$200 - $400", 200, 400, false},
		{"upper range", "$600 - $800", 600, 800, false},
		{"open ended", "$800+", 800, 0, true},
		{"no preference", "No preference", 0, 0, true},
		{"empty label", "", 0, 0, true},
		{"unknown label", "bogus", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePriceRange(tt.label)
			if got.Min != tt.wantMin {
				t.Errorf("Min = %v, want %v", got.Min, tt.wantMin)
			}
			if tt.wantMaxInf {
				if !math.IsInf(got.Max, 1) {
					t.Errorf("Max = %v, want +Inf", got.Max)
				}
			} else if got.Max != tt.wantMax {
				t.Errorf("Max = %v, want %v", got.Max, tt.wantMax)
			}
			if got.Min > got.Max {
				t.Errorf("interval inverted: min %v > max %v", got.Min, got.Max)
			}
		})
	}
}

func TestPriceIntervalContains(t *testing.T) {
	interval := ResolvePriceRange("$200 - $400")

	if !interval.Contains(200) || !interval.Contains(400) {
		t.Error("interval must be closed at both ends")
	}
	if interval.Contains(199.99) || interval.Contains(400.01) {
		t.Error("interval must exclude out-of-range prices")
	}

	open := ResolvePriceRange("$800+")
	if !open.Contains(5000) {
		t.Error("open-ended interval must contain any price above min")
	}
	if open.Contains(799) {
		t.Error("open-ended interval must still enforce its lower bound")
	}
}
