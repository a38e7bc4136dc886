package core

import (
	"math"
	"regexp"
	"testing"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "0:00"},
		{"negative", -5, "0:00"},
		{"positive infinity", math.Inf(1), "0:00"},
		{"negative infinity", math.Inf(-1), "0:00"},
		{"nan", math.NaN(), "0:00"},
		{"under a second", 0.4, "0:00"},
		{"one second", 1, "0:01"},
		{"59 seconds", 59, "0:59"},
		{"one minute", 60, "1:00"},
		{"track length", 245, "4:05"},
		{"floors fraction", 245.9, "4:05"},
		{"just under a minute", 59.999, "0:59"},
		{"over an hour", 3725, "62:05"},
		{"remaining sample", 226, "3:46"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTime(tt.seconds); got != tt.want {
				t.Errorf("FormatTime(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormatTimeShape(t *testing.T) {
	pattern := regexp.MustCompile(`^\d+:\d{2}$`)

	inputs := []float64{0.5, 1, 9.99, 10, 61, 599, 600, 3599.5, 86400, 1e9, 1e18, math.MaxFloat64}
	for _, in := range inputs {
		got := FormatTime(in)
		if !pattern.MatchString(got) {
			t.Errorf("FormatTime(%v) = %q, does not match M:SS", in, got)
		}
	}
}
