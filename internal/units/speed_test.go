package units

import (
	"testing"

	"golang.org/x/text/language"
)

func TestFormatSpeed(t *testing.T) {
	tests := []struct {
		name     string
		speedMPS float64
		system   UnitSystem
		expected int
	}{
		{"100 m/s metric", 100, Metric, 360},
		{"100 m/s imperial us", 100, ImperialUS, 224},
		{"100 m/s imperial uk", 100, ImperialUK, 224},
		{"city speed", 13.89, Metric, 50},
		{"highway speed", 31.29, ImperialUS, 70},
		{"standing still", 0, Metric, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := FormatSpeed(test.speedMPS, test.system)
			if got != test.expected {
				t.Errorf("FormatSpeed(%v, %s) -> expected %d, got %d",
					test.speedMPS, test.system, test.expected, got)
			}
		})
	}
}

func TestSpeedUnitLabel(t *testing.T) {
	formatter := NewFormatter(language.English)

	tests := []struct {
		system   UnitSystem
		expected string
	}{
		{Metric, "km/h"},
		{ImperialUS, "mph"},
		{ImperialUK, "mph"},
	}

	for _, test := range tests {
		if got := formatter.SpeedUnitLabel(test.system); got != test.expected {
			t.Errorf("SpeedUnitLabel(%s) -> expected %q, got %q", test.system, test.expected, got)
		}
	}
}

func TestIsSpeeding(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		limit    float64
		expected bool
	}{
		{"above limit", 14, 13.9, true},
		{"at limit", 13.9, 13.9, false},
		{"below limit", 10, 13.9, false},
		{"no limit", 40, 0, false},
		{"negative limit", 40, -1, false},
		{"no tolerance", 13.900001, 13.9, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsSpeeding(test.current, test.limit); got != test.expected {
				t.Errorf("IsSpeeding(%v, %v) -> expected %v, got %v", test.current, test.limit, test.expected, got)
			}
		})
	}
}
