package units

import (
	"errors"
	"fmt"
	"strings"
)

// UnitSystem selects the units and rounding thresholds used for display.
type UnitSystem int

const (
	Metric UnitSystem = iota
	ImperialUS
	ImperialUK
)

var ErrUnknownUnitSystem = errors.New("unknown unit system")

// systemTraits holds everything that differs between unit systems. All thresholds except
// wholeFrom are expressed in the system's small unit.
type systemTraits struct {
	name  string
	small Unit
	large Unit
	speed Unit
	// coarseBelow is the switch from small to large units for the compact format.
	coarseBelow float64
	// exactBelow, tensBelow and fiftiesBelow are the progressive rounding steps.
	exactBelow   float64
	tensBelow    float64
	fiftiesBelow float64
	// bridgeBelow extends the 50-step rounding into the large unit (975 m -> 1.0 km).
	bridgeBelow float64
	// wholeFrom is the large-unit value from which decimals are dropped.
	wholeFrom float64
}

var systemTable = [...]systemTraits{ //nolint:gochecknoglobals // static threshold table
	Metric: {
		name:         "metric",
		small:        Meter,
		large:        Kilometer,
		speed:        KilometersPerHour,
		coarseBelow:  999,
		exactBelow:   10,
		tensBelow:    200,
		fiftiesBelow: 975,
		bridgeBelow:  1000,
		wholeFrom:    10,
	},
	ImperialUS: {
		name:         "imperial_us",
		small:        Yard,
		large:        Mile,
		speed:        MilesPerHour,
		coarseBelow:  1759,
		exactBelow:   10,
		tensBelow:    200,
		fiftiesBelow: 975,
		bridgeBelow:  0,
		wholeFrom:    10,
	},
	ImperialUK: {
		name:         "imperial_uk",
		small:        Foot,
		large:        Mile,
		speed:        MilesPerHour,
		coarseBelow:  5279,
		exactBelow:   10,
		tensBelow:    200,
		fiftiesBelow: 975,
		bridgeBelow:  0,
		wholeFrom:    10,
	},
}

// traits returns the table entry of the system; unknown values are treated as metric.
func (s UnitSystem) traits() systemTraits {
	if s < Metric || int(s) >= len(systemTable) {
		return systemTable[Metric]
	}

	return systemTable[s]
}

func (s UnitSystem) String() string {
	return s.traits().name
}

// ParseUnitSystem accepts "metric", "imperial_us" and "imperial_uk", case-insensitively.
func ParseUnitSystem(name string) (UnitSystem, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range systemTable {
		if systemTable[i].name == normalized {
			return UnitSystem(i), nil
		}
	}

	return Metric, fmt.Errorf("parseUnitSystem: %w: %q", ErrUnknownUnitSystem, name)
}
