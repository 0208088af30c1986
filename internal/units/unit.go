// Package units converts raw physical quantities into display strings.
//
// Lengths are carried in meters, speeds in meters per second and durations in milliseconds.
// Conversion only works within one unit family; asking for a length in a speed unit fails with
// ErrIncompatibleUnits instead of producing a number.
package units

import (
	"errors"
	"fmt"
)

// Unit is a physical unit supported by the converter.
type Unit int

const (
	Meter Unit = iota
	Kilometer
	Yard
	Foot
	Mile
	MetersPerSecond
	KilometersPerHour
	MilesPerHour
)

// Family groups units which can be converted into each other.
type Family int

const (
	FamilyUnknown Family = iota
	Length
	Speed
)

var (
	ErrIncompatibleUnits = errors.New("incompatible unit families")
	ErrUnknownUnit       = errors.New("unknown unit")
)

const (
	metersPerKilometer = 1000.0
	metersPerYard      = 0.9144
	metersPerFoot      = 0.3048
	metersPerMile      = 1609.344
	secondsPerHour     = 3600
)

type unitInfo struct {
	family   Family
	toBase   float64 // factor to meters (length) or meters per second (speed)
	name     string
	labelKey string
}

var unitTable = [...]unitInfo{ //nolint:gochecknoglobals // static conversion table
	Meter:             {Length, 1, "m", "unit.meter"},
	Kilometer:         {Length, metersPerKilometer, "km", "unit.kilometer"},
	Yard:              {Length, metersPerYard, "yd", "unit.yard"},
	Foot:              {Length, metersPerFoot, "ft", "unit.foot"},
	Mile:              {Length, metersPerMile, "mi", "unit.mile"},
	MetersPerSecond:   {Speed, 1, "m/s", "unit.mps"},
	KilometersPerHour: {Speed, metersPerKilometer / secondsPerHour, "km/h", "unit.kmh"},
	MilesPerHour:      {Speed, metersPerMile / secondsPerHour, "mph", "unit.mph"},
}

func (u Unit) valid() bool {
	return u >= Meter && int(u) < len(unitTable)
}

// Family returns the unit family, or FamilyUnknown for values outside the enum.
func (u Unit) Family() Family {
	if !u.valid() {
		return FamilyUnknown
	}

	return unitTable[u].family
}

func (u Unit) String() string {
	if !u.valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}

	return unitTable[u].name
}

// Measurement is an immutable value paired with its unit.
type Measurement struct {
	Value float64
	Unit  Unit
}

func NewMeasurement(value float64, unit Unit) Measurement {
	return Measurement{Value: value, Unit: unit}
}

// To converts the measurement into another unit of the same family.
func (m Measurement) To(unit Unit) (Measurement, error) {
	return Convert(m.Value, m.Unit, unit)
}

func (m Measurement) String() string {
	return fmt.Sprintf("%g %s", m.Value, m.Unit)
}

// Convert converts value from one unit into another through the family's base unit.
func Convert(value float64, from, to Unit) (Measurement, error) {
	if !from.valid() || !to.valid() {
		return Measurement{}, fmt.Errorf("convert: %w: %s -> %s", ErrUnknownUnit, from, to)
	}

	if from.Family() != to.Family() {
		return Measurement{}, fmt.Errorf("convert %s to %s: %w", from, to, ErrIncompatibleUnits)
	}

	if from == to {
		return NewMeasurement(value, to), nil
	}

	base := value * unitTable[from].toBase

	return NewMeasurement(base/unitTable[to].toBase, to), nil
}

// fromBase converts a base value (meters or meters per second) into unit.
// Callers in this package only pass units of the matching family.
func fromBase(value float64, unit Unit) float64 {
	return value / unitTable[unit].toBase
}
