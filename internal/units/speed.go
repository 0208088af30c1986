package units

// FormatSpeed converts a speed in meters per second into km/h (metric) or mph (imperial) and
// rounds it half-up to a whole number.
func FormatSpeed(metersPerSecond float64, system UnitSystem) int {
	return int(Round(fromBase(metersPerSecond, system.traits().speed), 0))
}

// SpeedUnit returns the unit speeds are shown in for system.
func SpeedUnit(system UnitSystem) Unit {
	return system.traits().speed
}

// SpeedUnitLabel returns the localized label matching FormatSpeed: "km/h" or "mph".
func (f *Formatter) SpeedUnitLabel(system UnitSystem) string {
	return f.UnitLabel(SpeedUnit(system))
}

// IsSpeeding reports whether current exceeds a known speed limit. There is no tolerance: any
// value strictly above the limit counts, and a limit of zero or less means "no limit".
func IsSpeeding(current, limit float64) bool {
	return current > limit && limit > 0
}
