package units

import (
	"fmt"

	"github.com/micutio/navkit/internal/l10n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// significantDigits is the precision used whenever a distance is shown in the large unit.
const significantDigits = 2

// Formatter renders quantities as localized display strings. It is configured once and only
// read afterwards, so one instance can serve every update callback.
type Formatter struct {
	tag     language.Tag
	catalog l10n.Catalog
	printer *message.Printer
}

// NewFormatter returns a formatter using the built-in catalog for tag.
func NewFormatter(tag language.Tag) *Formatter {
	return NewFormatterWithCatalog(tag, l10n.ForLanguage(tag))
}

// NewFormatterWithCatalog returns a formatter using a custom string catalog.
func NewFormatterWithCatalog(tag language.Tag, catalog l10n.Catalog) *Formatter {
	return &Formatter{
		tag:     tag,
		catalog: catalog,
		printer: l10n.NewPrinter(tag),
	}
}

// Catalog returns the string catalog used by the formatter.
func (f *Formatter) Catalog() l10n.Catalog { //nolint:ireturn // catalogs are opaque
	return f.catalog
}

// Format is the compact distance format. Values that round to less than the system's coarse
// threshold are shown in the small unit, everything else in the large unit with two significant
// digits until the value reaches ten, and as a whole number from there on.
func (f *Formatter) Format(meters int64, system UnitSystem) string {
	traits := system.traits()
	small := Round(fromBase(float64(meters), traits.small), 0)

	if small < traits.coarseBelow {
		return f.withUnit(f.integer(small), traits.small)
	}

	return f.largeDistance(fromBase(float64(meters), traits.large), traits)
}

// FormatDistance is the progressive format used for turn-by-turn display. The rounding
// granularity grows with the distance: exact, then tens, then fifties, then the large unit.
// Negative distances are not validated.
func (f *Formatter) FormatDistance(meters int64, system UnitSystem) string {
	traits := system.traits()
	small := fromBase(float64(meters), traits.small)

	switch {
	case small < traits.exactBelow:
		return f.withUnit(f.integer(Round(small, 0)), traits.small)
	case small < traits.tensBelow:
		return f.withUnit(f.integer(roundToNearestTen(small)), traits.small)
	case small < traits.fiftiesBelow:
		return f.withUnit(f.integer(roundToNearestFifty(small)), traits.small)
	case small < traits.bridgeBelow:
		rounded := roundToNearestFifty(small) * unitTable[traits.small].toBase

		return f.largeDistance(fromBase(rounded, traits.large), traits)
	default:
		return f.largeDistance(fromBase(float64(meters), traits.large), traits)
	}
}

func (f *Formatter) largeDistance(value float64, traits systemTraits) string {
	rounded := RoundSignificant(value, significantDigits)
	if rounded < traits.wholeFrom {
		return f.withUnit(f.decimal(rounded, significantDecimals(rounded, significantDigits)), traits.large)
	}

	return f.withUnit(f.integer(Round(value, 0)), traits.large)
}

// UnitLabel returns the localized label of unit.
func (f *Formatter) UnitLabel(unit Unit) string {
	if !unit.valid() {
		return f.catalog.Lookup("unit.unavailable")
	}

	return f.catalog.Lookup(unitTable[unit].labelKey)
}

func (f *Formatter) withUnit(value string, unit Unit) string {
	return value + " " + f.UnitLabel(unit)
}

func (f *Formatter) integer(value float64) string {
	return f.printer.Sprintf("%d", int64(value))
}

func (f *Formatter) decimal(value float64, decimals int) string {
	return f.printer.Sprintf(fmt.Sprintf("%%.%df", decimals), value)
}
