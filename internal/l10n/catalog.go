// Package l10n provides the string resources used by the formatters and the maneuver resolver.
// A Catalog is an opaque key to string lookup; the built-in tables cover English and a subset of
// German, which falls back to English for missing keys.
package l10n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Catalog resolves string resource keys. Implementations return the key itself for unknown keys
// so that a missing translation is visible instead of silently empty.
type Catalog interface {
	Lookup(key string) string
}

// Table is a flat key -> string catalog.
type Table map[string]string

// Lookup implements Catalog.
func (t Table) Lookup(key string) string {
	if value, ok := t[key]; ok {
		return value
	}

	return key
}

type fallbackCatalog struct {
	primary  Table
	fallback Catalog
}

func (c fallbackCatalog) Lookup(key string) string {
	if value, ok := c.primary[key]; ok {
		return value
	}

	return c.fallback.Lookup(key)
}

// WithFallback returns a catalog which consults primary first and fallback for anything primary
// does not define.
func WithFallback(primary Table, fallback Catalog) Catalog { //nolint:ireturn // catalogs are opaque
	return fallbackCatalog{primary: primary, fallback: fallback}
}

// ForLanguage picks the built-in catalog that best matches the given language tag.
func ForLanguage(tag language.Tag) Catalog { //nolint:ireturn // catalogs are opaque
	base, _ := tag.Base()
	if german, _ := language.German.Base(); base == german {
		return WithFallback(German, English)
	}

	return English
}

// Plural picks between the ".one" and ".other" variant of key.
func Plural(catalog Catalog, count int64, key string) string {
	if count == 1 {
		return catalog.Lookup(key + ".one")
	}

	return catalog.Lookup(key + ".other")
}

// NewPrinter returns the locale-aware numeral printer for tag.
// The printer is configured once and only read afterwards.
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}
