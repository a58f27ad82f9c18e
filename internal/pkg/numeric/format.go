package numeric

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is rendered when a value cannot be parsed.
const Placeholder = "-"

// Formatter renders integers with the grouping convention of a locale.
type Formatter struct {
	printer *message.Printer
}

func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// NewFormatterFromString parses a BCP 47 tag, falling back to Indonesian.
func NewFormatterFromString(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Indonesian
	}
	return NewFormatter(tag)
}

var defaultFormatter = NewFormatter(language.Indonesian)

// FormatInteger rounds v and groups thousands, or returns Placeholder when
// v is not a number or does not fit an int.
func (f *Formatter) FormatInteger(v any) string {
	n, ok := ToInteger(v)
	if !ok {
		return Placeholder
	}
	return f.printer.Sprintf("%d", n)
}

// FormatInteger formats with the default (Indonesian) grouping.
func FormatInteger(v any) string {
	return defaultFormatter.FormatInteger(v)
}
