// internal/pkg/currency/currency.go
package currency

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts as localized currency strings.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewFormatter creates a formatter for the given BCP-47 locale and ISO 4217
// currency code. Unknown values fall back to es-AR and USD, matching the
// storefront's display locale.
func NewFormatter(locale, code string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse("es-AR")
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}

	return &Formatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}
}

// Format renders the amount with its currency symbol, e.g. "US$ 25,00".
func (f *Formatter) Format(amount float64) string {
	return f.printer.Sprintf("%v", currency.Symbol(f.unit.Amount(amount)))
}
