// internal/domain/discount/discount.go
package discount

import "errors"

// ErrInvalidCode is returned when a code has no entry in the discount table.
var ErrInvalidCode = errors.New("invalid discount code")

// Discount is a code and the percentage it takes off the subtotal.
type Discount struct {
	Code       string  `json:"code"`
	Percentage float64 `json:"percentage"`
}

// Resolver validates discount codes against a fixed table.
// Lookups are exact and case-sensitive.
type Resolver struct {
	codes map[string]float64
}

// DefaultCodes is the built-in discount table.
func DefaultCodes() map[string]float64 {
	return map[string]float64{
		"RAZER":   10,
		"TUKI":    100,
		"GONCY":   30,
		"WALLBIT": 50,
	}
}

// NewResolver creates a resolver over the given code table.
// A nil table falls back to DefaultCodes.
func NewResolver(codes map[string]float64) *Resolver {
	if codes == nil {
		codes = DefaultCodes()
	}
	return &Resolver{codes: codes}
}

// Resolve looks up a code and returns its discount, or ErrInvalidCode.
func (r *Resolver) Resolve(code string) (*Discount, error) {
	percentage, ok := r.codes[code]
	if !ok {
		return nil, ErrInvalidCode
	}
	return &Discount{Code: code, Percentage: percentage}, nil
}
