package database

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NUMERIC columns travel as text so amounts never pass through floats.

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid numeric %q: %w", s, err)
	}
	return d, nil
}

func parseNullDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := parseDecimal(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func nullDecimalArg(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
