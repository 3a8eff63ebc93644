// Package money does amount arithmetic on decimals and hands float64 back to
// the storage/JSON layer, so running totals do not accumulate float error.
package money

import "github.com/shopspring/decimal"

func Add(a, b float64) float64 {
	return decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).InexactFloat64()
}

// SubFloor returns a-b, never below zero.
func SubFloor(a, b float64) float64 {
	d := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b))
	if d.IsNegative() {
		return 0
	}
	return d.InexactFloat64()
}

// Sum accumulates values as decimals.
type Sum struct{ d decimal.Decimal }

func (s *Sum) Add(v float64) { s.d = s.d.Add(decimal.NewFromFloat(v)) }

func (s *Sum) Float64() float64 { return s.d.InexactFloat64() }
