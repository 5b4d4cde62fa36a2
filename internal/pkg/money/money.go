// Package money provides precise decimal arithmetic for monetary values.
package money

import (
	"fmt"
	"math/big"
)

// Money represents a monetary value backed by big.Rat.
// Storing the value as a rational number avoids floating-point drift when
// prices are added and multiplied.
type Money struct {
	rat *big.Rat
}

// New creates a Money from numerator and denominator.
// Example: New(950, 100) represents 9.50.
func New(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// FromFloat creates a Money from a float64 wire value.
func FromFloat(f float64) (*Money, error) {
	rat := new(big.Rat).SetFloat64(f)
	if rat == nil {
		return nil, fmt.Errorf("value is not finite")
	}
	return &Money{rat: rat}, nil
}

// Zero returns a zero-valued Money.
func Zero() *Money {
	return &Money{rat: big.NewRat(0, 1)}
}

// Numerator returns the numerator of the reduced rational value.
func (m *Money) Numerator() int64 {
	return m.rat.Num().Int64()
}

// Denominator returns the denominator of the reduced rational value.
func (m *Money) Denominator() int64 {
	return m.rat.Denom().Int64()
}

// IsSafeForStorage reports whether both numerator and denominator fit in
// INT64 columns.
func (m *Money) IsSafeForStorage() bool {
	return m.rat.Num().IsInt64() && m.rat.Denom().IsInt64()
}

// Add returns the sum of two Money values.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// MultiplyInt returns the value multiplied by an integer quantity.
func (m *Money) MultiplyInt(n int64) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, new(big.Rat).SetInt64(n))}
}

// IsZero returns true if the value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the value is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// IsPositive returns true if the value is positive.
func (m *Money) IsPositive() bool {
	return m.rat.Sign() > 0
}

// Equals returns true if both values are numerically equal.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// LessThan returns true if the value is less than the other.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// Float64 returns an approximate float64 representation for serialization.
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String returns the value formatted with two decimal places.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates a deep copy.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
