package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid value", func(t *testing.T) {
		m, err := New(950, 100)
		require.NoError(t, err)
		assert.Equal(t, 9.5, m.Float64())
		assert.Equal(t, "9.50", m.String())
	})

	t.Run("zero denominator returns error", func(t *testing.T) {
		_, err := New(100, 0)
		assert.Error(t, err)
	})

	t.Run("value is reduced", func(t *testing.T) {
		m, err := New(200, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(100), m.Numerator())
		assert.Equal(t, int64(1), m.Denominator())
	})
}

func TestFromFloat(t *testing.T) {
	t.Run("exact binary fraction", func(t *testing.T) {
		m, err := FromFloat(9.5)
		require.NoError(t, err)
		assert.Equal(t, int64(19), m.Numerator())
		assert.Equal(t, int64(2), m.Denominator())
		assert.Equal(t, 9.5, m.Float64())
	})

	t.Run("round trips through float64", func(t *testing.T) {
		for _, f := range []float64{0, 0.1, 1, 2.75, 9.99, 1234.56} {
			m, err := FromFloat(f)
			require.NoError(t, err)
			assert.Equal(t, f, m.Float64())
		}
	})

	t.Run("non-finite value returns error", func(t *testing.T) {
		_, err := FromFloat(math.Inf(1))
		assert.Error(t, err)

		_, err = FromFloat(math.NaN())
		assert.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		a, _ := New(950, 100)
		b, _ := New(50, 100)
		assert.Equal(t, 10.0, a.Add(b).Float64())
	})

	t.Run("multiply by quantity", func(t *testing.T) {
		price, _ := New(19, 2) // 9.50
		total := price.MultiplyInt(3)
		assert.Equal(t, 28.5, total.Float64())
	})

	t.Run("sum of line totals stays exact", func(t *testing.T) {
		price, _ := New(1, 10) // 0.10
		sum := Zero()
		for i := 0; i < 10; i++ {
			sum = sum.Add(price)
		}
		one, _ := New(1, 1)
		assert.True(t, sum.Equals(one))
	})
}

func TestMoney_Predicates(t *testing.T) {
	pos, _ := New(1, 2)
	neg, _ := New(-1, 2)

	assert.True(t, Zero().IsZero())
	assert.True(t, pos.IsPositive())
	assert.True(t, neg.IsNegative())
	assert.False(t, neg.IsPositive())
	assert.True(t, neg.LessThan(pos))
	assert.False(t, pos.LessThan(neg))
}

func TestMoney_Copy(t *testing.T) {
	a, _ := New(950, 100)
	b := a.Copy()

	require.True(t, a.Equals(b))
	c := b.Add(b)
	assert.Equal(t, 9.5, a.Float64())
	assert.Equal(t, 19.0, c.Float64())
}

func TestMoney_IsSafeForStorage(t *testing.T) {
	m, _ := New(950, 100)
	assert.True(t, m.IsSafeForStorage())

	huge := m
	for i := 0; i < 8; i++ {
		huge = huge.MultiplyInt(math.MaxInt64 / 2)
	}
	assert.False(t, huge.IsSafeForStorage())
}
