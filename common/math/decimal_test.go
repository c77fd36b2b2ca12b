package math

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestToBaseUnits(t *testing.T) {
	require := require.New(t)

	cases := []struct {
		amount   string
		expected uint64
	}{
		{"0", 0},
		{"1", 100000000},
		{"0.00000001", 1},
		{"10.5", 1050000000},
		{"1000", 100000000000},
	}
	for _, c := range cases {
		d, err := decimal.NewFromString(c.amount)
		require.NoError(err)
		units, err := ToBaseUnits(d)
		require.NoError(err)
		require.Equal(c.expected, units, c.amount)
	}
}

func TestToBaseUnits_Rejects(t *testing.T) {
	for _, bad := range []string{"-1", "0.000000001", "300000000000"} {
		d, err := decimal.NewFromString(bad)
		require.NoError(t, err)
		_, err = ToBaseUnits(d)
		require.Error(t, err, bad)
	}
}

func TestBaseUnits_Uint64Boundary(t *testing.T) {
	require := require.New(t)

	// 2^64-1 base units must convert exactly in both directions; one more
	// base unit no longer fits
	limit := decimal.RequireFromString("184467440737.09551615")
	units, err := ToBaseUnits(limit)
	require.NoError(err)
	require.Equal(uint64(math.MaxUint64), units)
	require.True(FromBaseUnits(units).Equal(limit))

	_, err = ToBaseUnits(limit.Add(decimal.New(1, -Decimals)))
	require.Error(err)
}

func TestFromBaseUnits(t *testing.T) {
	require.True(t, FromBaseUnits(1050000000).Equal(decimal.RequireFromString("10.5")))
	require.True(t, FromBaseUnits(0).Equal(decimal.Zero))
}
