package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsrepr/errs"
)

func TestTrendEncode_RisingStepsYieldOnes(t *testing.T) {
	x := []float64{1, 2, 2, 1, 3}

	bits, err := TrendEncode(x)
	require.NoError(t, err)
	// rising, flat, falling, rising
	require.Equal(t, []uint8{1, 0, 0, 1}, bits)
}

func TestTrendEncode_Length(t *testing.T) {
	x := []float64{5, 1, 4, 2, 8, 0}

	bits, err := TrendEncode(x)
	require.NoError(t, err)
	require.Len(t, bits, len(x)-1)
}

func TestTrendEncode_MonotoneSequences(t *testing.T) {
	up, err := TrendEncode([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, []uint8{1, 1, 1}, up)

	down, err := TrendEncode([]float64{4, 3, 2, 1})
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 0, 0}, down)
}

func TestTrendEncode_TwoSamples(t *testing.T) {
	bits, err := TrendEncode([]float64{1, 2})
	require.NoError(t, err)
	require.Equal(t, []uint8{1}, bits)
}

func TestTrendEncode_TooFewSamples(t *testing.T) {
	for _, x := range [][]float64{nil, {}, {1}} {
		_, err := TrendEncode(x)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrShortInput)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	}
}

func TestTrendEncode_NonFiniteInput(t *testing.T) {
	_, err := TrendEncode([]float64{1, math.NaN()})
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNonFiniteInput)
}
