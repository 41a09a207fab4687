package tsrepr_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsrepr"
	"github.com/arloliu/tsrepr/aggregate"
	"github.com/arloliu/tsrepr/errs"
	"github.com/arloliu/tsrepr/feature"
)

func TestSmooth_Wrapper(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	out, err := tsrepr.Smooth(x, 2)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1.5, 3, 4.5}, out, 1e-12)
}

func TestLevelEncode_Wrapper(t *testing.T) {
	bits, err := tsrepr.LevelEncode([]float64{1, 3, 2, 5, 4})
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 0, 0, 1, 1}, bits)
}

func TestTrendEncode_Wrapper(t *testing.T) {
	bits, err := tsrepr.TrendEncode([]float64{1, 3, 2, 5, 4})
	require.NoError(t, err)
	require.Equal(t, []uint8{1, 0, 1, 0}, bits)
}

func TestRunLengthEncode_Wrapper(t *testing.T) {
	runs, err := tsrepr.RunLengthEncode([]float64{5, 5, 5, 3, 3, 1, 1, 1, 1, 2})
	require.NoError(t, err)
	require.Equal(t, []tsrepr.Run{
		{Value: 5, Length: 3},
		{Value: 3, Length: 2},
		{Value: 1, Length: 4},
		{Value: 2, Length: 1},
	}, runs)
}

func TestRunLengthEncode_RejectsNaN(t *testing.T) {
	_, err := tsrepr.RunLengthEncode([]float64{1, math.NaN(), 1})
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNonFiniteInput)
}

func TestLevelFeatures_Wrapper(t *testing.T) {
	repr, err := tsrepr.LevelFeatures([]float64{1, 2, 7, 8, 3, 9})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3, 2, 3, 2, 0, 0, 1}, repr)
}

func TestTrendFeatures_Wrapper(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	repr, err := tsrepr.TrendFeatures(x, aggregate.Max)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 0, 3, 0}, repr)
}

func TestCombinedFeatures_Length(t *testing.T) {
	x := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9, 3, 2, 3, 8, 4}

	for pieces := 1; pieces <= 3; pieces++ {
		repr, err := tsrepr.CombinedFeatures(x, aggregate.Sum, feature.WithPieces(pieces))
		require.NoError(t, err)
		require.Len(t, repr, 8+2*pieces)
	}
}

func TestBlockAggregate_Wrapper(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7}

	repr, err := tsrepr.BlockAggregate(x, 3, aggregate.Mean)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 5, 7}, repr)
}

func TestSeasonalProfile_Wrapper(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}

	repr, err := tsrepr.SeasonalProfile(x, 3, aggregate.Mean)
	require.NoError(t, err)
	require.Equal(t, []float64{2.5, 3.5, 4.5}, repr)
}

func TestTransforms_RejectNonFiniteInput(t *testing.T) {
	bad := []float64{1, 2, math.NaN(), 4, 5, 6, 7, 8, 9, 10, 11, 12}

	_, err := tsrepr.Smooth(bad, 2)
	require.ErrorIs(t, err, errs.ErrNonFiniteInput)

	_, err = tsrepr.LevelEncode(bad)
	require.ErrorIs(t, err, errs.ErrNonFiniteInput)

	_, err = tsrepr.TrendEncode(bad)
	require.ErrorIs(t, err, errs.ErrNonFiniteInput)

	_, err = tsrepr.LevelFeatures(bad)
	require.ErrorIs(t, err, errs.ErrNonFiniteInput)

	_, err = tsrepr.TrendFeatures(bad, aggregate.Max)
	require.ErrorIs(t, err, errs.ErrNonFiniteInput)

	_, err = tsrepr.CombinedFeatures(bad, aggregate.Max)
	require.ErrorIs(t, err, errs.ErrNonFiniteInput)

	_, err = tsrepr.BlockAggregate(bad, 3, aggregate.Mean)
	require.ErrorIs(t, err, errs.ErrNonFiniteInput)

	_, err = tsrepr.SeasonalProfile(bad, 3, aggregate.Mean)
	require.ErrorIs(t, err, errs.ErrNonFiniteInput)
}

func ExampleBlockAggregate() {
	x := []float64{1, 2, 3, 4, 5, 6}

	repr, _ := tsrepr.BlockAggregate(x, 2, aggregate.Mean)
	fmt.Println(repr)
	// Output: [1.5 3.5 5.5]
}

func ExampleSeasonalProfile() {
	x := []float64{1, 2, 3, 4, 5, 6}

	repr, _ := tsrepr.SeasonalProfile(x, 2, aggregate.Mean)
	fmt.Println(repr)
	// Output: [3 4]
}
