package chunk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlocks_ExactDivision(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}

	blocks := Blocks(x, 2)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, blocks)
}

func TestBlocks_ShorterFinalBlockKept(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7}

	blocks := Blocks(x, 3)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7}}, blocks)
}

func TestBlocks_SizeOne(t *testing.T) {
	x := []float64{1, 2, 3}

	blocks := Blocks(x, 1)
	require.Len(t, blocks, 3)
	for i, b := range blocks {
		require.Equal(t, []float64{x[i]}, b)
	}
}

func TestBlocks_SizeExceedsLength(t *testing.T) {
	x := []float64{1, 2, 3}

	blocks := Blocks(x, 10)
	require.Equal(t, [][]float64{{1, 2, 3}}, blocks)
}

func TestPieces_RemainderDiscarded(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7}

	pieces := Pieces(x, 2)
	// floor(7/2) = 3 per piece; the 7th sample never forms an extra piece.
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, pieces)
}

func TestPieces_ExactDivision(t *testing.T) {
	x := []float64{1, 2, 3, 4}

	pieces := Pieces(x, 2)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, pieces)
}

func TestPieces_DegenerateCount(t *testing.T) {
	require.Nil(t, Pieces([]float64{1, 2}, 3))
}

func TestPhases_CompleteCycles(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}

	phases := Phases(x, 2)
	require.Equal(t, [][]float64{{1, 3, 5}, {2, 4, 6}}, phases)
}

func TestPhases_PartialCycleExcluded(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7}

	phases := Phases(x, 2)
	// The 7th sample starts a fourth, incomplete cycle; it is excluded from
	// phase 0 even though its phase index exists.
	require.Equal(t, [][]float64{{1, 3, 5}, {2, 4, 6}}, phases)
}

func TestPhases_SingleCycle(t *testing.T) {
	x := []float64{4, 5, 6}

	phases := Phases(x, 3)
	require.Equal(t, [][]float64{{4}, {5}, {6}}, phases)
}

func TestPhases_FrequencyExceedsLength(t *testing.T) {
	require.Nil(t, Phases([]float64{1, 2}, 3))
}

func TestPhases_CopiesDoNotAliasInput(t *testing.T) {
	x := []float64{1, 2, 3, 4}

	phases := Phases(x, 2)
	phases[0][0] = 99
	require.Equal(t, 1.0, x[0])
}
