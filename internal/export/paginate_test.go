package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate_TwoPageRaster(t *testing.T) {
	// 2000px wide raster printed 170mm wide: 6000px tall = 510mm, which
	// needs two 257mm pages.
	plan, err := Paginate(2000, 6000, 170, 257)
	require.NoError(t, err)

	assert.Equal(t, 2, plan.TotalPages)
	assert.InDelta(t, 510.0, plan.ImageHeightMM, 0.001)
	require.Len(t, plan.Slices, 2)

	first := plan.Slices[0]
	assert.Equal(t, 0, first.SrcY)
	assert.Equal(t, 3024, first.SrcHeight) // round(257 * 2000/170)
	assert.InDelta(t, 257.0, first.HeightMM, 0.001)
	assert.InDelta(t, 170.0, first.WidthMM, 0.001)

	second := plan.Slices[1]
	assert.Equal(t, 3024, second.SrcY)
	assert.Equal(t, 6000, second.SrcY+second.SrcHeight)
	assert.InDelta(t, 253.0, second.HeightMM, 0.001)
}

func TestPaginate_SinglePage(t *testing.T) {
	plan, err := Paginate(1000, 500, 170, 257)
	require.NoError(t, err)

	assert.Equal(t, 1, plan.TotalPages)
	require.Len(t, plan.Slices, 1)
	assert.Equal(t, 0, plan.Slices[0].SrcY)
	assert.Equal(t, 500, plan.Slices[0].SrcHeight)
	assert.Less(t, plan.Slices[0].HeightMM, 257.0)
}

func TestPaginate_CoverageExact(t *testing.T) {
	// Slices must tile [0, H) with no gaps and no overlaps, for heights
	// that do and do not divide evenly.
	cases := []struct {
		widthPx  int
		heightPx int
	}{
		{2000, 6000},
		{2000, 3024},
		{1234, 9999},
		{800, 1},
		{793, 100000},
	}
	for _, tc := range cases {
		plan, err := Paginate(tc.widthPx, tc.heightPx, 170, 257)
		require.NoError(t, err)

		cursor := 0
		for _, s := range plan.Slices {
			assert.Equal(t, cursor, s.SrcY, "w=%d h=%d page=%d", tc.widthPx, tc.heightPx, s.Index)
			assert.Greater(t, s.SrcHeight, 0)
			cursor += s.SrcHeight
		}
		assert.Equal(t, tc.heightPx, cursor, "w=%d h=%d", tc.widthPx, tc.heightPx)
		assert.Len(t, plan.Slices, plan.TotalPages)
	}
}

func TestPaginate_ZeroHeightYieldsOneEmptyPage(t *testing.T) {
	plan, err := Paginate(2000, 0, 170, 257)
	require.NoError(t, err)

	assert.Equal(t, 1, plan.TotalPages)
	require.Len(t, plan.Slices, 1)
	assert.Equal(t, 0, plan.Slices[0].SrcHeight)
	assert.Equal(t, 0.0, plan.Slices[0].HeightMM)
}

func TestPaginate_InvalidInputs(t *testing.T) {
	_, err := Paginate(0, 6000, 170, 257)
	assert.Error(t, err)

	_, err = Paginate(-10, 6000, 170, 257)
	assert.Error(t, err)

	_, err = Paginate(2000, -1, 170, 257)
	assert.Error(t, err)

	_, err = Paginate(2000, 6000, 0, 257)
	assert.Error(t, err)

	_, err = Paginate(2000, 6000, 170, 0)
	assert.Error(t, err)
}
