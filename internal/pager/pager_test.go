package pager_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferhatb/itemls/internal/model"
	"github.com/ferhatb/itemls/internal/pager"
)

func makeItems(n int) []model.Item {
	items := make([]model.Item, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, model.Item{ID: i, Title: fmt.Sprintf("item %d", i)})
	}
	return items
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		n, size, want int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{12, 5, 3},
		{10, 5, 2},
		{12, 12, 1},
		{13, 12, 2},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("n=%d size=%d", tc.n, tc.size), func(t *testing.T) {
			p := pager.New(makeItems(tc.n), tc.size)
			assert.Equal(t, tc.want, p.TotalPages())
		})
	}
}

func TestWindow_TwelveItemsPageSizeFive(t *testing.T) {
	// 12 items at size 5: pages of 5, 5 and 2.
	p := pager.New(makeItems(12), 5)

	require.Equal(t, 3, p.TotalPages())
	require.Len(t, p.Window(), 5)
	assert.Equal(t, 1, p.Window()[0].ID)
	assert.Equal(t, 5, p.Window()[4].ID)
	assert.False(t, p.HasPrev())

	require.True(t, p.Next())
	require.Len(t, p.Window(), 5)
	assert.Equal(t, 6, p.Window()[0].ID)
	assert.Equal(t, 10, p.Window()[4].ID)
	assert.True(t, p.HasPrev())

	require.True(t, p.Next())
	require.Len(t, p.Window(), 2)
	assert.Equal(t, 11, p.Window()[0].ID)
	assert.Equal(t, 12, p.Window()[1].ID)

	// Clamped: the last page is the end of the road.
	assert.False(t, p.HasNext())
	assert.False(t, p.Next())
	assert.Equal(t, 3, p.Page())
}

func TestWindow_UnclampedWalksPastTheEnd(t *testing.T) {
	// The widget this replaces never disabled "next"; page 4 of a
	// 12-item/size-5 list rendered empty.
	p := pager.New(makeItems(12), 5, pager.WithClamp(false), pager.WithPage(3))

	assert.True(t, p.HasNext())
	require.True(t, p.Next())
	assert.Equal(t, 4, p.Page())
	assert.Empty(t, p.Window())
	assert.True(t, p.HasNext())
}

func TestEmptyDataset(t *testing.T) {
	t.Run("clamped", func(t *testing.T) {
		p := pager.New(nil, 5)
		assert.Equal(t, 0, p.TotalPages())
		assert.Equal(t, 1, p.Page())
		assert.Empty(t, p.Window())
		assert.False(t, p.HasPrev())
		assert.False(t, p.HasNext())
	})
	t.Run("unclamped still advances", func(t *testing.T) {
		p := pager.New(nil, 5, pager.WithClamp(false))
		assert.True(t, p.HasNext())
		require.True(t, p.Next())
		assert.Equal(t, 2, p.Page())
		assert.Empty(t, p.Window())
	})
}

func TestPrevStopsAtPageOne(t *testing.T) {
	p := pager.New(makeItems(7), 3, pager.WithPage(2))
	require.True(t, p.Prev())
	assert.Equal(t, 1, p.Page())
	assert.False(t, p.HasPrev())
	assert.False(t, p.Prev())
	assert.Equal(t, 1, p.Page())
}

func TestBounds(t *testing.T) {
	p := pager.New(makeItems(12), 5, pager.WithPage(3))
	first, last := p.Bounds()
	assert.Equal(t, 11, first)
	assert.Equal(t, 12, last)

	empty := pager.New(nil, 5)
	first, last = empty.Bounds()
	assert.Zero(t, first)
	assert.Zero(t, last)
}

func TestNewNormalizesArguments(t *testing.T) {
	p := pager.New(makeItems(3), 0, pager.WithPage(-2))
	assert.Equal(t, pager.DefaultPageSize, p.Size())
	assert.Equal(t, 1, p.Page())

	// Out-of-range start page snaps to the last page when clamping.
	p = pager.New(makeItems(12), 5, pager.WithPage(99))
	assert.Equal(t, 3, p.Page())
}

func TestFirstLast(t *testing.T) {
	p := pager.New(makeItems(12), 5, pager.WithPage(2))
	p.Last()
	assert.Equal(t, 3, p.Page())
	p.First()
	assert.Equal(t, 1, p.Page())

	empty := pager.New(nil, 5)
	empty.Last()
	assert.Equal(t, 1, empty.Page())
}
