package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		items    int
		size     int
		expected int
	}{
		{0, 20, 1},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{73, 20, 4},
		{100, 10, 10},
	}

	for _, tt := range tests {
		p := New(tt.items, tt.size)
		assert.Equal(t, tt.expected, p.TotalPages(), "items=%d size=%d", tt.items, tt.size)
	}
}

func TestPagesPartitionWithoutGapsOrOverlaps(t *testing.T) {
	for _, n := range []int{0, 1, 19, 20, 21, 73, 100} {
		for _, s := range []int{1, 7, 20, 50} {
			p := New(n, s)
			covered := 0
			prevEnd := 0
			for page := 1; page <= p.TotalPages(); page++ {
				p.GoToPage(page)
				start, end := p.SliceBounds()
				assert.Equal(t, prevEnd, start, "n=%d s=%d page=%d", n, s, page)
				assert.GreaterOrEqual(t, end, start)
				covered += end - start
				prevEnd = end
			}
			assert.Equal(t, n, covered, "n=%d s=%d", n, s)
		}
	}
}

func TestGoToPageClamps(t *testing.T) {
	p := New(73, 20) // 4 pages

	p.GoToPage(0)
	assert.Equal(t, 1, p.CurrentPage())

	p.GoToPage(9) // total_pages + 5
	assert.Equal(t, 4, p.CurrentPage())

	// Idempotent clamping.
	p.GoToPage(2)
	assert.Equal(t, 2, p.CurrentPage())
	p.GoToPage(2)
	assert.Equal(t, 2, p.CurrentPage())
}

func TestNextPrevBoundaries(t *testing.T) {
	p := New(40, 20)

	p.PrevPage() // no-op on first page
	assert.Equal(t, 1, p.CurrentPage())
	assert.False(t, p.HasPrevPage())
	assert.True(t, p.HasNextPage())

	p.NextPage()
	assert.Equal(t, 2, p.CurrentPage())
	assert.False(t, p.HasNextPage())

	p.NextPage() // no-op on last page
	assert.Equal(t, 2, p.CurrentPage())
}

func TestChangePageSizeResetsToFirstPage(t *testing.T) {
	p := New(100, 10)
	p.GoToPage(7)

	p.ChangePageSize(50)
	assert.Equal(t, 1, p.CurrentPage())
	assert.Equal(t, 50, p.PageSize())

	p.GoToPage(2)
	p.ChangePageSize(50) // same size still resets
	assert.Equal(t, 1, p.CurrentPage())
}

func TestShrinkResetsToFirstPage(t *testing.T) {
	p := New(100, 20)
	p.GoToPage(5)

	// Shrinking below the current page's start resets to page 1, not to the
	// new last page.
	p.SetItemCount(45)
	assert.Equal(t, 1, p.CurrentPage())

	// Shrinking while still in range keeps the page.
	p.GoToPage(2)
	p.SetItemCount(41)
	assert.Equal(t, 2, p.CurrentPage())
}

func TestDisplayBounds(t *testing.T) {
	t.Run("Empty list", func(t *testing.T) {
		p := New(0, 20)
		start, end := p.DisplayBounds()
		assert.Equal(t, 0, start)
		assert.Equal(t, 0, end)
	})

	t.Run("Middle page", func(t *testing.T) {
		p := New(73, 20)
		p.GoToPage(2)
		start, end := p.DisplayBounds()
		assert.Equal(t, 21, start)
		assert.Equal(t, 40, end)
	})

	t.Run("Last partial page", func(t *testing.T) {
		p := New(73, 20)
		p.GoToPage(4)
		start, end := p.DisplayBounds()
		assert.Equal(t, 61, start)
		assert.Equal(t, 73, end)
	})
}

func TestDefaultsAndCaps(t *testing.T) {
	p := New(10, 0)
	assert.Equal(t, DefaultPageSize, p.PageSize())

	p = New(10, 1000)
	assert.Equal(t, MaxPageSize, p.PageSize())

	p.ChangePageSize(-5)
	assert.Equal(t, DefaultPageSize, p.PageSize())
}
