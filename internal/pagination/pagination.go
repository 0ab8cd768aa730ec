// Package pagination slices an already-fetched ordered list into pages. It
// performs no I/O; callers feed it the item count and read back slice bounds
// and navigation metadata. All inputs are clamped, never rejected.
package pagination

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pager tracks the current page over an in-memory list. The zero value is not
// usable; construct with New.
type Pager struct {
	currentPage int
	pageSize    int
	itemCount   int
}

// New returns a pager positioned on page 1. Non-positive page sizes fall back
// to DefaultPageSize and oversized ones are capped at MaxPageSize.
func New(itemCount, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if itemCount < 0 {
		itemCount = 0
	}
	return &Pager{currentPage: 1, pageSize: pageSize, itemCount: itemCount}
}

// CurrentPage is 1-based.
func (p *Pager) CurrentPage() int { return p.currentPage }

// PageSize returns the active page size.
func (p *Pager) PageSize() int { return p.pageSize }

// TotalItems returns the backing item count.
func (p *Pager) TotalItems() int { return p.itemCount }

// TotalPages is always at least 1, even for an empty list.
func (p *Pager) TotalPages() int {
	pages := (p.itemCount + p.pageSize - 1) / p.pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// SliceBounds returns the half-open [start, end) range of the current page
// within the backing list, suitable for slicing.
func (p *Pager) SliceBounds() (start, end int) {
	start = (p.currentPage - 1) * p.pageSize
	if start > p.itemCount {
		start = p.itemCount
	}
	end = start + p.pageSize
	if end > p.itemCount {
		end = p.itemCount
	}
	return start, end
}

// DisplayBounds returns the 1-based inclusive index range shown to the user
// ("showing 21-40 of 73"). Both are 0 when the list is empty.
func (p *Pager) DisplayBounds() (start, end int) {
	if p.itemCount == 0 {
		return 0, 0
	}
	start, end = p.SliceBounds()
	return start + 1, end
}

func (p *Pager) HasNextPage() bool { return p.currentPage < p.TotalPages() }
func (p *Pager) HasPrevPage() bool { return p.currentPage > 1 }

// GoToPage clamps n into [1, TotalPages] and moves there.
func (p *Pager) GoToPage(n int) {
	if n < 1 {
		n = 1
	}
	if max := p.TotalPages(); n > max {
		n = max
	}
	p.currentPage = n
}

// NextPage advances one page; no-op on the last page.
func (p *Pager) NextPage() {
	if p.HasNextPage() {
		p.currentPage++
	}
}

// PrevPage moves back one page; no-op on the first page.
func (p *Pager) PrevPage() {
	if p.HasPrevPage() {
		p.currentPage--
	}
}

// ChangePageSize switches the page size and resets to page 1, losing the
// caller's place.
func (p *Pager) ChangePageSize(n int) {
	if n <= 0 {
		n = DefaultPageSize
	}
	if n > MaxPageSize {
		n = MaxPageSize
	}
	p.pageSize = n
	p.currentPage = 1
}

// SetItemCount replaces the backing count. When the list shrinks past the
// current page's start, the pager resets to page 1 rather than clamping to
// the new last page.
func (p *Pager) SetItemCount(n int) {
	if n < 0 {
		n = 0
	}
	p.itemCount = n
	if p.currentPage > p.TotalPages() {
		p.currentPage = 1
	}
}
