// Package pager holds the page window arithmetic shared by the CLI and the
// interactive browser. Pages are 1-based; the page size is fixed at load.
package pager

import "github.com/ferhatb/itemls/internal/model"

// DefaultPageSize is used when the configuration carries no page size.
const DefaultPageSize = 5

// Pager slices an in-memory item list into fixed-size pages.
//
// By default Next refuses to walk past the last page. The upstream widget this
// replaces never had that guard: "next" stayed clickable on the last page and
// advanced onto empty pages. WithClamp(false) reproduces that behavior for
// anyone who depends on it.
type Pager struct {
	items []model.Item
	size  int
	page  int // 1-based, always >= 1
	clamp bool
}

// Option tunes a Pager at construction time.
type Option func(*Pager)

// WithClamp controls whether Next stops at the last page. Clamping is on by
// default.
func WithClamp(clamp bool) Option {
	return func(p *Pager) { p.clamp = clamp }
}

// WithPage sets the starting page. Values below 1 snap to 1; with clamping on,
// values past the end snap to the last page.
func WithPage(page int) Option {
	return func(p *Pager) { p.page = page }
}

// New builds a Pager over items. A size below 1 falls back to DefaultPageSize.
func New(items []model.Item, size int, opts ...Option) *Pager {
	if size < 1 {
		size = DefaultPageSize
	}
	p := &Pager{items: items, size: size, page: 1, clamp: true}
	for _, o := range opts {
		o(p)
	}
	if p.page < 1 {
		p.page = 1
	}
	if p.clamp {
		if last := p.TotalPages(); last > 0 && p.page > last {
			p.page = last
		}
	}
	return p
}

// Len is the total number of items, across all pages.
func (p *Pager) Len() int { return len(p.items) }

// Size is the fixed page size.
func (p *Pager) Size() int { return p.size }

// Page is the current 1-based page number.
func (p *Pager) Page() int { return p.page }

// TotalPages is ceil(Len/Size); 0 for an empty list.
func (p *Pager) TotalPages() int {
	return (len(p.items) + p.size - 1) / p.size
}

// Window returns the items visible on the current page. Past the last page
// (possible with clamping off) the window is empty.
func (p *Pager) Window() []model.Item {
	start := (p.page - 1) * p.size
	if start >= len(p.items) {
		return nil
	}
	end := start + p.size
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// Bounds reports the 1-based index range of the current window, (0, 0) when
// the window is empty.
func (p *Pager) Bounds() (first, last int) {
	w := p.Window()
	if len(w) == 0 {
		return 0, 0
	}
	first = (p.page-1)*p.size + 1
	return first, first + len(w) - 1
}

// HasPrev is false exactly on page 1.
func (p *Pager) HasPrev() bool { return p.page > 1 }

// HasNext reports whether Next would advance. With clamping off it is always
// true, matching the unbounded "next" control this tool replaces.
func (p *Pager) HasNext() bool {
	if !p.clamp {
		return true
	}
	return p.page < p.TotalPages()
}

// Prev moves one page back, stopping at page 1. It reports whether it moved.
func (p *Pager) Prev() bool {
	if !p.HasPrev() {
		return false
	}
	p.page--
	return true
}

// Next moves one page forward. With clamping on it stops at the last page.
func (p *Pager) Next() bool {
	if !p.HasNext() {
		return false
	}
	p.page++
	return true
}

// First jumps to page 1.
func (p *Pager) First() { p.page = 1 }

// Last jumps to the last page; a no-op on an empty list.
func (p *Pager) Last() {
	if last := p.TotalPages(); last > 0 {
		p.page = last
	}
}
