// Package pagination slices already-fetched lists into pages.
package pagination

// MaxWindow is the most page links shown at once.
const MaxWindow = 5

// Page is one page of items plus what the pager needs to render.
type Page[T any] struct {
	Items      []T
	Current    int
	TotalPages int
	TotalItems int
	Size       int
}

// TotalPages is ceil(count / size). An empty list has zero pages.
func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// Clamp keeps page within [1, max(1, totalPages)].
func Clamp(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate returns the requested page of items, clamping out-of-range
// page numbers.
func Paginate[T any](items []T, page, size int) Page[T] {
	total := TotalPages(len(items), size)
	page = Clamp(page, total)

	p := Page[T]{
		Current:    page,
		TotalPages: total,
		TotalItems: len(items),
		Size:       size,
	}
	if total == 0 {
		return p
	}

	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	p.Items = items[start:end]
	return p
}

func (p Page[T]) HasPrev() bool { return p.Current > 1 }
func (p Page[T]) HasNext() bool { return p.Current < p.TotalPages }

// Numbers are the page links to show: every page when there are at most
// MaxWindow, otherwise up to two either side of the current page.
func (p Page[T]) Numbers() []int {
	return Window(p.Current, p.TotalPages)
}

// Window computes the page links for current out of total.
func Window(current, total int) []int {
	start, end := 1, total
	if total > MaxWindow {
		start = max(1, current-2)
		end = min(total, current+2)
	}
	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
