package listing

import "github.com/artshowcase/showcase/internal/model"

// TotalPages is the number of pages needed for total items. A pageSize of
// zero or less means unpaged: everything is one page. Empty input has zero pages.
func TotalPages(total, pageSize int) int {
	if total <= 0 {
		return 0
	}
	if pageSize <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPage bounds page to [1, totalPages] (1 when there are no pages).
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate returns the 1-based page of items. Out of range pages are empty.
func Paginate(items []model.Artwork, page, pageSize int) []model.Artwork {
	if pageSize <= 0 {
		if page == 1 {
			return items
		}
		return nil
	}
	if page < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := min(start+pageSize, len(items))
	return items[start:end]
}

// PageItem is one entry of the page-number bar: either a page or an ellipsis.
type PageItem struct {
	Number   int
	Current  bool
	Ellipsis bool
}

// PageWindow builds the page-number bar: first page, last page, the current
// page and its immediate neighbours. Each run of hidden pages collapses into
// one ellipsis.
func PageWindow(current, totalPages int) []PageItem {
	if totalPages <= 0 {
		return nil
	}
	current = ClampPage(current, totalPages)

	var items []PageItem
	for n := 1; n <= totalPages; n++ {
		shown := n == 1 || n == totalPages || (n >= current-1 && n <= current+1)
		if shown {
			items = append(items, PageItem{Number: n, Current: n == current})
			continue
		}
		if len(items) > 0 && !items[len(items)-1].Ellipsis {
			items = append(items, PageItem{Ellipsis: true})
		}
	}
	return items
}
