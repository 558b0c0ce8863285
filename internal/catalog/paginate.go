package catalog

import (
	"bookstore/internal/entity"
)

// Page is one slice of a filtered book list.
type Page struct {
	Items      []entity.Book
	TotalPages int
}

// Paginate slices items for the requested 1-based page. TotalPages is
// never below 1 and an out-of-range page yields an empty slice, not an
// error.
func Paginate(items []entity.Book, page, pageSize int) Page {
	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	if start < 0 || start >= len(items) {
		return Page{Items: []entity.Book{}, TotalPages: totalPages}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return Page{Items: items[start:end], TotalPages: totalPages}
}

// ButtonKind distinguishes the widgets in a pagination strip.
type ButtonKind int

const (
	ButtonPrev ButtonKind = iota
	ButtonNext
	ButtonNumber
	ButtonEllipsis
)

// Button is one pagination control. Page is meaningful for number buttons
// and for enabled arrows (the page the arrow navigates to).
type Button struct {
	Kind     ButtonKind
	Page     int
	Active   bool
	Disabled bool
}

// PageButtons produces the deterministic button strip for a pager state:
// all page numbers when totalPages <= 3, otherwise page 1 and the last
// page always, up to two neighbors when the current page is near an edge,
// and a collapsed ellipsis-current-ellipsis in the middle.
func PageButtons(currentPage, totalPages int) []Button {
	if totalPages < 1 {
		totalPages = 1
	}

	buttons := []Button{{
		Kind:     ButtonPrev,
		Page:     currentPage - 1,
		Disabled: currentPage == 1,
	}}

	if totalPages <= 3 {
		for i := 1; i <= totalPages; i++ {
			buttons = append(buttons, numberButton(i, currentPage))
		}
	} else {
		buttons = append(buttons, numberButton(1, currentPage))

		switch {
		case currentPage <= 3:
			last := 3
			if totalPages-1 < last {
				last = totalPages - 1
			}
			for i := 2; i <= last; i++ {
				buttons = append(buttons, numberButton(i, currentPage))
			}
			if totalPages > 4 {
				buttons = append(buttons, Button{Kind: ButtonEllipsis, Disabled: true})
			}
		case currentPage >= totalPages-2:
			buttons = append(buttons, Button{Kind: ButtonEllipsis, Disabled: true})
			for i := totalPages - 2; i < totalPages; i++ {
				buttons = append(buttons, numberButton(i, currentPage))
			}
		default:
			buttons = append(buttons, Button{Kind: ButtonEllipsis, Disabled: true})
			buttons = append(buttons, numberButton(currentPage, currentPage))
			buttons = append(buttons, Button{Kind: ButtonEllipsis, Disabled: true})
		}

		buttons = append(buttons, numberButton(totalPages, currentPage))
	}

	buttons = append(buttons, Button{
		Kind:     ButtonNext,
		Page:     currentPage + 1,
		Disabled: currentPage == totalPages,
	})
	return buttons
}

func numberButton(page, currentPage int) Button {
	return Button{Kind: ButtonNumber, Page: page, Active: page == currentPage}
}
