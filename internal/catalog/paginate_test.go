package catalog

import (
	"fmt"
	"testing"

	"bookstore/internal/entity"

	"github.com/stretchr/testify/assert"
)

func makeBooks(n int) []entity.Book {
	books := make([]entity.Book, n)
	for i := range books {
		books[i] = entity.Book{ID: int64(i + 1), Title: fmt.Sprintf("Book %d", i+1)}
	}
	return books
}

func TestPaginate(t *testing.T) {
	t.Run("empty list still has one page", func(t *testing.T) {
		page := Paginate(nil, 1, 8)
		assert.Empty(t, page.Items)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("partial last page", func(t *testing.T) {
		page := Paginate(makeBooks(9), 2, 8)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, 2, page.TotalPages)
		assert.Equal(t, int64(9), page.Items[0].ID)
	})

	t.Run("out of range page is empty, not an error", func(t *testing.T) {
		page := Paginate(makeBooks(9), 5, 8)
		assert.Empty(t, page.Items)
		assert.Equal(t, 2, page.TotalPages)

		page = Paginate(makeBooks(9), 0, 8)
		assert.Empty(t, page.Items)
	})

	t.Run("pages concatenate back to the full list", func(t *testing.T) {
		books := makeBooks(27)
		first := Paginate(books, 1, 8)

		var rebuilt []entity.Book
		for p := 1; p <= first.TotalPages; p++ {
			rebuilt = append(rebuilt, Paginate(books, p, 8).Items...)
		}
		assert.Equal(t, books, rebuilt)
	})

	t.Run("repeated calls agree", func(t *testing.T) {
		books := makeBooks(20)
		assert.Equal(t, Paginate(books, 2, 8), Paginate(books, 2, 8))
	})
}

func TestPageButtons(t *testing.T) {
	render := func(buttons []Button) string {
		out := ""
		for _, b := range buttons {
			if out != "" {
				out += " "
			}
			switch b.Kind {
			case ButtonPrev:
				if b.Disabled {
					out += "(<)"
				} else {
					out += "<"
				}
			case ButtonNext:
				if b.Disabled {
					out += "(>)"
				} else {
					out += ">"
				}
			case ButtonEllipsis:
				out += "..."
			case ButtonNumber:
				if b.Active {
					out += fmt.Sprintf("[%d]", b.Page)
				} else {
					out += fmt.Sprintf("%d", b.Page)
				}
			}
		}
		return out
	}

	cases := []struct {
		current, total int
		want           string
	}{
		{1, 1, "(<) [1] (>)"},
		{1, 2, "(<) [1] 2 >"},
		{2, 3, "< 1 [2] 3 >"},
		{1, 4, "(<) [1] 2 3 4 >"},
		{3, 5, "< 1 2 [3] ... 5 >"},
		{4, 5, "< 1 ... 3 [4] 5 >"},
		{1, 10, "(<) [1] 2 3 ... 10 >"},
		{3, 10, "< 1 2 [3] ... 10 >"},
		{5, 10, "< 1 ... [5] ... 10 >"},
		{8, 10, "< 1 ... [8] 9 10 >"},
		{9, 10, "< 1 ... 8 [9] 10 >"},
		{10, 10, "< 1 ... 8 9 [10] (>)"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("page %d of %d", tc.current, tc.total), func(t *testing.T) {
			assert.Equal(t, tc.want, render(PageButtons(tc.current, tc.total)))
		})
	}

	t.Run("arrows carry target pages", func(t *testing.T) {
		buttons := PageButtons(5, 10)
		assert.Equal(t, 4, buttons[0].Page)
		assert.Equal(t, 6, buttons[len(buttons)-1].Page)
	})
}
