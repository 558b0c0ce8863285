package cart

import (
	"bookstore/internal/entity"
)

// LineItem is a catalog record plus the quantity in the cart. A stored
// line item always has Quantity >= 1; anything that would drop to zero is
// removed instead.
type LineItem struct {
	entity.Book
	Quantity int `json:"quantity"`
}

// Lookup resolves a book id against the catalog snapshot when a new line
// item is created.
type Lookup interface {
	Find(id int64) (entity.Book, bool)
}

// Update applies a quantity delta for one book id and returns the new item
// list. Rules:
//   - no existing item and delta > 0: insert with quantity = delta, fields
//     copied from the catalog; unknown ids are ignored
//   - no existing item and delta <= 0: no-op
//   - existing item: quantity (default 1 when absent) + delta; <= 0 removes
//     the item, otherwise the quantity is set
func Update(items []LineItem, bookID int64, delta int, books Lookup) []LineItem {
	index := -1
	for i := range items {
		if items[i].ID == bookID {
			index = i
			break
		}
	}

	if index == -1 {
		if delta > 0 {
			if b, ok := books.Find(bookID); ok {
				items = append(items, LineItem{Book: b, Quantity: delta})
			}
		}
		return items
	}

	quantity := items[index].Quantity
	if quantity == 0 {
		quantity = 1
	}
	quantity += delta

	if quantity <= 0 {
		items = append(items[:index], items[index+1:]...)
	} else {
		items[index].Quantity = quantity
	}
	return items
}

// Subtotal is sum(price * quantity) over all items. It is recomputed from
// the item list every time, never cached.
func Subtotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Count is the total number of copies across all line items.
func Count(items []LineItem) int {
	var total int
	for _, item := range items {
		total += item.Quantity
	}
	return total
}
