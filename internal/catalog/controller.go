package catalog

import (
	"net/url"
	"strconv"

	"bookstore/internal/entity"
)

// Callbacks are the controller's render collaborators. They are supplied
// at construction and must be non-nil; the controller never discovers
// renderers at call time.
type Callbacks struct {
	// RenderBooks receives the current page of matching books.
	RenderBooks func(books []entity.Book)
	// RenderPagination receives the pager state and its button strip.
	RenderPagination func(currentPage, totalPages int, buttons []Button)
	// ResetFilters synchronizes filter widgets back to the unchecked
	// state when all filters are cleared. Widget state is not derived
	// from the query on that path, so the reset is explicit.
	ResetFilters func()
}

// Controller owns the canonical filter state: a query string equivalent
// to what the storefront shows in its address bar. Every view of the
// catalog (filtered list, current page, pager) is recomputed from that
// query and the snapshot; there is no hidden state.
type Controller struct {
	snapshot  *Snapshot
	pageSize  int
	query     url.Values
	callbacks Callbacks

	totalPages int
}

// NewController builds a controller over a snapshot. pageSize is fixed per
// surface (8 for the public catalog, 5 for the admin console).
func NewController(snapshot *Snapshot, pageSize int, callbacks Callbacks) *Controller {
	return &Controller{
		snapshot:  snapshot,
		pageSize:  pageSize,
		query:     url.Values{},
		callbacks: callbacks,
	}
}

// SetRawQuery replaces the whole query state, e.g. from a bookmarked URL.
func (c *Controller) SetRawQuery(raw string) error {
	query, err := url.ParseQuery(raw)
	if err != nil {
		return err
	}
	c.query = query
	return nil
}

// Query returns the canonical, shareable encoding of the current state.
func (c *Controller) Query() string {
	return c.query.Encode()
}

// Selection returns the decoded form of the current query.
func (c *Controller) Selection() Selection {
	return ParseQuery(c.query)
}

// TotalPages reports the page count computed by the last Apply.
func (c *Controller) TotalPages() int {
	return c.totalPages
}

// Apply recomputes the filtered, paginated view from the current query and
// hands it to the render collaborators. It returns the computed page.
func (c *Controller) Apply() Page {
	sel := ParseQuery(c.query)

	var filtered []entity.Book
	for _, b := range c.snapshot.Books() {
		if Matches(b, sel) {
			filtered = append(filtered, b)
		}
	}

	page := Paginate(filtered, sel.Page, c.pageSize)
	c.totalPages = page.TotalPages

	c.callbacks.RenderBooks(page.Items)
	c.callbacks.RenderPagination(sel.Page, page.TotalPages, PageButtons(sel.Page, page.TotalPages))
	return page
}

// SetSearch updates the search text, resets to page 1 and re-applies. An
// empty text removes the search key entirely.
func (c *Controller) SetSearch(text string) Page {
	if text == "" {
		c.query.Del(searchParam)
	} else {
		c.query.Set(searchParam, text)
	}
	c.query.Set(pageParam, "1")
	return c.Apply()
}

// SetToken toggles one filter token, resets to page 1 and re-applies.
func (c *Controller) SetToken(token string, enabled bool) Page {
	if enabled {
		c.query.Set(token, "true")
	} else {
		c.query.Del(token)
	}
	c.query.Set(pageParam, "1")
	return c.Apply()
}

// SetPage navigates to a page without touching the filters.
func (c *Controller) SetPage(page int) Page {
	c.query.Set(pageParam, strconv.Itoa(page))
	return c.Apply()
}

// ClearFilters removes the search text and every filter token, resets to
// page 1, tells the widgets to uncheck themselves and re-applies.
func (c *Controller) ClearFilters() Page {
	for key := range c.query {
		c.query.Del(key)
	}
	c.query.Set(pageParam, "1")
	c.callbacks.ResetFilters()
	return c.Apply()
}
