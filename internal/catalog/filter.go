package catalog

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"bookstore/internal/entity"
)

// Reserved query keys; every other key present in the query string is a
// filter token whose mere presence activates it.
const (
	searchParam = "search"
	pageParam   = "page"
)

// Selection is the decoded form of the storefront URL query: search text,
// the set of active filter tokens and the requested page. It is rebuilt
// from the query string on every change, never stored elsewhere.
type Selection struct {
	Search string
	Tokens []string
	Page   int
}

// ParseQuery decodes a raw query into a Selection at the boundary, so the
// matching logic never sees url.Values. Tokens are sorted for determinism.
func ParseQuery(query url.Values) Selection {
	sel := Selection{
		Search: query.Get(searchParam),
		Page:   1,
	}
	if page, err := strconv.Atoi(query.Get(pageParam)); err == nil && page >= 1 {
		sel.Page = page
	}
	for key := range query {
		if key == searchParam || key == pageParam {
			continue
		}
		sel.Tokens = append(sel.Tokens, key)
	}
	sort.Strings(sel.Tokens)
	return sel
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeCategory lower-cases a category label and collapses whitespace
// runs to single hyphens, producing the token form used in URLs
// ("Science Fiction" -> "science-fiction").
func NormalizeCategory(category string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(category), "-")
}

// Matches reports whether a book passes the selection: the title must
// contain the search text (case-insensitive, empty matches all) and every
// active token must match independently.
func Matches(b entity.Book, sel Selection) bool {
	if !strings.Contains(strings.ToLower(b.Title), strings.ToLower(sel.Search)) {
		return false
	}
	for _, token := range sel.Tokens {
		if !matchesToken(b, token) {
			return false
		}
	}
	return true
}

// matchesToken evaluates a single filter token. The four price tokens
// partition [0,∞) with 10000 belonging to price1 only (price2 is strictly
// >10000). rating-N is a minimum-star threshold. Anything else is compared
// against the normalized category; tokens that are not a category simply
// never match, which is not an error.
func matchesToken(b entity.Book, token string) bool {
	switch token {
	case "price1":
		return b.Price >= 0 && b.Price <= 10000
	case "price2":
		return b.Price > 10000 && b.Price <= 20000
	case "price3":
		return b.Price > 20000 && b.Price <= 30000
	case "price4":
		return b.Price > 30000
	}

	if rest, ok := strings.CutPrefix(token, "rating-"); ok {
		threshold, err := strconv.Atoi(rest)
		if err != nil {
			return false
		}
		return effectiveRating(b) >= float64(threshold)
	}

	return NormalizeCategory(b.Category) == token
}

// effectiveRating prefers the legacy per-book review score over the
// aggregate rating, defaulting to 0 when neither is usable.
func effectiveRating(b entity.Book) float64 {
	if b.Review != nil {
		return *b.Review
	}
	return b.Rating
}
