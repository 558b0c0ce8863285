package localstore

import "strconv"

const (
	themeKey = "themeMode"
	likesKey = "bookLikes"
)

// Prefs exposes the small per-user preferences kept alongside the cart.
type Prefs struct {
	store *Store
}

func NewPrefs(store *Store) *Prefs {
	return &Prefs{store: store}
}

// Theme returns the saved theme mode, defaulting to "light".
func (p *Prefs) Theme() string {
	var theme string
	if ok, err := p.store.Get(themeKey, &theme); !ok || err != nil || theme == "" {
		return "light"
	}
	return theme
}

// SetTheme persists the theme mode string.
func (p *Prefs) SetTheme(theme string) error {
	return p.store.Set(themeKey, theme)
}

// Likes returns the liked-book map keyed by book id.
func (p *Prefs) Likes() map[string]bool {
	likes := map[string]bool{}
	_, _ = p.store.Get(likesKey, &likes)
	return likes
}

// ToggleLike flips the like flag for a book and reports the new state.
func (p *Prefs) ToggleLike(bookID int64) (bool, error) {
	likes := p.Likes()
	key := strconv.FormatInt(bookID, 10)
	likes[key] = !likes[key]
	if err := p.store.Set(likesKey, likes); err != nil {
		return false, err
	}
	return likes[key], nil
}

// IsLiked reports whether a book is liked.
func (p *Prefs) IsLiked(bookID int64) bool {
	return p.Likes()[strconv.FormatInt(bookID, 10)]
}
