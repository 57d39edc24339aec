package gallery

import (
	"errors"
	"strings"
)

// CategoryAll is the filter category that matches every item.
const CategoryAll = "all"

// ErrItemNotFound is returned when an item ID is not in the catalog.
var ErrItemNotFound = errors.New("gallery item not found")

// ItemID is a stable identifier for a catalog item. It survives refiltering,
// unlike positions in a view.
type ItemID string

// Image references the picture behind an item.
type Image struct {
	Src string `json:"src" yaml:"src"`
	Alt string `json:"alt" yaml:"alt"`
}

// Item is one gallery entry. Items are immutable once loaded.
type Item struct {
	ID       ItemID `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Image    Image  `json:"image"`
}

// Filter selects items by category and by a case-insensitive title substring.
type Filter struct {
	Category string `json:"category"`
	Search   string `json:"search"`
}

// Matches reports whether it passes the filter. An empty category means
// CategoryAll.
func (f Filter) Matches(it Item) bool {
	if f.Category != "" && f.Category != CategoryAll && it.Category != f.Category {
		return false
	}
	return strings.Contains(strings.ToLower(it.Title), strings.ToLower(f.Search))
}

func (f Filter) normalized() Filter {
	if f.Category == "" {
		f.Category = CategoryAll
	}
	return f
}
