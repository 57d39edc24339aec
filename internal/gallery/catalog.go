package gallery

import (
	"fmt"

	"github.com/google/uuid"
)

// Catalog is the fixed, ordered arena of items for a session.
type Catalog struct {
	items []Item
	index map[ItemID]int
}

// NewCatalog builds a catalog from items in display order. Items without an
// ID get a random one; duplicate IDs are rejected.
func NewCatalog(items []Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, len(items)),
		index: make(map[ItemID]int, len(items)),
	}
	for i, it := range items {
		if it.ID == "" {
			it.ID = ItemID(uuid.New().String())
		}
		if _, dup := c.index[it.ID]; dup {
			return nil, fmt.Errorf("duplicate item id %q", it.ID)
		}
		c.items[i] = it
		c.index[it.ID] = i
	}
	return c, nil
}

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// Items returns a copy of all items in order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Item looks an item up by ID.
func (c *Catalog) Item(id ItemID) (Item, bool) {
	i, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range c.items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}

// Apply computes the filtered view. Applying the same filter twice yields
// equal views.
func (c *Catalog) Apply(f Filter) View {
	f = f.normalized()
	v := View{filter: f, positions: make(map[ItemID]int)}
	for _, it := range c.items {
		if f.Matches(it) {
			v.positions[it.ID] = len(v.ids)
			v.ids = append(v.ids, it.ID)
		}
	}
	return v
}

// Hidden returns the IDs of catalog items not in v, in catalog order.
func (c *Catalog) Hidden(v View) []ItemID {
	var out []ItemID
	for _, it := range c.items {
		if !v.Contains(it.ID) {
			out = append(out, it.ID)
		}
	}
	return out
}

// View is an ordered subsequence of catalog items matching a filter. Positions
// in a view are only meaningful for that view.
type View struct {
	filter    Filter
	ids       []ItemID
	positions map[ItemID]int
}

// Filter returns the filter the view was computed from.
func (v View) Filter() Filter { return v.filter }

// Len returns the number of visible items.
func (v View) Len() int { return len(v.ids) }

// At returns the ID at position i.
func (v View) At(i int) ItemID { return v.ids[i] }

// IDs returns a copy of the visible IDs in order.
func (v View) IDs() []ItemID {
	out := make([]ItemID, len(v.ids))
	copy(out, v.ids)
	return out
}

// IndexOf returns the position of id in the view, or -1.
func (v View) IndexOf(id ItemID) int {
	if i, ok := v.positions[id]; ok {
		return i
	}
	return -1
}

// Contains reports whether id is visible in the view.
func (v View) Contains(id ItemID) bool {
	_, ok := v.positions[id]
	return ok
}
