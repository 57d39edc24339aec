// Package gallery filters a fixed catalog of images by category and title and
// pages through the filtered subset in a lightbox viewer.
package gallery

// Gallery owns one session's catalog, active filter, derived view and viewer.
type Gallery struct {
	catalog *Catalog
	filter  Filter
	view    View
	viewer  *Viewer
}

// Option configures a Gallery.
type Option func(*options)

type options struct {
	filter Filter
	fs     Fullscreen
	alert  AlertFunc
}

// WithFilter sets the filter applied at load.
func WithFilter(f Filter) Option { return func(o *options) { o.filter = f } }

// WithFullscreen sets the fullscreen collaborator.
func WithFullscreen(fs Fullscreen) Option { return func(o *options) { o.fs = fs } }

// WithAlert sets the alert collaborator.
func WithAlert(fn AlertFunc) Option { return func(o *options) { o.alert = fn } }

// New creates a gallery over c and applies the initial filter.
func New(c *Catalog, opts ...Option) *Gallery {
	o := options{filter: Filter{Category: CategoryAll}}
	for _, opt := range opts {
		opt(&o)
	}
	g := &Gallery{catalog: c, filter: o.filter.normalized()}
	g.view = c.Apply(g.filter)
	g.viewer = newViewer(c, g.view, o.fs, o.alert)
	return g
}

// Catalog returns the underlying catalog.
func (g *Gallery) Catalog() *Catalog { return g.catalog }

// Filter returns the active filter.
func (g *Gallery) Filter() Filter { return g.filter }

// View returns the current filtered view.
func (g *Gallery) View() View { return g.view }

// Viewer returns the lightbox viewer.
func (g *Gallery) Viewer() *Viewer { return g.viewer }

// SetCategory changes the category filter, keeping the search text.
func (g *Gallery) SetCategory(category string) View {
	f := g.filter
	f.Category = category
	return g.SetFilter(f)
}

// SetSearch changes the search text, keeping the category.
func (g *Gallery) SetSearch(search string) View {
	f := g.filter
	f.Search = search
	return g.SetFilter(f)
}

// SetFilter recomputes the view and rebinds the viewer to it.
func (g *Gallery) SetFilter(f Filter) View {
	g.filter = f.normalized()
	g.view = g.catalog.Apply(g.filter)
	g.viewer.Rebind(g.view)
	return g.view
}

// Open opens the viewer on a visible item.
func (g *Gallery) Open(id ItemID) bool { return g.viewer.Open(id) }

// ItemState is an item with its visibility in the current view.
type ItemState struct {
	Item
	Hidden bool `json:"hidden"`
}

// ViewerState is the serializable viewer state.
type ViewerState struct {
	Open       bool   `json:"open"`
	Fullscreen bool   `json:"fullscreen"`
	Slide      *Slide `json:"slide,omitempty"`
}

// Snapshot is the full display state of a gallery.
type Snapshot struct {
	Filter     Filter      `json:"filter"`
	Categories []string    `json:"categories"`
	Items      []ItemState `json:"items"`
	Visible    int         `json:"visible"`
	Viewer     ViewerState `json:"viewer"`
}

// Snapshot returns the display state.
func (g *Gallery) Snapshot() Snapshot {
	s := Snapshot{
		Filter:     g.filter,
		Categories: append([]string{CategoryAll}, g.catalog.Categories()...),
		Visible:    g.view.Len(),
		Viewer: ViewerState{
			Open:       g.viewer.IsOpen(),
			Fullscreen: g.viewer.Fullscreen(),
		},
	}
	for _, it := range g.catalog.items {
		s.Items = append(s.Items, ItemState{Item: it, Hidden: !g.view.Contains(it.ID)})
	}
	if g.viewer.IsOpen() {
		if slide, ok := g.viewer.Slide(); ok {
			s.Viewer.Slide = &slide
		}
	}
	return s
}
