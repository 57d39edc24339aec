package scrollspy

// NavLink is one link in the page navigation.
type NavLink struct {
	Href   string `json:"href"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// NavHighlighter marks the nav link of the section that crosses the
// viewport's center line.
type NavHighlighter struct {
	links        []NavLink
	order        []string
	rects        map[string]Rect
	intersecting map[string]bool
	active       string
}

// NewNavHighlighter creates a highlighter over links. All links start
// inactive.
func NewNavHighlighter(links []NavLink) *NavHighlighter {
	h := &NavHighlighter{
		links:        make([]NavLink, len(links)),
		rects:        make(map[string]Rect),
		intersecting: make(map[string]bool),
	}
	copy(h.links, links)
	for i := range h.links {
		h.links[i].Active = false
	}
	return h
}

// Observe tracks the section id at rect, or moves it if already tracked.
func (h *NavHighlighter) Observe(sectionID string, rect Rect) {
	if _, ok := h.rects[sectionID]; !ok {
		h.order = append(h.order, sectionID)
	}
	h.rects[sectionID] = rect
}

// Update recomputes which sections cross the center line. Among sections that
// started crossing it in this update, the last observed one becomes current.
// When none did, the previous state stays. changed reports whether the
// current section changed.
func (h *NavHighlighter) Update(vp Viewport) (active string, changed bool) {
	center := vp.Center()
	entered := ""
	for _, id := range h.order {
		r := h.rects[id]
		now := r.Top <= center && center < r.Bottom
		if now && !h.intersecting[id] {
			entered = id
		}
		h.intersecting[id] = now
	}
	if entered == "" {
		return h.active, false
	}

	changed = entered != h.active
	h.active = entered
	href := "#" + entered
	for i := range h.links {
		h.links[i].Active = h.links[i].Href == href
	}
	return h.active, changed
}

// Active returns the current section id, or "" before any section was
// current.
func (h *NavHighlighter) Active() string { return h.active }

// Links returns the links with their current active flags.
func (h *NavHighlighter) Links() []NavLink {
	out := make([]NavLink, len(h.links))
	copy(out, h.links)
	return out
}
