package scrollspy

// Update is the result of one scroll event.
type Update struct {
	Revealed []string  `json:"revealed"`
	Active   string    `json:"active"`
	Changed  bool      `json:"changed"`
	Links    []NavLink `json:"links"`
}

// Tracker drives both observers for one viewer of a page.
type Tracker struct {
	reveal *RevealObserver
	nav    *NavHighlighter
}

// NewTracker observes every measured block for reveal and every measured
// section for nav highlighting.
func NewTracker(links []NavLink, m Measurements, threshold float64) *Tracker {
	t := &Tracker{
		reveal: NewRevealObserver(threshold),
		nav:    NewNavHighlighter(links),
	}
	for _, b := range m.Blocks {
		t.reveal.Observe(b.ID, b.Rect)
	}
	for _, s := range m.Sections {
		t.nav.Observe(s.ID, s.Rect)
	}
	return t
}

// Scroll handles one viewport change.
func (t *Tracker) Scroll(vp Viewport) Update {
	revealed := t.reveal.Update(vp)
	if revealed == nil {
		revealed = []string{}
	}
	active, changed := t.nav.Update(vp)
	return Update{
		Revealed: revealed,
		Active:   active,
		Changed:  changed,
		Links:    t.nav.Links(),
	}
}

// Revealed reports whether a block has been revealed.
func (t *Tracker) Revealed(id string) bool { return t.reveal.Revealed(id) }

// Active returns the current section id.
func (t *Tracker) Active() string { return t.nav.Active() }

// Links returns the nav links with their active flags.
func (t *Tracker) Links() []NavLink { return t.nav.Links() }
