package scrollspy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectionRatio(t *testing.T) {
	root := Rect{Top: 100, Bottom: 200}
	cases := []struct {
		name string
		r    Rect
		want float64
	}{
		{"inside", Rect{120, 140}, 1},
		{"above", Rect{0, 100}, 0},
		{"below", Rect{200, 300}, 0},
		{"half", Rect{50, 150}, 0.5},
		{"covers", Rect{0, 400}, 0.25},
		{"zero height inside", Rect{150, 150}, 1},
		{"zero height on bottom edge", Rect{200, 200}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, IntersectionRatio(tc.r, root), 1e-9)
		})
	}
}

func TestViewportBand(t *testing.T) {
	vp := Viewport{Top: 100, Height: 40}
	assert.Equal(t, Rect{Top: 120, Bottom: 120}, vp.Band(0.5, 0.5))
	assert.Equal(t, 120.0, vp.Center())
	assert.Equal(t, Rect{Top: 110, Bottom: 130}, vp.Band(0.25, 0.25))
}

func TestRevealThreshold(t *testing.T) {
	o := NewRevealObserver(0.1)
	o.Observe("a", Rect{Top: 95, Bottom: 195}) // needs 10 lines visible

	assert.Empty(t, o.Update(Viewport{Top: 0, Height: 100}))  // 5% visible
	assert.Equal(t, []string{"a"}, o.Update(Viewport{Top: 5, Height: 100}))
	assert.True(t, o.Revealed("a"))
	assert.Empty(t, o.Pending())
}

func TestRevealFiresAtMostOnce(t *testing.T) {
	o := NewRevealObserver(DefaultRevealThreshold)
	o.Observe("a", Rect{Top: 0, Bottom: 10})
	o.Observe("b", Rect{Top: 500, Bottom: 510})

	fired := map[string]int{}
	for i := 0; i < 5; i++ {
		for _, top := range []float64{0, 480, 1000, 0, 490} {
			for _, id := range o.Update(Viewport{Top: top, Height: 50}) {
				fired[id]++
			}
		}
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 1}, fired)

	// Re-observing a revealed element does not resubscribe it.
	o.Observe("a", Rect{Top: 0, Bottom: 10})
	assert.Empty(t, o.Pending())
	assert.Empty(t, o.Update(Viewport{Top: 0, Height: 50}))
}

func TestRevealOrderAndPending(t *testing.T) {
	o := NewRevealObserver(0.5)
	o.Observe("c", Rect{Top: 20, Bottom: 30})
	o.Observe("a", Rect{Top: 0, Bottom: 10})
	o.Observe("far", Rect{Top: 1000, Bottom: 1010})

	assert.Equal(t, []string{"c", "a"}, o.Update(Viewport{Top: 0, Height: 100}))
	assert.Equal(t, []string{"far"}, o.Pending())
}

func TestRevealInvalidThreshold(t *testing.T) {
	assert.Equal(t, DefaultRevealThreshold, NewRevealObserver(0).Threshold())
	assert.Equal(t, DefaultRevealThreshold, NewRevealObserver(1.5).Threshold())
	assert.Equal(t, 1.0, NewRevealObserver(1).Threshold())
}

func sampleLinks() []NavLink {
	return []NavLink{
		{Href: "#home", Label: "Home"},
		{Href: "#about", Label: "About"},
		{Href: "#projects", Label: "Projects"},
	}
}

func activeHrefs(links []NavLink) []string {
	var out []string
	for _, l := range links {
		if l.Active {
			out = append(out, l.Href)
		}
	}
	return out
}

func TestNavHighlightsCenteredSection(t *testing.T) {
	h := NewNavHighlighter(sampleLinks())
	h.Observe("home", Rect{0, 100})
	h.Observe("about", Rect{100, 200})
	h.Observe("projects", Rect{200, 300})

	active, changed := h.Update(Viewport{Top: 0, Height: 100})
	assert.Equal(t, "home", active)
	assert.True(t, changed)
	assert.Equal(t, []string{"#home"}, activeHrefs(h.Links()))

	active, changed = h.Update(Viewport{Top: 60, Height: 100})
	assert.Equal(t, "about", active)
	assert.True(t, changed)
	assert.Equal(t, []string{"#about"}, activeHrefs(h.Links()))

	// Still inside about: nothing new enters, nothing changes.
	active, changed = h.Update(Viewport{Top: 70, Height: 100})
	assert.Equal(t, "about", active)
	assert.False(t, changed)
}

func TestNavPersistsWithoutIntersection(t *testing.T) {
	h := NewNavHighlighter(sampleLinks())
	h.Observe("home", Rect{0, 100})
	h.Observe("about", Rect{300, 400}) // gap between sections

	h.Update(Viewport{Top: 0, Height: 100})
	active, changed := h.Update(Viewport{Top: 150, Height: 100}) // center at 200
	assert.Equal(t, "home", active)
	assert.False(t, changed)
	assert.Equal(t, []string{"#home"}, activeHrefs(h.Links()))
}

func TestNavLastEnteringSectionWins(t *testing.T) {
	h := NewNavHighlighter(sampleLinks())
	// Overlapping sections both crossing the center line at once.
	h.Observe("about", Rect{0, 200})
	h.Observe("projects", Rect{50, 150})

	active, _ := h.Update(Viewport{Top: 50, Height: 100})
	assert.Equal(t, "projects", active)
	assert.Equal(t, []string{"#projects"}, activeHrefs(h.Links()))
}

func TestNavUnmatchedSectionClearsLinks(t *testing.T) {
	h := NewNavHighlighter(sampleLinks())
	h.Observe("home", Rect{0, 100})
	h.Observe("contact", Rect{100, 200})

	h.Update(Viewport{Top: 0, Height: 100})
	active, changed := h.Update(Viewport{Top: 100, Height: 100})
	assert.Equal(t, "contact", active)
	assert.True(t, changed)
	assert.Empty(t, activeHrefs(h.Links()))
}

func TestNavReentryReactivates(t *testing.T) {
	h := NewNavHighlighter(sampleLinks())
	h.Observe("home", Rect{0, 100})
	h.Observe("about", Rect{100, 200})

	h.Update(Viewport{Top: 0, Height: 100})
	h.Update(Viewport{Top: 100, Height: 100})
	active, changed := h.Update(Viewport{Top: 0, Height: 100})
	assert.Equal(t, "home", active)
	assert.True(t, changed)
}

func TestNavInitialLinksInactive(t *testing.T) {
	links := sampleLinks()
	links[0].Active = true
	h := NewNavHighlighter(links)
	assert.Empty(t, activeHrefs(h.Links()))
	assert.Equal(t, "", h.Active())
	require.True(t, links[0].Active, "caller's slice is not modified")
}
