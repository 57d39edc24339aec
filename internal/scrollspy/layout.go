package scrollspy

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Line is one wrapped terminal line of a laid-out page.
type Line struct {
	Text    string
	Section string // owning section id, "" for the title and intro
	Block   string // owning block id, "" for headings and spacing
	Heading bool
}

// Element is a tracked element and its extent.
type Element struct {
	ID   string `json:"id"`
	Rect Rect   `json:"rect"`
}

// Measurements are the extents of a page's blocks and sections.
type Measurements struct {
	Blocks   []Element `json:"blocks"`
	Sections []Element `json:"sections"`
}

// Layout is a page wrapped to a terminal width. Rects are in line units.
type Layout struct {
	Width int
	Lines []Line
	Measurements
}

// Height returns the number of lines.
func (l Layout) Height() int { return len(l.Lines) }

// Layout wraps the page to width columns. Each section starts with its
// heading and is followed by a blank line; blocks are separated by blank lines.
func (p *Page) Layout(width int) Layout {
	if width < 10 {
		width = 10
	}
	l := Layout{Width: width}

	if p.Title != "" {
		l.addLines(p.Title, "", "", true)
		l.blank()
	}
	for _, b := range p.Intro {
		l.addBlock("", b)
	}
	for _, s := range p.Sections {
		top := len(l.Lines)
		l.addLines(s.Title, s.ID, "", true)
		l.blank()
		for _, b := range s.Blocks {
			l.addBlock(s.ID, b)
		}
		l.Sections = append(l.Sections, Element{
			ID:   s.ID,
			Rect: Rect{Top: float64(top), Bottom: float64(len(l.Lines))},
		})
	}
	return l
}

func (l *Layout) addBlock(section string, b Block) {
	top := len(l.Lines)
	l.addLines(b.Text, section, b.ID, false)
	l.Blocks = append(l.Blocks, Element{
		ID:   b.ID,
		Rect: Rect{Top: float64(top), Bottom: float64(len(l.Lines))},
	})
	l.blank()
}

func (l *Layout) addLines(s, section, block string, heading bool) {
	wrapped := ansi.Wrap(s, l.Width, "")
	for _, t := range strings.Split(wrapped, "\n") {
		l.Lines = append(l.Lines, Line{Text: t, Section: section, Block: block, Heading: heading})
	}
}

func (l *Layout) blank() {
	section := ""
	if n := len(l.Lines); n > 0 {
		section = l.Lines[n-1].Section
	}
	l.Lines = append(l.Lines, Line{Section: section})
}
