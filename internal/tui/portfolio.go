package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/codealpha/showcase/internal/scrollspy"
)

// PortfolioModel scrolls a portfolio page. Blocks stay blank until they are
// revealed and the nav bar follows the section in the middle of the screen.
type PortfolioModel struct {
	page      *scrollspy.Page
	threshold float64
	layout    scrollspy.Layout
	tracker   *scrollspy.Tracker
	vp        viewport.Model
	shown     map[string]bool
	ready     bool
}

// NewPortfolioModel creates a viewer for page. The page is laid out once the
// terminal size is known.
func NewPortfolioModel(page *scrollspy.Page, threshold float64) *PortfolioModel {
	return &PortfolioModel{
		page:      page,
		threshold: threshold,
		shown:     make(map[string]bool),
	}
}

func (m *PortfolioModel) Init() tea.Cmd { return nil }

func (m *PortfolioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if !m.ready {
			if msg.String() == "ctrl+c" || msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}
		switch k := msg.String(); k {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.jumpRelative(1)
		case "shift+tab":
			m.jumpRelative(-1)
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			m.jump(int(k[0] - '1'))
		default:
			m.vp, cmd = m.vp.Update(msg)
		}
	default:
		if !m.ready {
			return m, nil
		}
		m.vp, cmd = m.vp.Update(msg)
	}
	if m.ready {
		m.scroll()
	}
	return m, cmd
}

func (m *PortfolioModel) resize(width, height int) {
	m.layout = m.page.Layout(width - 2)
	m.tracker = scrollspy.NewTracker(m.page.NavLinks(), m.layout.Measurements, m.threshold)
	h := height - 2
	if h < 1 {
		h = 1
	}
	if !m.ready {
		m.vp = viewport.New(width, h)
		m.ready = true
	} else {
		m.vp.Width = width
		m.vp.Height = h
	}
}

// scroll reports the viewport position to the tracker and redraws.
func (m *PortfolioModel) scroll() {
	upd := m.tracker.Scroll(scrollspy.Viewport{
		Top:    float64(m.vp.YOffset),
		Height: float64(m.vp.Height),
	})
	for _, id := range upd.Revealed {
		m.shown[id] = true
	}
	m.vp.SetContent(m.content())
}

func (m *PortfolioModel) jump(i int) {
	if i < 0 || i >= len(m.layout.Sections) {
		return
	}
	m.vp.SetYOffset(int(m.layout.Sections[i].Rect.Top))
}

func (m *PortfolioModel) jumpRelative(step int) {
	cur := -1
	for i, s := range m.layout.Sections {
		if s.ID == m.tracker.Active() {
			cur = i
		}
	}
	m.jump(cur + step)
}

// Revealed reports whether block id has been shown.
func (m *PortfolioModel) Revealed(id string) bool { return m.shown[id] }

// Active returns the current section id.
func (m *PortfolioModel) Active() string {
	if m.tracker == nil {
		return ""
	}
	return m.tracker.Active()
}

// Offset returns the first visible line.
func (m *PortfolioModel) Offset() int { return m.vp.YOffset }

func (m *PortfolioModel) content() string {
	active := m.tracker.Active()
	lines := make([]string, len(m.layout.Lines))
	for i, l := range m.layout.Lines {
		switch {
		case l.Block != "" && !m.shown[l.Block]:
			lines[i] = ""
		case l.Heading && l.Section != "" && l.Section == active:
			lines[i] = selectedStyle.Render(l.Text)
		case l.Heading:
			lines[i] = titleStyle.Render(l.Text)
		default:
			lines[i] = l.Text
		}
	}
	return strings.Join(lines, "\n")
}

func (m *PortfolioModel) navBar() string {
	links := m.tracker.Links()
	labels := make([]string, len(links))
	active := ""
	for i, l := range links {
		labels[i] = fmt.Sprintf("%d %s", i+1, l.Label)
		if l.Active {
			active = labels[i]
		}
	}
	return tabs(labels, active)
}

func (m *PortfolioModel) View() string {
	if !m.ready {
		return "loading..."
	}
	pct := int(m.vp.ScrollPercent() * 100)
	footer := faintStyle.Render(fmt.Sprintf("%3d%%  ↑/↓ scroll  tab next section  1-9 jump  q quit", pct))
	return m.navBar() + "\n" + m.vp.View() + "\n" + footer
}
