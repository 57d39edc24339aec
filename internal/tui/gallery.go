package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codealpha/showcase/internal/gallery"
)

var errAltScreenUnavailable = errors.New("alternate screen is disabled")

// altScreen is the terminal's fullscreen mode. The model switches the
// program's alternate screen to follow it.
type altScreen struct {
	disabled bool
	active   bool
}

func (s *altScreen) Request(context.Context) error {
	if s.disabled {
		return errAltScreenUnavailable
	}
	s.active = true
	return nil
}

func (s *altScreen) Exit() error  { s.active = false; return nil }
func (s *altScreen) Active() bool { return s.active }

// GalleryOption configures a GalleryModel.
type GalleryOption func(*GalleryModel)

// WithoutAltScreen makes fullscreen requests fail, for terminals that cannot
// switch screens.
func WithoutAltScreen() GalleryOption {
	return func(m *GalleryModel) { m.screen.disabled = true }
}

// WithInitialFilter starts the browser on f.
func WithInitialFilter(f gallery.Filter) GalleryOption {
	return func(m *GalleryModel) { m.filter = f }
}

// GalleryModel browses a catalog: a filterable list with a lightbox viewer.
type GalleryModel struct {
	gallery *gallery.Gallery
	filter  gallery.Filter
	screen  *altScreen
	inAlt   bool
	search  textinput.Model
	typing  bool
	cursor  int
	alert   string
	width   int
	height  int
}

// NewGalleryModel creates a browser over c.
func NewGalleryModel(c *gallery.Catalog, opts ...GalleryOption) *GalleryModel {
	m := &GalleryModel{screen: &altScreen{}}
	for _, opt := range opts {
		opt(m)
	}

	ti := textinput.New()
	ti.Placeholder = "search titles"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.SetValue(m.filter.Search)
	m.search = ti

	m.gallery = gallery.New(c,
		gallery.WithFilter(m.filter),
		gallery.WithFullscreen(m.screen),
		gallery.WithAlert(func(msg string) { m.alert = msg }),
	)
	return m
}

// Gallery exposes the underlying engine.
func (m *GalleryModel) Gallery() *gallery.Gallery { return m.gallery }

// Cursor returns the highlighted position in the current view.
func (m *GalleryModel) Cursor() int { return m.cursor }

// Alert returns the message currently shown, if any.
func (m *GalleryModel) Alert() string { return m.alert }

func (m *GalleryModel) Init() tea.Cmd { return nil }

func (m *GalleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.alert = ""
		if m.gallery.Viewer().IsOpen() {
			return m, m.updateViewer(msg)
		}
		if m.typing {
			return m, m.updateSearch(msg)
		}
		return m, m.updateList(msg)
	}
	return m, nil
}

func (m *GalleryModel) updateList(msg tea.KeyMsg) tea.Cmd {
	view := m.gallery.View()
	switch msg.String() {
	case "q":
		return tea.Quit
	case "/":
		m.typing = true
		return m.search.Focus()
	case "tab":
		m.cycleCategory(1)
	case "shift+tab":
		m.cycleCategory(-1)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < view.Len()-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < view.Len() {
			m.gallery.Open(view.At(m.cursor))
		}
	}
	return nil
}

func (m *GalleryModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc":
		m.typing = false
		m.search.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.gallery.Filter().Search {
		m.gallery.SetSearch(v)
		m.clampCursor()
	}
	return cmd
}

func (m *GalleryModel) updateViewer(msg tea.KeyMsg) tea.Cmd {
	v := m.gallery.Viewer()
	switch msg.String() {
	case "right", "l":
		v.HandleKey(gallery.KeyArrowRight)
	case "left", "h":
		v.HandleKey(gallery.KeyArrowLeft)
	case "esc", "q":
		v.HandleKey(gallery.KeyEscape)
	case "f":
		_ = v.ToggleFullscreen(context.Background())
	}
	if v.Index() >= 0 {
		m.cursor = v.Index()
	}
	return m.syncScreen()
}

// syncScreen switches the alternate screen to match the fullscreen state.
func (m *GalleryModel) syncScreen() tea.Cmd {
	switch {
	case m.screen.Active() && !m.inAlt:
		m.inAlt = true
		return tea.EnterAltScreen
	case !m.screen.Active() && m.inAlt:
		m.inAlt = false
		return tea.ExitAltScreen
	}
	return nil
}

func (m *GalleryModel) cycleCategory(step int) {
	cats := append([]string{gallery.CategoryAll}, m.gallery.Catalog().Categories()...)
	cur := 0
	for i, c := range cats {
		if c == m.gallery.Filter().Category {
			cur = i
			break
		}
	}
	next := (cur + step + len(cats)) % len(cats)
	m.gallery.SetCategory(cats[next])
	m.clampCursor()
}

func (m *GalleryModel) clampCursor() {
	n := m.gallery.View().Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *GalleryModel) View() string {
	if slide, ok := m.gallery.Viewer().Slide(); ok && m.gallery.Viewer().IsOpen() {
		return m.viewerView(slide)
	}
	return m.listView()
}

func (m *GalleryModel) listView() string {
	var sb strings.Builder
	cats := append([]string{gallery.CategoryAll}, m.gallery.Catalog().Categories()...)
	sb.WriteString(titleStyle.Render("Gallery"))
	sb.WriteString("\n")
	sb.WriteString(tabs(cats, m.gallery.Filter().Category))
	sb.WriteString("\n")
	sb.WriteString(m.search.View())
	sb.WriteString("\n\n")

	view := m.gallery.View()
	if view.Len() == 0 {
		sb.WriteString(faintStyle.Render("No images match."))
		sb.WriteString("\n")
	}
	first, last := m.window(view.Len())
	for i := first; i < last; i++ {
		it, _ := m.gallery.Catalog().Item(view.At(i))
		line := fmt.Sprintf("%s  %s", it.Title, faintStyle.Render(it.Category))
		if i == m.cursor {
			sb.WriteString(selectedStyle.Render("> " + it.Title))
			sb.WriteString("  " + faintStyle.Render(it.Category))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(faintStyle.Render(fmt.Sprintf("%d of %d shown", view.Len(), m.gallery.Catalog().Len())))
	if m.alert != "" {
		sb.WriteString("\n" + errorStyle.Render(m.alert))
	}
	sb.WriteString(helpStyle.Render("\n↑/↓ move  enter open  / search  tab category  q quit"))
	return sb.String()
}

// window returns the range of list rows that fits the terminal around the
// cursor.
func (m *GalleryModel) window(n int) (int, int) {
	rows := m.height - 9
	if m.height == 0 || rows >= n {
		return 0, n
	}
	if rows < 1 {
		rows = 1
	}
	first := m.cursor - rows/2
	if first < 0 {
		first = 0
	}
	if first+rows > n {
		first = n - rows
	}
	return first, first + rows
}

func (m *GalleryModel) viewerView(s gallery.Slide) string {
	width := 50
	if m.screen.Active() && m.width > 8 {
		width = m.width - 4
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(s.Caption),
		"",
		"image    "+s.ImageSrc,
		faintStyle.Render("alt      "+s.ImageAlt),
		"download "+s.DownloadHref,
		"",
		lipgloss.NewStyle().Width(width-4).Align(lipgloss.Right).Render(s.Counter),
	)
	out := panelStyle.Width(width).Render(body)
	if m.alert != "" {
		out += "\n" + errorStyle.Render(m.alert)
	}
	mode := "f fullscreen"
	if m.screen.Active() {
		mode = "f exit fullscreen"
	}
	return out + helpStyle.Render("\n←/→ navigate  esc close  "+mode)
}
