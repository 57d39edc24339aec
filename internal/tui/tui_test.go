package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codealpha/showcase/internal/calc"
	"github.com/codealpha/showcase/internal/gallery"
	"github.com/codealpha/showcase/internal/scrollspy"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m tea.Model, keys ...tea.KeyMsg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func TestCalcModelKeys(t *testing.T) {
	m := NewCalcModel(calc.New())

	press(t, m, runes("1"), runes("2"), runes("+"), runes("3"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "15", m.State().Display)

	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "0", m.State().Display)
	assert.Contains(t, m.View(), "12 + 3 = 15")
}

func TestCalcModelError(t *testing.T) {
	m := NewCalcModel(calc.New())
	press(t, m, runes("("), runes("1"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.State().Error)
	assert.Equal(t, calc.ErrorDisplay, m.State().Display)
}

func TestCalcModelHistoryToggle(t *testing.T) {
	c := calc.New()
	m := NewCalcModel(c)
	press(t, m, runes("2"), runes("*"), runes("4"), runes("="))
	assert.Contains(t, m.View(), "History")

	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.NotContains(t, m.View(), "History")

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Empty(t, c.History())
}

func TestCalcModelQuit(t *testing.T) {
	m := NewCalcModel(calc.New())
	cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func galleryCatalog(t *testing.T) *gallery.Catalog {
	t.Helper()
	c, err := gallery.NewCatalog([]gallery.Item{
		{ID: "forest", Title: "Misty Forest", Category: "nature", Image: gallery.Image{Src: "forest.jpg"}},
		{ID: "bridge", Title: "Old Bridge", Category: "architecture", Image: gallery.Image{Src: "bridge.jpg"}},
		{ID: "lake", Title: "Still Lake", Category: "nature", Image: gallery.Image{Src: "lake.jpg"}},
	})
	require.NoError(t, err)
	return c
}

func TestGalleryModelCategoryCycle(t *testing.T) {
	m := NewGalleryModel(galleryCatalog(t))
	assert.Equal(t, 3, m.Gallery().View().Len())

	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "nature", m.Gallery().Filter().Category)
	assert.Equal(t, 2, m.Gallery().View().Len())

	press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "architecture", m.Gallery().Filter().Category)
}

func TestGalleryModelSearch(t *testing.T) {
	m := NewGalleryModel(galleryCatalog(t))
	press(t, m, runes("j"), runes("j"))
	assert.Equal(t, 2, m.Cursor())

	press(t, m, runes("/"), runes("l"), runes("a"), runes("k"))
	assert.Equal(t, "lak", m.Gallery().Filter().Search)
	assert.Equal(t, 1, m.Gallery().View().Len())
	assert.Equal(t, 0, m.Cursor())

	// Typing does not navigate until the search is committed.
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Gallery().Viewer().IsOpen())
	slide, ok := m.Gallery().Viewer().Slide()
	require.True(t, ok)
	assert.Equal(t, "Still Lake", slide.Caption)
}

func TestGalleryModelViewer(t *testing.T) {
	m := NewGalleryModel(galleryCatalog(t))
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Gallery().Viewer().IsOpen())
	assert.Contains(t, m.View(), "1 / 3")

	press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Contains(t, m.View(), "3 / 3")
	assert.Equal(t, 2, m.Cursor())

	press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Contains(t, m.View(), "Misty Forest")

	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Gallery().Viewer().IsOpen())
	assert.Contains(t, m.View(), "3 of 3 shown")
}

func TestGalleryModelFullscreen(t *testing.T) {
	m := NewGalleryModel(galleryCatalog(t))
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	cmd := press(t, m, runes("f"))
	require.NotNil(t, cmd)
	assert.True(t, m.Gallery().Viewer().Fullscreen())

	cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd, "closing the viewer leaves the alternate screen")
	assert.False(t, m.Gallery().Viewer().Fullscreen())
}

func TestGalleryModelFullscreenUnavailable(t *testing.T) {
	m := NewGalleryModel(galleryCatalog(t), WithoutAltScreen())
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runes("f"))
	assert.False(t, m.Gallery().Viewer().Fullscreen())
	assert.Contains(t, m.Alert(), "full-screen")
	assert.True(t, m.Gallery().Viewer().IsOpen())
}

func TestGalleryModelInitialFilter(t *testing.T) {
	m := NewGalleryModel(galleryCatalog(t), WithInitialFilter(gallery.Filter{Search: "bridge"}))
	assert.Equal(t, 1, m.Gallery().View().Len())
	assert.Contains(t, m.View(), "1 of 3 shown")
}

const portfolioSrc = `# Jane Doe

Hello there.

## About

First paragraph about me.

Second paragraph about me.

## Work

- one
- two

Some closing words.

## Contact

Write to jane@example.com.
`

func TestPortfolioModelReveal(t *testing.T) {
	page, err := scrollspy.ParsePage([]byte(portfolioSrc))
	require.NoError(t, err)

	m := NewPortfolioModel(page, scrollspy.DefaultRevealThreshold)
	assert.Equal(t, "loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 8})
	assert.True(t, m.Revealed("intro-block-1"))
	assert.False(t, m.Revealed("about-block-1"))
	assert.False(t, m.Revealed("contact-block-1"))
	assert.Empty(t, m.Active())

	press(t, m, runes("3"))
	assert.Equal(t, "contact", m.Active())
	assert.True(t, m.Revealed("contact-block-1"))
	assert.Contains(t, m.View(), "jane@example.com")

	// Revealed blocks stay revealed after scrolling away.
	press(t, m, runes("1"))
	assert.Equal(t, "about", m.Active())
	assert.True(t, m.Revealed("contact-block-1"))
}

func TestPortfolioModelTab(t *testing.T) {
	page, err := scrollspy.ParsePage([]byte(portfolioSrc))
	require.NoError(t, err)

	m := NewPortfolioModel(page, scrollspy.DefaultRevealThreshold)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 8})

	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "about", m.Active())
	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "work", m.Active())
}

func TestCalcModelScientificLegend(t *testing.T) {
	m := NewCalcModel(calc.New())
	assert.NotContains(t, m.View(), "r sqrt")

	press(t, m, runes("?"))
	assert.Contains(t, m.View(), "r sqrt")
	assert.Equal(t, "0", m.State().Display)
}
