package gallery

import (
	"context"
	"fmt"
)

// Viewer keys. Other keys are ignored.
const (
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
	KeyEscape     = "Escape"
)

// Fullscreen is the presentation collaborator behind the viewer's fullscreen
// button. Request may complete asynchronously on the collaborator's side; its
// error is reported to the user and never changes viewer state.
type Fullscreen interface {
	Request(ctx context.Context) error
	Exit() error
	Active() bool
}

// AlertFunc shows a blocking message to the user.
type AlertFunc func(msg string)

// Slide describes what the open viewer presents.
type Slide struct {
	ID           ItemID `json:"id"`
	Index        int    `json:"index"`
	Total        int    `json:"total"`
	Counter      string `json:"counter"`
	Caption      string `json:"caption"`
	ImageSrc     string `json:"image_src"`
	ImageAlt     string `json:"image_alt"`
	DownloadHref string `json:"download_href"`
}

// Viewer is the lightbox: it pages through the current view one item at a
// time. Its index is relative to the view it was last bound to.
type Viewer struct {
	catalog *Catalog
	view    View
	index   int
	open    bool
	fs      Fullscreen
	alert   AlertFunc
}

func newViewer(c *Catalog, v View, fs Fullscreen, alert AlertFunc) *Viewer {
	if fs == nil {
		fs = &nopFullscreen{}
	}
	if alert == nil {
		alert = func(string) {}
	}
	return &Viewer{catalog: c, view: v, index: -1, fs: fs, alert: alert}
}

// IsOpen reports whether the viewer is showing.
func (v *Viewer) IsOpen() bool { return v.open }

// Index returns the active position in the bound view, or -1.
func (v *Viewer) Index() int { return v.index }

// Open shows the item with the given ID. Items that are not visible in the
// current view are ignored and Open reports false.
func (v *Viewer) Open(id ItemID) bool {
	i := v.view.IndexOf(id)
	if i < 0 {
		return false
	}
	v.index = i
	v.open = true
	return true
}

// Next moves to the following item, wrapping to the first.
func (v *Viewer) Next() {
	if !v.open || v.view.Len() == 0 {
		return
	}
	v.index = (v.index + 1) % v.view.Len()
}

// Previous moves to the preceding item, wrapping to the last.
func (v *Viewer) Previous() {
	if !v.open || v.view.Len() == 0 {
		return
	}
	n := v.view.Len()
	v.index = (v.index - 1 + n) % n
}

// Close hides the viewer, leaving fullscreen first if it is active.
func (v *Viewer) Close() {
	if v.fs.Active() {
		if err := v.fs.Exit(); err != nil {
			v.alert(fmt.Sprintf("Error attempting to exit full-screen mode: %v", err))
		}
	}
	v.open = false
}

// ClickBackdrop handles a click on the overlay outside the image.
func (v *Viewer) ClickBackdrop() {
	if v.open {
		v.Close()
	}
}

// HandleKey applies a navigation key. Keys only act while the viewer is open;
// HandleKey reports whether the key was consumed.
func (v *Viewer) HandleKey(key string) bool {
	if !v.open {
		return false
	}
	switch key {
	case KeyArrowRight:
		v.Next()
	case KeyArrowLeft:
		v.Previous()
	case KeyEscape:
		v.Close()
	default:
		return false
	}
	return true
}

// ToggleFullscreen enters or leaves fullscreen presentation. A failed request
// is reported through the alert collaborator and returned.
func (v *Viewer) ToggleFullscreen(ctx context.Context) error {
	if v.fs.Active() {
		return v.fs.Exit()
	}
	if err := v.fs.Request(ctx); err != nil {
		v.alert(fmt.Sprintf("Error attempting to enable full-screen mode: %v", err))
		return err
	}
	return nil
}

// Fullscreen reports whether fullscreen presentation is active.
func (v *Viewer) Fullscreen() bool { return v.fs.Active() }

// Slide returns the active slide. It reports false when nothing is active.
func (v *Viewer) Slide() (Slide, bool) {
	if v.index < 0 || v.index >= v.view.Len() {
		return Slide{}, false
	}
	id := v.view.At(v.index)
	it, ok := v.catalog.Item(id)
	if !ok {
		return Slide{}, false
	}
	return Slide{
		ID:           id,
		Index:        v.index,
		Total:        v.view.Len(),
		Counter:      fmt.Sprintf("%d / %d", v.index+1, v.view.Len()),
		Caption:      it.Title,
		ImageSrc:     it.Image.Src,
		ImageAlt:     it.Image.Alt,
		DownloadHref: it.Image.Src,
	}, true
}

// Rebind points the viewer at a newly computed view. The active item is looked
// up again by ID; if it is no longer visible the index is invalidated and an
// open viewer closes.
func (v *Viewer) Rebind(view View) {
	var active ItemID
	hadActive := v.index >= 0 && v.index < v.view.Len()
	if hadActive {
		active = v.view.At(v.index)
	}
	v.view = view

	if hadActive {
		if i := view.IndexOf(active); i >= 0 {
			v.index = i
			return
		}
	}
	v.index = -1
	if v.open {
		v.Close()
	}
}

// StateFullscreen is an in-memory Fullscreen for surfaces that only track
// the mode as a flag.
type StateFullscreen struct {
	active bool
}

func (f *StateFullscreen) Request(context.Context) error { f.active = true; return nil }
func (f *StateFullscreen) Exit() error                   { f.active = false; return nil }
func (f *StateFullscreen) Active() bool                  { return f.active }

type nopFullscreen struct{}

func (nopFullscreen) Request(context.Context) error {
	return fmt.Errorf("fullscreen is not supported")
}
func (nopFullscreen) Exit() error  { return nil }
func (nopFullscreen) Active() bool { return false }
