package scrollspy

// DefaultRevealThreshold is the visible fraction at which a block is revealed.
const DefaultRevealThreshold = 0.1

// RevealObserver reveals each observed element the first time enough of it is
// visible. Revealed elements stop being observed and never revert.
type RevealObserver struct {
	threshold float64
	order     []string
	targets   map[string]Rect
	revealed  map[string]bool
}

// NewRevealObserver creates an observer. Thresholds outside (0,1] fall back
// to DefaultRevealThreshold.
func NewRevealObserver(threshold float64) *RevealObserver {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultRevealThreshold
	}
	return &RevealObserver{
		threshold: threshold,
		targets:   make(map[string]Rect),
		revealed:  make(map[string]bool),
	}
}

// Threshold returns the visible fraction that triggers a reveal.
func (o *RevealObserver) Threshold() float64 { return o.threshold }

// Observe starts tracking id at rect, or moves it if already tracked. Already
// revealed elements are ignored.
func (o *RevealObserver) Observe(id string, rect Rect) {
	if o.revealed[id] {
		return
	}
	if _, ok := o.targets[id]; !ok {
		o.order = append(o.order, id)
	}
	o.targets[id] = rect
}

// Update checks every pending element against the viewport and returns the
// ids revealed by this call, in observation order.
func (o *RevealObserver) Update(vp Viewport) []string {
	root := vp.Rect()
	var fired []string
	kept := o.order[:0]
	for _, id := range o.order {
		ratio := IntersectionRatio(o.targets[id], root)
		if ratio > 0 && ratio >= o.threshold {
			o.revealed[id] = true
			delete(o.targets, id)
			fired = append(fired, id)
			continue
		}
		kept = append(kept, id)
	}
	o.order = kept
	return fired
}

// Revealed reports whether id has been revealed.
func (o *RevealObserver) Revealed(id string) bool { return o.revealed[id] }

// Pending returns the ids still being observed, in observation order.
func (o *RevealObserver) Pending() []string {
	out := make([]string, len(o.order))
	copy(out, o.order)
	return out
}
