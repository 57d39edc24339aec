package calc

// DefaultHistoryLimit is the number of calculations kept when no limit is
// configured.
const DefaultHistoryLimit = 20

// Entry is one finalized calculation.
type Entry struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
}

// String renders the entry the way the history panel shows it.
func (e Entry) String() string {
	return e.Expression + " = " + FormatNumber(e.Result)
}

// History is a bounded ring of entries. When full, adding an entry evicts the
// oldest one.
type History struct {
	buf  []Entry
	head int // index of the most recent entry
	n    int
}

// NewHistory creates a history holding at most limit entries.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{buf: make([]Entry, limit), head: -1}
}

// Add records e as the most recent entry.
func (h *History) Add(e Entry) {
	h.head = (h.head + 1) % len(h.buf)
	h.buf[h.head] = e
	if h.n < len(h.buf) {
		h.n++
	}
}

// Entries returns the entries most-recent-first.
func (h *History) Entries() []Entry {
	out := make([]Entry, 0, h.n)
	for i := 0; i < h.n; i++ {
		idx := (h.head - i + len(h.buf)) % len(h.buf)
		out = append(out, h.buf[idx])
	}
	return out
}

// Len returns the number of stored entries.
func (h *History) Len() int { return h.n }

// Limit returns the capacity.
func (h *History) Limit() int { return len(h.buf) }

// Clear drops every entry.
func (h *History) Clear() {
	clear(h.buf)
	h.head = -1
	h.n = 0
}
