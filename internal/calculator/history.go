package calculator

// DefaultHistorySize is how many evaluations the history panel keeps.
const DefaultHistorySize = 10

// Entry is one successful evaluation.
type Entry struct {
	Expression string
	Result     string
}

func (e Entry) String() string {
	return e.Expression + " = " + e.Result
}

// History keeps the most recent evaluations, newest first.
type History struct {
	entries []Entry
	max     int
}

// NewHistory creates a history holding at most max entries (minimum 1).
func NewHistory(max int) *History {
	if max < 1 {
		max = 1
	}
	return &History{
		entries: make([]Entry, 0, max),
		max:     max,
	}
}

// Push inserts e at the front and evicts the oldest entry beyond the cap.
func (h *History) Push(e Entry) {
	h.entries = append(h.entries, Entry{})
	copy(h.entries[1:], h.entries)
	h.entries[0] = e
	if len(h.entries) > h.max {
		h.entries = h.entries[:h.max]
	}
}

// Entries returns a copy, newest first.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int { return len(h.entries) }
func (h *History) Cap() int { return h.max }
