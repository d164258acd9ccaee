package preprocessor

// historyEntry records one (input code, emitted output) pair, as laid
// out in spec §3: the concatenation of inputs, replayed through a fresh
// cursor, must re-derive the outputs.
type historyEntry struct {
	input  rune
	output string
	// visibleLen is the grapheme-cluster length of the on-screen text
	// attributable to this keystroke and every continuing keystroke
	// since the last restart, i.e. the running "lastVisibleLen" value
	// immediately after this entry was pushed. Stored per-entry so
	// Backspace can restore the value that was current before this
	// keystroke without recomputing it.
	visibleLen int
}

// history is a bounded ring buffer of historyEntry, length <= capacity.
// Open question (spec §9): when the buffer overflows during a pending
// rewrite, this implementation discards the oldest entry and never the
// current one — the choice spec.md explicitly asks implementations to
// record rather than assume.
type history struct {
	entries  []historyEntry
	capacity int
}

func newHistory(capacity int) *history {
	if capacity < 1 {
		capacity = 1
	}
	return &history{capacity: capacity}
}

func (h *history) push(e historyEntry) {
	h.entries = append(h.entries, e)
	if len(h.entries) > h.capacity {
		h.entries = h.entries[1:]
	}
}

// pop removes and returns the most recent entry, or ok=false if empty.
func (h *history) pop() (historyEntry, bool) {
	if len(h.entries) == 0 {
		return historyEntry{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

func (h *history) clear() {
	h.entries = h.entries[:0]
}

func (h *history) isEmpty() bool {
	return len(h.entries) == 0
}

// last returns the most recent entry without removing it.
func (h *history) last() (historyEntry, bool) {
	if len(h.entries) == 0 {
		return historyEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// committedInput concatenates the input runes of every entry in order,
// reconstructing the current committed fragment tracked by the
// Preprocessor (spec §4.3's "input" argument to the Translator).
func (h *history) committedInput() string {
	runes := make([]rune, len(h.entries))
	for i, e := range h.entries {
		runes[i] = e.input
	}
	return string(runes)
}

// lastIsBoundary reports whether the history is empty or its most
// recent entry's input was a space — the word-boundary test for spec
// §4.2 bullet 5's auto-capitalisation condition.
func (h *history) lastIsBoundary() bool {
	if len(h.entries) == 0 {
		return true // empty history counts as "previous was a boundary"
	}
	return h.entries[len(h.entries)-1].input == ' '
}
