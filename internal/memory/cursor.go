package memory

// Cursor is a bounded stack of trie-node indices tracking the longest
// recognised suffix of recent input. The bottom of the stack is always
// the root; a Cursor is single-writer (one session owns it) but many
// Cursors may share one *Memory.
type Cursor struct {
	mem      *Memory
	stack    []int
	capacity int
}

// NewCursor creates a Cursor over mem with the given stack capacity.
// capacity must be at least 2 (the root marker always occupies one
// slot, and the current top needs another); values below 2 are clamped
// up.
func (m *Memory) NewCursor(capacity int) *Cursor {
	if capacity < 2 {
		capacity = 2
	}
	return &Cursor{
		mem:      m,
		stack:    []int{0},
		capacity: capacity,
	}
}

// Hit advances the cursor by one input code. If the current top has a
// child keyed by c, that child is pushed and continued is true (the
// sequence continues) — unless the top is the root itself, in which
// case the push starts a fresh sequence and continued is false. If the
// top has no such child, but the root itself has a child keyed by
// c, that child is pushed instead: this is still "push the root" in
// spirit — the sequence restarts — but a restart means starting a fresh
// lookup for c, not landing on a nonexistent pseudo-node, so the very
// keystroke that triggered the restart still participates in it. Only
// when c matches nothing at all, from either node, does the bare root
// get pushed. Either way counts as exactly one push. Hit returns the
// accepting output at the new top, if any, plus whether this push
// continued the prior top (as opposed to restarting).
func (c *Cursor) Hit(r rune) (output string, ok bool, continued bool) {
	top := c.stack[len(c.stack)-1]
	next, found := c.mem.childIndex(top, r)
	if found {
		continued = top != 0
	} else {
		next, found = c.mem.childIndex(0, r)
		continued = false
		if !found {
			next = 0
		}
	}
	c.push(next)
	out, hasOut := c.topOutput()
	return out, hasOut, continued
}

// Undo pops the top of the stack, unless only the root remains. It
// pops at most one level per call and never surfaces an error — the
// spec treats an undo on an empty cursor as a no-op.
func (c *Cursor) Undo() {
	if len(c.stack) > 1 {
		c.stack = c.stack[:len(c.stack)-1]
	}
}

// Clear empties the stack down to a single root marker.
func (c *Cursor) Clear() {
	c.stack = c.stack[:1]
	c.stack[0] = 0
}

// State returns the current cursor depth (stack size below the root,
// hence always <= capacity per spec §8) and the top node's optional
// output.
func (c *Cursor) State() (depth int, output string, ok bool) {
	top := c.stack[len(c.stack)-1]
	n := &c.mem.nodes[top]
	return len(c.stack) - 1, n.output, n.hasOut
}

// Depth is a convenience accessor for State's depth.
func (c *Cursor) Depth() int {
	return len(c.stack) - 1
}

// IsEmpty reports whether only the root remains on the stack.
func (c *Cursor) IsEmpty() bool {
	return len(c.stack) == 1
}

// push appends idx to the stack, evicting the bottom-most non-root
// entry if that would exceed capacity. Eviction never changes the
// current top: the element removed is always stack[1], never the
// newly pushed element or the root at stack[0].
func (c *Cursor) push(idx int) {
	c.stack = append(c.stack, idx)
	if len(c.stack) > c.capacity {
		// CursorOverflow (spec §7): handled silently, not surfaced.
		c.stack = append(c.stack[:1], c.stack[2:]...)
	}
}

func (c *Cursor) topOutput() (string, bool) {
	top := c.stack[len(c.stack)-1]
	n := &c.mem.nodes[top]
	return n.output, n.hasOut
}
