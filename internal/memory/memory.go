// Package memory implements the sequence memory: a prefix trie of input
// codes to output strings, exposed to callers only through a bounded
// Cursor rather than a one-shot search.
//
// The trie is an arena: nodes live in a single slice owned by *Memory and
// are addressed by index rather than pointer, so a Cursor can be a plain
// slice of ints. Nodes are parent-less; the Cursor stack is the only
// record of ancestry, by design (see the root package's design notes).
package memory

// node is one trie node. The root is always nodes[0], has depth 0, no
// output, and is shared by every Cursor.
type node struct {
	code     rune
	depth    int
	output   string
	hasOut   bool
	children map[rune]int
}

// Memory is a read-only-after-build prefix trie. It is safe for
// concurrent use by many Cursors once Insert/Load are done; Memory
// itself performs no locking because the spec's lifecycle is
// build-once-then-share, not concurrent-write.
type Memory struct {
	nodes []node
}

// New creates an empty Memory with just the root node.
func New() *Memory {
	m := &Memory{nodes: make([]node, 0, 64)}
	m.nodes = append(m.nodes, node{children: make(map[rune]int)})
	return m
}

// Size reports the number of trie nodes, including the root. Used only
// for diagnostics/logging.
func (m *Memory) Size() int {
	return len(m.nodes)
}

// Insert adds (or overwrites) the output for a non-empty input code
// sequence. Malformed input (empty code or empty output) is rejected;
// callers that need warning-and-skip semantics should use Load.
func (m *Memory) Insert(code []rune, output string) bool {
	if len(code) == 0 || output == "" {
		return false
	}

	cur := 0 // root index
	for depth, c := range code {
		n := &m.nodes[cur]
		if n.children == nil {
			n.children = make(map[rune]int)
		}
		next, ok := n.children[c]
		if !ok {
			next = len(m.nodes)
			m.nodes = append(m.nodes, node{
				code:     c,
				depth:    depth + 1,
				children: make(map[rune]int),
			})
			// re-fetch n: append may have reallocated the backing array
			m.nodes[cur].children[c] = next
		}
		cur = next
	}

	m.nodes[cur].output = output
	m.nodes[cur].hasOut = true
	return true
}

// Pair is one (input code, output) row, as consumed by Load.
type Pair struct {
	Code   string
	Output string
}

// Load ingests pairs in order. Malformed rows (empty code or empty
// output) are skipped, not fatal, and returned to the caller as the
// indices that were skipped so the caller can surface DatasetWarnings.
func (m *Memory) Load(pairs []Pair) (skipped []int) {
	for i, p := range pairs {
		if !m.Insert([]rune(p.Code), p.Output) {
			skipped = append(skipped, i)
		}
	}
	return skipped
}

// childIndex returns the child of node idx keyed by c, if any.
func (m *Memory) childIndex(idx int, c rune) (int, bool) {
	n := &m.nodes[idx]
	if n.children == nil {
		return 0, false
	}
	next, ok := n.children[c]
	return next, ok
}
