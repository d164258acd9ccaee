// Package translator implements the ranked suggestion engine of spec
// §4.3: given a committed input fragment it merges exact dictionary
// hits, sandboxed scripted predicates, and fuzzy dictionary matches into
// one best-first, deduplicated candidate list.
package translator

// entry is one dictionary row: an ordered, non-empty list of candidate
// outputs plus the auto-commit flag spec §3/§6 attaches to it.
type entry struct {
	texts      []string
	autoCommit bool
}

// Dictionary is a static, insertion-ordered input-code -> outputs map.
// It is built once and is safe for concurrent read-only use thereafter
// (spec §5: "immutable after build").
type Dictionary struct {
	keys    []string
	entries map[string]entry
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string]entry)}
}

// Put inserts or overwrites the outputs for code, along with whether an
// exact unique match on code should auto-commit. texts must be
// non-empty and code non-empty; a malformed row is rejected (mirrors
// Memory.Insert's malformed-row handling in spec §4.1).
func (d *Dictionary) Put(code string, texts []string, autoCommit bool) bool {
	if code == "" || len(texts) == 0 {
		return false
	}
	if _, exists := d.entries[code]; !exists {
		d.keys = append(d.keys, code)
	}
	cp := make([]string, len(texts))
	copy(cp, texts)
	d.entries[code] = entry{texts: cp, autoCommit: autoCommit}
	return true
}

// Lookup returns the outputs and auto-commit flag registered for code.
func (d *Dictionary) Lookup(code string) (texts []string, autoCommit bool, ok bool) {
	e, found := d.entries[code]
	if !found {
		return nil, false, false
	}
	return e.texts, e.autoCommit, true
}

// Keys returns the dictionary's keys in insertion order.
func (d *Dictionary) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len reports the number of distinct codes in the dictionary.
func (d *Dictionary) Len() int { return len(d.keys) }
