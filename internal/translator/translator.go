package translator

import (
	"sort"

	"github.com/afrim-project/afrim-go/internal/script"
)

// Predicate is one ranked candidate the translator returns, per spec §3:
// the fragment that matched, its unmatched tail, and a non-empty,
// order-preserved list of candidate outputs.
type Predicate struct {
	Code      string
	Remaining string
	Texts     []string
}

// Config tunes the ranking pipeline (spec §6's `core.*` options that
// bear on translation).
type Config struct {
	// MaxResults caps predicates returned per query (core.page_size).
	MaxResults int
	// FuzzyEnabled turns on the Jaro-Winkler fuzzy pass.
	FuzzyEnabled bool
	// FuzzyThreshold is the minimum score (in [0,1]) to keep a fuzzy
	// match, default 0.7.
	FuzzyThreshold float64
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{MaxResults: 10, FuzzyEnabled: true, FuzzyThreshold: 0.7}
}

// Diagnostics receives non-fatal translator warnings (spec §4.3's
// "surface a warning to the configured diagnostic sink").
type Diagnostics interface {
	Warn(format string, args ...any)
}

type noopDiagnostics struct{}

func (noopDiagnostics) Warn(string, ...any) {}

// Translator is built once from an immutable Dictionary and Registry and
// is safe for concurrent Query calls thereafter (spec §5).
type Translator struct {
	cfg  Config
	dict *Dictionary
	regs *script.Registry
	diag Diagnostics
}

// New builds a Translator over dict and an optional scripted-predicate
// registry (nil permitted: no scripted predicates registered). diag may
// be nil, in which case warnings are discarded.
func New(dict *Dictionary, regs *script.Registry, cfg Config, diag Diagnostics) *Translator {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultConfig().MaxResults
	}
	if cfg.FuzzyThreshold <= 0 {
		cfg.FuzzyThreshold = DefaultConfig().FuzzyThreshold
	}
	if diag == nil {
		diag = noopDiagnostics{}
	}
	return &Translator{cfg: cfg, dict: dict, regs: regs, diag: diag}
}

// Query returns ranked predicates for input, merged in the fixed
// priority spec §4.3 prescribes: exact dictionary hit, then scripted
// predicates, then fuzzy dictionary matches, deduplicated by
// (code, remaining, first text) preserving first occurrence, truncated
// to cfg.MaxResults.
func (t *Translator) Query(input string) []Predicate {
	var preds []Predicate

	if texts, _, ok := t.dict.Lookup(input); ok {
		preds = append(preds, Predicate{Code: input, Texts: texts})
	}

	if t.regs != nil {
		scripted, errs := t.regs.Invoke(input)
		for _, e := range errs {
			t.diag.Warn("script predicate failed: %v", e)
		}
		for _, p := range scripted {
			preds = append(preds, Predicate{Code: p.Code, Remaining: p.Remaining, Texts: p.Texts})
		}
	}

	if t.cfg.FuzzyEnabled {
		preds = append(preds, t.fuzzyMatches(input)...)
	}

	return dedupe(preds, t.cfg.MaxResults)
}

// AutoCommit reports whether input is an exact, unique dictionary key
// flagged for immediate commit (spec §4.3's side channel).
func (t *Translator) AutoCommit(input string) bool {
	_, autoCommit, ok := t.dict.Lookup(input)
	return ok && autoCommit
}

type fuzzyCandidate struct {
	key   string
	score float64
}

func (t *Translator) fuzzyMatches(input string) []Predicate {
	var cands []fuzzyCandidate
	for _, k := range t.dict.Keys() {
		score := jaroWinkler(input, k)
		if score >= t.cfg.FuzzyThreshold {
			cands = append(cands, fuzzyCandidate{key: k, score: score})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		return cands[i].key < cands[j].key
	})
	preds := make([]Predicate, 0, len(cands))
	for _, c := range cands {
		texts, _, _ := t.dict.Lookup(c.key)
		preds = append(preds, Predicate{Code: c.key, Texts: texts})
	}
	return preds
}

// dedupe preserves first occurrence by (code, remaining, first text) and
// truncates to max (no limit if max <= 0).
func dedupe(preds []Predicate, max int) []Predicate {
	type key struct {
		code, remaining, first string
	}
	seen := make(map[key]bool, len(preds))
	out := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		first := ""
		if len(p.Texts) > 0 {
			first = p.Texts[0]
		}
		k := key{p.Code, p.Remaining, first}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
		if max > 0 && len(out) >= max {
			break
		}
	}
	return out
}
