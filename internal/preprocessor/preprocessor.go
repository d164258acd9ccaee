// Package preprocessor implements the keystroke state machine: it
// drives a memory.Cursor, maintains a bounded text-buffer history, and
// turns a stream of key events into the minimal set of commands a
// typing sink needs to apply, per spec §4.2.
package preprocessor

import (
	"time"
	"unicode"

	"github.com/clipperhouse/uax29/v2/graphemes"

	"github.com/afrim-project/afrim-go/internal/memory"
)

// Config holds the tunables spec §6 assigns to the preprocessor.
type Config struct {
	// BufferSize is the history queue length L (default 64).
	BufferSize int
	// CursorCapacity is the cursor stack capacity C (default 64).
	CursorCapacity int
	// AutoCapitalize enables the case-folding pre-filter on Hit input.
	AutoCapitalize bool
	// PauseWindow is the double-Ctrl window T (default 250ms).
	PauseWindow time.Duration
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{
		BufferSize:     64,
		CursorCapacity: 64,
		AutoCapitalize: true,
		PauseWindow:    250 * time.Millisecond,
	}
}

// Preprocessor is a single input session's state machine: one cursor,
// one history queue, private to that session. It is not safe for
// concurrent use from multiple goroutines — the spec's scheduling model
// is single-threaded cooperative per session.
type Preprocessor struct {
	cfg    Config
	cursor *memory.Cursor
	hist   *history
	paused bool

	haveLastCtrl bool
	lastCtrl     time.Time

	capsLock bool
	shift    bool

	// lastVisibleLen is the grapheme-cluster length of whatever text is
	// currently on screen for the in-progress (not yet restarted) input
	// run. It resets to 0 on restart and is otherwise threaded forward
	// across continuing keystrokes (spec §4.2 bullet 6's "resume").
	lastVisibleLen int
}

// New creates a Preprocessor bound to mem with the given configuration.
func New(mem *memory.Memory, cfg Config) *Preprocessor {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultConfig().BufferSize
	}
	if cfg.CursorCapacity <= 0 {
		cfg.CursorCapacity = DefaultConfig().CursorCapacity
	}
	return &Preprocessor{
		cfg:    cfg,
		cursor: mem.NewCursor(cfg.CursorCapacity),
		hist:   newHistory(cfg.BufferSize),
	}
}

// Clear resets the cursor and history to their initial state, as if the
// session had just started.
func (p *Preprocessor) Clear() {
	p.cursor.Clear()
	p.hist.clear()
	p.lastVisibleLen = 0
}

// IsCursorEmpty reports whether the cursor holds only the root, for UI
// gating (spec §6).
func (p *Preprocessor) IsCursorEmpty() bool {
	return p.cursor.IsEmpty()
}

// CommittedInput returns the current accepted committed fragment, as
// tracked by the history queue, for the Orchestrator to pass to the
// Translator.
func (p *Preprocessor) CommittedInput() string {
	return p.hist.committedInput()
}

// Handle processes one key event and returns the commands it produces,
// in emission order. Handle never fails on malformed input: unrecognised
// combinations degrade to NOP (spec §7).
func (p *Preprocessor) Handle(ev Event) []Command {
	if ev.Type == KeyRelease {
		if ev.Key == KeyShift {
			p.shift = false
		}
		return []Command{nop()}
	}

	if ev.Key == KeyControlLeft || ev.Key == KeyControlRight {
		return p.handleCtrl(ev)
	}

	if p.paused {
		return []Command{p.passThrough(ev)}
	}

	switch ev.Key {
	case KeyCapsLock:
		p.capsLock = !p.capsLock
		return []Command{nop()}
	case KeyShift:
		p.shift = true
		return []Command{nop()}
	case KeyEscape, KeyPause, KeyOther:
		p.Clear()
		return []Command{nop()}
	case KeyBackspace:
		return p.handleBackspace()
	case KeyRune:
		return p.handleRune(ev.Rune)
	default:
		return []Command{nop()}
	}
}

func (p *Preprocessor) passThrough(ev Event) Command {
	if ev.Key == KeyRune {
		return Command{Kind: CmdKey, Key: KeyRune, Rune: ev.Rune}
	}
	return Command{Kind: CmdKey, Key: ev.Key, Label: ev.Label}
}

// handleCtrl implements the double-Ctrl pause gate (spec §4.2 bullet 1).
func (p *Preprocessor) handleCtrl(ev Event) []Command {
	now := ev.Time
	if now.IsZero() {
		now = time.Now()
	}
	if p.haveLastCtrl && now.Sub(p.lastCtrl) <= p.cfg.PauseWindow {
		p.haveLastCtrl = false
		p.paused = !p.paused
		if p.paused {
			return []Command{{Kind: CmdPause}}
		}
		return []Command{{Kind: CmdResume}}
	}
	p.lastCtrl = now
	p.haveLastCtrl = true
	return []Command{nop()}
}

// handleBackspace implements spec §4.2 bullet 4. p is the full grapheme
// length of the popped entry's displayed text: it is always deleted in
// full. What reappears underneath is not the cursor's own (possibly
// non-accepting) top — a non-accepting node carries no text of its
// own — but whatever the *previous* history entry actually displayed,
// recovered from its stored visibleLen/output rather than recomputed,
// so that commit and undo are exact inverses (spec §8's idempotence
// invariant) regardless of whether that prior state was an accepting
// commit or a bare tentative echo.
func (p *Preprocessor) handleBackspace() []Command {
	popped, ok := p.hist.pop()
	if !ok {
		return []Command{nop()}
	}
	p.cursor.Undo()

	var cmds []Command
	pLen := graphemeLen(popped.output)
	if pLen > 0 {
		cmds = append(cmds, deleteN(pLen))
	}

	if prev, ok := p.hist.last(); ok {
		cmds = append(cmds, commitText(prev.output))
		p.lastVisibleLen = prev.visibleLen
	} else {
		p.lastVisibleLen = 0
	}
	if len(cmds) == 0 {
		cmds = append(cmds, nop())
	}
	return cmds
}

// handleRune implements spec §4.2 bullets 2 (CapsLock/Shift already
// handled above), 5 (printable character) and 6 (resume).
func (p *Preprocessor) handleRune(c rune) []Command {
	lookup := c
	if p.cfg.AutoCapitalize && unicode.IsLetter(c) {
		if p.hist.lastIsBoundary() {
			lookup = unicode.ToUpper(c)
		} else {
			lookup = unicode.ToLower(c)
		}
	}

	out, accepting, continuing := p.cursor.Hit(lookup)

	if !continuing {
		p.lastVisibleLen = 0
	}

	var cmds []Command
	var emitted string
	if accepting {
		if p.lastVisibleLen > 0 {
			cmds = append(cmds, deleteN(p.lastVisibleLen))
		}
		cmds = append(cmds, commitText(out))
		p.lastVisibleLen = graphemeLen(out)
		emitted = out
	} else {
		cmds = append(cmds, commitText(string(lookup)))
		p.lastVisibleLen++
		emitted = string(lookup)
	}

	p.hist.push(historyEntry{input: lookup, output: emitted, visibleLen: p.lastVisibleLen})
	return cmds
}

func graphemeLen(s string) int {
	if s == "" {
		return 0
	}
	seg := graphemes.FromString(s)
	n := 0
	for seg.Next() {
		n++
	}
	return n
}
