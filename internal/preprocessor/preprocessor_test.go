package preprocessor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afrim-project/afrim-go/internal/memory"
)

func amharicMemory() *memory.Memory {
	m := memory.New()
	m.Insert([]rune("a"), "እ")
	m.Insert([]rune("f"), "ፍ")
	m.Insert([]rune("ri"), "ሪ")
	m.Insert([]rune("m"), "ም")
	return m
}

func runeEvent(r rune) Event {
	return Event{Type: KeyPress, Key: KeyRune, Rune: r}
}

func noCapsConfig() Config {
	cfg := DefaultConfig()
	cfg.AutoCapitalize = false
	return cfg
}

// Scenario 1: a f r i m -> commit 'a', 'f', then on 'i' replace 'r' with
// 'ri' -> Delete(1)+Commit, then 'm'.
func TestScenario1Amharic(t *testing.T) {
	p := New(amharicMemory(), noCapsConfig())

	cmds := p.Handle(runeEvent('a'))
	require.Equal(t, []Command{commitText("እ")}, cmds)

	cmds = p.Handle(runeEvent('f'))
	require.Equal(t, []Command{commitText("ፍ")}, cmds)

	cmds = p.Handle(runeEvent('r'))
	require.Equal(t, []Command{commitText("r")}, cmds)

	cmds = p.Handle(runeEvent('i'))
	require.Equal(t, []Command{deleteN(1), commitText("ሪ")}, cmds)

	cmds = p.Handle(runeEvent('m'))
	require.Equal(t, []Command{commitText("ም")}, cmds)
}

// Scenario 2: overlap/resume. dataset {"ae"->"æ", "aei"->"ǣ"}.
func TestScenario2OverlapResume(t *testing.T) {
	m := memory.New()
	m.Insert([]rune("ae"), "æ")
	m.Insert([]rune("aei"), "ǣ")
	p := New(m, noCapsConfig())

	cmds := p.Handle(runeEvent('a'))
	require.Equal(t, []Command{commitText("a")}, cmds)

	cmds = p.Handle(runeEvent('e'))
	require.Equal(t, []Command{deleteN(1), commitText("æ")}, cmds)

	cmds = p.Handle(runeEvent('i'))
	require.Equal(t, []Command{deleteN(1), commitText("ǣ")}, cmds)
}

// Scenario 3: backspace across rewrite. After committing 'ሪ' for "r i",
// Backspace undoes the 'i' keystroke: Delete(1) then re-commit the
// follower state of "af" (which is the tentative echo of 'r').
func TestScenario3BackspaceAcrossRewrite(t *testing.T) {
	p := New(amharicMemory(), noCapsConfig())
	p.Handle(runeEvent('a'))
	p.Handle(runeEvent('f'))
	p.Handle(runeEvent('r'))
	cmds := p.Handle(runeEvent('i'))
	require.Equal(t, []Command{deleteN(1), commitText("ሪ")}, cmds)

	cmds = p.Handle(Event{Type: KeyPress, Key: KeyBackspace})
	require.Equal(t, []Command{deleteN(1), commitText("r")}, cmds)
}

// Scenario 4: CapsLock neutrality. Pressing CapsLock between 'a' and 'f'
// does not reset the cursor or affect matching.
func TestScenario4CapsLockNeutrality(t *testing.T) {
	p := New(amharicMemory(), noCapsConfig())

	cmds := p.Handle(runeEvent('a'))
	require.Equal(t, []Command{commitText("እ")}, cmds)

	cmds = p.Handle(Event{Type: KeyPress, Key: KeyCapsLock})
	require.Equal(t, []Command{nop()}, cmds)
	assert.True(t, p.capsLock)

	cmds = p.Handle(runeEvent('f'))
	require.Equal(t, []Command{commitText("ፍ")}, cmds)
	assert.False(t, p.cursor.IsEmpty())
}

// Scenario 5: pause toggle. Double Ctrl within the pause window toggles
// pause; while paused, a rune key passes through untouched.
func TestScenario5PauseToggle(t *testing.T) {
	p := New(amharicMemory(), noCapsConfig())
	base := time.Now()

	cmds := p.Handle(Event{Type: KeyPress, Key: KeyControlLeft, Time: base})
	require.Equal(t, []Command{nop()}, cmds)
	assert.False(t, p.paused)

	cmds = p.Handle(Event{Type: KeyPress, Key: KeyControlLeft, Time: base.Add(50 * time.Millisecond)})
	require.Equal(t, []Command{{Kind: CmdPause}}, cmds)
	assert.True(t, p.paused)

	cmds = p.Handle(runeEvent('a'))
	require.Equal(t, []Command{{Kind: CmdKey, Key: KeyRune, Rune: 'a'}}, cmds)
	assert.True(t, p.cursor.IsEmpty())

	cmds = p.Handle(Event{Type: KeyPress, Key: KeyControlLeft, Time: base.Add(100 * time.Millisecond)})
	require.Equal(t, []Command{nop()}, cmds)
	cmds = p.Handle(Event{Type: KeyPress, Key: KeyControlLeft, Time: base.Add(120 * time.Millisecond)})
	require.Equal(t, []Command{{Kind: CmdResume}}, cmds)
	assert.False(t, p.paused)
}

// A double Ctrl press outside the pause window does not toggle pause.
func TestPauseWindowExpires(t *testing.T) {
	p := New(amharicMemory(), noCapsConfig())
	base := time.Now()

	p.Handle(Event{Type: KeyPress, Key: KeyControlLeft, Time: base})
	cmds := p.Handle(Event{Type: KeyPress, Key: KeyControlLeft, Time: base.Add(500 * time.Millisecond)})
	require.Equal(t, []Command{nop()}, cmds)
	assert.False(t, p.paused)
}

// Escape clears the cursor and history, resetting any in-progress rewrite.
func TestEscapeClearsState(t *testing.T) {
	p := New(amharicMemory(), noCapsConfig())
	p.Handle(runeEvent('a'))
	require.False(t, p.IsCursorEmpty())

	p.Handle(Event{Type: KeyPress, Key: KeyEscape})
	assert.True(t, p.IsCursorEmpty())
	assert.Equal(t, "", p.CommittedInput())
}

func TestCommittedInputTracksKeystrokes(t *testing.T) {
	p := New(amharicMemory(), noCapsConfig())
	p.Handle(runeEvent('a'))
	p.Handle(runeEvent('f'))
	assert.Equal(t, "af", p.CommittedInput())
}

// AutoCapitalize defaults to true (DefaultConfig, matching SPEC_FULL.md
// §6.1's core.auto_capitalize default). Typing "a b" should look up the
// upper-cased code at session start and again right after the committed
// space, confirming lastIsBoundary's space interpretation actually drives
// the default capitalization path, not just the AutoCapitalize-disabled
// scenarios above.
func TestAutoCapitalizeDefaultBoundary(t *testing.T) {
	m := memory.New()
	m.Insert([]rune("A"), "FIRST")
	m.Insert([]rune("B"), "SECOND")
	p := New(m, DefaultConfig())

	cmds := p.Handle(runeEvent('a'))
	require.Equal(t, []Command{commitText("FIRST")}, cmds)

	cmds = p.Handle(runeEvent(' '))
	require.Equal(t, []Command{commitText(" ")}, cmds)

	cmds = p.Handle(runeEvent('b'))
	require.Equal(t, []Command{commitText("SECOND")}, cmds)
}
