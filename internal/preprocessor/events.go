package preprocessor

import "time"

// Key identifies the category of a keystroke. Printable characters use
// KeyRune with Event.Rune set; everything else is a named control key.
type Key int

const (
	KeyRune Key = iota
	KeyBackspace
	KeyCapsLock
	KeyShift
	KeyEscape
	KeyPause
	KeyControlLeft
	KeyControlRight
	// KeyOther covers any key the engine does not specifically recognise
	// (Enter, Tab, arrows, function keys, ...). Per spec it is treated as
	// a word boundary: cursor and history are cleared.
	KeyOther
)

// EventType distinguishes a key going down from a key coming back up.
// Only presses drive the state machine; releases are tracked only to
// clear the Shift modifier.
type EventType int

const (
	KeyPress EventType = iota
	KeyRelease
)

// Event is one raw keystroke handed to the Preprocessor.
type Event struct {
	Type EventType
	Key  Key
	Rune rune // valid when Key == KeyRune
	// Label names a KeyOther key for pass-through purposes (e.g. "Enter",
	// "Tab", "ArrowUp"). Ignored for every other Key value.
	Label string
	Time  time.Time
}
