package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	afrim "github.com/afrim-project/afrim-go"
)

// runREPL loads configuration from path, builds a Session, puts the
// terminal in raw mode, and feeds keystrokes to the session until EOF
// or Ctrl-D, printing committed text and suggestions as they arrive.
//
// A real terminal only ever reports Ctrl held down together with
// another key (byte 0x01-0x1a), never a bare Ctrl press/release pair —
// so the double-Ctrl pause gesture spec §4.2 describes cannot be
// observed over a POSIX tty the way a desktop keyboard hook would see
// it. This REPL maps Ctrl-P (0x10) to the same ControlLeft event twice
// in a row is not meaningful here, so it is fed through as a single
// ControlLeft press per Ctrl-P, and the user must press it twice within
// the configured pause window, same as any other frontend.
func runREPL(path string) error {
	cfg, err := afrim.LoadConfig(path)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	sess := afrim.NewSession(cfg, afrim.Sinks{
		Typing:  afrim.TypingSinkFunc(func(cmds []afrim.Command) { applyCommands(out, cmds) }),
		Suggest: afrim.SuggestionSinkFunc(func(preds []afrim.Predicate) { printSuggestions(out, preds) }),
	}, logrus.StandardLogger())

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return runLineMode(sess, out)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if n == 0 || err != nil {
			return nil
		}
		ev, stop := decodeByte(buf[0])
		if stop {
			return nil
		}
		sess.PushKey(ev)
		out.Flush()
	}
}

// decodeByte maps one raw terminal byte to a preprocessor event. stop
// reports EOF-equivalent termination (Ctrl-D).
func decodeByte(b byte) (ev afrim.Event, stop bool) {
	switch {
	case b == 0x04: // Ctrl-D
		return afrim.Event{}, true
	case b == 0x10: // Ctrl-P stands in for the double-Ctrl pause gesture
		return afrim.Event{Type: afrim.KeyPressEvent, Key: afrim.KeyControlLeft}, false
	case b == 0x7f || b == 0x08:
		return afrim.Event{Type: afrim.KeyPressEvent, Key: afrim.KeyBackspace}, false
	case b == 0x1b:
		return afrim.Event{Type: afrim.KeyPressEvent, Key: afrim.KeyEscape}, false
	case b == '\r' || b == '\n':
		return afrim.Event{Type: afrim.KeyPressEvent, Key: afrim.KeyOther, Label: "Enter"}, false
	default:
		return afrim.Event{Type: afrim.KeyPressEvent, Key: afrim.KeyRune, Rune: rune(b)}, false
	}
}

// runLineMode is the non-tty fallback (piped input, tests): it reads
// whole lines and feeds each rune through as a KeyRune event, useful
// for scripted input without a real terminal.
func runLineMode(sess *afrim.Session, out *bufio.Writer) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		for _, r := range scanner.Text() {
			sess.PushKey(afrim.Event{Type: afrim.KeyPressEvent, Key: afrim.KeyRune, Rune: r})
		}
		out.Flush()
	}
	return scanner.Err()
}

func applyCommands(out *bufio.Writer, cmds []afrim.Command) {
	for _, c := range cmds {
		switch c.Kind {
		case afrim.CmdCommitText:
			fmt.Fprint(out, c.Text)
		case afrim.CmdDelete:
			for i := 0; i < c.N; i++ {
				fmt.Fprint(out, "\b \b")
			}
		case afrim.CmdKey:
			if c.Rune != 0 {
				fmt.Fprintf(out, "%c", c.Rune)
			}
		}
	}
}

func printSuggestions(out *bufio.Writer, preds []afrim.Predicate) {
	if len(preds) == 0 {
		return
	}
	fmt.Fprint(out, "\r\n  suggestions: ")
	for i, p := range preds {
		if i > 0 {
			fmt.Fprint(out, ", ")
		}
		fmt.Fprintf(out, "%s", p.Texts[0])
	}
	fmt.Fprint(out, "\r\n")
}
