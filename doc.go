// Package afrim is an input method engine (IME) core: it transliterates
// sequential Latin-like keystroke codes into target-language text
// (Amharic, Geez, Bamun, Ewondo, …) and produces ranked suggestions,
// corrections, and completions as the user types.
//
// This package re-exports the public API from the internal
// implementation packages (preprocessor, translator, orchestrator,
// config) and wires memory, script and logging together inside
// NewSession. For the full design, see DESIGN.md.
//
// Basic usage:
//
//	cfg, err := afrim.LoadConfig("afrim.toml")
//	sess := afrim.NewSession(cfg, afrim.Sinks{
//		Typing:  afrim.TypingSinkFunc(myTypingSink),
//		Suggest: afrim.SuggestionSinkFunc(mySuggestionSink),
//	}, nil)
//	sess.PushKey(afrim.Event{Type: afrim.KeyPressEvent, Key: afrim.KeyRune, Rune: 'a'})
package afrim
