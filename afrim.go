package afrim

import (
	"github.com/sirupsen/logrus"

	"github.com/afrim-project/afrim-go/internal/config"
	"github.com/afrim-project/afrim-go/internal/logging"
	"github.com/afrim-project/afrim-go/internal/memory"
	"github.com/afrim-project/afrim-go/internal/orchestrator"
	"github.com/afrim-project/afrim-go/internal/preprocessor"
	"github.com/afrim-project/afrim-go/internal/script"
	"github.com/afrim-project/afrim-go/internal/translator"
)

// =============================================================================
// RE-EXPORTED TYPES
// =============================================================================

// Event is one raw keystroke handed to a Session.
type Event = preprocessor.Event

// Key identifies the category of a keystroke.
type Key = preprocessor.Key

// EventType distinguishes a key going down from a key coming back up.
type EventType = preprocessor.EventType

const (
	KeyRune         = preprocessor.KeyRune
	KeyBackspace    = preprocessor.KeyBackspace
	KeyCapsLock     = preprocessor.KeyCapsLock
	KeyShift        = preprocessor.KeyShift
	KeyEscape       = preprocessor.KeyEscape
	KeyPause        = preprocessor.KeyPause
	KeyControlLeft  = preprocessor.KeyControlLeft
	KeyControlRight = preprocessor.KeyControlRight
	KeyOther        = preprocessor.KeyOther

	KeyPressEvent   = preprocessor.KeyPress
	KeyReleaseEvent = preprocessor.KeyRelease
)

// Command is the unit a Session emits per key event.
type Command = preprocessor.Command

// CommandKind identifies the variant of a Command.
type CommandKind = preprocessor.CommandKind

const (
	CmdPause      = preprocessor.CmdPause
	CmdResume     = preprocessor.CmdResume
	CmdCommitText = preprocessor.CmdCommitText
	CmdDelete     = preprocessor.CmdDelete
	CmdKey        = preprocessor.CmdKey
	CmdNOP        = preprocessor.CmdNOP
)

// Predicate is one ranked candidate the translator returns.
type Predicate = translator.Predicate

// Config is the fully decoded configuration document.
type Config = config.Config

// ConfigError is the fatal, startup-time configuration failure.
type ConfigError = config.ConfigError

// LoadConfig reads and decodes the TOML configuration file at path.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// TypingSink receives the commands a key event produced, in order.
type TypingSink = orchestrator.TypingSink

// SuggestionSink receives a fresh ranked predicate list.
type SuggestionSink = orchestrator.SuggestionSink

// TypingSinkFunc adapts a plain function to TypingSink.
type TypingSinkFunc = orchestrator.TypingSinkFunc

// SuggestionSinkFunc adapts a plain function to SuggestionSink.
type SuggestionSinkFunc = orchestrator.SuggestionSinkFunc

// =============================================================================
// SESSION
// =============================================================================

// Sinks bundles the two collaborators a Session drives.
type Sinks struct {
	Typing  TypingSink
	Suggest SuggestionSink
}

// Session is one user's input session: a memory trie and translator
// dictionary built from Config, plus a private preprocessor/cursor/
// history and a thin orchestrator wiring it all to Sinks. Build a
// Session once per configuration and one per concurrent user; see
// internal/orchestrator's single-threaded-cooperative design note.
type Session struct {
	orc *orchestrator.Orchestrator
	log *logging.Logger
}

// NewSession builds a Session from a decoded Config and a pair of
// sinks. logger may be nil, in which case logrus's standard logger is
// used. Dataset rows that fail to parse are logged as warnings and
// skipped, not fatal (spec §7's DatasetWarning).
func NewSession(cfg *Config, sinks Sinks, logger *logrus.Logger) *Session {
	log := logging.New(logger)

	mem := memory.New()
	for code, row := range cfg.Data {
		for _, text := range row.Texts {
			if !mem.Insert([]rune(code), text) {
				log.WithCategory(logging.CategoryDataset).Warnf("skipping malformed data row %q", code)
			}
			break // only the first/preferred output seeds the trie path
		}
	}

	dict := translator.NewDictionary()
	for code, row := range cfg.Translation {
		if !dict.Put(code, row.Texts, row.AutoCommit || cfg.Core.AutoCommit) {
			log.WithCategory(logging.CategoryDataset).Warnf("skipping malformed translation row %q", code)
		}
	}

	regs := script.NewRegistry(script.DefaultMaxOps)
	for name, source := range cfg.Translators {
		if err := regs.Register(name, source); err != nil {
			log.WithCategory(logging.CategoryScript).Warnf("skipping script %q: %v", name, err)
		}
	}

	preCfg := preprocessor.Config{
		BufferSize:     cfg.Core.BufferSize,
		CursorCapacity: cfg.Core.CursorCapacity,
		AutoCapitalize: cfg.Core.AutoCapitalize,
		PauseWindow:    preprocessor.DefaultConfig().PauseWindow,
	}
	pre := preprocessor.New(mem, preCfg)

	trCfg := translator.DefaultConfig()
	trCfg.MaxResults = cfg.Core.PageSize
	tr := translator.New(dict, regs, trCfg, log)

	orc := orchestrator.New(pre, tr, sinks.Typing, sinks.Suggest)
	return &Session{orc: orc, log: log}
}

// PushKey feeds one raw key event through the session, applying the
// resulting commands to the typing sink and, when the committed
// fragment changed, querying the translator for the suggestion sink.
func (s *Session) PushKey(ev Event) {
	s.orc.HandleKey(ev)
}

// Query re-runs the translator over the current committed input.
func (s *Session) Query() []Predicate {
	return s.orc.Query()
}

// Clear resets the session as if it had just started.
func (s *Session) Clear() {
	s.orc.Clear()
}

// IsCursorEmpty reports whether the cursor holds only the root.
func (s *Session) IsCursorEmpty() bool {
	return s.orc.IsCursorEmpty()
}
