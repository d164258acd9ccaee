// Package orchestrator implements component D of spec §4.4: a thin
// coordinator holding references to the preprocessor, translator, and
// the two sinks the frontend supplies, plus a memo of the last committed
// input it queried the translator for.
package orchestrator

import (
	"github.com/afrim-project/afrim-go/internal/preprocessor"
	"github.com/afrim-project/afrim-go/internal/translator"
)

// TypingSink receives the commands a key event produced, in order
// (spec §6's "Typing sink").
type TypingSink interface {
	Apply(cmds []preprocessor.Command)
}

// SuggestionSink receives a fresh ranked predicate list after each
// committed fragment changes.
type SuggestionSink interface {
	Suggest(preds []translator.Predicate)
}

// TypingSinkFunc adapts a plain function to TypingSink.
type TypingSinkFunc func(cmds []preprocessor.Command)

func (f TypingSinkFunc) Apply(cmds []preprocessor.Command) { f(cmds) }

// SuggestionSinkFunc adapts a plain function to SuggestionSink.
type SuggestionSinkFunc func(preds []translator.Predicate)

func (f SuggestionSinkFunc) Suggest(preds []translator.Predicate) { f(preds) }

// Orchestrator glues one Preprocessor session to one Translator and a
// pair of sinks. It is not safe for concurrent use (spec §5: one event
// is fully processed before the next is accepted).
type Orchestrator struct {
	pre     *preprocessor.Preprocessor
	tr      *translator.Translator
	typing  TypingSink
	suggest SuggestionSink

	lastCommitted string
}

// New builds an Orchestrator. typing and suggest must be non-nil.
func New(pre *preprocessor.Preprocessor, tr *translator.Translator, typing TypingSink, suggest SuggestionSink) *Orchestrator {
	return &Orchestrator{pre: pre, tr: tr, typing: typing, suggest: suggest}
}

// HandleKey pushes one key event through the preprocessor, applies the
// resulting commands to the typing sink, and — only when the committed
// input fragment actually changed — queries the translator and passes
// its predicates to the suggestion sink (spec §4.4's data flow).
func (o *Orchestrator) HandleKey(ev preprocessor.Event) {
	cmds := o.pre.Handle(ev)
	o.typing.Apply(cmds)

	committed := o.pre.CommittedInput()
	if committed == o.lastCommitted {
		return
	}
	o.lastCommitted = committed

	preds := o.tr.Query(committed)
	o.suggest.Suggest(preds)
}

// Clear resets the session (preprocessor state and the orchestrator's
// own committed-input memo) as spec §6's frontend `clear()` requires.
func (o *Orchestrator) Clear() {
	o.pre.Clear()
	o.lastCommitted = ""
}

// IsCursorEmpty forwards to the preprocessor for UI gating.
func (o *Orchestrator) IsCursorEmpty() bool {
	return o.pre.IsCursorEmpty()
}

// Query re-runs the translator over the current committed input without
// waiting for it to change, for callers that want suggestions on demand.
func (o *Orchestrator) Query() []translator.Predicate {
	return o.tr.Query(o.pre.CommittedInput())
}
