package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afrim-project/afrim-go/internal/memory"
	"github.com/afrim-project/afrim-go/internal/preprocessor"
	"github.com/afrim-project/afrim-go/internal/translator"
)

func TestHandleKeyAppliesCommandsAndQueriesOnChange(t *testing.T) {
	// AutoCapitalize is left at its DefaultConfig value (true): an empty
	// history counts as a word boundary, so the first keystroke of the
	// session is looked up upper-cased.
	m := memory.New()
	m.Insert([]rune("A"), "እ")
	pre := preprocessor.New(m, preprocessor.DefaultConfig())

	dict := translator.NewDictionary()
	dict.Put("A", []string{"suggestion"}, false)
	tr := translator.New(dict, nil, translator.DefaultConfig(), nil)

	var applied [][]preprocessor.Command
	var suggested [][]translator.Predicate
	o := New(pre, tr,
		TypingSinkFunc(func(cmds []preprocessor.Command) { applied = append(applied, cmds) }),
		SuggestionSinkFunc(func(preds []translator.Predicate) { suggested = append(suggested, preds) }),
	)

	o.HandleKey(preprocessor.Event{Type: preprocessor.KeyPress, Key: preprocessor.KeyRune, Rune: 'a'})

	require.Len(t, applied, 1)
	require.Len(t, suggested, 1)
	assert.Equal(t, "A", suggested[0][0].Code)
}

func TestClearResetsCommittedMemo(t *testing.T) {
	m := memory.New()
	m.Insert([]rune("A"), "x")
	pre := preprocessor.New(m, preprocessor.DefaultConfig())
	dict := translator.NewDictionary()
	tr := translator.New(dict, nil, translator.DefaultConfig(), nil)

	o := New(pre, tr, TypingSinkFunc(func([]preprocessor.Command) {}), SuggestionSinkFunc(func([]translator.Predicate) {}))
	o.HandleKey(preprocessor.Event{Type: preprocessor.KeyPress, Key: preprocessor.KeyRune, Rune: 'a'})
	require.False(t, o.IsCursorEmpty())

	o.Clear()
	assert.True(t, o.IsCursorEmpty())
	assert.Equal(t, "", o.pre.CommittedInput())
	assert.Equal(t, "", o.lastCommitted)
}
