package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLinesRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	session := NewJSONLinesRecorder(&buf).NewSession()

	require.NoError(t, session.Run("ls | wc -l", []string{
		"ls exit status: 0",
		"wc -l exit status: 0",
	}))
	require.NoError(t, session.CompileError("cat < ", errors.New("need input file name after <")))
	require.NoError(t, session.Builtin("exit", "exit"))

	var events []*Event
	require.NoError(t, ReadJSONLinesLog(&buf, func(e *Event) {
		events = append(events, e)
	}))
	require.Len(t, events, 3)

	assert.Equal(t, "run", events[0].Kind)
	assert.Equal(t, "ls | wc -l", events[0].Line)
	assert.Len(t, events[0].Statuses, 2)

	assert.Equal(t, "compile_error", events[1].Kind)
	assert.Equal(t, "need input file name after <", events[1].Error)

	assert.Equal(t, "builtin", events[2].Kind)
	assert.Equal(t, "exit", events[2].Builtin)

	for _, e := range events {
		assert.Equal(t, session.SessionID(), e.SessionID)
		assert.NotZero(t, e.TimestampMicros)
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	l := Discard()
	a := l.NewSession()
	b := l.NewSession()
	assert.NotEmpty(t, a.SessionID())
	assert.NotEqual(t, a.SessionID(), b.SessionID())
}

func TestDiscard(t *testing.T) {
	session := Discard().NewSession()
	assert.NoError(t, session.Run("true", nil))
	assert.NoError(t, session.Builtin("help", "help"))
}
