// SPDX-License-Identifier: MIT
package scope_test

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvunits/equivalency"
	"github.com/katalvlaran/lvunits/scope"
	"github.com/katalvlaran/lvunits/units"
)

func eq(name string) equivalency.Equivalency {
	return equivalency.New(name, nil, equivalency.Bridge(units.Pixel, units.Inch))
}

func names(frames []equivalency.Equivalency) []string {
	out := make([]string, 0, len(frames))
	for _, f := range frames {
		out = append(out, f.Name())
	}

	return out
}

func TestStack_PushPopNested(t *testing.T) {
	st := scope.NewStack()
	assert.Empty(t, st.Frames())

	popA := st.Push(eq("a"))
	popB := st.Push(eq("b"))
	assert.Equal(t, []string{"a", "b"}, names(st.Frames()))
	assert.Equal(t, 2, st.Depth())

	popB()
	assert.Equal(t, []string{"a"}, names(st.Frames()))
	popB() // idempotent
	assert.Equal(t, 1, st.Depth())

	popA()
	assert.Empty(t, st.Frames())
}

func TestStack_OutOfOrderPopTruncates(t *testing.T) {
	st := scope.NewStack()
	popA := st.Push(eq("a"))
	popB := st.Push(eq("b"))

	popA()
	assert.Equal(t, 0, st.Depth(), "popping the outer frame drops inner frames too")

	popB()
	assert.Equal(t, 0, st.Depth())
}

func TestStack_DoRestoresOnError(t *testing.T) {
	st := scope.NewStack()
	boom := errors.New("boom")

	err := st.Do(eq("a"), func() error {
		assert.Equal(t, []string{"a"}, names(st.Frames()))

		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, st.Depth())
}

func TestStack_DoRestoresOnPanic(t *testing.T) {
	st := scope.NewStack()
	require.NoError(t, st.Do(eq("outer"), func() error {
		assert.Panics(t, func() {
			_ = st.Do(eq("inner"), func() error { panic("kaboom") })
		})
		assert.Equal(t, []string{"outer"}, names(st.Frames()))

		return nil
	}))
	assert.Equal(t, 0, st.Depth())
}

func TestStack_PersistentBeforeScoped(t *testing.T) {
	st := scope.NewStack(scope.WithEnabled(eq("p1")))
	st.Enable(eq("p2"))

	pop := st.Push(eq("s1"))
	defer pop()
	assert.Equal(t, []string{"p1", "p2", "s1"}, names(st.Frames()))

	// Enable while a scoped frame is open still lands before it.
	st.Enable(eq("p3"))
	assert.Equal(t, []string{"p1", "p2", "p3", "s1"}, names(st.Frames()))
}

func TestStack_Disable(t *testing.T) {
	st := scope.NewStack()
	st.Enable(eq("a"), eq("b"), eq("a"))
	pop := st.Push(eq("a"))
	defer pop()

	assert.True(t, st.Disable("a"))
	assert.Equal(t, []string{"b", "a"}, names(st.Frames()), "scoped frame survives")
	assert.False(t, st.Disable("missing"))
}

func TestStack_SetEnabledRestore(t *testing.T) {
	st := scope.NewStack()
	st.Enable(eq("old"))

	restore := st.SetEnabled(eq("new1"), eq("new2"))
	assert.Equal(t, []string{"new1", "new2"}, names(st.Enabled()))

	restore()
	assert.Equal(t, []string{"old"}, names(st.Enabled()))
}

func TestStack_ResetAndSnapshot(t *testing.T) {
	st := scope.NewStack()
	st.Enable(eq("p"))
	st.Push(eq("s"))

	snap := st.Frames()
	st.Reset()

	assert.Empty(t, st.Frames())
	assert.Equal(t, 0, st.Depth())
	assert.Equal(t, []string{"p", "s"}, names(snap), "Frames returns a snapshot")
}

func TestStack_Logging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)

	st := scope.NewStack(scope.WithLogger(logger))
	st.Push(eq("spectral"))()

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "scope push", entries[0].Message)
	assert.Equal(t, "spectral", entries[0].Data["equivalency"])
	assert.Equal(t, "scope pop", entries[1].Message)

	assert.Panics(t, func() { scope.WithLogger(nil) })
}
