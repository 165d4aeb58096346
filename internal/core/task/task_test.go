package task

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDo(t *testing.T) {
	td, err := NewToDo("test task")
	require.NoError(t, err)

	assert.Equal(t, "[T][ ] test task", td.Display())
	assert.Equal(t, "T | 0 | test task", td.Record())

	td.MarkDone()
	assert.Equal(t, "[T][✓] test task", td.Display())
	assert.Equal(t, "T | 1 | test task", td.Record())
}

func TestDeadline(t *testing.T) {
	d, err := NewDeadline("submit report", "2024-12-02")
	require.NoError(t, err)

	assert.Equal(t, KindDeadline, d.Kind())
	assert.Equal(t, "[D][ ] submit report (by: 2 Dec 2024)", d.Display())
	assert.Equal(t, "D | 0 | submit report | 2024-12-02", d.Record())
}

func TestEvent(t *testing.T) {
	e, err := NewEvent("team offsite", "2025-01-15")
	require.NoError(t, err)
	e.MarkDone()

	assert.Equal(t, KindEvent, e.Kind())
	assert.Equal(t, "[E][✓] team offsite (at: 15 Jan 2025)", e.Display())
	assert.Equal(t, "E | 1 | team offsite | 2025-01-15", e.Record())
}

func TestConstructorErrors(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
		want error
	}{
		{
			name: "blank todo",
			fn:   func() error { _, err := NewToDo("   "); return err },
			want: ErrMissingDescription,
		},
		{
			name: "blank deadline description",
			fn:   func() error { _, err := NewDeadline("", "2024-12-02"); return err },
			want: ErrMissingDescription,
		},
		{
			name: "deadline bad date",
			fn:   func() error { _, err := NewDeadline("x", "tomorrow"); return err },
			want: ErrInvalidDateFormat,
		},
		{
			name: "deadline impossible date",
			fn:   func() error { _, err := NewDeadline("x", "2024-02-30"); return err },
			want: ErrInvalidDateFormat,
		},
		{
			name: "event free text rejected",
			fn:   func() error { _, err := NewEvent("x", "Mon 2-4pm"); return err },
			want: ErrInvalidDateFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMarkIsIdempotent(t *testing.T) {
	td, err := NewToDo("x")
	require.NoError(t, err)

	td.MarkDone()
	td.MarkDone()
	assert.True(t, td.Done())

	td.MarkUndone()
	td.MarkUndone()
	assert.False(t, td.Done())
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindToDo, KindDeadline, KindEvent} {
		got, ok := ParseKind(k.Symbol())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}

	_, ok := ParseKind("X")
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	a, _ := NewDeadline("x", "2024-12-02")
	b, _ := NewDeadline("x", "2024-12-02")
	c, _ := NewDeadline("x", "2024-12-03")
	e, _ := NewEvent("x", "2024-12-02")

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(a, e))

	b.MarkDone()
	assert.False(t, Equal(a, b))
}

func TestErrorIs(t *testing.T) {
	err := &Error{Kind: InvalidTaskIndex}
	assert.True(t, errors.Is(err, ErrInvalidTaskIndex))
	assert.False(t, errors.Is(err, ErrUnknownCommand))

	te, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, InvalidTaskIndex.Message(), te.Error())

	_, ok = AsError(errors.New("plain"))
	assert.False(t, ok)
}
