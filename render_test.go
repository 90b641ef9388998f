package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw_Screen(t *testing.T) {
	te := newTestEditor(t, "hello", "world")
	te.filename = "f.txt"

	te.draw()

	d := te.display
	assert.Equal(t, ">   1 hello", d.row(0))
	assert.Equal(t, "    2 world", d.row(1))
	assert.Equal(t, "~", d.row(2))
	assert.Equal(t, "~", d.row(21))
	assert.Equal(t, "-- NORMAL -- f.txt  (1/2) col 1", d.row(22))
	assert.Equal(t, initialStatus, d.row(23))
	assert.Equal(t, 6, d.cursorX)
	assert.Equal(t, 0, d.cursorY)
	assert.True(t, d.cursorVisible)
	assert.Equal(t, 1, d.flushes)
}

func TestBuildFrame_StatusLine(t *testing.T) {
	te := newTestEditor(t, "abc")
	te.press('i')
	te.typeText("x")

	f := te.BuildFrame(te.metrics)

	assert.Equal(t, "-- INSERT -- [No Name]*  (1/1) col 2", f.Status)
	assert.Equal(t, "-- INSERT --", f.Bottom)
}

func TestBuildFrame_CommandLine(t *testing.T) {
	te := newTestEditor(t, "abc")
	te.press(':')
	te.typeText("wq")

	f := te.BuildFrame(te.metrics)

	assert.Equal(t, ":wq", f.Bottom)
	assert.True(t, strings.HasPrefix(f.Status, "-- COMMAND --"))
}

func TestBuildFrame_Gutter(t *testing.T) {
	lines := make([]string, 12)
	te := newTestEditor(t, lines...)
	te.cursor = Cursor{Line: 11}
	te.view.Adjust(te.cursor, te.doc.LineCount(), te.metrics)

	f := te.BuildFrame(te.metrics)

	assert.Equal(t, "   10 ", f.Rows[9].Gutter)
	assert.Equal(t, ">  12 ", f.Rows[11].Gutter)
	assert.Equal(t, -1, f.Rows[12].Line)
	assert.Equal(t, "~", f.Rows[12].Text)
}

func TestBuildFrame_HorizontalScroll(t *testing.T) {
	te := newTestEditor(t, strings.Repeat("abcdefghij", 10))
	te.cursor = Cursor{Col: 90}
	te.view.Adjust(te.cursor, te.doc.LineCount(), te.metrics)
	require.Equal(t, 17, te.view.Left)

	f := te.BuildFrame(te.metrics)

	assert.Equal(t, 79, f.CursorX)
	assert.Equal(t, 74, len(f.Rows[0].Text))
	assert.True(t, strings.HasPrefix(f.Rows[0].Text, "hij"))
}

func TestBuildFrame_ScrolledCursorRow(t *testing.T) {
	lines := make([]string, 40)
	te := newTestEditor(t, lines...)
	te.cursor = Cursor{Line: 30}
	te.view.Adjust(te.cursor, te.doc.LineCount(), te.metrics)

	f := te.BuildFrame(te.metrics)

	assert.Equal(t, 9, te.view.Top)
	assert.Equal(t, 21, f.CursorY)
	assert.Equal(t, 30, f.Rows[21].Line)
}

func TestRun_QuitsOnCommand(t *testing.T) {
	te := newTestEditor(t, "abc")
	te.input.keys = []int{-1, ':', 'q', '!', keyEnter}

	te.Run()

	assert.False(t, te.Running())
	assert.Empty(t, te.input.keys)
	assert.Equal(t, 5, te.display.flushes)
}

func TestRun_EditAndWrite(t *testing.T) {
	te := newTestEditor(t)
	te.input.keys = []int{'i', 'h', 'i', keyEsc}
	te.input.keys = append(te.input.keys, []int{':', 'w', ' ', 'o', '.', 't', 'x', 't', keyEnter}...)
	te.input.keys = append(te.input.keys, []int{':', 'q', keyEnter}...)

	te.Run()

	assert.False(t, te.Running())
	assert.Equal(t, "hi", te.storage.files["o.txt"])
	assert.Equal(t, "o.txt", te.filename)
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "abcdef", padRight("abcdef", 4))
}
