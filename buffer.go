package main

// Line storage for the edited file. A Document is an ordered, capacity-bounded
// list of lines (each a slice of runes) that never holds fewer than one line.

import (
	"errors"
	"strings"
)

// DefaultMaxLines is the default capacity of a Document.
const DefaultMaxLines = 512

// ErrBufferFull is returned when an insertion would exceed the line capacity.
var ErrBufferFull = errors.New("buffer full")

// Document holds the lines of the file being edited.
type Document struct {
	lines    [][]rune // Never empty.
	capacity int      // Maximum number of lines.
	dirty    bool     // Set on every mutation, cleared by MarkClean and Load.
}

// NewDocument returns a document containing a single empty line.
func NewDocument(capacity int) *Document {
	if capacity < 1 {
		capacity = DefaultMaxLines
	}
	return &Document{
		lines:    [][]rune{{}},
		capacity: capacity,
	}
}

// Load replaces the contents with text split on line feeds. A trailing line
// feed yields a trailing empty line so that Join restores the exact input.
// Lines past the capacity are dropped; the second result reports whether that
// happened.
func (d *Document) Load(text string) (truncated bool) {
	parts := strings.Split(text, "\n")
	if len(parts) > d.capacity {
		parts = parts[:d.capacity]
		truncated = true
	}
	d.lines = make([][]rune, len(parts))
	for i, p := range parts {
		d.lines[i] = []rune(p)
	}
	d.ensureLine()
	d.dirty = false
	return truncated
}

// Join returns the lines separated by a single line feed, with no trailing
// separator.
func (d *Document) Join() string {
	var sb strings.Builder
	for i, line := range d.lines {
		sb.WriteString(string(line))
		if i < len(d.lines)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// LineCount returns the number of lines (always at least one).
func (d *Document) LineCount() int { return len(d.lines) }

// Capacity returns the maximum number of lines.
func (d *Document) Capacity() int { return d.capacity }

// Full reports whether another line can no longer be inserted.
func (d *Document) Full() bool { return len(d.lines) >= d.capacity }

// Dirty reports whether the document changed since the last load or save.
func (d *Document) Dirty() bool { return d.dirty }

// MarkClean clears the dirty flag after a successful save.
func (d *Document) MarkClean() { d.dirty = false }

// Line returns the text of line i, or "" when i is out of range.
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return string(d.lines[i])
}

// LineLen returns the length of line i in characters, or 0 when out of range.
func (d *Document) LineLen(i int) int {
	if i < 0 || i >= len(d.lines) {
		return 0
	}
	return len(d.lines[i])
}

// Lines returns a copy of all lines as strings.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i, line := range d.lines {
		out[i] = string(line)
	}
	return out
}

// InsertLine inserts text as a new line at index, shifting later lines down.
// The index is clamped to [0, LineCount].
func (d *Document) InsertLine(index int, text string) error {
	if d.Full() {
		return ErrBufferFull
	}
	index = clamp(index, 0, len(d.lines))
	d.lines = append(d.lines, nil)
	copy(d.lines[index+1:], d.lines[index:])
	d.lines[index] = []rune(text)
	d.dirty = true
	return nil
}

// DeleteLine removes the line at index. Deleting the only remaining line
// empties it instead. The index is clamped to [0, LineCount-1].
func (d *Document) DeleteLine(index int) {
	index = clamp(index, 0, len(d.lines)-1)
	d.dirty = true
	if len(d.lines) == 1 {
		d.lines[0] = []rune{}
		return
	}
	d.lines = append(d.lines[:index], d.lines[index+1:]...)
}

// ReplaceLine overwrites the text of the line at index. The index is clamped
// to [0, LineCount-1].
func (d *Document) ReplaceLine(index int, text string) {
	index = clamp(index, 0, len(d.lines)-1)
	d.lines[index] = []rune(text)
	d.dirty = true
}

// InsertRune inserts r before column col of the given line.
func (d *Document) InsertRune(line, col int, r rune) {
	line = clamp(line, 0, len(d.lines)-1)
	old := d.lines[line]
	col = clamp(col, 0, len(old))
	updated := make([]rune, len(old)+1)
	copy(updated, old[:col])
	updated[col] = r
	copy(updated[col+1:], old[col:])
	d.lines[line] = updated
	d.dirty = true
}

// DeleteRune removes the character at column col. It does nothing when col is
// at or past the end of the line.
func (d *Document) DeleteRune(line, col int) {
	line = clamp(line, 0, len(d.lines)-1)
	old := d.lines[line]
	if col < 0 || col >= len(old) {
		return
	}
	updated := make([]rune, 0, len(old)-1)
	updated = append(updated, old[:col]...)
	updated = append(updated, old[col+1:]...)
	d.lines[line] = updated
	d.dirty = true
}

// SplitLine breaks a line at col, moving the suffix onto a new following line.
// Nothing changes when the document is full.
func (d *Document) SplitLine(line, col int) error {
	if d.Full() {
		return ErrBufferFull
	}
	line = clamp(line, 0, len(d.lines)-1)
	old := d.lines[line]
	col = clamp(col, 0, len(old))
	right := string(old[col:])
	d.lines[line] = append([]rune{}, old[:col]...)
	return d.InsertLine(line+1, right)
}

// JoinNext appends the following line to line and removes it. It reports
// false when line is the last one.
func (d *Document) JoinNext(line int) bool {
	if line < 0 || line >= len(d.lines)-1 {
		return false
	}
	merged := make([]rune, 0, len(d.lines[line])+len(d.lines[line+1]))
	merged = append(merged, d.lines[line]...)
	merged = append(merged, d.lines[line+1]...)
	d.lines[line] = merged
	d.DeleteLine(line + 1)
	return true
}

func (d *Document) ensureLine() {
	if len(d.lines) == 0 {
		d.lines = [][]rune{{}}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
