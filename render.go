package main

// Screen rendering. A Frame is computed from the session state without
// changing it, then painted through the Display.

import (
	"fmt"
	"strings"
)

// FrameRow is one body row of a frame.
type FrameRow struct {
	Gutter string // Cursor marker and line number; empty past the end.
	Text   string // Visible slice of the line, or the '~' marker.
	Line   int    // Document line shown, or -1 past the end.
}

// Frame is everything drawn for one screen update.
type Frame struct {
	Rows    []FrameRow
	Status  string // Mode, file, dirty marker and position.
	Bottom  string // Command being typed or the status message.
	CursorX int
	CursorY int
}

// BuildFrame projects the session state onto a screen of geometry m.
func (e *Editor) BuildFrame(m Metrics) Frame {
	f := Frame{Rows: make([]FrameRow, m.BodyRows)}
	for row := range f.Rows {
		f.Rows[row] = e.bodyRow(e.view.Top+row, m)
	}

	fileLabel := e.filename
	if fileLabel == "" {
		fileLabel = "[No Name]"
	}
	dirty := ""
	if e.doc.Dirty() {
		dirty = "*"
	}
	f.Status = fmt.Sprintf("-- %s -- %s%s  (%d/%d) col %d",
		e.mode, fileLabel, dirty, e.cursor.Line+1, e.doc.LineCount(), e.cursor.Col+1)

	if e.mode == ModeCommand {
		f.Bottom = ":" + string(e.commandBuffer)
	} else {
		f.Bottom = e.message
	}

	f.CursorY = clamp(e.cursor.Line-e.view.Top, 0, m.BodyRows-1)
	f.CursorX = clamp(m.GutterWidth+e.cursor.Col-e.view.Left, m.GutterWidth, m.ScreenCols-1)
	return f
}

func (e *Editor) bodyRow(line int, m Metrics) FrameRow {
	if line >= e.doc.LineCount() {
		return FrameRow{Text: "~", Line: -1}
	}
	marker := " "
	if line == e.cursor.Line {
		marker = ">"
	}
	// Marker, right-aligned number, one separating space.
	numWidth := max(m.GutterWidth-2, 1)
	gutter := fmt.Sprintf("%s%*d ", marker, numWidth, line+1)

	runes := []rune(e.doc.Line(line))
	start := min(e.view.Left, len(runes))
	end := min(start+m.ContentWidth, len(runes))
	return FrameRow{Gutter: gutter, Text: string(runes[start:end]), Line: line}
}

// draw clamps the cursor, refreshes the geometry from the display, scrolls the
// viewport and paints a frame.
func (e *Editor) draw() {
	d := e.host.Display
	e.cursor.Clamp(e.doc)
	e.metrics = NewMetrics(d.Height(), d.Width(), e.settings.GutterWidth)
	e.view.Adjust(e.cursor, e.doc.LineCount(), e.metrics)
	f := e.BuildFrame(e.metrics)

	d.ShowCursor(false)
	d.Clear()
	for y, row := range f.Rows {
		if row.Line < 0 {
			d.Print(0, y, row.Text, ColorEmptyLineMarker)
			continue
		}
		gutterColor, textColor := ColorGutterLineNumber, ColorDefault
		if row.Line == e.cursor.Line {
			gutterColor, textColor = ColorGutterCurrent, ColorCurrentLine
			d.Print(0, y, strings.Repeat(" ", e.metrics.ScreenCols), ColorCurrentLine)
		}
		d.Print(0, y, row.Gutter, gutterColor)
		d.Print(e.metrics.GutterWidth, y, row.Text, textColor)
	}

	statusColor := ColorNormalMode
	switch e.mode {
	case ModeInsert:
		statusColor = ColorInsertMode
	case ModeCommand:
		statusColor = ColorCommandMode
	}
	statusY := e.metrics.BodyRows
	d.Print(0, statusY, padRight(f.Status, e.metrics.ScreenCols), statusColor)

	bottomColor := ColorMessage
	if e.mode == ModeCommand {
		bottomColor = ColorCommandLine
	}
	d.Print(0, statusY+1, f.Bottom, bottomColor)

	d.SetCursor(f.CursorX, f.CursorY)
	d.ShowCursor(true)
	d.Flush()
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
