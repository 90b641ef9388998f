package main

// Scroll window over the document and the screen geometry it is derived from.

const (
	minScreenRows   = 4
	minScreenCols   = 10
	minContentWidth = 8
	// Rows below the body: status bar and command/message line.
	chromeRows = 2
)

// Metrics is the screen geometry used for one frame.
type Metrics struct {
	ScreenRows   int
	ScreenCols   int
	BodyRows     int // Rows available for document lines.
	ContentWidth int // Columns available for text after the gutter.
	GutterWidth  int
}

// NewMetrics derives the body and content sizes from the reported screen size.
func NewMetrics(rows, cols, gutter int) Metrics {
	rows = max(rows, minScreenRows)
	cols = max(cols, minScreenCols)
	return Metrics{
		ScreenRows:   rows,
		ScreenCols:   cols,
		BodyRows:     max(rows-chromeRows, 1),
		ContentWidth: max(cols-gutter, minContentWidth),
		GutterWidth:  gutter,
	}
}

// Viewport is the top-left corner of the visible part of the document.
type Viewport struct {
	Top  int // First visible line.
	Left int // First visible column.
}

// Adjust scrolls just enough to keep the cursor inside the window.
func (v *Viewport) Adjust(c Cursor, lineCount int, m Metrics) {
	if c.Line < v.Top {
		v.Top = c.Line
	}
	if c.Line >= v.Top+m.BodyRows {
		v.Top = c.Line - m.BodyRows + 1
	}
	v.Top = clamp(v.Top, 0, max(lineCount-1, 0))

	if c.Col < v.Left {
		v.Left = c.Col
	}
	if c.Col >= v.Left+m.ContentWidth {
		v.Left = c.Col - m.ContentWidth + 1
	}
	v.Left = max(v.Left, 0)
}
