package main

// Cursor is a position in a Document.
type Cursor struct {
	Line int // Row index (0-based).
	Col  int // Column index (0-based); may equal the line length.
}

// Clamp pulls the cursor back inside the document. It is idempotent.
func (c *Cursor) Clamp(d *Document) {
	c.Line = clamp(c.Line, 0, d.LineCount()-1)
	c.Col = clamp(c.Col, 0, d.LineLen(c.Line))
}

// MoveLeft steps one column left, wrapping to the end of the previous line.
func (c *Cursor) MoveLeft(d *Document) {
	if c.Col > 0 {
		c.Col--
	} else if c.Line > 0 {
		c.Line--
		c.Col = d.LineLen(c.Line)
	}
}

// MoveRight steps one column right, wrapping to the start of the next line.
func (c *Cursor) MoveRight(d *Document) {
	if c.Col < d.LineLen(c.Line) {
		c.Col++
	} else if c.Line < d.LineCount()-1 {
		c.Line++
		c.Col = 0
	}
}

func (c *Cursor) MoveUp(d *Document) {
	if c.Line > 0 {
		c.Line--
		c.Col = min(c.Col, d.LineLen(c.Line))
	}
}

func (c *Cursor) MoveDown(d *Document) {
	if c.Line < d.LineCount()-1 {
		c.Line++
		c.Col = min(c.Col, d.LineLen(c.Line))
	}
}

func (c *Cursor) MoveHome() { c.Col = 0 }

func (c *Cursor) MoveEnd(d *Document) { c.Col = d.LineLen(c.Line) }

// PageUp moves up by rows lines (at least one).
func (c *Cursor) PageUp(d *Document, rows int) {
	c.Line -= max(rows, 1)
	c.Clamp(d)
}

// PageDown moves down by rows lines (at least one).
func (c *Cursor) PageDown(d *Document, rows int) {
	c.Line += max(rows, 1)
	c.Clamp(d)
}
