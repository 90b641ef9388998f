package main

// Terminal collaborators. The editor core talks to the screen through Display
// and reads keys through Input; termbox-go provides both at runtime.

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
)

// Display is the character output surface.
type Display interface {
	Clear()
	SetCursor(col, row int)
	ShowCursor(visible bool)
	Print(col, row int, text string, color ColorName)
	Width() int
	Height() int
	Flush()
}

// Input is the keystroke source.
type Input interface {
	// NextKey blocks for the next key. A negative result means nothing usable
	// arrived and the caller should poll again.
	NextKey() int
	// KeyCode resolves a symbolic key name, returning a negative value when
	// the name is unknown.
	KeyCode(name string) int
}

type termboxDisplay struct {
	cursorX, cursorY int
	cursorVisible    bool
}

func newTermboxDisplay() *termboxDisplay {
	return &termboxDisplay{cursorVisible: true}
}

func (t *termboxDisplay) Clear() {
	fg, bg := GetThemeColor(ColorDefault)
	termbox.Clear(fg, bg)
}

func (t *termboxDisplay) SetCursor(col, row int) {
	t.cursorX, t.cursorY = col, row
	if t.cursorVisible {
		termbox.SetCursor(col, row)
	}
}

func (t *termboxDisplay) ShowCursor(visible bool) {
	t.cursorVisible = visible
	if visible {
		termbox.SetCursor(t.cursorX, t.cursorY)
	} else {
		termbox.HideCursor()
	}
}

// Print draws text starting at (col, row), cut off at the right screen edge.
func (t *termboxDisplay) Print(col, row int, text string, color ColorName) {
	w, _ := termbox.Size()
	if col >= w {
		return
	}
	fg, bg := GetThemeColor(color)
	x := col
	for _, r := range runewidth.Truncate(text, w-col, "") {
		termbox.SetCell(x, row, r, fg, bg)
		x += max(runewidth.RuneWidth(r), 1)
	}
}

func (t *termboxDisplay) Width() int {
	w, _ := termbox.Size()
	return w
}

func (t *termboxDisplay) Height() int {
	_, h := termbox.Size()
	return h
}

func (t *termboxDisplay) Flush() {
	termbox.Flush()
}

// termboxKeyNames maps symbolic key names onto termbox key values.
var termboxKeyNames = map[string]termbox.Key{
	"up":        termbox.KeyArrowUp,
	"down":      termbox.KeyArrowDown,
	"left":      termbox.KeyArrowLeft,
	"right":     termbox.KeyArrowRight,
	"delete":    termbox.KeyDelete,
	"enter":     termbox.KeyEnter,
	"esc":       termbox.KeyEsc,
	"backspace": termbox.KeyBackspace2,
	"home":      termbox.KeyHome,
	"end":       termbox.KeyEnd,
	"pageup":    termbox.KeyPgup,
	"pagedown":  termbox.KeyPgdn,
	"tab":       termbox.KeyTab,
}

type termboxInput struct {
	named map[termbox.Key]bool
}

func newTermboxInput() *termboxInput {
	named := make(map[termbox.Key]bool, len(termboxKeyNames))
	for _, k := range termboxKeyNames {
		named[k] = true
	}
	return &termboxInput{named: named}
}

func (t *termboxInput) KeyCode(name string) int {
	k, ok := termboxKeyNames[name]
	if !ok {
		return -1
	}
	return int(k)
}

func (t *termboxInput) NextKey() int {
	ev := termbox.PollEvent()
	if ev.Type != termbox.EventKey {
		// Resizes land here; the caller redraws with the new size.
		return -1
	}
	return t.translate(ev)
}

func (t *termboxInput) translate(ev termbox.Event) int {
	if ev.Ch != 0 {
		if !utf8.ValidRune(ev.Ch) {
			return -1
		}
		return int(ev.Ch)
	}
	switch ev.Key {
	case termbox.KeySpace:
		return ' '
	case termbox.KeyBackspace:
		// Ctrl-H and DEL both erase.
		return int(termbox.KeyBackspace2)
	}
	if t.named[ev.Key] || ev.Key < termbox.KeySpace {
		return int(ev.Key)
	}
	return -1
}
