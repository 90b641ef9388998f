package main

import (
	"errors"
	"strings"
	"testing"
)

// Codes the scripted input reports for named keys. enter, esc, backspace and
// tab are left unknown so the ASCII fallbacks are used.
const (
	keyUp = 1001 + iota
	keyDown
	keyLeft
	keyRight
	keyDelete
	keyHome
	keyEnd
	keyPageUp
	keyPageDown
)

const (
	keyEnter     = fallbackEnter
	keyEsc       = fallbackEsc
	keyBackspace = fallbackBackspace
	keyTab       = fallbackTab
)

var scriptedKeyNames = map[string]int{
	"up":       keyUp,
	"down":     keyDown,
	"left":     keyLeft,
	"right":    keyRight,
	"delete":   keyDelete,
	"home":     keyHome,
	"end":      keyEnd,
	"pageup":   keyPageUp,
	"pagedown": keyPageDown,
}

// scriptedInput replays a fixed list of keys.
type scriptedInput struct {
	keys []int
}

func (s *scriptedInput) NextKey() int {
	if len(s.keys) == 0 {
		panic("scripted input exhausted")
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k
}

func (s *scriptedInput) KeyCode(name string) int {
	if code, ok := scriptedKeyNames[name]; ok {
		return code
	}
	return -1
}

// fakeDisplay is a fixed-size character grid.
type fakeDisplay struct {
	width, height    int
	grid             [][]rune
	cursorX, cursorY int
	cursorVisible    bool
	flushes          int
}

func newFakeDisplay(width, height int) *fakeDisplay {
	d := &fakeDisplay{width: width, height: height}
	d.Clear()
	return d
}

func (d *fakeDisplay) Clear() {
	d.grid = make([][]rune, d.height)
	for y := range d.grid {
		d.grid[y] = []rune(strings.Repeat(" ", d.width))
	}
}

func (d *fakeDisplay) SetCursor(col, row int)  { d.cursorX, d.cursorY = col, row }
func (d *fakeDisplay) ShowCursor(visible bool) { d.cursorVisible = visible }
func (d *fakeDisplay) Width() int               { return d.width }
func (d *fakeDisplay) Height() int              { return d.height }
func (d *fakeDisplay) Flush()                   { d.flushes++ }

func (d *fakeDisplay) Print(col, row int, text string, color ColorName) {
	if row < 0 || row >= d.height {
		return
	}
	x := col
	for _, r := range text {
		if x >= d.width {
			return
		}
		if x >= 0 {
			d.grid[row][x] = r
		}
		x++
	}
}

// row returns screen row y without trailing blanks.
func (d *fakeDisplay) row(y int) string {
	return strings.TrimRight(string(d.grid[y]), " ")
}

// memStorage is an in-memory file system.
type memStorage struct {
	files    map[string]string
	writes   []string // Paths written, in order.
	readErr  error
	writeErr error
}

func newMemStorage() *memStorage {
	return &memStorage{files: map[string]string{}}
}

func (m *memStorage) Exists(path string) bool {
	_, ok := m.files[path]
	return ok
}

func (m *memStorage) ReadAll(path string) (string, error) {
	if m.readErr != nil {
		return "", m.readErr
	}
	text, ok := m.files[path]
	if !ok {
		return "", errors.New("no such file")
	}
	return text, nil
}

func (m *memStorage) WriteAll(path, text string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[path] = text
	m.writes = append(m.writes, path)
	return nil
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) ReadAll() (string, error) { return c.text, c.err }

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

// testEditor bundles an editor with its fakes.
type testEditor struct {
	*Editor
	display   *fakeDisplay
	input     *scriptedInput
	storage   *memStorage
	clipboard *fakeClipboard
}

func newTestEditor(t *testing.T, lines ...string) *testEditor {
	t.Helper()
	return newTestEditorWith(DefaultSettings(), lines...)
}

func newTestEditorWith(settings Settings, lines ...string) *testEditor {
	te := &testEditor{
		display:   newFakeDisplay(80, 24),
		input:     &scriptedInput{},
		storage:   newMemStorage(),
		clipboard: &fakeClipboard{},
	}
	te.Editor = NewEditor(Host{
		Display:   te.display,
		Input:     te.input,
		Storage:   te.storage,
		Clipboard: te.clipboard,
	}, settings, NewLogger(20, ""))
	if len(lines) > 0 {
		te.doc.Load(strings.Join(lines, "\n"))
	}
	return te
}

// press feeds keys straight to the dispatcher.
func (te *testEditor) press(keys ...int) {
	for _, k := range keys {
		te.HandleKey(k)
	}
}

// typeText feeds every rune of s as a key.
func (te *testEditor) typeText(s string) {
	for _, r := range s {
		te.HandleKey(int(r))
	}
}

// command runs a colon command through the keyboard.
func (te *testEditor) command(cmd string) {
	te.press(':')
	te.typeText(cmd)
	te.press(keyEnter)
}
