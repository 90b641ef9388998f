package main

// Key codes and the per-mode key tables.

import "unicode/utf8"

// Codes used when the input source does not know a name.
const (
	fallbackEnter     = 10
	fallbackEsc       = 27
	fallbackBackspace = 8
	fallbackTab       = 9
)

// Keys holds the resolved codes of the non-printable keys.
type Keys struct {
	Up, Down, Left, Right int
	Delete                int
	Enter, Esc            int
	Backspace, Tab        int
	Home, End             int
	PageUp, PageDown      int
}

// keyNames lists every symbolic name the editor asks the input source about.
var keyNames = []string{"up", "down", "left", "right", "delete", "enter", "esc", "backspace", "home", "end", "pageup", "pagedown", "tab"}

// ResolveKeys asks in for each symbolic key. Unknown names stay negative
// except enter, esc, backspace and tab, which fall back to ASCII.
func ResolveKeys(in Input) Keys {
	k := Keys{
		Up:        in.KeyCode("up"),
		Down:      in.KeyCode("down"),
		Left:      in.KeyCode("left"),
		Right:     in.KeyCode("right"),
		Delete:    in.KeyCode("delete"),
		Enter:     in.KeyCode("enter"),
		Esc:       in.KeyCode("esc"),
		Backspace: in.KeyCode("backspace"),
		Home:      in.KeyCode("home"),
		End:       in.KeyCode("end"),
		PageUp:    in.KeyCode("pageup"),
		PageDown:  in.KeyCode("pagedown"),
		Tab:       in.KeyCode("tab"),
	}
	if k.Enter < 0 {
		k.Enter = fallbackEnter
	}
	if k.Esc < 0 {
		k.Esc = fallbackEsc
	}
	if k.Backspace < 0 {
		k.Backspace = fallbackBackspace
	}
	if k.Tab < 0 {
		k.Tab = fallbackTab
	}
	return k
}

func isPrintable(key int) bool {
	return key >= ' ' && key != 127 && utf8.ValidRune(rune(key))
}

type keyAction func(e *Editor)

// keyTable maps key codes to actions for one mode. Keys without a binding go
// to fallback, if set.
type keyTable struct {
	bindings map[int]keyAction
	fallback func(e *Editor, key int)
}

func newKeyTable() *keyTable {
	return &keyTable{bindings: map[int]keyAction{}}
}

// bind attaches action to each key. Negative codes are skipped and an
// existing binding is never replaced, so earlier binds take precedence.
func (t *keyTable) bind(action keyAction, keys ...int) *keyTable {
	for _, key := range keys {
		if key < 0 {
			continue
		}
		if _, ok := t.bindings[key]; ok {
			continue
		}
		t.bindings[key] = action
	}
	return t
}

func (t *keyTable) dispatch(e *Editor, key int) {
	if action, ok := t.bindings[key]; ok {
		action(e)
		return
	}
	if t.fallback != nil {
		t.fallback(e, key)
	}
}

// Mode represents the current operational state of the editor.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeCommand // Colon command line mode
	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "COMMAND"
	default:
		return "NORMAL"
	}
}

// keymap holds one table per mode.
type keymap [modeCount]*keyTable

func newKeymap(k Keys) keymap {
	var m keymap
	m[ModeNormal] = newNormalTable(k)
	m[ModeInsert] = newInsertTable(k)
	m[ModeCommand] = newCommandTable(k)
	return m
}

func newNormalTable(k Keys) *keyTable {
	t := newKeyTable()
	t.bind((*Editor).moveLeft, 'h', k.Left)
	t.bind((*Editor).moveRight, 'l', k.Right)
	t.bind((*Editor).moveDown, 'j', k.Down)
	t.bind((*Editor).moveUp, 'k', k.Up)
	t.bind((*Editor).moveHome, '0', k.Home)
	t.bind((*Editor).moveEnd, '$', k.End)
	t.bind((*Editor).pageUp, k.PageUp)
	t.bind((*Editor).pageDown, k.PageDown)
	t.bind((*Editor).deleteCharForward, 'x', k.Delete)
	t.bind((*Editor).startDeleteChord, 'd')
	t.bind((*Editor).enterInsertMode, 'i')
	t.bind((*Editor).appendAfterCursor, 'a')
	t.bind((*Editor).openLineBelow, 'o')
	t.bind((*Editor).openLineAbove, 'O')
	t.bind((*Editor).startCommandMode, ':')
	t.bind((*Editor).yankLine, 'Y')
	t.bind((*Editor).putLines, 'p')
	t.bind(func(e *Editor) { e.setStatus("") }, k.Esc)
	return t
}

func newInsertTable(k Keys) *keyTable {
	t := newKeyTable()
	t.bind((*Editor).exitInsertMode, k.Esc)
	t.bind((*Editor).moveLeft, k.Left)
	t.bind((*Editor).moveRight, k.Right)
	t.bind((*Editor).moveUp, k.Up)
	t.bind((*Editor).moveDown, k.Down)
	t.bind((*Editor).moveHome, k.Home)
	t.bind((*Editor).moveEnd, k.End)
	t.bind((*Editor).pageUp, k.PageUp)
	t.bind((*Editor).pageDown, k.PageDown)
	t.bind((*Editor).insertNewline, k.Enter)
	t.bind((*Editor).backspace, k.Backspace)
	t.bind((*Editor).deleteCharForward, k.Delete)
	t.bind((*Editor).insertTab, k.Tab)
	t.fallback = func(e *Editor, key int) {
		if isPrintable(key) {
			e.insertRune(rune(key))
		}
	}
	return t
}

func newCommandTable(k Keys) *keyTable {
	t := newKeyTable()
	t.bind((*Editor).cancelCommandMode, k.Esc)
	t.bind((*Editor).executeCommand, k.Enter)
	t.bind((*Editor).commandBackspace, k.Backspace)
	// Named keys are swallowed rather than typed.
	t.bind(func(*Editor) {}, k.Up, k.Down, k.Left, k.Right, k.Delete, k.Home, k.End, k.PageUp, k.PageDown, k.Tab)
	t.fallback = func(e *Editor, key int) {
		if isPrintable(key) {
			e.commandBuffer = append(e.commandBuffer, rune(key))
		}
	}
	return t
}
