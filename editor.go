package main

// Editing session. The Editor owns the document, cursor, viewport, mode and
// flags for one run of the event loop, and implements the editing actions the
// key tables call.

import (
	"fmt"
	"strings"
)

const initialStatus = "Press :help for commands"

// Host bundles the collaborators provided by the environment.
type Host struct {
	Display   Display
	Input     Input
	Storage   Storage
	Clipboard Clipboard
}

// Editor is the main controller struct that holds all session state.
type Editor struct {
	doc           *Document
	cursor        Cursor
	view          Viewport
	metrics       Metrics  // Geometry of the last rendered frame.
	mode          Mode     // Current editor mode.
	pendingDelete bool     // First 'd' of "dd" seen.
	commandBuffer []rune   // Input for the : command line.
	filename      string   // Bound path; empty means none.
	message       string   // Status message shown at the bottom.
	running       bool     // Cleared by the quit commands.
	baseline      string   // Text at the last load or save, for :diff.
	settings      Settings // Gutter, tab and capacity settings.
	keymap        keymap   // One key table per mode.
	host          Host
	commands      *Command
	log           *Logger
}

// NewEditor creates an editor holding one empty line in Normal mode.
func NewEditor(host Host, settings Settings, log *Logger) *Editor {
	if host.Storage == nil {
		host.Storage = fileStorage{}
	}
	if host.Clipboard == nil {
		host.Clipboard = systemClipboard{}
	}
	e := &Editor{
		doc:      NewDocument(settings.MaxLines),
		mode:     ModeNormal,
		message:  initialStatus,
		running:  true,
		settings: settings,
		host:     host,
		log:      log,
		metrics:  NewMetrics(24, 80, settings.GutterWidth),
	}
	var keys Keys
	if host.Input != nil {
		keys = ResolveKeys(host.Input)
	} else {
		keys = ResolveKeys(noKeys{})
	}
	e.keymap = newKeymap(keys)
	e.commands = &Command{e: e}
	e.addLog("Editor", "Editor initialized")
	return e
}

// noKeys resolves no names, leaving only the ASCII fallbacks.
type noKeys struct{}

func (noKeys) NextKey() int            { return -1 }
func (noKeys) KeyCode(name string) int { return -1 }

func (e *Editor) addLog(group, msg string) {
	e.log.Add(group, msg)
}

func (e *Editor) setStatus(msg string) {
	e.message = msg
}

// Running reports whether the session has not been quit.
func (e *Editor) Running() bool { return e.running }

// Open binds path to the session and loads it. A missing file starts an empty
// document. On a read error the current document is kept.
func (e *Editor) Open(path string) {
	if !e.host.Storage.Exists(path) {
		e.filename = path
		e.replaceDocument("")
		e.setStatus(fmt.Sprintf("\"%s\" [New File]", path))
		e.addLog("Editor", fmt.Sprintf("New file %s", path))
		return
	}
	text, err := e.host.Storage.ReadAll(path)
	if err != nil {
		e.setStatus(fmt.Sprintf("Error opening file: %v", err))
		e.addLog("Editor", fmt.Sprintf("Failed to open %s: %v", path, err))
		return
	}
	e.filename = path
	truncated := e.replaceDocument(text)
	if truncated {
		e.setStatus(fmt.Sprintf("\"%s\" truncated to %d lines", path, e.doc.Capacity()))
		e.addLog("Editor", fmt.Sprintf("Loaded %s truncated to %d lines", path, e.doc.Capacity()))
		return
	}
	e.setStatus(fmt.Sprintf("\"%s\" %dL opened", path, e.doc.LineCount()))
	e.addLog("Editor", fmt.Sprintf("Opened %s (%d lines)", path, e.doc.LineCount()))
}

func (e *Editor) replaceDocument(text string) (truncated bool) {
	doc := NewDocument(e.settings.MaxLines)
	truncated = doc.Load(text)
	e.doc = doc
	e.baseline = doc.Join()
	e.cursor = Cursor{}
	e.view = Viewport{}
	return truncated
}

// save writes the document to path. It reports whether the write succeeded.
func (e *Editor) save(path string) bool {
	if path == "" {
		e.setStatus("No file name")
		return false
	}
	text := e.doc.Join()
	if err := e.host.Storage.WriteAll(path, text); err != nil {
		e.setStatus(fmt.Sprintf("write failed: %v", err))
		e.addLog("Editor", fmt.Sprintf("Failed to write %s: %v", path, err))
		return false
	}
	e.doc.MarkClean()
	e.baseline = text
	e.setStatus(fmt.Sprintf("\"%s\" %dL written", path, e.doc.LineCount()))
	e.addLog("Editor", fmt.Sprintf("Wrote %s (%d lines)", path, e.doc.LineCount()))
	return true
}

func (e *Editor) bufferFull() {
	e.setStatus(ErrBufferFull.Error())
}

func (e *Editor) moveLeft()  { e.cursor.MoveLeft(e.doc) }
func (e *Editor) moveRight() { e.cursor.MoveRight(e.doc) }
func (e *Editor) moveUp()    { e.cursor.MoveUp(e.doc) }
func (e *Editor) moveDown()  { e.cursor.MoveDown(e.doc) }
func (e *Editor) moveHome()  { e.cursor.MoveHome() }
func (e *Editor) moveEnd()   { e.cursor.MoveEnd(e.doc) }
func (e *Editor) pageUp()    { e.cursor.PageUp(e.doc, e.metrics.BodyRows) }
func (e *Editor) pageDown()  { e.cursor.PageDown(e.doc, e.metrics.BodyRows) }

func (e *Editor) insertRune(r rune) {
	e.cursor.Clamp(e.doc)
	e.doc.InsertRune(e.cursor.Line, e.cursor.Col, r)
	e.cursor.Col++
}

// insertTab inserts the configured number of spaces.
func (e *Editor) insertTab() {
	for i := 0; i < e.settings.TabWidth; i++ {
		e.insertRune(' ')
	}
}

// insertNewline breaks the line at the cursor.
func (e *Editor) insertNewline() {
	e.cursor.Clamp(e.doc)
	if err := e.doc.SplitLine(e.cursor.Line, e.cursor.Col); err != nil {
		e.bufferFull()
		return
	}
	e.cursor.Line++
	e.cursor.Col = 0
}

// backspace deletes left of the cursor, joining onto the previous line at
// column zero.
func (e *Editor) backspace() {
	e.cursor.Clamp(e.doc)
	if e.cursor.Col > 0 {
		e.doc.DeleteRune(e.cursor.Line, e.cursor.Col-1)
		e.cursor.Col--
		return
	}
	if e.cursor.Line == 0 {
		return
	}
	prevLen := e.doc.LineLen(e.cursor.Line - 1)
	e.doc.JoinNext(e.cursor.Line - 1)
	e.cursor.Line--
	e.cursor.Col = prevLen
}

// deleteCharForward deletes the character under the cursor, pulling the next
// line up when the cursor is at the end of its line.
func (e *Editor) deleteCharForward() {
	e.cursor.Clamp(e.doc)
	if e.cursor.Col >= e.doc.LineLen(e.cursor.Line) {
		e.doc.JoinNext(e.cursor.Line)
		return
	}
	e.doc.DeleteRune(e.cursor.Line, e.cursor.Col)
}

func (e *Editor) deleteCurrentLine() {
	e.doc.DeleteLine(e.cursor.Line)
	e.cursor.Col = 0
	e.cursor.Clamp(e.doc)
	e.setStatus("line deleted")
}

func (e *Editor) startDeleteChord() {
	e.pendingDelete = true
	e.setStatus("d - waiting for next d")
}

func (e *Editor) enterInsertMode() {
	e.mode = ModeInsert
	e.pendingDelete = false
	e.setStatus("-- INSERT --")
}

func (e *Editor) appendAfterCursor() {
	e.moveRight()
	e.enterInsertMode()
}

func (e *Editor) openLineBelow() {
	if err := e.doc.InsertLine(e.cursor.Line+1, ""); err != nil {
		e.bufferFull()
		return
	}
	e.cursor.Line++
	e.cursor.Col = 0
	e.enterInsertMode()
}

func (e *Editor) openLineAbove() {
	if err := e.doc.InsertLine(e.cursor.Line, ""); err != nil {
		e.bufferFull()
		return
	}
	e.cursor.Col = 0
	e.enterInsertMode()
}

func (e *Editor) exitInsertMode() {
	e.mode = ModeNormal
	e.commandBuffer = nil
	e.pendingDelete = false
	if e.cursor.Col > 0 {
		e.cursor.Col--
	}
	e.cursor.Clamp(e.doc)
	e.setStatus("")
}

func (e *Editor) startCommandMode() {
	e.mode = ModeCommand
	e.commandBuffer = nil
	e.pendingDelete = false
}

func (e *Editor) cancelCommandMode() {
	e.mode = ModeNormal
	e.commandBuffer = nil
	e.setStatus("command cancelled")
}

func (e *Editor) commandBackspace() {
	if len(e.commandBuffer) > 0 {
		e.commandBuffer = e.commandBuffer[:len(e.commandBuffer)-1]
	}
}

func (e *Editor) executeCommand() {
	e.commands.Handle(string(e.commandBuffer))
}

// yankLine copies the cursor line to the clipboard.
func (e *Editor) yankLine() {
	e.cursor.Clamp(e.doc)
	if err := e.host.Clipboard.WriteAll(e.doc.Line(e.cursor.Line)); err != nil {
		e.setStatus(fmt.Sprintf("clipboard: %v", err))
		e.addLog("Clipboard", err.Error())
		return
	}
	e.setStatus("line yanked")
}

// putLines inserts the clipboard text as new lines below the cursor.
func (e *Editor) putLines() {
	text, err := e.host.Clipboard.ReadAll()
	if err != nil {
		e.setStatus(fmt.Sprintf("clipboard: %v", err))
		e.addLog("Clipboard", err.Error())
		return
	}
	if text == "" {
		e.setStatus("clipboard empty")
		return
	}
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	e.cursor.Clamp(e.doc)
	at := e.cursor.Line + 1
	put := 0
	for _, line := range strings.Split(text, "\n") {
		if err := e.doc.InsertLine(at+put, line); err != nil {
			break
		}
		put++
	}
	if put == 0 {
		e.bufferFull()
		return
	}
	e.cursor = Cursor{Line: at}
	if put < strings.Count(text, "\n")+1 {
		e.setStatus(fmt.Sprintf("%d lines put, %v", put, ErrBufferFull))
		return
	}
	e.setStatus(fmt.Sprintf("%d lines put", put))
}

// changeSummary describes how the document differs from the last load or save.
func (e *Editor) changeSummary() string {
	added, removed := lineChanges(e.baseline, e.doc.Join())
	if added == 0 && removed == 0 {
		return "no changes"
	}
	return fmt.Sprintf("+%d -%d lines since last write", added, removed)
}
