package main

// Colon command handler (e.g., :q, :w, :help). It processes strings entered in
// ModeCommand and executes the corresponding actions.

import (
	"fmt"
	"strings"
)

const helpText = "Commands: :w [file], :q, :q!, :wq, :e <file>, :diff, ESC to cancel"

// Command provides a context for executing editor commands.
type Command struct {
	e *Editor
}

// trimCommand strips spaces, tabs, carriage returns and line feeds from both
// ends.
func trimCommand(s string) string {
	return strings.Trim(s, " \t\r\n")
}

// Handle parses and executes a command string.
func (ch *Command) Handle(cmd string) {
	cmd = trimCommand(cmd)
	if cmd != "" {
		ch.e.addLog("Command", cmd)
	}
	switch {
	case cmd == "":
		ch.e.setStatus("")
	case cmd == "help":
		ch.e.setStatus(helpText)
	case cmd == "q":
		ch.quit(false)
	case cmd == "q!":
		ch.quit(true)
	case cmd == "w":
		ch.write()
	case cmd == "wq" || cmd == "wq!":
		ch.writeQuit()
	case cmd == "diff":
		ch.e.setStatus(ch.e.changeSummary())
	case strings.HasPrefix(cmd, "w "):
		ch.writeAs(trimCommand(strings.TrimPrefix(cmd, "w ")))
	case strings.HasPrefix(cmd, "e "):
		ch.edit(trimCommand(strings.TrimPrefix(cmd, "e ")))
	default:
		ch.e.setStatus(fmt.Sprintf("Unknown command: %s", cmd))
		ch.e.addLog("Command", fmt.Sprintf("Unknown command %q", cmd))
	}
	// After executing a command, return to Normal mode and clear the command buffer.
	ch.e.mode = ModeNormal
	ch.e.commandBuffer = nil
}

// quit stops the session, refusing when there are unsaved changes unless
// force is set.
func (ch *Command) quit(force bool) {
	if !force && ch.e.doc.Dirty() {
		ch.e.setStatus("No write since last change (use :q!)")
		return
	}
	ch.e.running = false
	ch.e.addLog("Editor", "Quit")
}

// write saves to the bound file.
func (ch *Command) write() {
	if ch.e.filename == "" {
		ch.e.setStatus("Specify file name with :w <path>")
		return
	}
	ch.e.save(ch.e.filename)
}

// writeQuit saves to the bound file and quits once the write succeeded.
func (ch *Command) writeQuit() {
	if ch.e.filename == "" {
		ch.e.setStatus("Specify file name first")
		return
	}
	if ch.e.save(ch.e.filename) {
		ch.e.running = false
		ch.e.addLog("Editor", "Quit")
	}
}

// writeAs binds path to the session and saves to it.
func (ch *Command) writeAs(path string) {
	if path == "" {
		ch.e.setStatus("No file name provided")
		return
	}
	ch.e.filename = path
	ch.e.save(path)
}

// edit replaces the document with the contents of path.
func (ch *Command) edit(path string) {
	if path == "" {
		ch.e.setStatus("No file path provided")
		return
	}
	ch.e.Open(path)
}
