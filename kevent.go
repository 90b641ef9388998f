package main

// Input processing engine. It contains the main event loop and dispatches
// keys to the table of the active mode.

// modeHandlers routes a key to the handler of each mode.
var modeHandlers = [modeCount]func(e *Editor, key int){
	ModeNormal:  (*Editor).handleNormalMode,
	ModeInsert:  (*Editor).handleInsertMode,
	ModeCommand: (*Editor).handleCommandMode,
}

// Run is the central loop: draw, wait for a key, dispatch it. It returns once
// a quit command clears the running flag.
func (e *Editor) Run() {
	for e.running {
		e.draw()
		key := e.host.Input.NextKey()
		if key < 0 {
			continue
		}
		e.HandleKey(key)
	}
}

// HandleKey dispatches one key to the active mode.
func (e *Editor) HandleKey(key int) {
	modeHandlers[e.mode](e, key)
}

// handleNormalMode completes a pending "dd" or, for any other key, drops the
// pending 'd' and runs the key's own action.
func (e *Editor) handleNormalMode(key int) {
	if e.pendingDelete {
		e.pendingDelete = false
		if key == 'd' {
			e.deleteCurrentLine()
			return
		}
	}
	e.keymap[ModeNormal].dispatch(e, key)
}

func (e *Editor) handleInsertMode(key int) {
	e.keymap[ModeInsert].dispatch(e, key)
}

func (e *Editor) handleCommandMode(key int) {
	e.keymap[ModeCommand].dispatch(e, key)
}
