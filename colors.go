package main

// Theme preview. Draws every semantic colour with its name so a palette can be
// checked against the terminal before editing.

import (
	"fmt"
	"os"

	"github.com/nsf/termbox-go"
)

// themeSample is the label drawn for one colour of the preview.
func themeSample(name ColorName) string {
	fg, bg := GetThemeColor(name)
	return fmt.Sprintf(" %-16s fg %3d bg %3d ", name, int(fg), int(bg))
}

// PrintTheme initializes termbox and draws one row per theme colour.
func PrintTheme() {
	err := termbox.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init termbox: %v\n", err)
		return
	}
	defer termbox.Close()

	termbox.SetOutputMode(termbox.Output256)
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	d := newTermboxDisplay()
	row := 0
	for name := ColorDefault; name <= ColorMessage; name++ {
		d.Print(0, row, themeSample(name), name)
		row++
	}

	d.Print(0, row+1, "Press any key to exit...", ColorDefault)
	d.Flush()
	// Wait for any key press before closing.
	termbox.PollEvent()
}
