package main

// The entry point of minivi. It handles command-line flags, asks for the file
// to edit, sets up the terminal (termbox) and starts the main editor loop.

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/nsf/termbox-go"
	"golang.org/x/term"
)

// Version of the editor, injected at build time.
var Version = "dev"

func main() {
	// Initialize configuration from flags.
	InitConfig()

	if Config.ShowVersion {
		fmt.Println(Version)
		return
	}

	// Print settings and key codes if -info flag is provided.
	if Config.ShowInfo {
		PrintInfo(os.Stdout)
		return
	}

	// Preview the colour theme if -theme flag is provided.
	if Config.ShowTheme {
		PrintTheme()
		return
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "minivi needs an interactive terminal")
		os.Exit(1)
	}

	path := flag.Arg(0)
	if path == "" {
		var err error
		path, err = PromptPath(Config.DefaultPath)
		if errors.Is(err, errPromptCancelled) {
			fmt.Fprintln(os.Stderr, "no file chosen")
			os.Exit(1)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read file path: %v\n", err)
			os.Exit(1)
		}
	}

	// Initialize termbox for TUI handling.
	if err := termbox.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init termbox: %v\n", err)
		os.Exit(1)
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)

	logger := NewLogger(Config.NumLogs, Config.LogPath())
	display := newTermboxDisplay()
	editor := NewEditor(Host{
		Display:   display,
		Input:     newTermboxInput(),
		Storage:   fileStorage{},
		Clipboard: systemClipboard{},
	}, Config.Settings(), logger)

	editor.Open(path)
	editor.Run()

	// Leave a clean screen behind.
	display.ShowCursor(true)
	display.Clear()
	display.Flush()
	termbox.Close()
	fmt.Println("bye")
}
