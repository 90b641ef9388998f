package main

// Prints the effective settings and the key codes the terminal reports for
// each named key. Useful when a key does not do what it should.

import (
	"fmt"
	"io"
	"strings"
)

// PrintInfo writes a summary of the settings followed by a key code table.
func PrintInfo(w io.Writer) {
	s := Config.Settings()
	fmt.Fprintf(w, "%-15s %v\n", "gutter-width", s.GutterWidth)
	fmt.Fprintf(w, "%-15s %v\n", "tab-width", s.TabWidth)
	fmt.Fprintf(w, "%-15s %v\n", "max-lines", s.MaxLines)
	fmt.Fprintf(w, "%-15s %v\n", "default-path", Config.DefaultPath)
	fmt.Fprintf(w, "%-15s %v\n", "log-path", orNone(Config.LogPath()))
	fmt.Fprintln(w)

	printKeyTable(w, newTermboxInput(), ResolveKeys(newTermboxInput()))
}

func printKeyTable(w io.Writer, in Input, resolved Keys) {
	fmt.Fprintf(w, "%-15s %-10s %-10s\n", "Key", "Code", "Used")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	used := map[string]int{
		"enter":     resolved.Enter,
		"esc":       resolved.Esc,
		"backspace": resolved.Backspace,
		"tab":       resolved.Tab,
	}
	for _, name := range keyNames {
		code := in.KeyCode(name)
		effective := code
		if v, ok := used[name]; ok {
			effective = v
		}
		fmt.Fprintf(w, "%-15s %-10d %-10s\n", name, code, codeLabel(effective))
	}
}

func codeLabel(code int) string {
	if code < 0 {
		return "unbound"
	}
	return fmt.Sprint(code)
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
