package main

// Colour palette. Semantic colour names used by the renderer are mapped to
// 256-colour termbox attributes here.

import "github.com/nsf/termbox-go"

// To preview the palette execute `minivi -theme`.

// Color represents a pair of foreground and background terminal attributes.
type Color struct {
	Background termbox.Attribute
	Foreground termbox.Attribute
}

// ColorName is an enum-like type for semantic color identifiers.
type ColorName int

const (
	ColorDefault          ColorName = iota // Document text.
	ColorCurrentLine                       // Text of the line holding the cursor.
	ColorGutterLineNumber                  // Line numbers in the left gutter.
	ColorGutterCurrent                     // Gutter of the cursor line (with the '>' marker).
	ColorEmptyLineMarker                   // The '~' marker for rows beyond the document.
	ColorNormalMode                        // Status bar in Normal mode.
	ColorInsertMode                        // Status bar in Insert mode.
	ColorCommandMode                       // Status bar in Command mode.
	ColorCommandLine                       // The ':' command being typed.
	ColorMessage                           // Status message on the bottom line.
)

var colorNames = map[ColorName]string{
	ColorDefault:          "default",
	ColorCurrentLine:      "current-line",
	ColorGutterLineNumber: "gutter",
	ColorGutterCurrent:    "gutter-current",
	ColorEmptyLineMarker:  "empty-line",
	ColorNormalMode:       "normal-mode",
	ColorInsertMode:       "insert-mode",
	ColorCommandMode:      "command-mode",
	ColorCommandLine:      "command-line",
	ColorMessage:          "message",
}

func (c ColorName) String() string {
	if n, ok := colorNames[c]; ok {
		return n
	}
	return "unknown"
}

// Theme maps each ColorName to its actual visual attributes.
var Theme = map[ColorName]Color{
	ColorDefault:     {Background: termbox.ColorDefault, Foreground: termbox.Attribute(254)},
	ColorCurrentLine: {Background: termbox.Attribute(235), Foreground: termbox.Attribute(255)},

	ColorGutterLineNumber: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(244)},
	ColorGutterCurrent:    {Background: termbox.Attribute(235), Foreground: termbox.Attribute(221)},
	ColorEmptyLineMarker:  {Background: termbox.ColorDefault, Foreground: termbox.Attribute(239)},

	ColorNormalMode:  {Background: termbox.Attribute(250), Foreground: termbox.Attribute(1)},
	ColorInsertMode:  {Background: termbox.Attribute(58), Foreground: termbox.Attribute(255)},
	ColorCommandMode: {Background: termbox.Attribute(30), Foreground: termbox.Attribute(16)},

	ColorCommandLine: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(255)},
	ColorMessage:     {Background: termbox.ColorDefault, Foreground: termbox.Attribute(248)},
}

// GetThemeColor returns the foreground and background attributes for a given semantic name.
func GetThemeColor(name ColorName) (termbox.Attribute, termbox.Attribute) {
	if c, ok := Theme[name]; ok {
		return c.Foreground, c.Background
	}
	// Fallback to default if name is not found.
	return termbox.ColorDefault, termbox.ColorDefault
}
