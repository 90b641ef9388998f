package main

import (
	"strconv"
	"strings"
	"unicode/utf8"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// lineChanges counts the lines added and removed going from before to after.
func lineChanges(before, after string) (added, removed int) {
	if before == after {
		return 0, 0
	}
	d := dmp.New()
	a, b, _ := d.DiffLinesToChars(withTerminator(before), withTerminator(after))
	for _, df := range d.DiffMainRunes(lineRunes(a), lineRunes(b), false) {
		n := utf8.RuneCountInString(df.Text)
		switch df.Type {
		case dmp.DiffInsert:
			added += n
		case dmp.DiffDelete:
			removed += n
		}
	}
	return added, removed
}

// lineRunes turns the index list produced by DiffLinesToChars into one rune
// per line, so the diff never splits a line index.
func lineRunes(indexes string) []rune {
	var out []rune
	for _, s := range strings.Split(indexes, dmp.IndexSeparator) {
		if n, err := strconv.Atoi(s); err == nil {
			out = append(out, rune(n))
		}
	}
	return out
}

// withTerminator ends text with a line feed so a changed last line is not
// compared against its own unterminated variant.
func withTerminator(text string) string {
	return text + "\n"
}
