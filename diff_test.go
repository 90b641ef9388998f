package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineChanges(t *testing.T) {
	tests := []struct {
		name           string
		before, after  string
		added, removed int
	}{
		{"identical", "a\nb", "a\nb", 0, 0},
		{"appended", "a\nb", "a\nb\nc", 1, 0},
		{"removed", "a\nb\nc", "a\nc", 0, 1},
		{"changed last line", "a\nb", "a\nB", 1, 1},
		{"from empty", "", "x\ny", 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			added, removed := lineChanges(tt.before, tt.after)
			assert.Equal(t, tt.added, added)
			assert.Equal(t, tt.removed, removed)
		})
	}
}

func TestLineRunes(t *testing.T) {
	assert.Equal(t, []rune{1, 12, 3}, lineRunes("1,12,3,"))
	assert.Empty(t, lineRunes(""))
}
