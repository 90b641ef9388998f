package main

import (
	"fmt"
	"os"
	"time"
)

// Logger keeps the most recent session log lines and optionally appends them
// to a file.
type Logger struct {
	messages []string
	max      int
	path     string // Empty disables the file.
	now      func() time.Time
}

func NewLogger(max int, path string) *Logger {
	return &Logger{
		messages: []string{},
		max:      max,
		path:     path,
		now:      time.Now,
	}
}

// Add records msg under group.
func (l *Logger) Add(group, msg string) {
	if l == nil {
		return
	}
	t := l.now()
	logMsg := fmt.Sprintf("[%02d:%02d:%02d] [%s] %s", t.Hour(), t.Minute(), t.Second(), group, msg)
	l.messages = append(l.messages, logMsg)
	if len(l.messages) > l.max {
		l.messages = l.messages[len(l.messages)-l.max:]
	}

	if l.path != "" {
		f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			f.WriteString(logMsg + "\n")
		}
	}
}

// Messages returns the retained log lines, oldest first.
func (l *Logger) Messages() []string {
	if l == nil {
		return nil
	}
	return append([]string(nil), l.messages...)
}
