package main

// Global configuration of the editor. Settings are populated from command-line
// flags during initialization.

import (
	"flag"
	"os"
	"path/filepath"
)

// Configuration holds all adjustable settings for the editor.
type Configuration struct {
	GutterWidth int    // Width of the left column (cursor marker and line number).
	TabWidth    int    // Number of spaces the tab key inserts.
	MaxLines    int    // Line capacity of a document.
	DefaultPath string // File bound when the startup prompt is left empty.
	UseLogFile  bool   // Whether to append the session log to a file.
	LogFilePath string // Where to store the session log.
	NumLogs     int    // How many log lines are kept in memory.
	ShowInfo    bool   // Command-line flag to show settings and key codes and exit.
	ShowTheme   bool   // Command-line flag to preview the colour theme and exit.
	ShowVersion bool   // Command-line flag to show version and exit.
}

// Config is the global configuration instance.
var Config Configuration

// Settings is the part of the configuration the editing session needs.
type Settings struct {
	GutterWidth int
	TabWidth    int
	MaxLines    int
}

// DefaultSettings returns the settings used when no flags are given.
func DefaultSettings() Settings {
	return Settings{GutterWidth: 6, TabWidth: 2, MaxLines: DefaultMaxLines}
}

// Settings projects the session settings out of the configuration.
func (c Configuration) Settings() Settings {
	s := DefaultSettings()
	if c.GutterWidth > 2 {
		s.GutterWidth = c.GutterWidth
	}
	if c.TabWidth > 0 {
		s.TabWidth = c.TabWidth
	}
	if c.MaxLines > 0 {
		s.MaxLines = c.MaxLines
	}
	return s
}

// LogPath returns the log file path, or "" when file logging is off.
func (c Configuration) LogPath() string {
	if !c.UseLogFile {
		return ""
	}
	return c.LogFilePath
}

// InitConfig sets up command-line flags and parses them into the global Config.
func InitConfig() {
	def := DefaultSettings()

	flag.IntVar(&Config.GutterWidth, "gutter-width", def.GutterWidth, "Width of the gutter")
	flag.IntVar(&Config.TabWidth, "tab-width", def.TabWidth, "Spaces inserted by the tab key")
	flag.IntVar(&Config.MaxLines, "max-lines", def.MaxLines, "Maximum number of lines in a document")
	flag.StringVar(&Config.DefaultPath, "default-path", defaultDocumentPath(), "File opened when the prompt is left empty")
	flag.BoolVar(&Config.UseLogFile, "log", false, "Enable logging to file")
	flag.StringVar(&Config.LogFilePath, "log-path", filepath.Join(os.TempDir(), "minivi.log"), "Path to log file")
	flag.IntVar(&Config.NumLogs, "num-logs", 50, "Number of log lines kept in memory")
	flag.BoolVar(&Config.ShowInfo, "info", false, "Show settings and key codes")
	flag.BoolVar(&Config.ShowTheme, "theme", false, "Preview the colour theme")
	flag.BoolVar(&Config.ShowVersion, "version", false, "Show version")

	flag.Parse()
}

func defaultDocumentPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "vi.txt"
	}
	return filepath.Join(home, "vi.txt")
}
