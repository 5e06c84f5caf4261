// Package logging sets up the zerolog logger of the benchmark binary.
// Console output is styled with lipgloss; JSON lines are written when the
// output isn't a terminal or when asked for.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Formats accepted by New.
const (
	FormatAuto    = "auto"
	FormatConsole = "console"
	FormatJSON    = "json"
)

var levelColors = map[string]string{
	"trace": "#8d8d8d",
	"debug": "#3ddbd9",
	"info":  "#4589ff",
	"warn":  "#ff832b",
	"error": "#da1e28",
	"fatal": "#ff0000",
	"panic": "#ff0000",
}

// ParseLevel maps a level name to a zerolog level. The empty string is info.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	l, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// ConsoleWriter renders events as one coloured line each.
func ConsoleWriter(w io.Writer, color bool) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{Out: w, NoColor: !color, TimeFormat: "15:04:05.000"}
	if !color {
		return cw
	}
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#78a9ff"))
	msgStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#f4f4f4"))
	cw.FormatLevel = func(i any) string {
		lvl := strings.ToLower(fmt.Sprint(i))
		c, ok := levelColors[lvl]
		if !ok {
			c = "#8d8d8d"
		}
		if len(lvl) > 3 {
			lvl = lvl[:3]
		}
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(c)).
			Padding(0, 1).
			Render(strings.ToUpper(lvl))
	}
	cw.FormatFieldName = func(i any) string {
		return keyStyle.Render(fmt.Sprint(i)) + "="
	}
	cw.FormatMessage = func(i any) string {
		if i == nil {
			return ""
		}
		return msgStyle.Render(fmt.Sprint(i))
	}
	return cw
}

// New logger writing to w at level. format is one of FormatAuto,
// FormatConsole and FormatJSON; auto picks the console format on terminals.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	var out io.Writer
	switch format {
	case FormatAuto, "":
		if IsTerminal(w) {
			out = ConsoleWriter(w, true)
		} else {
			out = w
		}
	case FormatConsole:
		out = ConsoleWriter(w, IsTerminal(w))
	case FormatJSON:
		out = w
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", format)
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
