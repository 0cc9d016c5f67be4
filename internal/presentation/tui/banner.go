package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the gamebase banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text, color string
	}{
		{"   __ _  __ _ _ __ ___   ___| |__   __ _ ___  ___", "#34d399"},
		{"  / _` |/ _` | '_ ` _ \\ / _ \\ '_ \\ / _` / __|/ _ \\", "#2dd4bf"},
		{" | (_| | (_| | | | | | |  __/ |_) | (_| \\__ \\  __/", "#22d3ee"},
		{"  \\__, |\\__,_|_| |_| |_|\\___|_.__/ \\__,_|___/\\___|", "#38bdf8"},
		{"  |___/", "#60a5fa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// Status formats a one-line status message, coloured when the terminal
// supports it.
func Status(format string, args ...any) string {
	p := termenv.ColorProfile()
	return termenv.String(fmt.Sprintf(format, args...)).Foreground(p.Color("#fbbf24")).Bold().String()
}
