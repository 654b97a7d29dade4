package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the primer banner to w.
// Colors are only emitted when w is a terminal that supports them.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{"             _                 ", "#818cf8"},
		{"  _ __  _ __(_)_ __ ___   ___ _ __", "#a78bfa"},
		{" | '_ \\| '__| | '_ ` _ \\ / _ \\ '__|", "#c084fc"},
		{" | |_) | |  | | | | | | |  __/ |", "#e879f9"},
		{" | .__/|_|  |_|_| |_| |_|\\___|_|", "#f472b6"},
		{" |_|", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
