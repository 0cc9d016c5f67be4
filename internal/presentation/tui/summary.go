package tui

import (
	"fmt"
	"strings"
)

// Row is one line of the move table.
type Row struct {
	Round  int
	Player string
	Move   string
}

// Summary describes a finished game.
type Summary struct {
	Title   string
	GameID  string
	Rounds  int
	Winner  string
	Seating []string
	Rows    []Row
}

// Markdown renders the summary as a markdown document.
func (s Summary) Markdown() string {
	var sb strings.Builder
	title := s.Title
	if title == "" {
		title = "Game over"
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)

	if s.Winner != "" {
		fmt.Fprintf(&sb, "**%s** wins after %d round(s).\n\n", s.Winner, s.Rounds)
	} else {
		fmt.Fprintf(&sb, "No winner after %d round(s).\n\n", s.Rounds)
	}
	if len(s.Seating) > 0 {
		fmt.Fprintf(&sb, "Seating: %s\n\n", strings.Join(s.Seating, ", "))
	}

	if len(s.Rows) > 0 {
		sb.WriteString("| Round | Player | Move |\n")
		sb.WriteString("|---|---|---|\n")
		for _, r := range s.Rows {
			fmt.Fprintf(&sb, "| %d | %s | %s |\n", r.Round, r.Player, r.Move)
		}
		sb.WriteString("\n")
	}

	if s.GameID != "" {
		fmt.Fprintf(&sb, "_game %s_\n", s.GameID)
	}
	return sb.String()
}
