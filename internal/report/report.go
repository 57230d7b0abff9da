// Package report renders tally summaries for terminals and as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/fivecard/internal/round"
	"github.com/lox/fivecard/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// Report is the JSON form of a run summary.
type Report struct {
	Input           string         `json:"input"`
	GeneratedAt     time.Time      `json:"generated_at"`
	DurationSeconds float64        `json:"duration_seconds"`
	Rounds          int            `json:"rounds"`
	Tally           round.Tally    `json:"tally"`
	Categories      map[string]int `json:"categories"`
}

// New builds a report from a run summary.
func New(input string, summary round.Summary, generatedAt time.Time) Report {
	categories := make(map[string]int, len(summary.Categories))
	for c, n := range summary.Categories {
		categories[c.String()] = n
	}
	return Report{
		Input:           input,
		GeneratedAt:     generatedAt.UTC(),
		DurationSeconds: summary.Duration.Seconds(),
		Rounds:          summary.Rounds(),
		Tally:           summary.Tally,
		Categories:      categories,
	}
}

// WriteCounts writes the three counts on one line: wins A, wins B, draws.
func WriteCounts(w io.Writer, t round.Tally) error {
	_, err := fmt.Fprintf(w, "%d %d %d\n", t.WinsA, t.WinsB, t.Draws)
	return err
}

// WriteText renders the summary as an aligned table.
func WriteText(w io.Writer, summary round.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("hand A"),
		headerStyle.Render("hand B"),
		headerStyle.Render("draw"))
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		winStyle.Render(fmt.Sprint(summary.WinsA)),
		winStyle.Render(fmt.Sprint(summary.WinsB)),
		tieStyle.Render(fmt.Sprint(summary.Draws)))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(summary.Categories) > 0 {
		fmt.Fprintln(w)
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		hands := 2 * summary.Rounds()
		for c := poker.RoyalFlush; ; c-- {
			if n := summary.Categories[c]; n > 0 {
				fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n",
					categoryStyle.Render(c.String()), n, float64(n)/float64(hands)*100)
			}
			if c == poker.HighCard {
				break
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintln(w)
	if summary.Skipped > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("%d lines skipped", summary.Skipped)))
	}
	_, err := fmt.Fprintf(w, "%d rounds in %v\n", summary.Rounds(), summary.Duration.Truncate(time.Millisecond))
	return err
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
