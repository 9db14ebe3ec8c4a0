// Package render formats solved answers for the terminal or for machines.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"aoc2023/internal/puzzle"
)

// Output formats.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

// Formats lists every supported format.
var Formats = []string{FormatText, FormatJSON, FormatPretty}

// Result is one solved part.
type Result struct {
	Day     int           `json:"day"`
	Title   string        `json:"title,omitempty"`
	Part    puzzle.Part   `json:"part"`
	Answer  puzzle.Answer `json:"answer"`
	Elapsed time.Duration `json:"elapsed_ns"`
	RunID   string        `json:"run_id,omitempty"`
}

// Write renders results to w in the given format.
func Write(w io.Writer, format string, results []Result) error {
	switch format {
	case "", FormatText:
		return writeText(w, results)
	case FormatJSON:
		return writeJSON(w, results)
	case FormatPretty:
		_, err := fmt.Fprintln(w, Table(results))
		return err
	default:
		return fmt.Errorf("unknown output format %q (want one of %v)", format, Formats)
	}
}

func writeText(w io.Writer, results []Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "day %d part %d: %d\n", r.Day, r.Part, r.Answer); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, results []Result) error {
	if results == nil {
		results = []Result{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// Palette borrowed from the brand colours used across the CLI.
var (
	accent = lipgloss.Color("#8BC34A")
	muted  = lipgloss.Color("#2a3850")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	answerStyle = cellStyle.Bold(true)
)

// Table renders results as a bordered table.
func Table(results []Result) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(muted)).
		Headers("DAY", "TITLE", "PART", "ANSWER", "TIME").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 3:
				return answerStyle
			default:
				return cellStyle
			}
		})
	for _, r := range results {
		t.Row(
			strconv.Itoa(r.Day),
			r.Title,
			strconv.Itoa(int(r.Part)),
			strconv.FormatUint(uint64(r.Answer), 10),
			r.Elapsed.Round(time.Microsecond).String(),
		)
	}
	return t.Render()
}
