package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/s0up4200/tmdb-go/filter"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"

	tableWidth = 85
)

func validateFormat(format string) error {
	if !slices.Contains([]string{formatTable, formatJSON, formatYAML}, format) {
		return fmt.Errorf("invalid output format: %s (must be table, json or yaml)", format)
	}
	return nil
}

// render writes value in the configured format. The table format is
// delegated to table since every command lays it out differently.
func render(w io.Writer, format string, value any, table func(io.Writer) error) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case formatYAML:
		return writeYAML(w, value)
	default:
		return table(w)
	}
}

// writeYAML round-trips value through JSON so the YAML keys match the API
// field names and embedded structs are flattened.
func writeYAML(w io.Writer, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return enc.Close()
}

// sources unwraps the TMDB values behind filtered candidates
func sources(candidates []filter.Candidate) []any {
	out := make([]any, len(candidates))
	for i, c := range candidates {
		out[i] = c.Source
	}
	return out
}

func printCandidates(w io.Writer, candidates []filter.Candidate, total int) error {
	if len(candidates) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	if total > len(candidates) {
		fmt.Fprintf(w, "Showing %d of %d results:\n\n", len(candidates), total)
	} else {
		fmt.Fprintf(w, "Found %d results:\n\n", len(candidates))
	}

	fmt.Fprintln(w, strings.Repeat("━", tableWidth))
	fmt.Fprintf(w, "%-8s %-48s %-6s %-7s %-6s %s\n", "ID", "TITLE", "YEAR", "TYPE", "RATING", "VOTES")
	fmt.Fprintln(w, strings.Repeat("━", tableWidth))

	for _, c := range candidates {
		year := "-"
		if c.Year > 0 {
			year = fmt.Sprint(c.Year)
		}
		rating := "-"
		if c.VoteCount > 0 {
			rating = fmt.Sprintf("%.1f", c.VoteAverage)
		}
		fmt.Fprintf(w, "%-8d %-48s %-6s %-7s %-6s %d\n", c.ID, truncate(c.Title, 48), year, c.MediaType, rating, c.VoteCount)
	}

	fmt.Fprintln(w, strings.Repeat("━", tableWidth))
	return nil
}

// field prints an aligned "label: value" line, skipping empty values
func field(w io.Writer, label string, value any) {
	s := fmt.Sprint(value)
	if s == "" || s == "0" || s == "[]" {
		return
	}
	fmt.Fprintf(w, "%-14s %s\n", label+":", s)
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("━", tableWidth))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
