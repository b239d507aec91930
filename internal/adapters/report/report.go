// Package report renders evaluation results for the command line.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"svw.info/eggdrop/internal/domain"
	"svw.info/eggdrop/internal/evaluator"
	"svw.info/eggdrop/internal/ports"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	worstStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true).
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

var (
	_ ports.Reporter = Text{}
	_ ports.Reporter = JSON{}
)

// New returns the reporter for format: "json" or "text".
func New(format string) (ports.Reporter, error) {
	switch format {
	case "text", "":
		return Text{}, nil
	case "json":
		return JSON{Indent: "  "}, nil
	}
	return nil, fmt.Errorf("unknown report format %q", format)
}

// Text renders results as a bordered table.
type Text struct{}

func (Text) Results(w io.Writer, results []domain.Result) error {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Strategy,
			strconv.Itoa(r.Worst.Threshold),
			strconv.Itoa(r.Worst.Probes),
			bound(r.Bound),
		})
	}
	t := newTable("strategy", "worst threshold", "probes", "bound").Rows(rows...)
	_, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render(fmt.Sprintf("Worst cases over %d levels", domain.Levels)), t.String())
	return err
}

// Sweep renders one row per threshold and highlights the worst one.
func (Text) Sweep(w io.Writer, strategy string, cases []domain.Case) error {
	worst := evaluator.Worst(cases)
	rows := make([][]string, 0, len(cases))
	for _, c := range cases {
		rows = append(rows, []string{strconv.Itoa(c.Threshold), strconv.Itoa(c.Probes)})
	}
	t := newTable("threshold", "probes").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(cases) && cases[row] == worst:
				return worstStyle
			}
			return cellStyle
		})
	_, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render(strategy), t.String())
	return err
}

func bound(b int) string {
	if b <= 0 {
		return "-"
	}
	return strconv.Itoa(b)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// JSON writes results as a JSON document.
type JSON struct {
	Indent string
}

type sweepDoc struct {
	Strategy string        `json:"strategy"`
	Cases    []domain.Case `json:"cases"`
}

func (j JSON) Results(w io.Writer, results []domain.Result) error {
	if results == nil {
		results = []domain.Result{}
	}
	return j.encode(w, results)
}

func (j JSON) Sweep(w io.Writer, strategy string, cases []domain.Case) error {
	return j.encode(w, sweepDoc{Strategy: strategy, Cases: cases})
}

func (j JSON) encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", j.Indent)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
