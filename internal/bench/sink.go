package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table is the tabular form of a set of rows.
type Table struct {
	Columns []string
	Rows    [][]string
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}

// CompareTable has the varied parameter in the first column followed by the
// average query latency of every target, in microseconds.
func CompareTable(param string, rows []Row) Table {
	t := Table{Columns: []string{param}}
	if len(rows) > 0 {
		for _, r := range rows[0].Results {
			t.Columns = append(t.Columns, r.Target)
		}
	}
	for _, r := range rows {
		line := []string{strconv.Itoa(r.Param)}
		for _, res := range r.Results {
			line = append(line, ftoa(res.AvgLatency))
		}
		t.Rows = append(t.Rows, line)
	}
	return t
}

// StatsTable has one line per (parameter, target) pair with latency, average
// depth and the number of splays.
func StatsTable(param string, rows []Row) Table {
	t := Table{Columns: []string{param, "target", "avg_query_time(microseconds)", "avg_depth", "splay_count"}}
	for _, r := range rows {
		for _, res := range r.Results {
			t.Rows = append(t.Rows, []string{
				strconv.Itoa(r.Param), res.Target, ftoa(res.AvgLatency), ftoa(res.AvgDepth),
				strconv.FormatUint(res.Splays, 10),
			})
		}
	}
	return t
}

// SweepTable is the threshold sweep layout: threshold, latency, depth, splays.
func SweepTable(rows []Row) Table {
	t := Table{Columns: []string{"depth_threshold", "avg_query_time(microseconds)", "avg_depth", "splay_count"}}
	for _, r := range rows {
		for _, res := range r.Results {
			t.Rows = append(t.Rows, []string{
				strconv.Itoa(r.Param), ftoa(res.AvgLatency), ftoa(res.AvgDepth), strconv.FormatUint(res.Splays, 10),
			})
		}
	}
	return t
}

// Sink writes a Table somewhere.
type Sink interface {
	Write(t Table) error
}

// CSVSink writes comma separated values with a header line.
type CSVSink struct {
	W io.Writer
}

func (s CSVSink) Write(t Table) error {
	w := csv.NewWriter(s.W)
	if err := w.Write(t.Columns); err != nil {
		return err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return err
	}
	return w.Error()
}

// TableSink renders a bordered table for terminals.
type TableSink struct {
	W io.Writer
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

func (s TableSink) Write(t Table) error {
	tb := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(t.Columns...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, err := fmt.Fprintln(s.W, tb.Render())
	return err
}

// NewSink by format name: "csv" or "table".
func NewSink(format string, w io.Writer) (Sink, error) {
	switch format {
	case "csv":
		return CSVSink{w}, nil
	case "table":
		return TableSink{w}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}
