// Package report renders a RunStats from a completed crawl as a single
// terse summary table. It deliberately does not offer a multi-format,
// multi-mode export surface (JSON/CSV/XLSX, per-year, per-uid) — just the
// one thing an operator actually wants after a crawl finishes: how many of
// what, and how long it took.
package report

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	crawl "github.com/andysalerno/async-crawl"
)

// Summary renders stats as a human-readable table: run id, strategy,
// worker count, elapsed time, and counts by entry kind.
func Summary(stats *crawl.RunStats) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Metric", "Value"})

	t.AppendRows([]table.Row{
		{"Run ID", stats.RunID.String()},
		{"Strategy", stats.Strategy.String()},
		{"Workers", stats.Workers},
		{"Elapsed", stats.Elapsed.String()},
		{"Files", stats.Files()},
		{"Symlinks", stats.Symlinks()},
		{"Other", stats.Others()},
		{"Directories expanded", stats.DirsExpanded()},
		{"Enumeration errors", stats.Errors()},
		{"Duplicate hardlinks skipped", stats.Duplicates()},
	})

	t.SetStyle(table.StyleColoredDark)
	return fmt.Sprintf("%s\n", t.Render())
}
