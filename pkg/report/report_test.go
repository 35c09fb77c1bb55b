package report

import (
	"strings"
	"testing"

	crawl "github.com/andysalerno/async-crawl"
)

func TestSummaryContainsCounts(t *testing.T) {
	stats := crawl.NewRunStats(crawl.StrategyPool, 4)

	out := Summary(stats)

	for _, want := range []string{"Run ID", "Strategy", "Workers", "Files", "Symlinks", "Enumeration errors"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "pool") {
		t.Errorf("summary missing strategy name:\n%s", out)
	}
}
