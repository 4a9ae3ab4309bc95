package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"VixSentinel/internal/model"
	"VixSentinel/internal/recorder"
)

// FormatTermStructure renders the futures curve as an aligned label/price table.
func FormatTermStructure(ts model.TermStructure) string {
	if len(ts) == 0 {
		return "  (no contracts traded)\n"
	}
	var b strings.Builder
	for _, p := range ts {
		b.WriteString(fmt.Sprintf("  %-8s %8.2f\n", p.Label, p.Price))
	}
	return b.String()
}

// FormatDailyReport renders one day's term structure, its classification, and
// the dependence statistics for the monitored index pair.
func FormatDailyReport(date time.Time, ts model.TermStructure, shape model.TermShape, stats *recorder.DependenceStats) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("VIX daily report | %s\n\n", date.Format("2006-01-02")))

	b.WriteString("Futures term structure:\n")
	b.WriteString(FormatTermStructure(ts))
	b.WriteString(fmt.Sprintf("Shape: %s\n\n", shape))

	b.WriteString(fmt.Sprintf("Index dependence (%d aligned days):\n", stats.Points))
	b.WriteString(fmt.Sprintf("  correlation:        %s\n", formatStat(stats.Correlation)))
	b.WriteString(fmt.Sprintf("  mutual information: %s nats\n", formatStat(stats.MutualInformation)))

	return b.String()
}

func formatStat(f float64) string {
	if math.IsNaN(f) {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", f)
}
