package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/KaramelBytes/sheetstat/internal/table"
)

// Text renders the column's summary line.
func (c ColumnSummary) Text() string {
	head := fmt.Sprintf("Column '%s' (%s): %d missing (%.1f%%)", c.Name, c.Dtype, c.Missing, c.MissingPct)
	if c.Kind == table.Numeric && c.Stats != nil {
		s := c.Stats
		return fmt.Sprintf("%s, mean=%s, median=%s, std=%s, min=%s, max=%s",
			head, fixed2(s.Mean), fixed2(s.Median), fixed2(s.Std), fixed2(s.Min), fixed2(s.Max))
	}
	parts := make([]string, len(c.TopValues))
	for i, tv := range c.TopValues {
		parts[i] = fmt.Sprintf("%s(%d)", tv.Value, tv.Count)
	}
	return head + ", top values: " + strings.Join(parts, ", ")
}

// fixed2 formats with two decimals, spelling non-finite values nan, inf and -inf.
func fixed2(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return fmt.Sprintf("%.2f", v)
}
