package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitrack/internal/constants"
	"github.com/julianstephens/habitrack/internal/ledger"
)

const barWidth = 20

// RenderChart draws one text bar per chart point, scaled so the goal fills
// barWidth cells. Values above the goal are capped with a "+" marker.
func RenderChart(points []ledger.ChartPoint) string {
	var b strings.Builder
	for _, p := range points {
		cells := 0
		if p.Goal > 0 {
			cells = int(min(max(p.Value/p.Goal, 0), 1) * barWidth)
		}
		over := p.Goal > 0 && p.Value > p.Goal

		bar := strings.Repeat("█", cells) + strings.Repeat("·", barWidth-cells)
		if over {
			bar += "+"
		}
		mark := " "
		if p.Goal > 0 && p.Value >= p.Goal {
			mark = "✓"
		}
		fmt.Fprintf(&b, "%s %s %s %s %s\n", p.Date.Format(constants.DateFormat), p.Day, bar, mark, FormatValue(p.Value))
	}
	return b.String()
}
