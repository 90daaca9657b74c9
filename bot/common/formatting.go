package common

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatCurrency formats an amount as dollars with thousand separators, e.g. $1,000 or -$500
func FormatCurrency(amount int64) string {
	if amount < 0 {
		return "-$" + humanize.Comma(-amount)
	}
	return "$" + humanize.Comma(amount)
}

// FormatQuantity formats an item count as "<name> x<qty>"
func FormatQuantity(name string, quantity int64) string {
	return fmt.Sprintf("%s x%d", name, quantity)
}

// TruncateLines joins lines with newlines, keeping the result within maxLen
// by dropping trailing lines and appending an ellipsis line
func TruncateLines(lines []string, maxLen int) string {
	const more = "\n…"
	var b strings.Builder
	for idx, line := range lines {
		sep := ""
		if idx > 0 {
			sep = "\n"
		}
		remaining := maxLen - b.Len()
		need := len(sep) + len(line)
		last := idx == len(lines)-1
		if (last && need > remaining) || (!last && need > remaining-len(more)) {
			b.WriteString(more)
			return b.String()
		}
		b.WriteString(sep)
		b.WriteString(line)
	}
	return b.String()
}
