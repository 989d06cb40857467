package lead

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/sells-group/roofquote/internal/quote"
)

// EstimateBand formats a quote as "$11,550 - $18,711 USD". It returns "" for
// a missing or unpriceable quote.
func EstimateBand(q *quote.Response) string {
	if q == nil || q.UnableToPrice {
		return ""
	}
	band := fmt.Sprintf("$%s - $%s", humanize.Comma(q.LowEstimate), humanize.Comma(q.HighEstimate))
	if q.Currency != "" {
		band += " " + q.Currency
	}
	return band
}

