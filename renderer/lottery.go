package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/logbook"
)

// LotteryMarkdown renders the lottery book with its spend/win totals.
func LotteryMarkdown(records []logbook.LotteryRecord) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Lottery\n\n")
	if len(records) == 0 {
		fmt.Fprintln(&b, "No lottery records.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Draw | Numbers | Spent | Won | Row |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|:---|")
	for _, r := range records {
		numbers := r.Numbers
		if numbers == "" {
			numbers = "—"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			r.Date, r.Draw, numbers,
			logbook.M(r.Spent, "TWD"),
			logbook.M(r.Won, "TWD"),
			r.RowID,
		)
	}

	totals := logbook.TotalLottery(records)
	fmt.Fprintf(&b, "\nTotal spent %s, total won %s, net %s.\n",
		totals.Spent, totals.Won, totals.Net.SignedString())

	return b.String()
}
