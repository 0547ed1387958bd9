package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// salaryCategory is excluded from the outflow total, case-insensitively.
const salaryCategory = "Gaji"

var groupedPrinter = message.NewPrinter(language.English)

// FormatAmount renders a whole-Rupiah quantity with thousands grouping,
// e.g. 2500000 -> "2,500,000".
func FormatAmount(n int64) string {
	return groupedPrinter.Sprintf("%d", n)
}

// FormatReport renders raw report rows into the daily expense summary.
// Rows come straight from the report range with columns
// [category, description, amount-text, wallet].
//
// Rows with fewer than 4 cells are skipped. An unparseable amount aborts
// the whole report: the range is produced by this system, so a bad cell
// means the sheet needs a human look, not a partial summary. An empty
// range returns ErrNoReportData.
func FormatReport(rows [][]string) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoReportData
	}

	var sb strings.Builder
	sb.WriteString("📊 *Laporan Pengeluaran Hari Ini:*\n\n")

	var total int64
	for _, row := range rows {
		if len(row) < 4 {
			continue
		}
		category, description, amountText, wallet := row[0], row[1], row[2], row[3]

		amount, err := parseReportAmount(amountText)
		if err != nil {
			return "", fmt.Errorf("parsing report amount %q: %w", amountText, err)
		}

		if !strings.EqualFold(category, salaryCategory) {
			total += amount
		}
		sb.WriteString(fmt.Sprintf("%s - %s: Rp%s (%s)\n", category, description, FormatAmount(amount), wallet))
	}

	sb.WriteString(fmt.Sprintf("\n💸 *Total Pengeluaran:* Rp%s", FormatAmount(total)))
	return sb.String(), nil
}

// parseReportAmount strips the currency marker and both grouping separator
// styles, then parses whole currency units. Report amounts have no
// sub-unit precision.
func parseReportAmount(s string) (int64, error) {
	s = strings.ReplaceAll(s, "Rp", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	return strconv.ParseInt(s, 10, 64)
}
