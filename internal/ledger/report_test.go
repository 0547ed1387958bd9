package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatReport_Empty(t *testing.T) {
	_, err := FormatReport(nil)
	assert.ErrorIs(t, err, ErrNoReportData)

	_, err = FormatReport([][]string{})
	assert.ErrorIs(t, err, ErrNoReportData)
}

func TestFormatReport_LinesAndTotal(t *testing.T) {
	rows := [][]string{
		{"Makanan", "mie ayam", "15000", "ShopeePay"},
		{"Transportasi", "bensin", "Rp30.000", "Cash"},
		{"Gaji", "gaji bulanan", "2,500,000", "Mandiri"},
	}

	report, err := FormatReport(rows)
	require.NoError(t, err)

	assert.Contains(t, report, "Makanan - mie ayam: Rp15,000 (ShopeePay)")
	assert.Contains(t, report, "Transportasi - bensin: Rp30,000 (Cash)")
	assert.Contains(t, report, "Gaji - gaji bulanan: Rp2,500,000 (Mandiri)")
	// Salary rows render but never count toward the total.
	assert.Contains(t, report, "*Total Pengeluaran:* Rp45,000")
}

func TestFormatReport_SalaryExclusionIsCaseInsensitive(t *testing.T) {
	rows := [][]string{
		{"gaji", "salary", "1000000", "BCA"},
		{"GAJI", "bonus", "500000", "BCA"},
		{"Makanan", "nasi goreng", "20000", "Cash"},
	}

	report, err := FormatReport(rows)
	require.NoError(t, err)
	assert.Contains(t, report, "*Total Pengeluaran:* Rp20,000")
}

func TestFormatReport_ShortRowsSkipped(t *testing.T) {
	rows := [][]string{
		{"Makanan", "mie ayam", "15000", "ShopeePay"},
		{"Makanan", "incomplete"},
		{},
	}

	report, err := FormatReport(rows)
	require.NoError(t, err)
	assert.NotContains(t, report, "incomplete")
	assert.Contains(t, report, "*Total Pengeluaran:* Rp15,000")
}

func TestFormatReport_BadAmountAbortsWholeReport(t *testing.T) {
	rows := [][]string{
		{"Makanan", "mie ayam", "15000", "ShopeePay"},
		{"Makanan", "rusak", "lima ribu", "Cash"},
	}

	_, err := FormatReport(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lima ribu")
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{15000, "15,000"},
		{2500000, "2,500,000"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatAmount(tc.in))
	}
}

// A parsed amount round-trips through the report's own formatting.
func TestAmountRoundTrip(t *testing.T) {
	parsed, err := ParseLine("gaji bulanan, 7, 2,500,000, 5", DefaultCategories(), DefaultWallets())
	require.NoError(t, err)

	grouped := FormatAmount(parsed.Amount.IntPart())
	assert.Equal(t, "2,500,000", grouped)

	back, err := parseReportAmount("Rp" + grouped)
	require.NoError(t, err)
	assert.Equal(t, parsed.Amount.IntPart(), back)
}
