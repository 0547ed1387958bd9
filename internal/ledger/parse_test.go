package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine_Valid(t *testing.T) {
	categories := DefaultCategories()
	wallets := DefaultWallets()

	tests := []struct {
		name         string
		line         string
		description  string
		categoryCode string
		amount       string
		walletCode   string
	}{
		{
			name:         "plain line",
			line:         "mie ayam, 1, 15000, 2",
			description:  "mie ayam",
			categoryCode: "1",
			amount:       "15000",
			walletCode:   "2",
		},
		{
			name:         "currency marker",
			line:         "bensin, 3, Rp25000, 1",
			description:  "bensin",
			categoryCode: "3",
			amount:       "25000",
			walletCode:   "1",
		},
		{
			name:         "grouping separators in amount",
			line:         "gaji bulanan, 7, 2,500,000, 5",
			description:  "gaji bulanan",
			categoryCode: "7",
			amount:       "2500000",
			walletCode:   "5",
		},
		{
			name:         "marker and separators together",
			line:         "sewa kost, 5, Rp1,200,000, 6",
			description:  "sewa kost",
			categoryCode: "5",
			amount:       "1200000",
			walletCode:   "6",
		},
		{
			name:         "untrimmed fields",
			line:         "  kopi , 1 ,  8000 , 3 ",
			description:  "kopi",
			categoryCode: "1",
			amount:       "8000",
			walletCode:   "3",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseLine(tc.line, categories, wallets)
			require.NoError(t, err)
			assert.Equal(t, tc.description, parsed.Description)
			assert.Equal(t, tc.categoryCode, parsed.CategoryCode)
			assert.Equal(t, tc.walletCode, parsed.WalletCode)
			want, err := decimal.NewFromString(tc.amount)
			require.NoError(t, err)
			assert.True(t, parsed.Amount.Equal(want), "amount %s != %s", parsed.Amount, want)
		})
	}
}

func TestParseLine_Errors(t *testing.T) {
	categories := DefaultCategories()
	wallets := DefaultWallets()

	tests := []struct {
		name     string
		line     string
		kind     ErrorKind
		contains string
	}{
		{
			name:     "too few fields",
			line:     "bad,line",
			kind:     FormatError,
			contains: "format harus",
		},
		{
			name:     "single field",
			line:     "just a sentence",
			kind:     FormatError,
			contains: "format harus",
		},
		{
			name:     "empty description",
			line:     ", 1, 15000, 2",
			kind:     FormatError,
			contains: "deskripsi",
		},
		{
			name:     "unregistered category",
			line:     "mie ayam, 42, 15000, 2",
			kind:     InvalidCategory,
			contains: "42",
		},
		{
			name:     "unregistered wallet",
			line:     "mie ayam, 1, 15000, 99",
			kind:     InvalidWallet,
			contains: "99",
		},
		{
			name:     "non-numeric amount",
			line:     "mie ayam, 1, lima belas ribu, 2",
			kind:     InvalidAmount,
			contains: "lima belas ribu",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLine(tc.line, categories, wallets)
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tc.kind, parseErr.Kind)
			assert.Contains(t, parseErr.Message, tc.contains)
		})
	}
}

func TestParseLine_NegativeAmountPasses(t *testing.T) {
	// Negative amounts are deliberately not rejected at this stage.
	parsed, err := ParseLine("koreksi, 1, -5000, 2", DefaultCategories(), DefaultWallets())
	require.NoError(t, err)
	assert.True(t, parsed.Amount.Equal(decimal.NewFromInt(-5000)))
}
