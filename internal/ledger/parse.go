package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsedLine holds the validated fields of one input line. Category and
// wallet are still raw codes; resolving display names and direction is the
// caller's responsibility.
type ParsedLine struct {
	Description  string
	CategoryCode string
	Amount       decimal.Decimal
	WalletCode   string
}

// ParseLine validates one comma-delimited input line of the form
// "deskripsi, kategori_nomor, nominal, saldo_nomor". Failures are returned
// as *ParseError with a user-facing message.
func ParseLine(line string, categories, wallets *Registry) (ParsedLine, error) {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) < 4 {
		return ParsedLine{}, &ParseError{
			Kind:    FormatError,
			Message: "format harus: deskripsi, kategori_nomor, nominal, saldo_nomor",
		}
	}

	// Grouping commas inside the amount ("2,500,000") split into extra
	// fields; everything between the category and the wallet is the amount.
	description, categoryCode, walletCode := parts[0], parts[1], parts[len(parts)-1]
	amountText := strings.Join(parts[2:len(parts)-1], ",")

	if description == "" {
		return ParsedLine{}, &ParseError{
			Kind:    FormatError,
			Message: "deskripsi tidak boleh kosong",
		}
	}
	if _, ok := categories.Resolve(categoryCode); !ok {
		return ParsedLine{}, &ParseError{
			Kind:    InvalidCategory,
			Message: fmt.Sprintf("kategori tidak valid: %s", categoryCode),
		}
	}
	if _, ok := wallets.Resolve(walletCode); !ok {
		return ParsedLine{}, &ParseError{
			Kind:    InvalidWallet,
			Message: fmt.Sprintf("saldo_nomor tidak valid: %s", walletCode),
		}
	}

	amount, err := parseAmount(amountText)
	if err != nil {
		return ParsedLine{}, &ParseError{
			Kind:    InvalidAmount,
			Message: fmt.Sprintf("nominal tidak valid: %s", amountText),
		}
	}

	return ParsedLine{
		Description:  description,
		CategoryCode: categoryCode,
		Amount:       amount,
		WalletCode:   walletCode,
	}, nil
}

// parseAmount normalizes an amount string such as "Rp2,500,000" or
// "15 000" and parses the remainder as a decimal. Negative values are not
// rejected here; whether they should be is an open product question.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(s, "Rp", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	return decimal.NewFromString(s)
}
