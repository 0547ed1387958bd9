package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the D/M/Y text format stored in the date column.
const DateLayout = "02/01/2006"

// User identifies the submitting chat user. Opaque passthrough: the values
// are persisted alongside the transaction but never interpreted.
type User struct {
	ID   int64
	Name string
}

// Transaction is one finalized financial event, ready for the sink.
// Category and wallet hold resolved display names, not codes.
type Transaction struct {
	Date        time.Time
	Description string
	Category    string
	Amount      decimal.Decimal
	Wallet      string
	Direction   Direction
	User        User
}

// Row renders the transaction in backing-store column order.
func (t Transaction) Row() []any {
	return []any{
		t.Date.Format(DateLayout),
		t.Category,
		t.Description,
		t.Amount.String(),
		t.Wallet,
		string(t.Direction),
		t.User.ID,
		t.User.Name,
	}
}
