package ledger

import "errors"

// ErrorKind classifies a per-line parse failure.
type ErrorKind string

const (
	FormatError     ErrorKind = "format"
	InvalidCategory ErrorKind = "invalid_category"
	InvalidWallet   ErrorKind = "invalid_wallet"
	InvalidAmount   ErrorKind = "invalid_amount"
)

// ParseError is a recoverable, per-line validation failure. The message is
// shown to the user verbatim in the batch reply.
type ParseError struct {
	Kind    ErrorKind
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// ErrNoReportData marks an empty report range. It is a distinct state, not
// a failure: the caller renders a dedicated "no data" message.
var ErrNoReportData = errors.New("no report data available")
