// Package logging is a thin wrapper around zerolog, scoped to the
// book package's fatal invariant-violation path. It exists purely so
// a sub-microsecond hot path never has to know about zerolog
// directly — it only ever logs once something has already gone
// fatally wrong.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Default is the package-level logger used for invariant-violation
// reporting. It writes structured JSON to stderr by default; callers
// embedding this module in a larger service can replace it with
// SetOutput before constructing a book.OrderBook.
var Default = zerolog.New(os.Stderr).With().Timestamp().Logger()

// SetOutput reconfigures Default's destination, e.g. to redirect into
// a service's own structured logger.
func SetOutput(w io.Writer) {
	Default = zerolog.New(w).With().Timestamp().Logger()
}

// InvariantViolation logs a fatal internal-bug condition at Error
// level before the caller panics. It never participates in the
// book's successful-path latency — invariants only get checked right
// before something would otherwise corrupt state.
func InvariantViolation(reason string) {
	Default.Error().Str("component", "book").Msg(reason)
}
