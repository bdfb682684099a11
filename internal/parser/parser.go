// Package parser converts raw M-Pesa notification text into structured
// transaction records.
//
// The entry point is Parse: it gates on domain relevance, then tries each
// category extractor in a fixed priority order until one produces a
// record. Extractors are pure functions over the message text and a
// fallback timestamp; a non-match is the normal path, not an error, so
// the package never returns errors across its boundary. Callers receive
// either a fully populated record or nil.
package parser

import (
	"log/slog"
	"strings"
	"time"

	"github.com/nmwangi/pesaflow/internal/model"
)

// extractor recognizes one message category. It returns a fully populated
// record, or nil when the message does not belong to its category.
type extractor func(msg string, receivedAt time.Time) *model.ParsedTransaction

// extractors in priority order. The order resolves overlapping
// vocabulary: merchant payments also say "sent to", so their extractors
// carry more specific anchors, and the generic transfer extractors guard
// their loose fallbacks against merchant anchors. The balance inquiry
// extractor is a deliberate catch-all and must stay last.
var extractors = []extractor{
	extractSent,
	extractReceived,
	extractWithdrawal,
	extractDeposit,
	extractBuyGoods,
	extractPayBill,
	extractAirtime,
	extractSavings,
	extractBankTransfer,
	extractFuliza,
	extractFulizaRepayment,
	extractBalanceInquiry,
}

// Parse converts a single notification message into a structured record.
// receivedAt supplies the date and time when the message text itself
// carries none. A nil result means the text could not be classified;
// that covers empty input, non-financial messages, and any internal
// fault during matching. Parse is deterministic and safe for concurrent
// use.
func Parse(text string, receivedAt time.Time) (txn *model.ParsedTransaction) {
	defer func() {
		if r := recover(); r != nil {
			// The parser sits inline in interactive entry flows; a fault
			// collapses to "no result" rather than propagating.
			slog.Error("parser fault recovered", "panic", r)
			txn = nil
		}
	}()

	msg := strings.TrimSpace(text)
	if msg == "" {
		return nil
	}
	if !IsRelevant(msg) {
		return nil
	}

	for _, extract := range extractors {
		if t := extract(msg, receivedAt); t != nil {
			return t
		}
	}
	return nil
}
