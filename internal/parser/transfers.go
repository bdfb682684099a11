package parser

import (
	"regexp"
	"time"

	"github.com/nmwangi/pesaflow/internal/model"
)

// merchantAnchorRe marks phrasing specific to merchant payments. The
// loose peer-transfer fallbacks skip any message carrying one of these
// anchors so that pay-bill and buy-goods messages, which also say "sent
// to", reach their own extractors.
var merchantAnchorRe = regexp.MustCompile(`(?i)for account|pay ?bill|paid to|buy goods`)

// sentRes, most specific first. The last entry is a loose fallback that
// tolerates missing phone numbers and date tokens.
var sentRes = []*regexp.Regexp{
	// Standard peer transfer with recipient phone number.
	regexp.MustCompile(`(?i)confirmed\.?\s*ksh` + reAmount + `\s*sent to\s*(?P<entity>[^0-9]+?)\s*` + rePhone + `\s*on\s*` + reDate + `\s*at\s*` + reClock),
	// Pochi la Biashara: recipient named without a phone number.
	regexp.MustCompile(`(?i)confirmed\.?\s*ksh` + reAmount + `\s*sent to\s*(?P<entity>[^0-9]+?)\s*on\s*` + reDate + `\s*at\s*` + reClock),
	// Loose fallback anchored on the trailing balance statement.
	regexp.MustCompile(`(?i)ksh` + reAmount + `\s*sent to\s*(?P<entity>[^.0-9]+).*?balance`),
}

func extractSent(msg string, receivedAt time.Time) *model.ParsedTransaction {
	for i, re := range sentRes {
		if i == len(sentRes)-1 && merchantAnchorRe.MatchString(msg) {
			break
		}
		g, ok := groups(re, msg)
		if !ok {
			continue
		}
		return &model.ParsedTransaction{
			Category:     model.CategorySent,
			Amount:       model.CategorySent.ApplySign(parseAmount(g["amount"])),
			Counterparty: cleanCounterparty(g["entity"]),
			Balance:      scanBalance(msg),
			Fee:          scanFee(msg),
			Date:         dateField(g, msg, receivedAt),
			Time:         clockField(g, msg, receivedAt),
			Raw:          msg,
		}
	}
	return nil
}

var receivedRes = []*regexp.Regexp{
	// Standard peer receipt with sender phone number.
	regexp.MustCompile(`(?i)confirmed\.?\s*you have received ksh` + reAmount + `\s*from\s*(?P<entity>[^0-9]+?)\s*` + rePhone + `\s*on\s*` + reDate + `\s*at\s*` + reClock),
	// Sender named without a phone number (business receipts).
	regexp.MustCompile(`(?i)confirmed\.?\s*you have received ksh` + reAmount + `\s*from\s*(?P<entity>[^0-9]+?)\s*on\s*` + reDate + `\s*at\s*` + reClock),
	// Loose fallback anchored on the trailing balance statement.
	regexp.MustCompile(`(?i)received ksh` + reAmount + `\s*from\s*(?P<entity>[^.0-9]+).*?balance`),
}

func extractReceived(msg string, receivedAt time.Time) *model.ParsedTransaction {
	for _, re := range receivedRes {
		g, ok := groups(re, msg)
		if !ok {
			continue
		}
		return &model.ParsedTransaction{
			Category:     model.CategoryReceived,
			Amount:       model.CategoryReceived.ApplySign(parseAmount(g["amount"])),
			Counterparty: cleanCounterparty(g["entity"]),
			Balance:      scanBalance(msg),
			Fee:          0, // receiving money carries no cost
			Date:         dateField(g, msg, receivedAt),
			Time:         clockField(g, msg, receivedAt),
			Raw:          msg,
		}
	}
	return nil
}
