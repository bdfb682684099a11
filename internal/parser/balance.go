package parser

import (
	"regexp"
	"time"

	"github.com/nmwangi/pesaflow/internal/model"
)

// Balance inquiries move no money; the stated figure lands in the
// Balance field with a zero amount. The second pattern is a deliberate
// catch-all, which is why this extractor runs last.
var balanceInquiryRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)your m-pesa balance.*?ksh\.?\s*` + reAmount),
	regexp.MustCompile(`(?i)balance.*?ksh\.?\s*` + reAmount),
}

func extractBalanceInquiry(msg string, receivedAt time.Time) *model.ParsedTransaction {
	for _, re := range balanceInquiryRes {
		g, ok := groups(re, msg)
		if !ok {
			continue
		}
		return &model.ParsedTransaction{
			Category:     model.CategoryBalanceInquiry,
			Amount:       0,
			Counterparty: "Balance Inquiry",
			Balance:      parseAmount(g["amount"]),
			Fee:          0,
			Date:         dateField(g, msg, receivedAt),
			Time:         clockField(g, msg, receivedAt),
			Raw:          msg,
		}
	}
	return nil
}
