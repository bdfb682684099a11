package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/nmwangi/pesaflow/internal/model"
)

// M-Shwari moves money between the M-Pesa wallet and a savings product.
// One extractor handles both directions; the phrasing decides which.
var mshwariRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)confirmed\.?\s*ksh` + reAmount + `\s*transferred (?:to|from) m-shwari (?:lock savings|account)\s*on\s*` + reDate + `\s*at\s*` + reClock),
	regexp.MustCompile(`(?i)ksh\.?` + reAmount + `\s*has been moved from your lock savings account to your m-shwari account`),
}

func extractSavings(msg string, receivedAt time.Time) *model.ParsedTransaction {
	for _, re := range mshwariRes {
		g, ok := groups(re, msg)
		if !ok {
			continue
		}

		lower := strings.ToLower(msg)
		category := model.CategorySavingsOut
		label := "M-Shwari Savings"
		switch {
		case strings.Contains(lower, "transferred from m-shwari"):
			category = model.CategorySavingsIn
			label = "M-Shwari Withdrawal"
		case strings.Contains(lower, "lock savings"):
			label = "M-Shwari Lock Savings"
		}

		return &model.ParsedTransaction{
			Category:     category,
			Amount:       category.ApplySign(parseAmount(g["amount"])),
			Counterparty: label,
			Balance:      scanBalance(msg),
			Fee:          scanFee(msg),
			Date:         dateField(g, msg, receivedAt),
			Time:         clockField(g, msg, receivedAt),
			Raw:          msg,
		}
	}
	return nil
}

// KCB M-Pesa messages cover wallet withdrawals from the bank account and
// fixed/target savings operations. Directions follow the phrasing, the
// amounts appear as either Ksh or KES.
var kcbRes = []*regexp.Regexp{
	// The provider's own messages misspell "transferred"; accept both.
	regexp.MustCompile(`(?i)confirmed\.?\s*you have transferr?ed ksh` + reAmount + `\s*from your kcb m-pesa account\s*on\s*` + reDate + `\s*at\s*` + reClock),
	regexp.MustCompile(`(?i)dear\s*[^,]+,\s*you have successfully opened a (?P<product>fixed|target) savings account.*?kes\s*` + reAmount),
	regexp.MustCompile(`(?i)dear\s*[^,]+,\s*you have unlocked your (?P<product>fixed|target) savings account.*?kes\s*` + reAmount),
	regexp.MustCompile(`(?i)dear\s*[^,]+,\s*your target saving top up of kes\s*` + reAmount + `\s*has been received`),
}

func extractBankTransfer(msg string, receivedAt time.Time) *model.ParsedTransaction {
	for _, re := range kcbRes {
		g, ok := groups(re, msg)
		if !ok {
			continue
		}

		lower := strings.ToLower(msg)
		product := titleCase(g["product"])
		category := model.CategorySavingsOut
		label := "KCB M-Pesa"
		switch {
		case strings.Contains(lower, "from your kcb"):
			category = model.CategorySavingsIn
			label = "KCB M-Pesa Withdrawal"
		case strings.Contains(lower, "opened a"):
			label = "KCB " + product + " Savings"
		case strings.Contains(lower, "unlocked"):
			category = model.CategorySavingsIn
			label = "KCB " + product + " Savings Unlock"
		case strings.Contains(lower, "top up"):
			label = "KCB Target Savings Top Up"
		}

		return &model.ParsedTransaction{
			Category:     category,
			Amount:       category.ApplySign(parseAmount(g["amount"])),
			Counterparty: label,
			Balance:      scanBalance(msg),
			Fee:          scanFee(msg),
			Date:         dateField(g, msg, receivedAt),
			Time:         clockField(g, msg, receivedAt),
			Raw:          msg,
		}
	}
	return nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
