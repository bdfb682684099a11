package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/nmwangi/pesaflow/internal/model"
)

// Fuliza overdraft notices. The same leading phrasing covers a draw-down
// and a pure interest charge; the "interest charged" keyword separates
// them. Draw-downs are money in, charges move nothing.
var fulizaRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)confirmed\.?\s*fuliza m-pesa amount is ksh\.?\s*` + reAmount + `.*?total fuliza m-pesa outstanding amount is ksh\.?\s*(?P<outstanding>[\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)confirmed\.?\s*you have received ksh` + reAmount + `\s*fuliza.*?new m-pesa balance is ksh[\d,]+\.?\d*.*?overdraft balance is ksh\.?\s*(?P<outstanding>[\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)fuliza.*?ksh\.?\s*` + reAmount + `.*?balance.*?ksh[\d,]+\.?\d*.*?overdraft.*?ksh\.?\s*(?P<outstanding>[\d,]+\.?\d*)`),
}

func extractFuliza(msg string, receivedAt time.Time) *model.ParsedTransaction {
	for _, re := range fulizaRes {
		g, ok := groups(re, msg)
		if !ok {
			continue
		}

		category := model.CategoryLoanDisbursement
		label := "Fuliza Overdraft"
		if strings.Contains(strings.ToLower(msg), "interest charged") {
			category = model.CategoryFulizaCharge
			label = "Fuliza Interest Charge"
		}

		return &model.ParsedTransaction{
			Category:        category,
			Amount:          category.ApplySign(parseAmount(g["amount"])),
			Counterparty:    label,
			Balance:         scanBalance(msg),
			Fee:             0,
			OutstandingLoan: parseAmount(g["outstanding"]),
			Date:            dateField(g, msg, receivedAt),
			Time:            clockField(g, msg, receivedAt),
			Raw:             msg,
		}
	}
	return nil
}

// Repayments come out of the wallet, in full or in part.
var fulizaRepayRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)confirmed\.?\s*ksh\.?\s*` + reAmount + `\s*from your m-pesa has been used to (?:fully|partially) pay your outstanding fuliza m-pesa`),
	regexp.MustCompile(`(?i)repaid.*?fuliza.*?ksh\.?\s*` + reAmount + `.*?balance`),
}

func extractFulizaRepayment(msg string, receivedAt time.Time) *model.ParsedTransaction {
	for _, re := range fulizaRepayRes {
		g, ok := groups(re, msg)
		if !ok {
			continue
		}

		label := "Fuliza Partial Repayment"
		if strings.Contains(strings.ToLower(msg), "fully pay") {
			label = "Fuliza Full Repayment"
		}

		return &model.ParsedTransaction{
			Category:     model.CategoryLoanRepayment,
			Amount:       model.CategoryLoanRepayment.ApplySign(parseAmount(g["amount"])),
			Counterparty: label,
			Balance:      scanBalance(msg),
			Fee:          0,
			Date:         dateField(g, msg, receivedAt),
			Time:         clockField(g, msg, receivedAt),
			Raw:          msg,
		}
	}
	return nil
}
