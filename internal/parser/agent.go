package parser

import (
	"regexp"
	"time"

	"github.com/nmwangi/pesaflow/internal/model"
)

var withdrawalRes = []*regexp.Regexp{
	// Agent cash-out with date and time.
	regexp.MustCompile(`(?i)confirmed\.?\s*ksh` + reAmount + `\s*withdrawn from\s*(?P<entity>[^0-9\n]+?)\s*on\s*` + reDate + `\s*at\s*` + reClock),
	// Agent-number leading format: "Confirmed. on D/M/YY at H:MM PM
	// Withdraw KshX from 123456 - AGENT".
	regexp.MustCompile(`(?i)confirmed\.?\s*on\s*` + reDate + `\s*at\s*` + reClock + `\s*withdraw\s*ksh` + reAmount + `\s*from\s*(?P<entity>\d+\s*-\s*[^.]+?)\s*(?:\.|new m-pesa balance)`),
	// No date token; anchored on the balance statement instead.
	regexp.MustCompile(`(?i)confirmed\.?\s*ksh` + reAmount + `\s*withdrawn from\s*(?P<entity>[^0-9\n]+?)\s*\.?\s*new m-pesa balance`),
	// Loose fallback.
	regexp.MustCompile(`(?i)withdrawn?\s*ksh` + reAmount + `\s*from\s*(?P<entity>[^.0-9]+).*?balance`),
}

func extractWithdrawal(msg string, receivedAt time.Time) *model.ParsedTransaction {
	for _, re := range withdrawalRes {
		g, ok := groups(re, msg)
		if !ok {
			continue
		}
		return &model.ParsedTransaction{
			Category:     model.CategoryWithdrawal,
			Amount:       model.CategoryWithdrawal.ApplySign(parseAmount(g["amount"])),
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

var depositRes = []*regexp.Regexp{
	// Agent cash-in with date and time.
	regexp.MustCompile(`(?i)confirmed\.?\s*ksh` + reAmount + `\s*deposited to\s*(?P<entity>[^0-9\n]+?)\s*on\s*` + reDate + `\s*at\s*` + reClock),
	// Agent-number leading format: "Confirmed. on D/M/YY at H:MM PM Give
	// KshX cash to 123456 - AGENT".
	regexp.MustCompile(`(?i)confirmed\.?\s*on\s*` + reDate + `\s*at\s*` + reClock + `\s*give\s*ksh` + reAmount + `\s*cash to\s*(?P<entity>\d+\s*-\s*[^.]+?)\s*(?:\.|new m-pesa balance)`),
	// No date token; anchored on the balance statement instead.
	regexp.MustCompile(`(?i)confirmed\.?\s*ksh` + reAmount + `\s*deposited to\s*(?P<entity>[^0-9\n]+?)\s*\.?\s*new m-pesa balance`),
	// Loose fallback; the agent is often unnamed here.
	regexp.MustCompile(`(?i)deposited ksh` + reAmount + `.*?balance`),
}

func extractDeposit(msg string, receivedAt time.Time) *model.ParsedTransaction {
	for _, re := range depositRes {
		g, ok := groups(re, msg)
		if !ok {
			continue
		}
		entity := g["entity"]
		if entity == "" {
			entity = "M-Pesa Agent"
		}
		return &model.ParsedTransaction{
			Category:     model.CategoryDeposit,
			Amount:       model.CategoryDeposit.ApplySign(parseAmount(g["amount"])),
			Counterparty: cleanCounterparty(entity),
			Balance:      scanBalance(msg),
			Fee:          scanFee(msg),
			Date:         dateField(g, msg, receivedAt),
			Time:         clockField(g, msg, receivedAt),
			Raw:          msg,
		}
	}
	return nil
}
