package parser

import (
	"regexp"
	"time"

	"github.com/nmwangi/pesaflow/internal/model"
)

var payBillAnchorRe = regexp.MustCompile(`(?i)for account|pay ?bill`)

var buyGoodsRes = []*regexp.Regexp{
	// Till payment with date and time; the optional noise phrase keeps
	// the till marker out of the captured merchant name.
	regexp.MustCompile(`(?i)confirmed\.?\s*ksh` + reAmount + `\s*paid to\s*(?P<entity>[^.]+?)(?:\s+for buy goods)?\s*\.?\s*on\s*` + reDate + `\s*at\s*` + reClock),
	// Loose fallback anchored on the balance statement.
	regexp.MustCompile(`(?i)ksh` + reAmount + `\s*paid to\s*(?P<entity>[^.0-9]+).*?balance`),
}

func extractBuyGoods(msg string, receivedAt time.Time) *model.ParsedTransaction {
	// Pay-bill messages share the "paid to" vocabulary; their account
	// anchor routes them to the next extractor.
	if payBillAnchorRe.MatchString(msg) {
		return nil
	}
	for _, re := range buyGoodsRes {
		g, ok := groups(re, msg)
		if !ok {
			continue
		}
		return &model.ParsedTransaction{
			Category:     model.CategoryBuyGoods,
			Amount:       model.CategoryBuyGoods.ApplySign(parseAmount(g["amount"])),
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

var payBillRes = []*regexp.Regexp{
	// Standard pay bill with business account reference.
	regexp.MustCompile(`(?i)confirmed\.?\s*ksh` + reAmount + `\s*sent to\s*(?P<entity>[^0-9]+?)\s*for account\s*(?P<account>[A-Za-z0-9]+)\s*on\s*` + reDate + `\s*at\s*` + reClock),
	// Explicit "pay bill" phrasing.
	regexp.MustCompile(`(?i)ksh` + reAmount + `\s*paid to\s*(?P<entity>[^.0-9]+?)\s+for pay ?bill(?:\s+account\s+(?P<account>[A-Za-z0-9]+))?`),
	// Loose fallback without date and time.
	regexp.MustCompile(`(?i)ksh` + reAmount + `\s*sent to\s*(?P<entity>[^.0-9]+?)\s*for account\s*(?P<account>[A-Za-z0-9]+).*?balance`),
}

func extractPayBill(msg string, receivedAt time.Time) *model.ParsedTransaction {
	for _, re := range payBillRes {
		g, ok := groups(re, msg)
		if !ok {
			continue
		}
		return &model.ParsedTransaction{
			Category:     model.CategoryPayBill,
			Amount:       model.CategoryPayBill.ApplySign(parseAmount(g["amount"])),
			Counterparty: cleanCounterparty(g["entity"]),
			AccountRef:   g["account"],
			Balance:      scanBalance(msg),
			Fee:          scanFee(msg),
			Date:         dateField(g, msg, receivedAt),
			Time:         clockField(g, msg, receivedAt),
			Raw:          msg,
		}
	}
	return nil
}

var airtimeRes = []*regexp.Regexp{
	// Self purchase.
	regexp.MustCompile(`(?i)confirmed\.?\s*you bought ksh` + reAmount + `\s*of airtime\s*on\s*` + reDate + `\s*at\s*` + reClock),
	// Purchase for a phone number, own or another subscriber's.
	regexp.MustCompile(`(?i)confirmed\.?\s*ksh` + reAmount + `\s*airtime(?:\s*for\s*` + rePhone + `)?\s*on\s*` + reDate + `\s*at\s*` + reClock),
	// Loose fallback anchored on the balance statement.
	regexp.MustCompile(`(?i)ksh` + reAmount + `\s*(?:of\s*)?airtime.*?balance`),
}

func extractAirtime(msg string, receivedAt time.Time) *model.ParsedTransaction {
	for _, re := range airtimeRes {
		g, ok := groups(re, msg)
		if !ok {
			continue
		}
		return &model.ParsedTransaction{
			Category:     model.CategoryAirtime,
			Amount:       model.CategoryAirtime.ApplySign(parseAmount(g["amount"])),
			Counterparty: "Airtime Purchase",
			Balance:      scanBalance(msg),
			Fee:          scanFee(msg),
			Date:         dateField(g, msg, receivedAt),
			Time:         clockField(g, msg, receivedAt),
			Raw:          msg,
		}
	}
	return nil
}
