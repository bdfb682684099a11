package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Shared pattern fragments. Every extractor pattern is assembled from
// these so that amounts, dates and clock times tokenize identically
// across categories.
const (
	reAmount = `(?P<amount>[\d,]+\.?\d*)`
	reDate   = `(?P<date>\d{1,2}/\d{1,2}/\d{2,4})`
	reClock  = `(?P<time>\d{1,2}:\d{2}\s*[ap]m)`
	rePhone  = `(?:\+?254\d{9}|0[17]\d{8})`
)

var (
	collapseRe = regexp.MustCompile(`\s+`)
	edgePuncRe = regexp.MustCompile(`^\W+|\W+$`)

	looseDateRe  = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`)
	looseClockRe = regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*[ap]m`)

	balanceRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)new m-pesa balance is ksh\.?\s*` + reAmount),
		regexp.MustCompile(`(?i)m-pesa balance is ksh\.?\s*` + reAmount),
		regexp.MustCompile(`(?i)balance is ksh\.?\s*` + reAmount),
	}

	feeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)transaction cost,?\s*ksh\.?\s*` + reAmount),
		regexp.MustCompile(`(?i)cost,?\s*ksh\.?\s*` + reAmount),
		regexp.MustCompile(`(?i)charge,?\s*ksh\.?\s*` + reAmount),
		regexp.MustCompile(`(?i)fee,?\s*ksh\.?\s*` + reAmount),
	}
)

// groups matches msg against re and returns the named capture groups.
// Positional captures are deliberately not exposed: every extractor
// pattern names the groups it needs.
func groups(re *regexp.Regexp, msg string) (map[string]string, bool) {
	m := re.FindStringSubmatch(msg)
	if m == nil {
		return nil, false
	}
	out := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" && m[i] != "" {
			out[name] = m[i]
		}
	}
	return out, true
}

// parseAmount converts a textual amount with optional thousands
// separators into a float. An unparseable token yields 0 rather than
// failing the whole extraction.
func parseAmount(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

// cleanCounterparty normalizes a captured counterparty label: collapse
// whitespace, strip edge punctuation, uppercase. A blank capture falls
// back to "Unknown".
func cleanCounterparty(name string) string {
	name = collapseRe.ReplaceAllString(strings.TrimSpace(name), " ")
	name = edgePuncRe.ReplaceAllString(name, "")
	if name == "" {
		return "Unknown"
	}
	return strings.ToUpper(name)
}

// parseDate converts a D/M/YY or D/M/YYYY token into an ISO date.
// Two-digit years are assumed to be in the 2000s. An absent or
// malformed token falls back to the received timestamp's date.
func parseDate(dateStr string, fallback time.Time) string {
	if dateStr == "" {
		return fallback.Format("2006-01-02")
	}
	parts := strings.Split(dateStr, "/")
	if len(parts) != 3 {
		return fallback.Format("2006-01-02")
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return fallback.Format("2006-01-02")
	}
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return fallback.Format("2006-01-02")
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

// parseClock normalizes an H:MM AM/PM token: passed through uppercased
// and trimmed, or rendered from the received timestamp when absent.
func parseClock(timeStr string, fallback time.Time) string {
	if timeStr == "" {
		return formatClock(fallback)
	}
	return strings.ToUpper(strings.TrimSpace(timeStr))
}

func formatClock(t time.Time) string {
	return t.Format("3:04 PM")
}

// scanDate finds a date token anywhere in the message. Used by
// extractors whose primary pattern does not capture one.
func scanDate(msg string, fallback time.Time) string {
	return parseDate(looseDateRe.FindString(msg), fallback)
}

// scanClock finds a clock token anywhere in the message.
func scanClock(msg string, fallback time.Time) string {
	return parseClock(looseClockRe.FindString(msg), fallback)
}

// dateField resolves a record's date: the pattern's own capture wins,
// then any date token elsewhere in the message, then the received
// timestamp.
func dateField(g map[string]string, msg string, fallback time.Time) string {
	if d := g["date"]; d != "" {
		return parseDate(d, fallback)
	}
	return scanDate(msg, fallback)
}

// clockField resolves a record's clock time the same way.
func clockField(g map[string]string, msg string, fallback time.Time) string {
	if t := g["time"]; t != "" {
		return parseClock(t, fallback)
	}
	return scanClock(msg, fallback)
}

// scanBalance extracts the stated running balance, most specific phrasing
// first. 0 when the message states none.
func scanBalance(msg string) float64 {
	for _, re := range balanceRes {
		if g, ok := groups(re, msg); ok {
			return parseAmount(g["amount"])
		}
	}
	return 0
}

// scanFee extracts the stated transaction cost. 0 when the message
// states none.
func scanFee(msg string) float64 {
	for _, re := range feeRes {
		if g, ok := groups(re, msg); ok {
			return parseAmount(g["amount"])
		}
	}
	return 0
}
