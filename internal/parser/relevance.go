package parser

import "strings"

// domainKeywords are the substrings that mark a message as plausibly
// M-Pesa. The gate is deliberately permissive: a false positive just
// falls through every extractor and yields no record.
var domainKeywords = []string{
	"confirmed",
	"ksh",
	"new m-pesa balance",
	"transaction cost",
	"mpesa",
	"sent to",
	"received from",
	"withdraw",
	"deposit",
	"fuliza",
	"overdraft",
	"loan",
	"repay",
	"m-shwari",
	"kcb m-pesa",
	"paid to",
	"transferred",
}

// IsRelevant reports whether the text is plausibly an M-Pesa
// notification. A single case-insensitive keyword hit is enough.
func IsRelevant(msg string) bool {
	lower := strings.ToLower(msg)
	for _, kw := range domainKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
