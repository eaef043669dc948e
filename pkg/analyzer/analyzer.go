package analyzer

import "strings"

// newsKeywords is the single authoritative list of phrases signalling that a
// question is about current market conditions rather than general finance.
var newsKeywords = []string{
	"current",
	"today",
	"latest",
	"right now",
	"this week",
	"recent",
	"news",
	"market conditions",
	"market now",
	"should i invest",
	"should i buy",
	"should i sell",
	"sensex",
	"nifty",
	"nasdaq",
	"dow jones",
	"s&p",
	"crypto price",
	"stock price",
	"interest rate",
	"inflation",
}

// RequiresNewsContext reports whether a message asks about current market
// conditions and should have recent headlines injected into its prompt.
// A false positive only costs a bounded store read; a false negative only
// omits optional context.
func RequiresNewsContext(message string) bool {
	text := strings.ToLower(strings.TrimSpace(message))
	if text == "" {
		return false
	}

	for _, kw := range newsKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
