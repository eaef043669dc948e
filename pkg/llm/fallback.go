package llm

import "strings"

type cannedAnswer struct {
	keywords []string
	text     string
}

// Canned answers used when every generator fails. Keyword-matched so the user
// still gets topical guidance instead of an error.
var cannedAnswers = []cannedAnswer{
	{
		keywords: []string{"mutual fund", "mutual funds"},
		text: "Mutual funds pool money from many investors and invest it across stocks, " +
			"bonds, or both, managed by a professional fund manager. Equity funds aim for " +
			"long-term growth with higher ups and downs, while debt funds focus on steadier, " +
			"more modest returns. A good starting point is matching the fund type to your " +
			"time horizon and comfort with risk. Remember that all funds carry market risk, " +
			"so review the fund's track record and expense ratio before investing.",
	},
	{
		keywords: []string{"sip", "systematic investment"},
		text: "A SIP (Systematic Investment Plan) lets you invest a fixed amount into a " +
			"mutual fund at regular intervals, usually monthly. It builds discipline, spreads " +
			"your purchases across market highs and lows, and lets compounding work over time. " +
			"Most funds let you start with small monthly amounts, and you can pause or adjust " +
			"the SIP whenever your situation changes. It suits long-term goals best, so give " +
			"it several years rather than judging it on short-term swings.",
	},
	{
		keywords: []string{"stock", "share", "equity"},
		text: "Buying a stock means owning a small piece of a company, so its value moves " +
			"with the company's performance and overall market sentiment. Stocks historically " +
			"reward patient, long-term investors but can be volatile in the short run. " +
			"Spreading money across companies and sectors reduces the risk of any single bet " +
			"going wrong. Only invest money you will not need soon, and consider index funds " +
			"if picking individual stocks feels overwhelming.",
	},
	{
		keywords: []string{"fixed deposit", "fd ", " fd?", "recurring deposit"},
		text: "Fixed deposits offer a guaranteed interest rate for a fixed term, making them " +
			"a low-risk place for money you cannot afford to lose. The trade-off is that " +
			"returns are modest and may barely beat inflation over long periods. They work " +
			"well for short-term goals and emergency buffers, while longer-term goals usually " +
			"need some growth assets alongside. Compare rates across banks and check the " +
			"penalty for early withdrawal before locking in.",
	},
	{
		keywords: []string{"emergency fund", "savings", "save money"},
		text: "An emergency fund is three to six months of essential expenses kept somewhere " +
			"safe and instantly accessible, like a savings account or liquid fund. It is the " +
			"first thing to build before investing, because it stops you from selling " +
			"investments at a bad time when surprises hit. Automate a small transfer each " +
			"month until the fund is full, then leave it alone. Top it back up whenever you " +
			"dip into it.",
	},
	{
		keywords: []string{"crypto", "bitcoin"},
		text: "Cryptocurrencies are highly volatile and largely unregulated, so treat them " +
			"as speculative rather than as a core investment. Prices can swing dramatically " +
			"in days, and past rallies are no guarantee of future gains. If you choose to " +
			"participate, limit it to a small share of your portfolio that you can afford to " +
			"lose entirely. Build your foundation of emergency savings and diversified funds " +
			"first.",
	},
}

const defaultAnswer = "That's a great financial question. As a general principle: spend " +
	"less than you earn, keep an emergency fund of three to six months of expenses, and " +
	"invest the rest regularly in diversified, low-cost instruments suited to your time " +
	"horizon. Markets reward patience more than timing. For decisions specific to your " +
	"situation, a registered financial adviser can give personalised guidance."

// FallbackAnswer returns a rule-based response for the given user message.
// It always returns non-empty text.
func FallbackAnswer(message string) string {
	text := strings.ToLower(message)
	for _, ca := range cannedAnswers {
		for _, kw := range ca.keywords {
			if strings.Contains(text, kw) {
				return ca.text
			}
		}
	}
	return defaultAnswer
}
