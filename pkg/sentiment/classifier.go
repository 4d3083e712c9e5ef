package sentiment

import (
	"strings"

	"tradecouncil/internal/model"
)

var bullishKeywords = []string{
	"surge", "soar", "rally", "bull", "bullish", "gain", "gains", "rises", "rising",
	"jumps", "jump", "spikes", "spike", "climbs", "climb", "hits high", "all-time high",
	"ath", "breakout", "momentum", "buy", "buying", "accumulate", "accumulation",
	"uptrend", "positive", "optimistic", "optimism", "profit", "profits", "profitable",
	"boom", "booming", "explode", "explodes", "moon", "mooning", "pump", "pumping",
	"strong", "strength", "outperform", "outperforms", "record", "breakthrough",
	"adoption", "institutional", "etf approved", "approval", "upgrade", "upgraded",
	"support", "demand", "growth", "growing", "recover", "recovery", "rebound",
}

var bearishKeywords = []string{
	"crash", "crashes", "plunge", "plunges", "fall", "falls", "falling", "drop",
	"drops", "dropping", "decline", "declines", "declining", "bear", "bearish",
	"sell", "selling", "selloff", "sell-off", "dump", "dumping", "tank", "tanks",
	"collapse", "collapses", "slump", "slumps", "tumble", "tumbles", "sink", "sinks",
	"downtrend", "negative", "pessimistic", "pessimism", "loss", "losses", "lost",
	"risk", "risky", "danger", "dangerous", "warning", "warn", "warns", "caution",
	"concern", "concerns", "worried", "worry", "fear", "fears", "panic", "volatile",
}

// Classify labels a headline by counting keyword hits from two disjoint
// lists. Strict majority wins; a tie (including no hits) is neutral.
func Classify(text string) string {
	lower := strings.ToLower(text)

	var bullish, bearish int
	for _, keyword := range bullishKeywords {
		if strings.Contains(lower, keyword) {
			bullish++
		}
	}
	for _, keyword := range bearishKeywords {
		if strings.Contains(lower, keyword) {
			bearish++
		}
	}

	switch {
	case bullish > bearish:
		return model.SentimentBullish
	case bearish > bullish:
		return model.SentimentBearish
	default:
		return model.SentimentNeutral
	}
}
