package model

const (
	SentimentBullish = "bullish"
	SentimentBearish = "bearish"
	SentimentNeutral = "neutral"

	VoteAgree    = "AGREE"
	VoteDisagree = "DISAGREE"
	VoteNeutral  = "NEUTRAL"

	RecommendBullish = "BULLISH"
	RecommendBearish = "BEARISH"
	RecommendNeutral = "NEUTRAL"
)

// Headline is one raw news item as returned by a news source.
type Headline struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	PubDate string `json:"pub_date"`
	Source  string `json:"source"`
}

// ScoredHeadline is a headline annotated with its sentiment label and vote.
type ScoredHeadline struct {
	Headline
	Sentiment string `json:"sentiment"`
	Vote      string `json:"vote"`
}

type SentimentSummary struct {
	Topic          string           `json:"topic"`
	Date           string           `json:"date"`
	Total          int              `json:"total"`
	Agree          int              `json:"agree"`
	Disagree       int              `json:"disagree"`
	Neutral        int              `json:"neutral"`
	AgreePct       float64          `json:"agree_pct"`
	DisagreePct    float64          `json:"disagree_pct"`
	NeutralPct     float64          `json:"neutral_pct"`
	Recommendation string           `json:"recommendation"`
	Confidence     float64          `json:"confidence"`
	TopArticles    []ScoredHeadline `json:"top_articles"`
}
