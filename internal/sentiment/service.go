package sentiment

import (
	"context"
	"math"
	"time"

	"tradecouncil/internal/model"
	"tradecouncil/pkg/news"
	classifier "tradecouncil/pkg/sentiment"
)

const (
	fetchWindowDays = 1
	fetchLimit      = 100
	topArticleCount = 10
)

// Service turns a topic into an aggregate sentiment summary: fetch recent
// headlines, classify each one, tally the votes.
type Service struct {
	fetcher news.Client
	cache   *Cache
}

// NewService builds the aggregator. cache may be nil, caching is optional.
func NewService(fetcher news.Client, cache *Cache) *Service {
	return &Service{fetcher: fetcher, cache: cache}
}

// Summarize returns the sentiment summary for a topic, or nil when no
// articles were retrievable. A nil summary is a legitimate no-data outcome,
// not an error.
func (s *Service) Summarize(ctx context.Context, topic string) (*model.SentimentSummary, error) {
	if s.cache != nil {
		if summary, ok := s.cache.Get(ctx, topic); ok {
			return summary, nil
		}
	}

	headlines, err := s.fetcher.FetchTopic(ctx, topic, fetchWindowDays, fetchLimit)
	if err != nil {
		return nil, err
	}
	if len(headlines) == 0 {
		return nil, nil
	}

	var scored []model.ScoredHeadline
	var agree, disagree, neutral int
	for _, h := range headlines {
		label := classifier.Classify(h.Title)
		vote := model.VoteNeutral
		switch label {
		case model.SentimentBullish:
			agree++
			vote = model.VoteAgree
		case model.SentimentBearish:
			disagree++
			vote = model.VoteDisagree
		default:
			neutral++
		}
		scored = append(scored, model.ScoredHeadline{Headline: h, Sentiment: label, Vote: vote})
	}

	total := len(scored)
	summary := &model.SentimentSummary{
		Topic:       topic,
		Date:        time.Now().Format("02/01/2006"),
		Total:       total,
		Agree:       agree,
		Disagree:    disagree,
		Neutral:     neutral,
		AgreePct:    pct(agree, total),
		DisagreePct: pct(disagree, total),
		NeutralPct:  pct(neutral, total),
		TopArticles: scored[:minInt(topArticleCount, total)],
	}

	switch {
	case agree > disagree:
		summary.Recommendation = model.RecommendBullish
		summary.Confidence = pct(agree-disagree, total)
	case disagree > agree:
		summary.Recommendation = model.RecommendBearish
		summary.Confidence = pct(disagree-agree, total)
	default:
		summary.Recommendation = model.RecommendNeutral
		summary.Confidence = 0
	}

	if s.cache != nil {
		s.cache.Set(ctx, topic, summary)
	}
	return summary, nil
}

func pct(part, total int) float64 {
	return math.Round(float64(part)/float64(total)*1000) / 10
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
