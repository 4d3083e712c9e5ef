package news

import (
	"context"

	"tradecouncil/internal/model"
)

// Client fetches recent headlines for a topic. days bounds the lookback
// window and limit caps the number of headlines returned. An empty result
// with a nil error is a legitimate no-news outcome.
type Client interface {
	FetchTopic(ctx context.Context, topic string, days, limit int) ([]model.Headline, error)
	Name() string
}
