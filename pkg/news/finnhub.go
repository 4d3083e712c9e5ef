package news

import (
	"context"
	"strings"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"tradecouncil/internal/model"
)

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

// FetchTopic treats the topic as a ticker symbol and pulls its company news
// for the lookback window.
func (c *FinnhubClient) FetchTopic(ctx context.Context, topic string, days, limit int) ([]model.Headline, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -days)
	symbol := strings.ToUpper(strings.TrimSpace(topic))

	res, _, err := c.client.CompanyNews(ctx).
		Symbol(symbol).
		From(from.Format("2006-01-02")).
		To(to.Format("2006-01-02")).
		Execute()
	if err != nil {
		return nil, err
	}

	var headlines []model.Headline
	for _, item := range res {
		if limit > 0 && len(headlines) >= limit {
			break
		}

		h := model.Headline{
			Title:  "No Title",
			Link:   "No Link",
			Source: "Unknown Source",
		}
		if item.Headline != nil && *item.Headline != "" {
			h.Title = *item.Headline
		}
		if item.Url != nil && *item.Url != "" {
			h.Link = *item.Url
		}
		if item.Source != nil && *item.Source != "" {
			h.Source = *item.Source
		}
		if item.Datetime != nil {
			h.PubDate = time.Unix(*item.Datetime, 0).UTC().Format(time.RFC1123)
		} else {
			h.PubDate = "Unknown Date"
		}

		headlines = append(headlines, h)
	}
	return headlines, nil
}
