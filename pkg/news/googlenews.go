package news

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tradecouncil/internal/model"
)

const googleNewsBaseURL = "https://news.google.com/rss/search"

type GoogleNewsClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewGoogleNewsClient() *GoogleNewsClient {
	return &GoogleNewsClient{
		baseURL:    googleNewsBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *GoogleNewsClient) Name() string {
	return "GoogleNews"
}

type rssItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	PubDate string `xml:"pubDate"`
	Source  string `xml:"source"`
}

type rssFeed struct {
	Items []rssItem `xml:"channel>item"`
}

func (c *GoogleNewsClient) FetchTopic(ctx context.Context, topic string, days, limit int) ([]model.Headline, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s when:%dd", topic, days))
	params.Set("hl", "en-US")
	params.Set("gl", "US")
	params.Set("ceid", "US:en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building news request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching news feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news feed returned status %d", resp.StatusCode)
	}

	var feed rssFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		// Malformed feeds are treated as no news, matching the empty-result contract.
		return nil, nil
	}

	var headlines []model.Headline
	for _, item := range feed.Items {
		if limit > 0 && len(headlines) >= limit {
			break
		}
		headlines = append(headlines, model.Headline{
			Title:   orDefault(item.Title, "No Title"),
			Link:    orDefault(item.Link, "No Link"),
			PubDate: orDefault(item.PubDate, "Unknown Date"),
			Source:  orDefault(item.Source, "Unknown Source"),
		})
	}
	return headlines, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
