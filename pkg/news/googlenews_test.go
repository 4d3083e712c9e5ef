package news

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Search results</title>
    <item>
      <title>Bitcoin surges past resistance</title>
      <link>https://example.com/btc-surge</link>
      <pubDate>Fri, 28 Aug 2026 09:00:00 GMT</pubDate>
      <source url="https://example.com">Example Wire</source>
    </item>
    <item>
      <title>Second story</title>
      <link>https://example.com/second</link>
      <pubDate>Fri, 28 Aug 2026 08:00:00 GMT</pubDate>
      <source url="https://example.com">Example Wire</source>
    </item>
    <item>
      <title></title>
    </item>
  </channel>
</rss>`

func newFeedServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
}

func TestFetchTopic_ParsesFeed(t *testing.T) {
	srv := newFeedServer(t, sampleFeed, http.StatusOK)
	defer srv.Close()

	client := &GoogleNewsClient{baseURL: srv.URL, httpClient: srv.Client()}

	headlines, err := client.FetchTopic(context.Background(), "Bitcoin", 1, 100)
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(headlines))
	assert.Equal(t, "Bitcoin surges past resistance", headlines[0].Title)
	assert.Equal(t, "https://example.com/btc-surge", headlines[0].Link)
	assert.Equal(t, "Example Wire", headlines[0].Source)
}

func TestFetchTopic_MissingFieldsGetDefaults(t *testing.T) {
	srv := newFeedServer(t, sampleFeed, http.StatusOK)
	defer srv.Close()

	client := &GoogleNewsClient{baseURL: srv.URL, httpClient: srv.Client()}

	headlines, err := client.FetchTopic(context.Background(), "Bitcoin", 1, 100)
	assert.Equal(t, nil, err)

	last := headlines[2]
	assert.Equal(t, "No Title", last.Title)
	assert.Equal(t, "No Link", last.Link)
	assert.Equal(t, "Unknown Date", last.PubDate)
	assert.Equal(t, "Unknown Source", last.Source)
}

func TestFetchTopic_AppliesLimit(t *testing.T) {
	srv := newFeedServer(t, sampleFeed, http.StatusOK)
	defer srv.Close()

	client := &GoogleNewsClient{baseURL: srv.URL, httpClient: srv.Client()}

	headlines, err := client.FetchTopic(context.Background(), "Bitcoin", 1, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(headlines))
}

func TestFetchTopic_MalformedFeedIsEmpty(t *testing.T) {
	srv := newFeedServer(t, "this is not xml <<<", http.StatusOK)
	defer srv.Close()

	client := &GoogleNewsClient{baseURL: srv.URL, httpClient: srv.Client()}

	headlines, err := client.FetchTopic(context.Background(), "Bitcoin", 1, 100)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(headlines))
}

func TestFetchTopic_BadStatusIsError(t *testing.T) {
	srv := newFeedServer(t, "", http.StatusBadGateway)
	defer srv.Close()

	client := &GoogleNewsClient{baseURL: srv.URL, httpClient: srv.Client()}

	_, err := client.FetchTopic(context.Background(), "Bitcoin", 1, 100)
	assert.NotEqual(t, nil, err)
}
