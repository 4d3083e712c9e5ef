package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tradecouncil/internal/model"
)

type SentimentProvider interface {
	Summarize(ctx context.Context, topic string) (*model.SentimentSummary, error)
}

type NewsHandler struct {
	sentiment SentimentProvider
}

func NewNewsHandler(sentiment SentimentProvider) *NewsHandler {
	return &NewsHandler{sentiment: sentiment}
}

// GetNewsSentiment serves the stateless variant of the sentiment query:
// one summary per request, or an error object when no data is available.
func (h *NewsHandler) GetNewsSentiment(c *gin.Context) {
	topic := c.Param("topic")
	if topic == "" {
		topic = "Bitcoin"
	}

	summary, err := h.sentiment.Summarize(c.Request.Context(), topic)
	if err != nil {
		slog.Error("error fetching news sentiment", "topic", topic, "error", err)
	}
	if err != nil || summary == nil {
		c.JSON(http.StatusOK, gin.H{"error": "Unable to fetch news for " + topic})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
