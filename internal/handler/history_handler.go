package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradecouncil/internal/model"
)

type HistoryStore interface {
	Entries() []model.ConversationEntry
	Count() int
}

type HistoryHandler struct {
	store HistoryStore
}

func NewHistoryHandler(store HistoryStore) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// GetHistory returns the retained council sessions, oldest first.
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	entries := h.store.Entries()
	if entries == nil {
		entries = []model.ConversationEntry{}
	}

	c.JSON(http.StatusOK, HistoryResponse{
		Conversations: entries,
		Count:         h.store.Count(),
	})
}
