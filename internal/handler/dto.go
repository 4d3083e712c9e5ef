package handler

import "tradecouncil/internal/model"

type HistoryResponse struct {
	Conversations []model.ConversationEntry `json:"conversations"`
	Count         int                       `json:"count"`
}
