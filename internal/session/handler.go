package session

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"tradecouncil/internal/council"
	"tradecouncil/internal/memory"
)

// Handler upgrades HTTP requests to WebSocket sessions.
type Handler struct {
	upgrader     websocket.Upgrader
	orchestrator *council.Orchestrator
	bank         *memory.Bank
	sentiment    SentimentProvider
	registry     *Registry
}

func NewHandler(orchestrator *council.Orchestrator, bank *memory.Bank, sentiment SentimentProvider, registry *Registry) *Handler {
	return &Handler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		orchestrator: orchestrator,
		bank:         bank,
		sentiment:    sentiment,
		registry:     registry,
	}
}

// Serve handles GET /ws. It blocks for the lifetime of the connection.
func (h *Handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	s := New(conn, h.orchestrator, h.bank, h.sentiment, h.registry)
	s.Run(c.Request.Context())
}
