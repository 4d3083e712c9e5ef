package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"tradecouncil/internal/council"
	"tradecouncil/internal/memory"
	"tradecouncil/internal/model"
)

// SentimentProvider is the news-sentiment collaborator. A nil summary with a
// nil error means no articles were retrievable.
type SentimentProvider interface {
	Summarize(ctx context.Context, topic string) (*model.SentimentSummary, error)
}

const defaultNewsTopic = "Bitcoin"

// Session owns one client connection. Commands are processed one at a time
// in arrival order; a command received mid-round waits in the socket buffer
// until the current one finishes.
type Session struct {
	id           string
	conn         *websocket.Conn
	writeMu      sync.Mutex
	orchestrator *council.Orchestrator
	bank         *memory.Bank
	sentiment    SentimentProvider
	registry     *Registry
}

func New(conn *websocket.Conn, orchestrator *council.Orchestrator, bank *memory.Bank, sentiment SentimentProvider, registry *Registry) *Session {
	return &Session{
		id:           uuid.NewString(),
		conn:         conn,
		orchestrator: orchestrator,
		bank:         bank,
		sentiment:    sentiment,
		registry:     registry,
	}
}

// Run registers the session, announces the roster and serves commands until
// the connection closes.
func (s *Session) Run(ctx context.Context) {
	s.registry.Add(s)
	defer s.registry.Remove(s)
	defer s.conn.Close()

	s.sendRoster()

	for {
		var cmd Command
		if err := s.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Info("session closed", "session_id", s.id, "error", err)
			}
			return
		}
		s.dispatch(ctx, cmd)
	}
}

func (s *Session) dispatch(ctx context.Context, cmd Command) {
	switch cmd.Parsed() {
	case ActionStartCouncil:
		s.runCouncil(ctx, cmd.Question)
	case ActionNewsSentiment:
		s.runNewsSentiment(ctx, cmd.Topic)
	case ActionClearHistory:
		s.bank.Clear()
		s.send(Event{Type: EventHistoryCleared, Message: "Conversation history has been cleared."})
	default:
		s.send(Event{Type: EventError, Message: fmt.Sprintf("Unknown action: %q", cmd.Action)})
	}
}

func (s *Session) runCouncil(ctx context.Context, question string) {
	question = strings.TrimSpace(question)
	if question == "" {
		s.send(Event{Type: EventError, Message: "Please provide a question for the council."})
		return
	}

	s.send(Event{
		Type:    EventCouncilStarted,
		Message: fmt.Sprintf("Council convened to discuss: %s...", headOf(question, 100)),
	})

	result := s.orchestrator.Run(ctx, question, s)

	s.send(Event{Type: EventSynthesisComplete, Data: result.Synthesis})
	s.send(Event{
		Type:    EventCouncilComplete,
		Message: fmt.Sprintf("Council session #%d complete!", result.SessionCount),
	})
}

func (s *Session) runNewsSentiment(ctx context.Context, topic string) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = defaultNewsTopic
	}

	s.send(Event{Type: EventNewsFetching, Message: fmt.Sprintf("Fetching news sentiment for %s...", topic)})

	summary, err := s.sentiment.Summarize(ctx, topic)
	if err != nil {
		slog.Error("news sentiment fetch failed", "session_id", s.id, "topic", topic, "error", err)
	}
	if err != nil || summary == nil {
		s.send(Event{Type: EventNewsError, Message: fmt.Sprintf("Unable to fetch news for %s", topic)})
		return
	}

	s.send(Event{Type: EventNewsSentiment, Data: summary})
}

// MemberThinking, MemberResponded and SynthesisStarted implement
// council.RoundObserver; the orchestrator calls them in protocol order.
func (s *Session) MemberThinking(m model.CouncilMember) {
	s.send(Event{Type: EventModelThinking, ModelID: m.ID, ModelName: m.Name})
}

func (s *Session) MemberResponded(resp model.MemberResponse) {
	s.send(Event{Type: EventModelResponse, Data: resp})
}

func (s *Session) SynthesisStarted() {
	s.send(Event{Type: EventSynthesisStarted, Message: "Synthesizing council insights..."})
}

func (s *Session) sendRoster() {
	roster := s.orchestrator.Roster()
	statuses := make([]memberStatus, len(roster))
	for i, m := range roster {
		statuses[i] = memberStatus{Name: m.Name, Specialty: m.Specialty, Online: true}
	}
	s.send(Event{Type: EventModelStatus, Data: statuses})
}

func (s *Session) send(e Event) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteJSON(e); err != nil {
		slog.Warn("event write failed", "session_id", s.id, "type", e.Type, "error", err)
	}
}

func headOf(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
