package memory

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"tradecouncil/internal/model"
)

const (
	DefaultMaxHistory = 50

	responseCap  = 500
	synthesisCap = 1000
	summaryCap   = 200
)

// Bank is the process-wide conversation history: a bounded FIFO log of
// completed council rounds shared by every session. Entry ids keep counting
// up after eviction so old sessions stay addressable in the summary text.
type Bank struct {
	mu         sync.Mutex
	entries    []model.ConversationEntry
	nextID     int
	maxHistory int
}

func NewBank(maxHistory int) *Bank {
	if maxHistory < 1 {
		maxHistory = DefaultMaxHistory
	}
	return &Bank{nextID: 1, maxHistory: maxHistory}
}

// Append records one completed round and returns its entry id. Oversized
// fields are truncated and the oldest entries are evicted past capacity.
func (b *Bank) Append(question string, responses []model.MemberResponse, synthesis string, rankings []model.Ranking) int {
	digests := make([]model.ResponseDigest, len(responses))
	for i, r := range responses {
		digests[i] = model.ResponseDigest{
			ModelName: r.ModelName,
			Specialty: r.Specialty,
			Response:  truncate(r.Response, responseCap),
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	entry := model.ConversationEntry{
		ID:        b.nextID,
		Timestamp: time.Now(),
		Question:  question,
		Responses: digests,
		Synthesis: truncate(synthesis, synthesisCap),
		Rankings:  rankings,
	}
	b.nextID++

	b.entries = append(b.entries, entry)
	if over := len(b.entries) - b.maxHistory; over > 0 {
		b.entries = append([]model.ConversationEntry(nil), b.entries[over:]...)
	}

	return entry.ID
}

// ContextSummary formats the most recent maxEntries rounds as the block
// injected into member persona prompts. Empty history yields an empty string.
func (b *Bank) ContextSummary(maxEntries int) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == 0 {
		return ""
	}

	recent := b.entries
	if maxEntries > 0 && len(recent) > maxEntries {
		recent = recent[len(recent)-maxEntries:]
	}

	var sb strings.Builder
	sb.WriteString("=== PREVIOUS COUNCIL DISCUSSIONS ===\n")
	for _, entry := range recent {
		sb.WriteString(fmt.Sprintf("\n[Session #%d]\n", entry.ID))
		sb.WriteString(fmt.Sprintf("USER QUESTION: %s\n", entry.Question))
		sb.WriteString(fmt.Sprintf("SYNTHESIS: %s...", truncate(entry.Synthesis, summaryCap)))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Entries returns a copy of the retained history, oldest first.
func (b *Bank) Entries() []model.ConversationEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]model.ConversationEntry(nil), b.entries...)
}

func (b *Bank) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

func (b *Bank) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
