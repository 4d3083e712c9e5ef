package council

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"tradecouncil/internal/memory"
	"tradecouncil/internal/model"
)

type fakeGateway struct {
	calls   []string
	systems []string
	failFor map[string]bool
}

func (g *fakeGateway) Invoke(ctx context.Context, modelID, prompt, system string) (string, error) {
	g.calls = append(g.calls, modelID)
	g.systems = append(g.systems, system)
	if g.failFor[modelID] {
		return "", errors.New("backend down")
	}
	return "answer from " + modelID, nil
}

type recordingObserver struct {
	events []string
}

func (r *recordingObserver) MemberThinking(m model.CouncilMember) {
	r.events = append(r.events, "thinking:"+m.ID)
}

func (r *recordingObserver) MemberResponded(resp model.MemberResponse) {
	r.events = append(r.events, fmt.Sprintf("responded:%s:%t", resp.ModelID, resp.Success))
}

func (r *recordingObserver) SynthesisStarted() {
	r.events = append(r.events, "synthesis")
}

func testRoster() []model.CouncilMember {
	return []model.CouncilMember{
		{ID: "alpha", Name: "Alpha", Specialty: "Technical Analysis"},
		{ID: "beta", Name: "Beta", Specialty: "Risk Management"},
		{ID: "mod", Name: "Mod", Specialty: "Algorithmic Strategies", Moderator: true},
	}
}

func TestRun_EmitsOrderedEventsPerAnalyst(t *testing.T) {
	gateway := &fakeGateway{}
	bank := memory.NewBank(50)
	obs := &recordingObserver{}

	o := NewOrchestrator(gateway, bank, testRoster())
	result := o.Run(context.Background(), "Should I buy EURUSD?", obs)

	assert.Equal(t, []string{
		"thinking:alpha",
		"responded:alpha:true",
		"thinking:beta",
		"responded:beta:true",
		"synthesis",
	}, obs.events)

	assert.Equal(t, 2, len(result.Responses))
	assert.Equal(t, "answer from mod", result.Synthesis)
	assert.Equal(t, 1, result.EntryID)
	assert.Equal(t, 1, result.SessionCount)
}

func TestRun_ModeratorExcludedFromQueryPass(t *testing.T) {
	gateway := &fakeGateway{}
	o := NewOrchestrator(gateway, memory.NewBank(50), testRoster())

	o.Run(context.Background(), "question", &recordingObserver{})

	// two analyst calls then one moderator synthesis call
	assert.Equal(t, []string{"alpha", "beta", "mod"}, gateway.calls)
}

func TestRun_MemberFailureDegradesToFallback(t *testing.T) {
	gateway := &fakeGateway{failFor: map[string]bool{"alpha": true}}
	obs := &recordingObserver{}

	o := NewOrchestrator(gateway, memory.NewBank(50), testRoster())
	result := o.Run(context.Background(), "question", obs)

	assert.Equal(t, "responded:alpha:false", obs.events[1])
	assert.Equal(t, "Unable to generate response at this time.", result.Responses[0].Response)
	assert.Equal(t, false, result.Responses[0].Success)

	// the failure does not block the next member or the synthesis
	assert.Equal(t, "responded:beta:true", obs.events[3])
	assert.Equal(t, "answer from mod", result.Synthesis)
}

func TestRun_SynthesisFailureDegradesToFallback(t *testing.T) {
	gateway := &fakeGateway{failFor: map[string]bool{"mod": true}}

	o := NewOrchestrator(gateway, memory.NewBank(50), testRoster())
	result := o.Run(context.Background(), "question", &recordingObserver{})

	assert.Equal(t, "Unable to synthesize responses at this time.", result.Synthesis)
	assert.Equal(t, 1, result.EntryID)
}

func TestRun_AppendsRoundToMemory(t *testing.T) {
	bank := memory.NewBank(50)
	o := NewOrchestrator(&fakeGateway{}, bank, testRoster())

	o.Run(context.Background(), "first question", &recordingObserver{})

	assert.Equal(t, 1, bank.Count())
	entries := bank.Entries()
	assert.Equal(t, "first question", entries[0].Question)
	assert.Equal(t, 2, len(entries[0].Responses))
}

func TestRun_SecondRoundSeesContextSummary(t *testing.T) {
	gateway := &fakeGateway{}
	o := NewOrchestrator(gateway, memory.NewBank(50), testRoster())

	o.Run(context.Background(), "first question", &recordingObserver{})

	assert.Equal(t, true, strings.Contains(gateway.systems[0], "This is the first question in this session."))

	o.Run(context.Background(), "second question", &recordingObserver{})

	// first analyst call of the second round, after the first append
	second := gateway.systems[3]
	assert.Equal(t, true, strings.Contains(second, "=== PREVIOUS COUNCIL DISCUSSIONS ==="))
	assert.Equal(t, true, strings.Contains(second, "USER QUESTION: first question"))
}

func TestNormalizeRoster_FlagsLastWhenNoneMarked(t *testing.T) {
	roster := NormalizeRoster([]model.CouncilMember{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	})

	assert.Equal(t, false, roster[0].Moderator)
	assert.Equal(t, false, roster[1].Moderator)
	assert.Equal(t, true, roster[2].Moderator)
}

func TestNormalizeRoster_KeepsSingleModerator(t *testing.T) {
	roster := NormalizeRoster([]model.CouncilMember{
		{ID: "a", Moderator: true}, {ID: "b"}, {ID: "c"},
	})

	assert.Equal(t, true, roster[0].Moderator)
	assert.Equal(t, "a", Moderator(roster).ID)
	assert.Equal(t, 2, len(Analysts(roster)))
}

func TestSynthesisPrompt_EmptyRankings(t *testing.T) {
	prompt := SynthesisPrompt("q", []model.MemberResponse{
		{ModelName: "Alpha", Specialty: "Technical Analysis", Response: "buy"},
	}, "")

	assert.Equal(t, true, strings.Contains(prompt, "No rankings available."))
	assert.Equal(t, true, strings.Contains(prompt, "**Alpha** (Technical Analysis): buy"))
}

func TestRankingPrompt_ContainsQuestionAndResponses(t *testing.T) {
	prompt := RankingPrompt("Should I short gold?", []model.MemberResponse{
		{ModelName: "Beta", Specialty: "Risk Management", Response: "no"},
	})

	assert.Equal(t, true, strings.Contains(prompt, `"Should I short gold?"`))
	assert.Equal(t, true, strings.Contains(prompt, "**Beta** (Risk Management): no"))
}
