package council

import (
	"context"
	"log/slog"

	"tradecouncil/internal/memory"
	"tradecouncil/internal/model"
	"tradecouncil/pkg/llm"
)

const contextEntries = 5

// RoundObserver receives progress notifications while a round runs. Calls
// arrive strictly in member order, one thinking/responded pair per analyst,
// then SynthesisStarted before the moderator call.
type RoundObserver interface {
	MemberThinking(member model.CouncilMember)
	MemberResponded(response model.MemberResponse)
	SynthesisStarted()
}

type RoundResult struct {
	Responses    []model.MemberResponse
	Synthesis    string
	EntryID      int
	SessionCount int
}

// Orchestrator runs council rounds: query every analyst in order, have the
// moderator synthesize, persist the exchange. A failing backend never aborts
// the round, it degrades to a fallback response.
type Orchestrator struct {
	gateway llm.Client
	bank    *memory.Bank
	roster  []model.CouncilMember
}

func NewOrchestrator(gateway llm.Client, bank *memory.Bank, roster []model.CouncilMember) *Orchestrator {
	return &Orchestrator{
		gateway: gateway,
		bank:    bank,
		roster:  NormalizeRoster(roster),
	}
}

func (o *Orchestrator) Roster() []model.CouncilMember {
	out := make([]model.CouncilMember, len(o.roster))
	copy(out, o.roster)
	return out
}

// Run executes one full round for a non-empty question. Backend calls are
// deliberately sequential: the protocol promises the client one incremental
// reveal per member in roster order, which ordering gives us for free.
func (o *Orchestrator) Run(ctx context.Context, question string, obs RoundObserver) RoundResult {
	var responses []model.MemberResponse

	for _, member := range Analysts(o.roster) {
		obs.MemberThinking(member)
		response := o.queryMember(ctx, member, question)
		responses = append(responses, response)
		obs.MemberResponded(response)
	}

	obs.SynthesisStarted()
	synthesis := o.synthesize(ctx, question, responses)

	entryID := o.bank.Append(question, responses, synthesis, nil)

	return RoundResult{
		Responses:    responses,
		Synthesis:    synthesis,
		EntryID:      entryID,
		SessionCount: o.bank.Count(),
	}
}

func (o *Orchestrator) queryMember(ctx context.Context, member model.CouncilMember, question string) model.MemberResponse {
	system := PersonaPrompt(member.Specialty, o.bank.ContextSummary(contextEntries))

	text, err := o.gateway.Invoke(ctx, member.ID, question, system)
	if err != nil {
		slog.Error("council member query failed", "model_id", member.ID, "error", err)
		return model.MemberResponse{
			ModelID:   member.ID,
			ModelName: member.Name,
			Color:     member.Color,
			Specialty: member.Specialty,
			Response:  memberFallback,
			Success:   false,
		}
	}

	return model.MemberResponse{
		ModelID:   member.ID,
		ModelName: member.Name,
		Color:     member.Color,
		Specialty: member.Specialty,
		Response:  text,
		Success:   true,
	}
}

func (o *Orchestrator) synthesize(ctx context.Context, question string, responses []model.MemberResponse) string {
	moderator := Moderator(o.roster)
	prompt := SynthesisPrompt(question, responses, "")

	text, err := o.gateway.Invoke(ctx, moderator.ID, prompt, moderatorSystem)
	if err != nil {
		slog.Error("synthesis failed", "model_id", moderator.ID, "error", err)
		return synthesisFallback
	}
	return text
}
