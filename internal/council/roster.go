package council

import "tradecouncil/internal/model"

// DefaultRoster is the configured council: ten analysts plus a moderator.
// Order matters, it is the query sequence the client sees.
func DefaultRoster() []model.CouncilMember {
	return []model.CouncilMember{
		{ID: "nemotron-3-nano:30b-cloud", Name: "Nemotron", Color: "#FF6B6B", Specialty: "Technical Analysis"},
		{ID: "deepseek-v3.2:cloud", Name: "DeepSeek V3.2", Color: "#4ECDC4", Specialty: "Market Sentiment"},
		{ID: "minimax-m2:cloud", Name: "MiniMax M2", Color: "#45B7D1", Specialty: "Risk Management"},
		{ID: "gemini-3-pro-preview:latest", Name: "Gemini Pro", Color: "#96CEB4", Specialty: "Macro Economics"},
		{ID: "kimi-k2:1t-cloud", Name: "Kimi K2", Color: "#FFEAA7", Specialty: "Price Action"},
		{ID: "glm-4.6:cloud", Name: "GLM 4.6", Color: "#DDA0DD", Specialty: "Quantitative Analysis"},
		{ID: "qwen3-vl:235b-cloud", Name: "Qwen3 VL", Color: "#98D8C8", Specialty: "Pattern Recognition"},
		{ID: "deepseek-v3.1:671b-cloud", Name: "DeepSeek V3.1", Color: "#F7DC6F", Specialty: "Trend Following"},
		{ID: "gpt-oss:120b-cloud", Name: "GPT-OSS 120B", Color: "#BB8FCE", Specialty: "Fundamental Analysis"},
		{ID: "gpt-oss:20b-cloud", Name: "GPT-OSS 20B", Color: "#85C1E9", Specialty: "Swing Trading"},
		{ID: "qwen3-coder:480b-cloud", Name: "Qwen3 Coder", Color: "#F1948A", Specialty: "Algorithmic Strategies", Moderator: true},
	}
}

// NormalizeRoster guarantees exactly one moderator. When none is flagged the
// last member takes the role; when several are flagged only the last flagged
// member keeps it.
func NormalizeRoster(members []model.CouncilMember) []model.CouncilMember {
	if len(members) == 0 {
		return members
	}

	out := make([]model.CouncilMember, len(members))
	copy(out, members)

	last := -1
	for i := range out {
		if out[i].Moderator {
			last = i
		}
		out[i].Moderator = false
	}
	if last == -1 {
		last = len(out) - 1
	}
	out[last].Moderator = true
	return out
}

// Analysts returns the members queried in the regular pass, in order.
func Analysts(members []model.CouncilMember) []model.CouncilMember {
	var out []model.CouncilMember
	for _, m := range members {
		if !m.Moderator {
			out = append(out, m)
		}
	}
	return out
}

// Moderator returns the member that synthesizes the round.
func Moderator(members []model.CouncilMember) model.CouncilMember {
	for _, m := range members {
		if m.Moderator {
			return m
		}
	}
	return model.CouncilMember{}
}
