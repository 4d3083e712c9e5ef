package model

import "time"

// CouncilMember describes one backend model on the trading council.
// Moderator marks the member that synthesizes the round instead of
// answering in the regular query pass.
type CouncilMember struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Specialty string `json:"specialty"`
	Moderator bool   `json:"moderator"`
}

// MemberResponse is one member's answer within a single round. Response
// holds a fallback string and Success is false when the backend call failed.
type MemberResponse struct {
	ModelID   string `json:"model_id"`
	ModelName string `json:"model_name"`
	Color     string `json:"color"`
	Specialty string `json:"specialty"`
	Response  string `json:"response"`
	Success   bool   `json:"success"`
}

// ResponseDigest is the truncated projection of a MemberResponse kept in
// conversation history.
type ResponseDigest struct {
	ModelName string `json:"model_name"`
	Specialty string `json:"specialty"`
	Response  string `json:"response"`
}

type Ranking struct {
	ModelName string `json:"model_name"`
	Score     int    `json:"score"`
	Reason    string `json:"reason"`
}

type ConversationEntry struct {
	ID        int              `json:"id"`
	Timestamp time.Time        `json:"timestamp"`
	Question  string           `json:"question"`
	Responses []ResponseDigest `json:"responses"`
	Synthesis string           `json:"synthesis"`
	Rankings  []Ranking        `json:"rankings"`
}
