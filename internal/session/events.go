package session

// Server -> client event types. Within one round the handler emits them in a
// fixed order the client UI depends on.
const (
	EventModelStatus       = "model_status"
	EventCouncilStarted    = "council_started"
	EventModelThinking     = "model_thinking"
	EventModelResponse     = "model_response"
	EventSynthesisStarted  = "synthesis_started"
	EventSynthesisComplete = "synthesis_complete"
	EventCouncilComplete   = "council_complete"
	EventNewsFetching      = "news_fetching"
	EventNewsSentiment     = "news_sentiment"
	EventNewsError         = "news_error"
	EventHistoryCleared    = "history_cleared"
	EventError             = "error"
)

// Event is the wire shape of every server -> client message. Unused fields
// are omitted so each event type keeps its original payload.
type Event struct {
	Type      string `json:"type"`
	Message   string `json:"message,omitempty"`
	ModelID   string `json:"model_id,omitempty"`
	ModelName string `json:"model_name,omitempty"`
	Data      any    `json:"data,omitempty"`
}

type memberStatus struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Online    bool   `json:"online"`
}

// Action is the closed set of client commands. Anything that does not parse
// into a known action is ActionUnknown and answered with an error event.
type Action int

const (
	ActionUnknown Action = iota
	ActionStartCouncil
	ActionNewsSentiment
	ActionClearHistory
)

// Command is the wire shape of a client -> server message.
type Command struct {
	Action   string `json:"action"`
	Question string `json:"question"`
	Topic    string `json:"topic"`
}

func (c Command) Parsed() Action {
	switch c.Action {
	case "start_council":
		return ActionStartCouncil
	case "get_news_sentiment":
		return ActionNewsSentiment
	case "clear_history":
		return ActionClearHistory
	default:
		return ActionUnknown
	}
}
