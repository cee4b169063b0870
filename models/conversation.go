package models

// Role identifies the speaker of a conversation turn
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single role-tagged conversation turn
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents an incoming chat message. NewestMessage is nil
// when the body omits it.
type ChatRequest struct {
	NewestMessage       *string  `json:"newest_message"`
	ConversationHistory []string `json:"conversation_history"`
}

// NewChatRequest builds a request for message with the given flat history
func NewChatRequest(message string, history []string) ChatRequest {
	return ChatRequest{NewestMessage: &message, ConversationHistory: history}
}

// Message returns the newest message, or "" when it is absent
func (r ChatRequest) Message() string {
	if r.NewestMessage == nil {
		return ""
	}
	return *r.NewestMessage
}

// ChatReply represents the agent's answer
type ChatReply struct {
	Reply string `json:"reply"`
}

// ErrorResponse is returned by the HTTP layer when a request fails
type ErrorResponse struct {
	Detail string `json:"detail"`
	Kind   string `json:"kind,omitempty"`
}

// HistoryFromStrings converts a flat history into role-tagged turns.
// Even positions are user turns, odd positions are assistant turns.
func HistoryFromStrings(history []string) []Message {
	messages := make([]Message, 0, len(history))
	for i, content := range history {
		role := RoleUser
		if i%2 == 1 {
			role = RoleAssistant
		}
		messages = append(messages, Message{Role: role, Content: content})
	}
	return messages
}

// History returns the request's conversation history as role-tagged turns
func (r ChatRequest) History() []Message {
	return HistoryFromStrings(r.ConversationHistory)
}
