package domain

import "slices"

// ConversationTurn is one line of the transcript shown to the user.
type ConversationTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// History is the ordered transcript of a session.
// Append never modifies the receiver, so a History value handed to a turn
// stays valid after the turn returns.
type History []ConversationTurn

// Append returns a new History with turns added at the end.
func (h History) Append(turns ...ConversationTurn) History {
	out := make(History, 0, len(h)+len(turns))
	out = append(out, h...)
	return append(out, turns...)
}

// Clone returns an independent copy of h.
func (h History) Clone() History {
	return slices.Clone(h)
}

// Len is the number of turns in the transcript.
func (h History) Len() int { return len(h) }

func UserTurn(content string) ConversationTurn {
	return ConversationTurn{Role: RoleUser, Content: content}
}

func AssistantTurn(content string) ConversationTurn {
	return ConversationTurn{Role: RoleAssistant, Content: content}
}

// Session represents one browser conversation held by the server.
type Session struct {
	ID        SessionID
	CreatedAt Timestamp
	UpdatedAt Timestamp
	History   History
}
