package domain

import (
	"context"
	"errors"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExists   = errors.New("session already exists")
)

// Prompt is the system instructions plus the single user message sent to the model.
type Prompt struct {
	System string
	User   string
}

// LLMClient defines how the core application interacts with an LLM service.
type LLMClient interface {
	GenerateReply(ctx context.Context, prompt Prompt) (string, error)
}

// Video is a playable search result.
type Video struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// VideoSearcher is the remote video-search collaborator.
type VideoSearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]Video, error)
	Trending(ctx context.Context, categoryID string, maxResults int) ([]Video, error)
}

// SessionStore holds live conversations between requests.
type SessionStore interface {
	CreateSession(session *Session) error
	GetSession(id SessionID) (*Session, error)
	// UpdateSession runs fn with exclusive access to the session and stores
	// the history it returns.
	UpdateSession(id SessionID, fn func(History) History) (*Session, error)
}
