package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/inner-mirror/internal/domain"
)

func TestOpenAIClient_GenerateReply(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": "That sounds meaningful."}
			}]
		}`))
	}))
	defer srv.Close()

	c, err := NewOpenAIClient(OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL}, srv.Client())
	require.NoError(t, err)

	reply, err := c.GenerateReply(context.Background(), domain.Prompt{System: "sys", User: "entry"})
	require.NoError(t, err)
	assert.Equal(t, "That sounds meaningful.", reply)

	assert.Equal(t, DefaultOpenAIModel, got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "sys", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "entry", got.Messages[1].Content)
}

func TestOpenAIClient_ServerErrorIsNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "boom", "type": "server_error"}}`))
	}))
	defer srv.Close()

	c, err := NewOpenAIClient(OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL}, srv.Client())
	require.NoError(t, err)

	_, err = c.GenerateReply(context.Background(), domain.Prompt{System: "s", User: "u"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai chat completion")
	assert.Equal(t, 1, calls)
}

func TestNewOpenAIClient_RequiresKey(t *testing.T) {
	_, err := NewOpenAIClient(OpenAIConfig{APIKey: "  "}, nil)
	assert.Error(t, err)
}

func TestMockLLM_EchoesEntry(t *testing.T) {
	reply, err := NewMockLLM().GenerateReply(context.Background(), domain.Prompt{
		User: "Journal entry: long day\nMood: stress\nReflect",
	})
	require.NoError(t, err)
	assert.Contains(t, reply, `"long day"`)
}
