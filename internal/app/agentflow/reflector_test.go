package agentflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/inner-mirror/internal/domain"
)

type recordingLLM struct {
	prompts []domain.Prompt
	reply   string
	err     error
}

func (r *recordingLLM) GenerateReply(_ context.Context, p domain.Prompt) (string, error) {
	r.prompts = append(r.prompts, p)
	return r.reply, r.err
}

func TestReflectSendsEntryAndMood(t *testing.T) {
	llm := &recordingLLM{reply: "  That sounds like a heavy day.\n"}
	agent := NewReflectorAgent(llm)

	out, err := agent.Reflect(context.Background(), "Work was rough", domain.MoodStress)
	require.NoError(t, err)
	assert.Equal(t, "That sounds like a heavy day.", out)

	require.Len(t, llm.prompts, 1)
	p := llm.prompts[0]
	assert.Contains(t, p.System, `You are "Mirror,"`)
	assert.Equal(t,
		"Journal entry: Work was rough\nMood: stress\nReflect on this entry thoughtfully and suggest a helpful insight.",
		p.User)
}

func TestReflectErrors(t *testing.T) {
	_, err := NewReflectorAgent(&recordingLLM{err: errors.New("boom")}).Reflect(context.Background(), "x", domain.MoodNeutral)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	_, err = NewReflectorAgent(&recordingLLM{reply: "   "}).Reflect(context.Background(), "x", domain.MoodNeutral)
	assert.ErrorIs(t, err, ErrEmptyReflection)
}
