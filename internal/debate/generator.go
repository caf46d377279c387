package debate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gascenciom1998/debater/common/llm"
	"github.com/gascenciom1998/debater/internal/model"
)

const generateTemperature = 0.7

// ArgumentGenerator produces the agent's utterances. Unlike stance resolution,
// generation failures are masked: both paths fall back to a templated
// restatement of the agent's stance so the conversation never stalls. That is
// a deliberate availability-over-quality tradeoff.
type ArgumentGenerator struct {
	llm           llm.Client
	contextWindow int
}

// NewArgumentGenerator creates a generator that feeds the most recent
// contextWindow messages into each reply.
func NewArgumentGenerator(client llm.Client, contextWindow int) *ArgumentGenerator {
	return &ArgumentGenerator{llm: client, contextWindow: contextWindow}
}

// Opening produces the agent's first utterance, given only topic and stance.
func (g *ArgumentGenerator) Opening(ctx context.Context, topic, agentStance string) string {
	content, err := g.complete(ctx, openingPrompt(topic, agentStance), 200)
	if err != nil {
		slog.ErrorContext(ctx, "opening generation failed, using fallback", "error", err)
		return fmt.Sprintf("I'm ready to convince you that %s. The evidence is clear and compelling - let me show you why this position is correct.", agentStance)
	}
	return content
}

// Reply produces the next agent utterance. The full available history is
// passed in; the generator windows it to the most recent turns internally.
func (g *ArgumentGenerator) Reply(ctx context.Context, topic, agentStance string, history []model.Message) string {
	content, err := g.complete(ctx, replyPrompt(topic, agentStance, history, g.contextWindow), 300)
	if err != nil {
		slog.ErrorContext(ctx, "reply generation failed, using fallback", "error", err)
		return fmt.Sprintf("I remain firm in my position that %s. The evidence clearly supports this view, and I'm confident you'll come to see the truth of this position.", agentStance)
	}
	return content
}

func (g *ArgumentGenerator) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if g.llm == nil {
		return "", ErrNotConfigured
	}

	temperature := generateTemperature
	content, err := g.llm.Complete(ctx, llm.CompletionRequest{
		Prompt:      prompt,
		MaxTokens:   maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return "", err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("empty completion")
	}
	return content, nil
}
