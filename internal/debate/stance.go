package debate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gascenciom1998/debater/common/llm"
)

// ErrNotConfigured is returned when the text-generation capability is not
// configured. Entry points surface it as a distinct "service not configured"
// signal rather than attempting generation silently.
var ErrNotConfigured = errors.New("text generation not configured")

const resolveTemperature = 0.1

// StanceResolution is the structured result of resolving an opening utterance.
// AgentStance and CounterpartStance are mutually exclusive framings of Topic,
// established atomically from a single resolution call.
type StanceResolution struct {
	Topic             string `json:"topic"`
	AgentStance       string `json:"agent_stance"`
	CounterpartStance string `json:"counterpart_stance"`
}

// StanceResolver derives (topic, agent stance, counterpart stance) from the
// raw opening utterance. A capability failure or unparsable output propagates
// as an error. There is no fallback here: a fabricated stance is worse than
// a failed turn.
type StanceResolver struct {
	llm llm.Client
}

func NewStanceResolver(client llm.Client) *StanceResolver {
	return &StanceResolver{llm: client}
}

func (r *StanceResolver) Resolve(ctx context.Context, openingUtterance string) (*StanceResolution, error) {
	if r.llm == nil {
		return nil, ErrNotConfigured
	}

	temperature := resolveTemperature
	raw, err := r.llm.Complete(ctx, llm.CompletionRequest{
		Prompt:      resolveStancePrompt(openingUtterance),
		MaxTokens:   300,
		Temperature: &temperature,
		ResponseSchema: &llm.ResponseSchema{
			Name:   "stance_resolution",
			Schema: llm.GenerateSchemaFrom(StanceResolution{}),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("resolving stance: %w", err)
	}

	resolution, ok := decodeStrict[StanceResolution](raw)
	if !ok {
		slog.WarnContext(ctx, "unparsable stance resolution", "output", raw)
		return nil, fmt.Errorf("resolving stance: unparsable output")
	}
	if resolution.Topic == "" || resolution.AgentStance == "" || resolution.CounterpartStance == "" {
		return nil, fmt.Errorf("resolving stance: incomplete output")
	}

	slog.InfoContext(ctx, "stance resolved",
		"topic", resolution.Topic,
		"agent_stance", resolution.AgentStance,
		"counterpart_stance", resolution.CounterpartStance,
	)
	return &resolution, nil
}
