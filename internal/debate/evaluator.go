package debate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gascenciom1998/debater/common/llm"
	"github.com/gascenciom1998/debater/internal/model"
)

// ErrNoAgentMessages is returned when a transcript contains no agent-authored
// messages. Evaluation is meaningless without agent content.
var ErrNoAgentMessages = errors.New("no agent messages to evaluate")

// PersuasivenessScorer evaluates the agent's utterances in a transcript.
// Like stance resolution, a capability failure or unparsable output is an
// error; there are no fabricated scores.
type PersuasivenessScorer struct {
	llm llm.Client
}

func NewPersuasivenessScorer(client llm.Client) *PersuasivenessScorer {
	return &PersuasivenessScorer{llm: client}
}

func (s *PersuasivenessScorer) Evaluate(ctx context.Context, transcript []model.Message, topic, agentStance string) (*model.ScoreReport, error) {
	if !hasAgentMessages(transcript) {
		return nil, ErrNoAgentMessages
	}
	if s.llm == nil {
		return nil, ErrNotConfigured
	}

	temperature := resolveTemperature
	raw, err := s.llm.Complete(ctx, llm.CompletionRequest{
		Prompt:      evaluatePrompt(transcript, topic, agentStance),
		MaxTokens:   800,
		Temperature: &temperature,
		ResponseSchema: &llm.ResponseSchema{
			Name:   "score_report",
			Schema: llm.GenerateSchemaFrom(model.ScoreReport{}),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("evaluating persuasiveness: %w", err)
	}

	report, ok := decodeStrict[model.ScoreReport](raw)
	if !ok {
		slog.WarnContext(ctx, "unparsable score report", "output", raw)
		return nil, fmt.Errorf("evaluating persuasiveness: unparsable output")
	}
	if err := validateScores(report.Scores); err != nil {
		return nil, fmt.Errorf("evaluating persuasiveness: %w", err)
	}

	return &report, nil
}

func hasAgentMessages(transcript []model.Message) bool {
	for _, msg := range transcript {
		if msg.Role == model.RoleAgent {
			return true
		}
	}
	return false
}

func validateScores(scores model.Scores) error {
	axes := map[string]int{
		"logical_coherence":         scores.LogicalCoherence,
		"evidence_usage":            scores.EvidenceUsage,
		"emotional_appeal":          scores.EmotionalAppeal,
		"counter_argument_handling": scores.CounterArgumentHandling,
		"clarity_structure":         scores.ClarityStructure,
		"overall_persuasiveness":    scores.OverallPersuasiveness,
	}
	for name, value := range axes {
		if value < 1 || value > 10 {
			return fmt.Errorf("score %s out of range: %d", name, value)
		}
	}
	return nil
}
