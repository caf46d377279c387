package service

import (
	"github.com/gascenciom1998/debater/common/llm"
	"github.com/gascenciom1998/debater/core/config"
	"github.com/gascenciom1998/debater/internal/debate"
	"github.com/gascenciom1998/debater/internal/store"
)

type Services struct {
	conversations store.ConversationStore
	llm           llm.Client
	debateCfg     config.DebateConfig
}

// NewServices wires the service layer. llmClient may be nil when the
// generation capability is not configured; the debate components then report
// "not configured" per call instead of the process refusing to start.
func NewServices(conversations store.ConversationStore, llmClient llm.Client, debateCfg config.DebateConfig) *Services {
	return &Services{
		conversations: conversations,
		llm:           llmClient,
		debateCfg:     debateCfg,
	}
}

func (s *Services) Debate() DebateService {
	return NewDebateService(DebateServiceConfig{
		Conversations:     s.conversations,
		Resolver:          debate.NewStanceResolver(s.llm),
		Generator:         debate.NewArgumentGenerator(s.llm, s.debateCfg.ContextWindow),
		Scorer:            debate.NewPersuasivenessScorer(s.llm),
		ResponseWindow:    s.debateCfg.ResponseWindow,
		GenerationEnabled: s.llm != nil,
	})
}
