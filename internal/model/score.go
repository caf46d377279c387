package model

// Scores are the six evaluation axes, each in [1,10].
type Scores struct {
	LogicalCoherence        int `json:"logical_coherence"`
	EvidenceUsage           int `json:"evidence_usage"`
	EmotionalAppeal         int `json:"emotional_appeal"`
	CounterArgumentHandling int `json:"counter_argument_handling"`
	ClarityStructure        int `json:"clarity_structure"`
	OverallPersuasiveness   int `json:"overall_persuasiveness"`
}

// Analysis is the qualitative breakdown accompanying the scores.
type Analysis struct {
	Strengths           []string `json:"strengths"`
	Weaknesses          []string `json:"weaknesses"`
	MissedOpportunities []string `json:"missed_opportunities"`
	Improvements        []string `json:"improvements"`
}

// ScoreReport is the full persuasiveness assessment of the agent's utterances.
type ScoreReport struct {
	Scores   Scores   `json:"scores"`
	Analysis Analysis `json:"analysis"`
	Summary  string   `json:"summary"`
}
