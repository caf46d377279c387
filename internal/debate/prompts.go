package debate

import (
	"fmt"
	"strings"

	"github.com/gascenciom1998/debater/internal/model"
)

func resolveStancePrompt(message string) string {
	return fmt.Sprintf(`You are analyzing a debate setup. A user has written a message that will start a debate with an agent.

User message: %q

Determine:
1. What is the debate topic?
2. What position should the agent defend?
3. What position is the user taking (always the opposite of the agent)?

Look for directive phrases that tell the agent what to do:
- "Convince me that X" / "Defend X" / "Argue that X" / "Take the side of X" / "Support X"
  mean the agent defends X (including any qualifying detail in the same message) and the user takes the opposite position.
- A message that simply states the user's own belief means the agent defends the opposite of that belief.

Negating comparative claims: "A is better/worse/superior/inferior than/to B" is negated by swapping the compared terms, not by negating the predicate. "Remote work is better than office work" is opposed by "Office work is better than remote work".

Examples:
- "The earth is round" means the user believes the earth is round, so the agent defends a flat earth.
- "Convince me vaccines are safe" means the agent defends vaccine safety and the user takes the unsafe position.
- "Argue that the moon landing was fake" means the agent defends the fake moon landing and the user takes the real position.

The agent and the user must always be on opposite sides of the same topic.

Return ONLY a JSON object:
{
  "topic": "brief topic description",
  "agent_stance": "the position the agent defends",
  "counterpart_stance": "the user's position (opposite of the agent)"
}`, message)
}

func openingPrompt(topic, agentStance string) string {
	return fmt.Sprintf(`You are starting a one-on-one debate with a single person about: %s

Your position to defend: %s

Generate a compelling opening argument that:
1. Clearly and confidently states your position
2. Presents your strongest initial argument
3. Invites a response
4. Is concise but impactful (2-3 sentences)

Style: speak directly to the person ("you", never "ladies and gentlemen"), use a conversational personal tone, no formal debate language. Say "I believe" or "I'm confident" rather than "I stand before you".

Your goal is to persuade them of your position, not just present it.`, topic, agentStance)
}

func replyPrompt(topic, agentStance string, history []model.Message, window int) string {
	var context strings.Builder
	if len(history) > 0 {
		context.WriteString("Previous conversation:\n")
		start := len(history) - window
		if start < 0 {
			start = 0
		}
		for _, msg := range history[start:] {
			fmt.Fprintf(&context, "%s: %s\n", msg.Role, msg.Content)
		}
		context.WriteString("\n")
	}

	return fmt.Sprintf(`You are a skilled debater in a debate about: %s

Your position to defend: %s

%sCRITICAL INSTRUCTIONS:
- STAND YOUR GROUND: never concede or waver from your position
- Directly address the most recent counter-argument when one was raised
- Use compelling logic, evidence and reasoning aligned with your position
- Keep the response concise but impactful (2-4 sentences)
- Be persuasive without being aggressive, and always return to reinforcing your core position

Your goal is to convince them, not to find middle ground. Generate your persuasive debate response:`, topic, agentStance, context.String())
}

func evaluatePrompt(transcript []model.Message, topic, agentStance string) string {
	var conversation strings.Builder
	for _, msg := range transcript {
		label := "User"
		if msg.Role == model.RoleAgent {
			label = "Agent"
		}
		fmt.Fprintf(&conversation, "%s: %s\n\n", label, msg.Content)
	}

	return fmt.Sprintf(`You are an expert debate evaluator. Analyze the persuasiveness of the Agent's responses in this debate conversation.

DEBATE CONTEXT:
Topic: %s
Agent position: %s

CONVERSATION:
%s
EVALUATION CRITERIA (each scored 1-10):
1. logical_coherence: how well-structured and logical the Agent's arguments are
2. evidence_usage: how effectively the Agent uses facts, examples and evidence
3. emotional_appeal: how well the Agent connects emotionally with the user
4. counter_argument_handling: how effectively the Agent addresses objections
5. clarity_structure: how clear and well-organized the responses are
6. overall_persuasiveness: overall effectiveness in convincing the user

Also identify the Agent's strongest and weakest arguments, missed opportunities to persuade, and improvements for future responses.

Return ONLY a JSON object with this structure:
{
  "scores": {
    "logical_coherence": 8,
    "evidence_usage": 7,
    "emotional_appeal": 6,
    "counter_argument_handling": 8,
    "clarity_structure": 7,
    "overall_persuasiveness": 7
  },
  "analysis": {
    "strengths": ["..."],
    "weaknesses": ["..."],
    "missed_opportunities": ["..."],
    "improvements": ["..."]
  },
  "summary": "Brief overall assessment of the Agent's persuasiveness"
}`, topic, agentStance, conversation.String())
}
