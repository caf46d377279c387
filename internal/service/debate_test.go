package service_test

import (
	"context"
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gascenciom1998/debater/internal/debate"
	"github.com/gascenciom1998/debater/internal/model"
	"github.com/gascenciom1998/debater/internal/service"
	"github.com/gascenciom1998/debater/internal/store"
)

var _ = Describe("DebateService", func() {
	var (
		conversations *memoryStore
		resolver      *mockResolver
		generator     *mockGenerator
		scorer        *mockScorer
		svc           service.DebateService
		ctx           context.Context
	)

	BeforeEach(func() {
		conversations = newMemoryStore()
		resolver = &mockResolver{}
		generator = &mockGenerator{}
		scorer = &mockScorer{}
		svc = service.NewDebateService(service.DebateServiceConfig{
			Conversations:     conversations,
			Resolver:          resolver,
			Generator:         generator,
			Scorer:            scorer,
			ResponseWindow:    10,
			GenerationEnabled: true,
		})
		ctx = context.Background()
	})

	Describe("starting a conversation", func() {
		It("returns a two-message transcript and a fresh id", func() {
			result, err := svc.Chat(ctx, nil, "Convince me that the earth is flat")
			Expect(err).NotTo(HaveOccurred())

			Expect(result.ConversationID).NotTo(BeEmpty())
			Expect(result.Messages).To(HaveLen(2))
			Expect(result.Messages[0].Role).To(Equal(model.RoleUser))
			Expect(result.Messages[0].Content).To(Equal("Convince me that the earth is flat"))
			Expect(result.Messages[1].Role).To(Equal(model.RoleAgent))
			Expect(result.Messages[1].Content).NotTo(BeEmpty())
		})

		It("persists the resolved stances with the conversation", func() {
			result, err := svc.Chat(ctx, nil, "Convince me that the earth is flat")
			Expect(err).NotTo(HaveOccurred())

			meta, err := conversations.GetMetadata(ctx, result.ConversationID)
			Expect(err).NotTo(HaveOccurred())
			Expect(meta.AgentStance).To(Equal("the earth is flat"))
			Expect(meta.CounterpartStance).To(Equal("the earth is round"))
			Expect(meta.AgentStance).NotTo(Equal(meta.CounterpartStance))
		})

		It("propagates stance resolution failures without creating anything", func() {
			resolver.resolveFn = func(context.Context, string) (*debate.StanceResolution, error) {
				return nil, fmt.Errorf("resolving stance: unparsable output")
			}

			_, err := svc.Chat(ctx, nil, "gibberish")
			Expect(err).To(HaveOccurred())
			Expect(conversations.metadata).To(BeEmpty())
		})

		It("surfaces the not-configured signal", func() {
			resolver.resolveFn = func(context.Context, string) (*debate.StanceResolution, error) {
				return nil, debate.ErrNotConfigured
			}

			_, err := svc.Chat(ctx, nil, "hello")
			Expect(errors.Is(err, debate.ErrNotConfigured)).To(BeTrue())
		})

		It("treats a pointer to an empty id as a new conversation", func() {
			empty := ""
			result, err := svc.Chat(ctx, &empty, "Convince me that the earth is flat")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.ConversationID).NotTo(BeEmpty())
		})
	})

	Describe("continuing a conversation", func() {
		var conversationID string

		BeforeEach(func() {
			result, err := svc.Chat(ctx, nil, "Convince me that the earth is flat")
			Expect(err).NotTo(HaveOccurred())
			conversationID = result.ConversationID
		})

		It("appends the turn in strict order and keeps the id", func() {
			result, err := svc.Chat(ctx, &conversationID, "I disagree, satellites prove otherwise")
			Expect(err).NotTo(HaveOccurred())

			Expect(result.ConversationID).To(Equal(conversationID))
			Expect(result.Messages).To(HaveLen(4))
			Expect(result.Messages[0].Role).To(Equal(model.RoleUser))
			Expect(result.Messages[1].Role).To(Equal(model.RoleAgent))
			Expect(result.Messages[2].Role).To(Equal(model.RoleUser))
			Expect(result.Messages[2].Content).To(Equal("I disagree, satellites prove otherwise"))
			Expect(result.Messages[3].Role).To(Equal(model.RoleAgent))
		})

		It("generates every reply under the stance fixed at creation", func() {
			for i := range 5 {
				_, err := svc.Chat(ctx, &conversationID, fmt.Sprintf("counter-argument %d", i))
				Expect(err).NotTo(HaveOccurred())
			}

			Expect(generator.openingStances).To(ConsistOf("the earth is flat"))
			for _, stance := range generator.replyStances {
				Expect(stance).To(Equal("the earth is flat"))
			}
		})

		It("feeds the reply generator the history including the new user turn", func() {
			_, err := svc.Chat(ctx, &conversationID, "satellites exist")
			Expect(err).NotTo(HaveOccurred())

			Expect(generator.replyHistories).To(HaveLen(1))
			history := generator.replyHistories[0]
			Expect(history).To(HaveLen(3))
			Expect(history[2].Content).To(Equal("satellites exist"))
		})

		It("windows the response to the most recent 10 messages", func() {
			for i := range 20 {
				_, err := svc.Chat(ctx, &conversationID, fmt.Sprintf("counter-argument %d", i))
				Expect(err).NotTo(HaveOccurred())
			}

			result, err := svc.Chat(ctx, &conversationID, "final word")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Messages).To(HaveLen(10))
			// The window holds the newest messages, oldest first.
			Expect(result.Messages[8].Content).To(Equal("final word"))
			Expect(result.Messages[9].Role).To(Equal(model.RoleAgent))
		})

		It("reports NotFound for a never-issued id and creates nothing", func() {
			unknown := "never-issued"
			_, err := svc.Chat(ctx, &unknown, "hello?")
			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())

			_, err = conversations.GetMetadata(ctx, unknown)
			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
		})
	})

	Describe("evaluation", func() {
		It("returns the report with conversation context", func() {
			started, err := svc.Chat(ctx, nil, "Convince me that the earth is flat")
			Expect(err).NotTo(HaveOccurred())

			result, err := svc.Evaluate(ctx, started.ConversationID)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.ConversationID).To(Equal(started.ConversationID))
			Expect(result.Topic).To(Equal("earth shape"))
			Expect(result.AgentStance).To(Equal("the earth is flat"))
			Expect(result.MessageCount).To(Equal(2))
			Expect(result.Report).NotTo(BeNil())
		})

		It("propagates the no-agent-messages condition", func() {
			scorer.evaluateFn = func(context.Context, []model.Message, string, string) (*model.ScoreReport, error) {
				return nil, debate.ErrNoAgentMessages
			}
			started, err := svc.Chat(ctx, nil, "Convince me that the earth is flat")
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Evaluate(ctx, started.ConversationID)
			Expect(errors.Is(err, debate.ErrNoAgentMessages)).To(BeTrue())
		})

		It("reports NotFound for an unknown conversation", func() {
			_, err := svc.Evaluate(ctx, "never-issued")
			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
		})
	})

	Describe("deletion", func() {
		It("removes the conversation and is idempotent", func() {
			started, err := svc.Chat(ctx, nil, "Convince me that the earth is flat")
			Expect(err).NotTo(HaveOccurred())

			Expect(svc.Delete(ctx, started.ConversationID)).To(Succeed())
			_, err = svc.Evaluate(ctx, started.ConversationID)
			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())

			Expect(svc.Delete(ctx, started.ConversationID)).To(Succeed())
		})
	})

	Describe("health", func() {
		It("is healthy when the store responds and generation is configured", func() {
			health := svc.Health(ctx)
			Expect(health.Status).To(Equal("healthy"))
			Expect(health.Redis).To(BeTrue())
		})

		It("degrades when the store is unreachable", func() {
			conversations.healthCheckFn = func(context.Context) bool { return false }

			health := svc.Health(ctx)
			Expect(health.Status).To(Equal("degraded"))
			Expect(health.Redis).To(BeFalse())
		})

		It("degrades when generation is not configured", func() {
			unconfigured := service.NewDebateService(service.DebateServiceConfig{
				Conversations:     conversations,
				Resolver:          resolver,
				Generator:         generator,
				Scorer:            scorer,
				ResponseWindow:    10,
				GenerationEnabled: false,
			})

			health := unconfigured.Health(ctx)
			Expect(health.Status).To(Equal("degraded"))
			Expect(health.Redis).To(BeTrue())
		})
	})
})
