package router

import (
	"github.com/gin-gonic/gin"

	"github.com/gascenciom1998/debater/internal/http/handler"
	"github.com/gascenciom1998/debater/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services) {
	debateHandler := handler.NewDebateHandler(services.Debate())

	router.GET("/health", debateHandler.Health)
	router.POST("/chat", debateHandler.Chat)
	router.GET("/evaluate-persuasiveness/:conversation_id", debateHandler.Evaluate)
	router.DELETE("/conversations/:conversation_id", debateHandler.Delete)
}
