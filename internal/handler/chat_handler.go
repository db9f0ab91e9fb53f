package handler

import (
	"strings"
	"time"

	"github.com/GuptaSigma/ZenMate-AI/internal/emotion"
	"github.com/GuptaSigma/ZenMate-AI/internal/model"
	"github.com/GuptaSigma/ZenMate-AI/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler 聊天处理器
type ChatHandler struct {
	aiService         *service.AIService
	suggestionService *service.SuggestionService
	sessionService    *service.SessionService
	suggestionLimit   int
	logger            *zap.Logger
}

// NewChatHandler 创建聊天处理器
func NewChatHandler(
	aiService *service.AIService,
	suggestionService *service.SuggestionService,
	sessionService *service.SessionService,
	suggestionLimit int,
	logger *zap.Logger,
) *ChatHandler {
	return &ChatHandler{
		aiService:         aiService,
		suggestionService: suggestionService,
		sessionService:    sessionService,
		suggestionLimit:   suggestionLimit,
		logger:            logger,
	}
}

// Chat 处理用户消息
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(400, gin.H{"error": "消息不能为空"})
		return
	}
	if req.SessionID == "" {
		c.JSON(400, gin.H{"error": "sessionId 不能为空"})
		return
	}

	h.logger.Info("收到聊天请求",
		zap.String("sessionId", req.SessionID),
		zap.Int("messageLength", len(message)))

	ctx := c.Request.Context()
	h.sessionService.Touch(ctx, req.SessionID)

	reply := h.aiService.Generate(ctx, message, req.SessionID)
	suggestions := h.suggestionService.Select(ctx, req.SessionID, reply.Emotions, h.suggestionLimit)

	c.JSON(200, model.ChatResponse{
		Response:       reply.Text,
		Emotions:       reply.Emotions,
		PrimaryEmotion: reply.PrimaryEmotion,
		EmotionEmoji:   emotion.Emoji(reply.PrimaryEmotion),
		SentimentScore: reply.SentimentScore,
		Suggestions:    toSuggestionViews(suggestions),
		Timestamp:      time.Now().Format("03:04 PM"),
	})
}

// toSuggestionViews 转换建议为响应视图
func toSuggestionViews(suggestions []*model.Suggestion) []model.SuggestionView {
	views := make([]model.SuggestionView, 0, len(suggestions))
	for _, s := range suggestions {
		views = append(views, model.SuggestionView{
			Kind:    s.Kind,
			Content: s.Content,
			Title:   s.Title,
			URL:     s.URL,
			Emotion: s.Emotion,
		})
	}
	return views
}
