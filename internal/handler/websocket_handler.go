package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/GuptaSigma/ZenMate-AI/internal/emotion"
	"github.com/GuptaSigma/ZenMate-AI/internal/model"
	"github.com/GuptaSigma/ZenMate-AI/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: 生产环境应该检查 Origin 白名单
		return true
	},
}

// WebSocketHandler WebSocket 处理器
type WebSocketHandler struct {
	sessionService    *service.SessionService
	aiService         *service.AIService
	suggestionService *service.SuggestionService
	suggestionLimit   int
	logger            *zap.Logger
}

// NewWebSocketHandler 创建 WebSocket 处理器
func NewWebSocketHandler(
	sessionService *service.SessionService,
	aiService *service.AIService,
	suggestionService *service.SuggestionService,
	suggestionLimit int,
	logger *zap.Logger,
) *WebSocketHandler {
	return &WebSocketHandler{
		sessionService:    sessionService,
		aiService:         aiService,
		suggestionService: suggestionService,
		suggestionLimit:   suggestionLimit,
		logger:            logger,
	}
}

// HandleWebSocket WebSocket 连接入口
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		c.JSON(400, gin.H{"error": "sessionId 参数不能为空"})
		return
	}

	username := c.Query("username")
	if username == "" {
		username = "访客"
	}

	// 升级为 WebSocket 连接
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket 升级失败", zap.Error(err))
		return
	}
	defer conn.Close()

	// 注册会话
	h.sessionService.Register(sessionID, username, conn, c.ClientIP())
	defer h.sessionService.Remove(sessionID)

	h.logger.Info("WebSocket 连接建立", zap.String("sessionId", sessionID))

	// 消息循环
	for {
		var msg model.ChatMessage
		err := conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("WebSocket 读取错误", zap.Error(err))
			}
			break
		}

		// 处理消息
		h.handleMessage(sessionID, &msg)
	}

	h.logger.Info("WebSocket 连接断开", zap.String("sessionId", sessionID))
}

// handleMessage 处理客户端消息
func (h *WebSocketHandler) handleMessage(sessionID string, msg *model.ChatMessage) {
	switch msg.Type {
	case "CHAT":
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			h.logger.Warn("收到空消息，已忽略", zap.String("sessionId", sessionID))
			return
		}

		// 异步生成回复并推送
		go h.respond(sessionID, content)

	case "HEARTBEAT":
		// 更新心跳时间
		h.sessionService.UpdateHeartbeat(sessionID)
		h.logger.Debug("收到心跳", zap.String("sessionId", sessionID))

	default:
		h.logger.Warn("未知消息类型",
			zap.String("sessionId", sessionID),
			zap.String("type", msg.Type))
	}
}

// respond 生成回复并推送给客户端
func (h *WebSocketHandler) respond(sessionID, content string) {
	ctx := context.Background()
	h.sessionService.Touch(ctx, sessionID)

	reply := h.aiService.Generate(ctx, content, sessionID)
	suggestions := h.suggestionService.Select(ctx, sessionID, reply.Emotions, h.suggestionLimit)

	response := model.AIResponseMessage{
		MessageID:      uuid.New().String(),
		Type:           "AI_RESPONSE",
		Content:        reply.Text,
		Emotions:       reply.Emotions,
		PrimaryEmotion: reply.PrimaryEmotion,
		EmotionEmoji:   emotion.Emoji(reply.PrimaryEmotion),
		SentimentScore: reply.SentimentScore,
		Suggestions:    toSuggestionViews(suggestions),
		Timestamp:      time.Now(),
	}

	if err := h.sessionService.Send(sessionID, response); err != nil {
		h.logger.Error("推送 AI 回复失败",
			zap.String("sessionId", sessionID),
			zap.Error(err))
	}
}
