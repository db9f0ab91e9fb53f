package handler

import (
	"strconv"

	"github.com/GuptaSigma/ZenMate-AI/internal/model"
	"github.com/GuptaSigma/ZenMate-AI/internal/service"
	"github.com/GuptaSigma/ZenMate-AI/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// crisisResources 危机援助资源列表
var crisisResources = []model.Resource{
	{
		Name:        "Suicide & Crisis Lifeline",
		Description: "Free and confidential support, available 24/7",
		Contact:     "Call or text 988",
	},
	{
		Name:        "Crisis Text Line",
		Description: "Text-based crisis support with trained counselors",
		Contact:     "Text HOME to 741741",
	},
	{
		Name:        "Emergency Services",
		Description: "If you are in immediate danger",
		Contact:     "Call 911",
	},
	{
		Name:        "National Alliance on Mental Illness",
		Description: "Education, support groups and a helpline",
		Contact:     "1-800-950-6264",
		URL:         "https://nami.org",
	},
}

// APIHandler API 处理器
type APIHandler struct {
	sessionService    *service.SessionService
	suggestionService *service.SuggestionService
	store             store.Store
	serviceName       string
	logger            *zap.Logger
}

// NewAPIHandler 创建 API 处理器
func NewAPIHandler(
	sessionService *service.SessionService,
	suggestionService *service.SuggestionService,
	st store.Store,
	serviceName string,
	logger *zap.Logger,
) *APIHandler {
	return &APIHandler{
		sessionService:    sessionService,
		suggestionService: suggestionService,
		store:             st,
		serviceName:       serviceName,
		logger:            logger,
	}
}

// CreateSession 创建新会话
func (h *APIHandler) CreateSession(c *gin.Context) {
	sessionID, err := h.sessionService.Create(c.Request.Context())
	if err != nil {
		h.logger.Error("创建会话失败", zap.Error(err))
		c.JSON(500, gin.H{"error": "创建会话失败"})
		return
	}

	c.JSON(200, gin.H{"sessionId": sessionID})
}

// History 查询会话的对话历史
func (h *APIHandler) History(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		c.JSON(400, gin.H{"error": "sessionId 参数不能为空"})
		return
	}

	limit := parseLimit(c.Query("limit"), 50)
	turns, err := h.store.RecentTurns(c.Request.Context(), sessionID, limit)
	if err != nil {
		h.logger.Error("读取对话历史失败",
			zap.String("sessionId", sessionID),
			zap.Error(err))
		c.JSON(500, gin.H{"error": "读取对话历史失败"})
		return
	}

	c.JSON(200, gin.H{"conversations": turns})
}

// Suggestions 查询会话最近的建议
func (h *APIHandler) Suggestions(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		c.JSON(400, gin.H{"error": "sessionId 参数不能为空"})
		return
	}

	limit := parseLimit(c.Query("limit"), 5)
	suggestions, err := h.suggestionService.Recent(c.Request.Context(), sessionID, limit)
	if err != nil {
		h.logger.Error("读取建议历史失败",
			zap.String("sessionId", sessionID),
			zap.Error(err))
		c.JSON(500, gin.H{"error": "读取建议历史失败"})
		return
	}

	c.JSON(200, gin.H{"suggestions": suggestions})
}

// Resources 危机援助资源
func (h *APIHandler) Resources(c *gin.Context) {
	c.JSON(200, gin.H{"resources": crisisResources})
}

// Health 健康检查
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":         "UP",
		"service":        h.serviceName,
		"online_clients": h.sessionService.OnlineCount(),
	})
}

// parseLimit 解析 limit 参数，非法值回退到默认值
func parseLimit(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}
