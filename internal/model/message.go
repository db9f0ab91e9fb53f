package model

import (
	"time"

	"github.com/GuptaSigma/ZenMate-AI/internal/emotion"
)

// ChatMessage WebSocket 聊天消息
type ChatMessage struct {
	MessageID string    `json:"messageId"`
	Type      string    `json:"type"` // CHAT, HEARTBEAT, AI_RESPONSE
	Content   string    `json:"content"`
	SessionID string    `json:"sessionId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest 聊天请求
type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// ChatResponse 聊天响应
type ChatResponse struct {
	Response       string           `json:"response"`
	Emotions       []emotion.Label  `json:"emotions"`
	PrimaryEmotion emotion.Label    `json:"primaryEmotion"`
	EmotionEmoji   string           `json:"emotionEmoji"`
	SentimentScore float64          `json:"sentimentScore"`
	Suggestions    []SuggestionView `json:"suggestions"`
	Timestamp      string           `json:"timestamp"`
}

// SuggestionView 建议的响应视图
type SuggestionView struct {
	Kind    string        `json:"type"`
	Content string        `json:"content"`
	Title   string        `json:"title,omitempty"`
	URL     string        `json:"url,omitempty"`
	Emotion emotion.Label `json:"emotion"`
}

// AIResponseMessage 推送给 WebSocket 客户端的 AI 回复
type AIResponseMessage struct {
	MessageID      string           `json:"messageId"`
	Type           string           `json:"type"` // AI_RESPONSE
	Content        string           `json:"content"`
	Emotions       []emotion.Label  `json:"emotions"`
	PrimaryEmotion emotion.Label    `json:"primaryEmotion"`
	EmotionEmoji   string           `json:"emotionEmoji"`
	SentimentScore float64          `json:"sentimentScore"`
	Suggestions    []SuggestionView `json:"suggestions"`
	Timestamp      time.Time        `json:"timestamp"`
}

// Resource 危机援助资源
type Resource struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
	URL         string `json:"url,omitempty"`
}
