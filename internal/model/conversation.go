package model

import (
	"time"

	"github.com/GuptaSigma/ZenMate-AI/internal/emotion"
)

// ConversationTurn 一轮对话记录（用户消息 + AI 回复）
type ConversationTurn struct {
	SessionID      string          `json:"sessionId"`
	UserMessage    string          `json:"userMessage"`
	AIResponse     string          `json:"aiResponse"`
	Emotions       []emotion.Label `json:"emotions"`
	PrimaryEmotion emotion.Label   `json:"primaryEmotion"`
	SentimentScore float64         `json:"sentimentScore"`
	Timestamp      time.Time       `json:"timestamp"`
}

// ComposedReply 对话引擎的完整输出，每轮对话新建一次
type ComposedReply struct {
	Text           string          `json:"text"`
	Emotions       []emotion.Label `json:"emotions"`
	PrimaryEmotion emotion.Label   `json:"primaryEmotion"`
	SentimentScore float64         `json:"sentimentScore"`
}

// Suggestion 附带建议（名言、技巧或外部资源）
type Suggestion struct {
	SessionID string        `json:"sessionId"`
	Emotion   emotion.Label `json:"emotion"`
	Kind      string        `json:"kind"` // quote, technique, resource
	Content   string        `json:"content"`
	Title     string        `json:"title,omitempty"`
	URL       string        `json:"url,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}
