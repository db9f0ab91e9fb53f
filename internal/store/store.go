package store

import (
	"context"

	"github.com/GuptaSigma/ZenMate-AI/internal/model"
)

// Store 会话数据存储。
// 对话引擎对写入结果不敏感：写失败由调用方记录日志后继续。
type Store interface {
	// SaveTurn 追加一轮对话记录
	SaveTurn(ctx context.Context, turn *model.ConversationTurn) error
	// RecentTurns 返回最近 limit 轮对话，按时间从旧到新排列
	RecentTurns(ctx context.Context, sessionID string, limit int) ([]model.ConversationTurn, error)
	// SaveSuggestion 追加一条建议记录
	SaveSuggestion(ctx context.Context, suggestion *model.Suggestion) error
	// RecentSuggestions 返回最近 limit 条建议，按时间从新到旧排列
	RecentSuggestions(ctx context.Context, sessionID string, limit int) ([]model.Suggestion, error)
	// CreateSession 创建会话记录
	CreateSession(ctx context.Context, record *model.SessionRecord) error
	// TouchSession 刷新会话的最后活跃时间
	TouchSession(ctx context.Context, sessionID string) error
}
