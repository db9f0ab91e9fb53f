package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GuptaSigma/ZenMate-AI/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionTTL = 24 * time.Hour // 会话数据 24 小时过期

// RedisStore 基于 Redis 的会话数据存储
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(client *redis.Client, logger *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		logger: logger,
	}
}

// SaveTurn 追加一轮对话记录
func (s *RedisStore) SaveTurn(ctx context.Context, turn *model.ConversationTurn) error {
	data, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("序列化对话记录失败: %w", err)
	}

	key := historyKey(turn.SessionID)
	if err := s.client.RPush(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("写入对话记录失败: %w", err)
	}
	s.client.Expire(ctx, key, sessionTTL)

	return nil
}

// RecentTurns 返回最近 limit 轮对话，按时间从旧到新排列
func (s *RedisStore) RecentTurns(ctx context.Context, sessionID string, limit int) ([]model.ConversationTurn, error) {
	items, err := s.client.LRange(ctx, historyKey(sessionID), int64(-limit), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("读取对话历史失败: %w", err)
	}

	turns := make([]model.ConversationTurn, 0, len(items))
	for _, item := range items {
		var turn model.ConversationTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			s.logger.Warn("对话记录解析失败，已跳过",
				zap.String("sessionId", sessionID),
				zap.Error(err))
			continue
		}
		turns = append(turns, turn)
	}

	return turns, nil
}

// SaveSuggestion 追加一条建议记录
func (s *RedisStore) SaveSuggestion(ctx context.Context, suggestion *model.Suggestion) error {
	data, err := json.Marshal(suggestion)
	if err != nil {
		return fmt.Errorf("序列化建议失败: %w", err)
	}

	key := suggestionKey(suggestion.SessionID)
	if err := s.client.RPush(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("写入建议失败: %w", err)
	}
	s.client.Expire(ctx, key, sessionTTL)

	return nil
}

// RecentSuggestions 返回最近 limit 条建议，按时间从新到旧排列
func (s *RedisStore) RecentSuggestions(ctx context.Context, sessionID string, limit int) ([]model.Suggestion, error) {
	items, err := s.client.LRange(ctx, suggestionKey(sessionID), int64(-limit), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("读取建议历史失败: %w", err)
	}

	suggestions := make([]model.Suggestion, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		var suggestion model.Suggestion
		if err := json.Unmarshal([]byte(items[i]), &suggestion); err != nil {
			s.logger.Warn("建议记录解析失败，已跳过",
				zap.String("sessionId", sessionID),
				zap.Error(err))
			continue
		}
		suggestions = append(suggestions, suggestion)
	}

	return suggestions, nil
}

// CreateSession 创建会话记录
func (s *RedisStore) CreateSession(ctx context.Context, record *model.SessionRecord) error {
	key := sessionKey(record.SessionID)
	err := s.client.HSet(ctx, key,
		"createdAt", record.CreatedAt.Format(time.RFC3339),
		"lastActive", record.LastActive.Format(time.RFC3339),
	).Err()
	if err != nil {
		return fmt.Errorf("创建会话记录失败: %w", err)
	}
	s.client.Expire(ctx, key, sessionTTL)

	return nil
}

// TouchSession 刷新会话的最后活跃时间
func (s *RedisStore) TouchSession(ctx context.Context, sessionID string) error {
	key := sessionKey(sessionID)
	err := s.client.HSet(ctx, key, "lastActive", time.Now().Format(time.RFC3339)).Err()
	if err != nil {
		return fmt.Errorf("刷新会话失败: %w", err)
	}
	s.client.Expire(ctx, key, sessionTTL)

	return nil
}

func historyKey(sessionID string) string {
	return fmt.Sprintf("chat_history:%s", sessionID)
}

func suggestionKey(sessionID string) string {
	return fmt.Sprintf("suggestions:%s", sessionID)
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}
