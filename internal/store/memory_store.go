package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/GuptaSigma/ZenMate-AI/internal/model"
)

// MemoryStore 内存存储（开发与测试用，不持久化）
type MemoryStore struct {
	turns       map[string][]model.ConversationTurn
	suggestions map[string][]model.Suggestion
	sessions    map[string]*model.SessionRecord
	mu          sync.RWMutex // 读写锁
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		turns:       make(map[string][]model.ConversationTurn),
		suggestions: make(map[string][]model.Suggestion),
		sessions:    make(map[string]*model.SessionRecord),
	}
}

// SaveTurn 追加一轮对话记录
func (s *MemoryStore) SaveTurn(ctx context.Context, turn *model.ConversationTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if turn.SessionID == "" {
		return fmt.Errorf("sessionId 不能为空")
	}

	s.turns[turn.SessionID] = append(s.turns[turn.SessionID], *turn)
	return nil
}

// RecentTurns 返回最近 limit 轮对话，按时间从旧到新排列
func (s *MemoryStore) RecentTurns(ctx context.Context, sessionID string, limit int) ([]model.ConversationTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.turns[sessionID]
	if len(all) > limit {
		all = all[len(all)-limit:]
	}

	out := make([]model.ConversationTurn, len(all))
	copy(out, all)
	return out, nil
}

// SaveSuggestion 追加一条建议记录
func (s *MemoryStore) SaveSuggestion(ctx context.Context, suggestion *model.Suggestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if suggestion.SessionID == "" {
		return fmt.Errorf("sessionId 不能为空")
	}

	s.suggestions[suggestion.SessionID] = append(s.suggestions[suggestion.SessionID], *suggestion)
	return nil
}

// RecentSuggestions 返回最近 limit 条建议，按时间从新到旧排列
func (s *MemoryStore) RecentSuggestions(ctx context.Context, sessionID string, limit int) ([]model.Suggestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.suggestions[sessionID]
	if len(all) > limit {
		all = all[len(all)-limit:]
	}

	out := make([]model.Suggestion, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

// CreateSession 创建会话记录
func (s *MemoryStore) CreateSession(ctx context.Context, record *model.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *record
	s.sessions[record.SessionID] = &copied
	return nil
}

// TouchSession 刷新会话的最后活跃时间
func (s *MemoryStore) TouchSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.sessions[sessionID]
	if !ok {
		return fmt.Errorf("会话不存在: %s", sessionID)
	}

	record.LastActive = time.Now()
	return nil
}
