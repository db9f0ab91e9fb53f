package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/GuptaSigma/ZenMate-AI/internal/model"
	"github.com/GuptaSigma/ZenMate-AI/internal/store"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var (
	ErrClientOffline = fmt.Errorf("客户端不在线")
)

// SessionService 会话管理服务：签发会话、记录活跃时间、维护在线连接
type SessionService struct {
	store   store.Store
	clients map[string]*model.ClientSession // sessionId -> 在线连接
	mu      sync.RWMutex                    // 读写锁保护
	logger  *zap.Logger
}

// NewSessionService 创建会话管理服务
func NewSessionService(st store.Store, logger *zap.Logger) *SessionService {
	s := &SessionService{
		store:   st,
		clients: make(map[string]*model.ClientSession),
		logger:  logger,
	}

	// 启动心跳检测
	go s.heartbeatChecker()

	return s
}

// Create 签发新会话
func (s *SessionService) Create(ctx context.Context) (string, error) {
	sessionID := uuid.New().String()
	now := time.Now()

	record := &model.SessionRecord{
		SessionID:  sessionID,
		CreatedAt:  now,
		LastActive: now,
	}

	if err := s.store.CreateSession(ctx, record); err != nil {
		return "", fmt.Errorf("创建会话失败: %w", err)
	}

	s.logger.Info("会话已创建", zap.String("sessionId", sessionID))
	return sessionID, nil
}

// Touch 刷新会话的最后活跃时间，失败只记录日志
func (s *SessionService) Touch(ctx context.Context, sessionID string) {
	if err := s.store.TouchSession(ctx, sessionID); err != nil {
		s.logger.Warn("刷新会话活跃时间失败",
			zap.String("sessionId", sessionID),
			zap.Error(err))
	}
}

// Register 注册 WebSocket 连接
func (s *SessionService) Register(sessionID, username string, conn *websocket.Conn, clientIP string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 清理旧连接
	if existing, ok := s.clients[sessionID]; ok {
		s.logger.Info("会话重新连接，关闭旧连接", zap.String("sessionId", sessionID))
		existing.Conn.Close()
	}

	s.clients[sessionID] = &model.ClientSession{
		SessionID:     sessionID,
		Username:      username,
		Conn:          conn,
		ClientIP:      clientIP,
		LastHeartbeat: time.Now(),
		MissedBeats:   0,
	}

	s.logger.Info("WebSocket 会话注册成功",
		zap.String("sessionId", sessionID),
		zap.String("username", username))
}

// Send 向指定会话推送消息
func (s *SessionService) Send(sessionID string, message interface{}) error {
	s.mu.RLock()
	client, ok := s.clients[sessionID]
	s.mu.RUnlock()

	if !ok {
		s.logger.Warn("客户端不在线，消息推送失败", zap.String("sessionId", sessionID))
		return ErrClientOffline
	}

	if err := client.WriteMessage(message); err != nil {
		s.logger.Error("消息推送失败",
			zap.String("sessionId", sessionID),
			zap.Error(err))
		// 异步清理无效连接
		go s.Remove(sessionID)
		return err
	}

	return nil
}

// UpdateHeartbeat 更新心跳时间
func (s *SessionService) UpdateHeartbeat(sessionID string) bool {
	s.mu.RLock()
	client, ok := s.clients[sessionID]
	s.mu.RUnlock()

	if !ok {
		return false
	}

	client.UpdateHeartbeat()
	return true
}

// Remove 移除 WebSocket 连接
func (s *SessionService) Remove(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[sessionID]; ok {
		delete(s.clients, sessionID)
		s.logger.Info("WebSocket 会话已移除", zap.String("sessionId", sessionID))
	}
}

// OnlineCount 获取在线连接数
func (s *SessionService) OnlineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// heartbeatChecker 心跳检测器
func (s *SessionService) heartbeatChecker() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()

		now := time.Now()
		for sessionID, client := range s.clients {
			if now.Sub(client.LastHeartbeat) > 60*time.Second {
				client.IncrementMissedBeats()

				if client.ShouldBeCleaned() {
					s.logger.Info("清理无效会话",
						zap.String("sessionId", sessionID),
						zap.Int("missedBeats", client.MissedBeats))

					client.Conn.Close()
					delete(s.clients, sessionID)
				} else {
					s.logger.Warn("会话心跳丢失",
						zap.String("sessionId", sessionID),
						zap.Int("missedBeats", client.MissedBeats))
				}
			}
		}

		s.mu.Unlock()
	}
}
