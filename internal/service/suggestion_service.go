package service

import (
	"context"
	"time"

	"github.com/GuptaSigma/ZenMate-AI/internal/emotion"
	"github.com/GuptaSigma/ZenMate-AI/internal/model"
	"github.com/GuptaSigma/ZenMate-AI/internal/store"
	"go.uber.org/zap"
)

// SuggestionService 建议引擎：根据检测到的情绪挑选名言、技巧和资源
type SuggestionService struct {
	store   store.Store
	chooser Chooser
	logger  *zap.Logger
}

// NewSuggestionService 创建建议引擎
func NewSuggestionService(st store.Store, chooser Chooser, logger *zap.Logger) *SuggestionService {
	return &SuggestionService{
		store:   st,
		chooser: chooser,
		logger:  logger,
	}
}

// Select 为排名前 2 的情绪挑选建议：每个情绪固定一条名言和一条技巧，
// 50% 概率附加一条外部资源，最后截断到 limit 条。
// 每条建议都会交给存储层持久化，持久化失败不影响返回结果。
func (s *SuggestionService) Select(ctx context.Context, sessionID string, emotions []emotion.Label, limit int) []*model.Suggestion {
	if limit <= 0 {
		limit = 3
	}

	top := emotions
	if len(top) > 2 {
		top = top[:2]
	}

	var suggestions []*model.Suggestion
	for _, label := range top {
		content, ok := suggestionTable[label]
		if !ok {
			continue
		}

		suggestions = append(suggestions, s.create(ctx, sessionID, label, "quote",
			pick(s.chooser, content.Quotes), "Inspirational Quote", ""))

		suggestions = append(suggestions, s.create(ctx, sessionID, label, "technique",
			pick(s.chooser, content.Techniques), "Coping Technique", ""))

		if len(content.Resources) > 0 && s.chooser.Float64() < 0.5 {
			resource := content.Resources[s.chooser.Intn(len(content.Resources))]
			suggestions = append(suggestions, s.create(ctx, sessionID, label, "resource",
				resource.Description, resource.Title, resource.URL))
		}
	}

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	return suggestions
}

// Recent 返回会话最近的建议记录
func (s *SuggestionService) Recent(ctx context.Context, sessionID string, limit int) ([]model.Suggestion, error) {
	return s.store.RecentSuggestions(ctx, sessionID, limit)
}

// create 构建建议并持久化，失败只记录日志
func (s *SuggestionService) create(ctx context.Context, sessionID string, label emotion.Label, kind, content, title, url string) *model.Suggestion {
	suggestion := &model.Suggestion{
		SessionID: sessionID,
		Emotion:   label,
		Kind:      kind,
		Content:   content,
		Title:     title,
		URL:       url,
		Timestamp: time.Now(),
	}

	if err := s.store.SaveSuggestion(ctx, suggestion); err != nil {
		s.logger.Error("保存建议失败",
			zap.String("sessionId", sessionID),
			zap.String("kind", kind),
			zap.Error(err))
	}

	return suggestion
}
