package service

import (
	"context"
	"strings"
	"time"

	"github.com/GuptaSigma/ZenMate-AI/internal/emotion"
	"github.com/GuptaSigma/ZenMate-AI/internal/model"
	"github.com/GuptaSigma/ZenMate-AI/internal/store"
	"go.uber.org/zap"
)

// PolarityEstimator 情感极性估计器
type PolarityEstimator interface {
	Estimate(text string) emotion.Label
}

// copingEligible 附带应对技巧的情绪集合
var copingEligible = map[emotion.Label]bool{
	emotion.Anxiety:    true,
	emotion.Stress:     true,
	emotion.Depression: true,
	emotion.Anger:      true,
	emotion.Fear:       true,
	emotion.Sadness:    true,
}

// encourageEligible 附带鼓励语的情绪集合
var encourageEligible = map[emotion.Label]bool{
	emotion.Depression: true,
	emotion.Loneliness: true,
	emotion.Anxiety:    true,
	emotion.Sadness:    true,
	emotion.Fear:       true,
	emotion.Guilt:      true,
}

// AIService 对话引擎：情绪检测、危机干预、历史个性化与回复合成
type AIService struct {
	store        store.Store
	polarity     PolarityEstimator
	chooser      Chooser
	historyLimit int
	logger       *zap.Logger
}

// NewAIService 创建对话引擎
func NewAIService(
	st store.Store,
	polarity PolarityEstimator,
	chooser Chooser,
	historyLimit int,
	logger *zap.Logger,
) *AIService {
	if historyLimit <= 0 {
		historyLimit = 5
	}

	return &AIService{
		store:        st,
		polarity:     polarity,
		chooser:      chooser,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// Generate 生成回复并持久化本轮对话。
// 调用方保证 userMessage 去除空白后非空；任何内部异常都会被转成
// 兜底回复，调用方永远能拿到一个完整的 ComposedReply。
func (s *AIService) Generate(ctx context.Context, userMessage, sessionID string) *model.ComposedReply {
	reply := s.compose(ctx, userMessage, sessionID)
	s.persistTurn(ctx, sessionID, userMessage, reply)
	return reply
}

// compose 合成回复
func (s *AIService) compose(ctx context.Context, userMessage, sessionID string) (reply *model.ComposedReply) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("生成回复异常，返回兜底回复",
				zap.String("sessionId", sessionID),
				zap.Any("panic", r))
			reply = &model.ComposedReply{
				Text:           fallbackResponse,
				Emotions:       []emotion.Label{emotion.Neutral},
				PrimaryEmotion: emotion.Neutral,
				SentimentScore: 0.0,
			}
		}
	}()

	// 1. 危机信号优先，命中后跳过所有其他逻辑
	if emotion.IsCrisis(userMessage) {
		s.logger.Warn("检测到危机信号", zap.String("sessionId", sessionID))
		return &model.ComposedReply{
			Text:           emotion.CrisisResponse,
			Emotions:       []emotion.Label{emotion.Crisis},
			PrimaryEmotion: emotion.Crisis,
			SentimentScore: -1.0,
		}
	}

	// 2. 获取对话历史，失败时降级为空上下文
	turns, err := s.store.RecentTurns(ctx, sessionID, s.historyLimit)
	if err != nil {
		s.logger.Error("读取对话历史失败，按空上下文处理",
			zap.String("sessionId", sessionID),
			zap.Error(err))
		turns = nil
	}

	// 3. 关键词检测 + 极性信号融合：极性标签不在检测结果中
	// 且非中性时追加到末尾，永远不会超过关键词命中的排名
	detected := emotion.Detect(userMessage)
	if polarityLabel := s.polarity.Estimate(userMessage); polarityLabel != emotion.Neutral && !emotion.Contains(detected, polarityLabel) {
		detected = append(detected, polarityLabel)
	}

	// 4. 主情绪为排名第一的标签
	primary := detected[0]

	s.logger.Info("情绪检测完成",
		zap.String("sessionId", sessionID),
		zap.Strings("emotions", emotion.Strings(detected)),
		zap.String("primaryEmotion", string(primary)))

	// 5. 从主情绪的模板池随机选择基础回复
	pool, ok := responsePatterns[primary]
	if !ok {
		pool = responsePatterns[emotion.Neutral]
	}
	response := pick(s.chooser, pool)

	// 6. 历史足够时追加个性化语句
	if len(turns) >= 2 {
		if remark := personalize(turns, userMessage, detected); remark != "" {
			response += " " + remark
		}
	}

	// 7. 困难情绪以 60% 概率附带一条应对技巧
	if copingEligible[primary] {
		if category, ok := emotionToCoping[primary]; ok && s.chooser.Float64() < 0.6 {
			response += "\n\n" + pick(s.chooser, copingStrategies[category])
		}
	}

	// 8. 困难情绪总是附带一条鼓励语
	if encourageEligible[primary] {
		response += "\n\n" + pick(s.chooser, encouragements)
	}

	// 9. 计算整体情感得分
	return &model.ComposedReply{
		Text:           response,
		Emotions:       detected,
		PrimaryEmotion: primary,
		SentimentScore: emotion.SentimentScore(detected),
	}
}

// personalize 根据历史对话中的重复模式生成个性化语句，
// 规则按顺序匹配，首个命中即返回。纯子串匹配，不做语义分析。
func personalize(turns []model.ConversationTurn, currentMessage string, currentEmotions []emotion.Label) string {
	if len(turns) < 2 {
		return ""
	}

	var allEmotions []emotion.Label
	texts := make([]string, 0, len(turns)+1)
	for _, turn := range turns {
		allEmotions = append(allEmotions, turn.Emotions...)
		texts = append(texts, turn.UserMessage)
	}
	texts = append(texts, currentMessage)
	allText := strings.ToLower(strings.Join(texts, " "))

	if emotion.Contains(allEmotions, emotion.Anxiety) && emotion.Contains(currentEmotions, emotion.Anxiety) {
		return "I notice anxiety has been a recurring theme in our conversations. You're not alone in this struggle."
	}

	if emotion.Contains(allEmotions, emotion.Stress) &&
		(emotion.Contains(currentEmotions, emotion.Stress) || emotion.Contains(currentEmotions, "overwhelmed")) {
		return "It seems like stress has been weighing on you lately. Let's work on finding some relief."
	}

	if strings.Contains(allText, "work") && emotion.Contains(allEmotions, emotion.Stress) {
		return "Work stress seems to be a consistent challenge for you."
	}

	if strings.Contains(allText, "sleep") || strings.Contains(allText, "tired") {
		return "I've noticed sleep and rest have come up in our conversations. Quality rest is so important for mental health."
	}

	return ""
}

// persistTurn 持久化本轮对话，失败只记录日志
func (s *AIService) persistTurn(ctx context.Context, sessionID, userMessage string, reply *model.ComposedReply) {
	turn := &model.ConversationTurn{
		SessionID:      sessionID,
		UserMessage:    userMessage,
		AIResponse:     reply.Text,
		Emotions:       reply.Emotions,
		PrimaryEmotion: reply.PrimaryEmotion,
		SentimentScore: reply.SentimentScore,
		Timestamp:      time.Now(),
	}

	if err := s.store.SaveTurn(ctx, turn); err != nil {
		s.logger.Error("保存对话记录失败",
			zap.String("sessionId", sessionID),
			zap.Error(err))
	}
}
