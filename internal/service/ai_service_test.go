package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/GuptaSigma/ZenMate-AI/internal/emotion"
	"github.com/GuptaSigma/ZenMate-AI/internal/model"
	"github.com/GuptaSigma/ZenMate-AI/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scriptedChooser 按脚本返回随机值，便于确定性地覆盖两条概率分支
type scriptedChooser struct {
	ints   []int
	floats []float64
}

func (c *scriptedChooser) Intn(n int) int {
	if len(c.ints) == 0 {
		return 0
	}
	v := c.ints[0]
	c.ints = c.ints[1:]
	return v % n
}

func (c *scriptedChooser) Float64() float64 {
	if len(c.floats) == 0 {
		return 1.0
	}
	v := c.floats[0]
	c.floats = c.floats[1:]
	return v
}

// fixedPolarity 固定返回某个标签的极性估计器
type fixedPolarity struct {
	label emotion.Label
}

func (p *fixedPolarity) Estimate(text string) emotion.Label {
	return p.label
}

// failStore 所有操作都失败的存储，用于验证降级路径
type failStore struct{}

func (f *failStore) SaveTurn(ctx context.Context, turn *model.ConversationTurn) error {
	return fmt.Errorf("save turn failed")
}

func (f *failStore) RecentTurns(ctx context.Context, sessionID string, limit int) ([]model.ConversationTurn, error) {
	return nil, fmt.Errorf("recent turns failed")
}

func (f *failStore) SaveSuggestion(ctx context.Context, suggestion *model.Suggestion) error {
	return fmt.Errorf("save suggestion failed")
}

func (f *failStore) RecentSuggestions(ctx context.Context, sessionID string, limit int) ([]model.Suggestion, error) {
	return nil, fmt.Errorf("recent suggestions failed")
}

func (f *failStore) CreateSession(ctx context.Context, record *model.SessionRecord) error {
	return fmt.Errorf("create session failed")
}

func (f *failStore) TouchSession(ctx context.Context, sessionID string) error {
	return fmt.Errorf("touch session failed")
}

func newTestAIService(st store.Store, polarity PolarityEstimator, chooser Chooser) *AIService {
	return NewAIService(st, polarity, chooser, 5, zap.NewNop())
}

func seedTurn(t *testing.T, st store.Store, sessionID, userMessage string, emotions []emotion.Label) {
	t.Helper()
	err := st.SaveTurn(context.Background(), &model.ConversationTurn{
		SessionID:      sessionID,
		UserMessage:    userMessage,
		AIResponse:     "reply",
		Emotions:       emotions,
		PrimaryEmotion: emotions[0],
	})
	require.NoError(t, err)
}

func TestGenerateCrisisOverride(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newTestAIService(st, &fixedPolarity{label: emotion.Neutral}, &scriptedChooser{})

	reply := svc.Generate(context.Background(), "honestly I just want to die", "sid")

	assert.Equal(t, emotion.Crisis, reply.PrimaryEmotion)
	assert.Equal(t, []emotion.Label{emotion.Crisis}, reply.Emotions)
	assert.InDelta(t, -1.0, reply.SentimentScore, 1e-9)
	assert.Contains(t, reply.Text, "988")
	assert.Contains(t, reply.Text, "741741")

	// 危机回复同样会被持久化
	turns, err := st.RecentTurns(context.Background(), "sid", 5)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, emotion.Crisis, turns[0].PrimaryEmotion)
}

func TestGenerateNeutral(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newTestAIService(st, &fixedPolarity{label: emotion.Neutral}, &scriptedChooser{ints: []int{0}})

	reply := svc.Generate(context.Background(), "I went to the market to buy vegetables", "sid")

	assert.Equal(t, emotion.Neutral, reply.PrimaryEmotion)
	assert.Equal(t, []emotion.Label{emotion.Neutral}, reply.Emotions)
	assert.InDelta(t, 0.0, reply.SentimentScore, 1e-9)
	assert.Equal(t, responsePatterns[emotion.Neutral][0], reply.Text)
}

func TestGeneratePolarityFusionAppends(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newTestAIService(st, &fixedPolarity{label: emotion.Happiness}, &scriptedChooser{floats: []float64{0.9}})

	reply := svc.Generate(context.Background(), "I feel anxious", "sid")

	// 极性标签追加到末尾，不会超过关键词命中的排名
	assert.Equal(t, []emotion.Label{emotion.Anxiety, emotion.Happiness}, reply.Emotions)
	assert.Equal(t, emotion.Anxiety, reply.PrimaryEmotion)
	assert.InDelta(t, 0.0, reply.SentimentScore, 1e-9) // 正负相抵
}

func TestGeneratePolarityFusionSkipsDuplicate(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newTestAIService(st, &fixedPolarity{label: emotion.Sadness}, &scriptedChooser{floats: []float64{0.9}})

	reply := svc.Generate(context.Background(), "I feel sad", "sid")

	// "sad" 同时命中 depression 和 sadness，极性标签已在列表中时不再追加
	assert.Equal(t, []emotion.Label{emotion.Depression, emotion.Sadness}, reply.Emotions)
}

func TestGenerateCopingGateFires(t *testing.T) {
	st := store.NewMemoryStore()
	chooser := &scriptedChooser{ints: []int{0, 0, 0}, floats: []float64{0.1}}
	svc := newTestAIService(st, &fixedPolarity{label: emotion.Neutral}, chooser)

	reply := svc.Generate(context.Background(), "I feel anxious", "sid")

	paragraphs := strings.Split(reply.Text, "\n\n")
	require.Len(t, paragraphs, 3)
	assert.Equal(t, responsePatterns[emotion.Anxiety][0], paragraphs[0])
	assert.Equal(t, copingStrategies["breathing"][0], paragraphs[1])
	assert.Equal(t, encouragements[0], paragraphs[2])
}

func TestGenerateCopingGateClosed(t *testing.T) {
	st := store.NewMemoryStore()
	chooser := &scriptedChooser{ints: []int{0, 0}, floats: []float64{0.9}}
	svc := newTestAIService(st, &fixedPolarity{label: emotion.Neutral}, chooser)

	reply := svc.Generate(context.Background(), "I feel anxious", "sid")

	paragraphs := strings.Split(reply.Text, "\n\n")
	require.Len(t, paragraphs, 2)
	assert.Equal(t, responsePatterns[emotion.Anxiety][0], paragraphs[0])
	assert.Equal(t, encouragements[0], paragraphs[1])
}

func TestGenerateSurvivesStorageFailure(t *testing.T) {
	svc := newTestAIService(&failStore{}, &fixedPolarity{label: emotion.Neutral}, &scriptedChooser{floats: []float64{0.9}})

	// 历史读取和持久化都失败，回复仍然完整
	reply := svc.Generate(context.Background(), "I feel anxious", "sid")

	require.NotNil(t, reply)
	assert.Equal(t, emotion.Anxiety, reply.PrimaryEmotion)
	assert.NotEmpty(t, reply.Text)
}

// panicPolarity 总是 panic 的极性估计器，用于触发兜底路径
type panicPolarity struct{}

func (panicPolarity) Estimate(text string) emotion.Label {
	panic("polarity exploded")
}

func TestGenerateFallbackOnUnexpectedFailure(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newTestAIService(st, panicPolarity{}, &scriptedChooser{})

	reply := svc.Generate(context.Background(), "I feel anxious", "sid")

	require.NotNil(t, reply)
	assert.Equal(t, fallbackResponse, reply.Text)
	assert.Equal(t, []emotion.Label{emotion.Neutral}, reply.Emotions)
	assert.Equal(t, emotion.Neutral, reply.PrimaryEmotion)
	assert.InDelta(t, 0.0, reply.SentimentScore, 1e-9)
	assert.Contains(t, reply.Text, "988") // 兜底回复保留危机热线
}

func TestPersonalizeRequiresTwoTurns(t *testing.T) {
	turns := []model.ConversationTurn{
		{UserMessage: "feeling anxious", Emotions: []emotion.Label{emotion.Anxiety}},
	}

	remark := personalize(turns, "still anxious", []emotion.Label{emotion.Anxiety})
	assert.Empty(t, remark)
}

func TestPersonalizeRecurringAnxiety(t *testing.T) {
	turns := []model.ConversationTurn{
		{UserMessage: "feeling anxious", Emotions: []emotion.Label{emotion.Anxiety}},
		{UserMessage: "still worried", Emotions: []emotion.Label{emotion.Anxiety}},
	}

	remark := personalize(turns, "anxious again", []emotion.Label{emotion.Anxiety})
	assert.Contains(t, remark, "anxiety has been a recurring theme")
}

func TestPersonalizeRulePrecedence(t *testing.T) {
	// 历史同时有 anxiety 和 stress，规则 1 优先
	turns := []model.ConversationTurn{
		{UserMessage: "work is stressful", Emotions: []emotion.Label{emotion.Stress}},
		{UserMessage: "feeling anxious", Emotions: []emotion.Label{emotion.Anxiety}},
	}

	remark := personalize(turns, "anxious and stressed", []emotion.Label{emotion.Anxiety, emotion.Stress})
	assert.Contains(t, remark, "anxiety has been a recurring theme")
}

func TestPersonalizeRecurringStress(t *testing.T) {
	turns := []model.ConversationTurn{
		{UserMessage: "so much pressure", Emotions: []emotion.Label{emotion.Stress}},
		{UserMessage: "still exhausted", Emotions: []emotion.Label{emotion.Stress}},
	}

	remark := personalize(turns, "stressed again", []emotion.Label{emotion.Stress})
	assert.Contains(t, remark, "stress has been weighing on you")
}

func TestPersonalizeWorkStress(t *testing.T) {
	turns := []model.ConversationTurn{
		{UserMessage: "work is piling up", Emotions: []emotion.Label{emotion.Stress}},
		{UserMessage: "another long day at work", Emotions: []emotion.Label{emotion.Stress}},
	}

	// 当前情绪不含 stress，规则 2 不触发，落到规则 3
	remark := personalize(turns, "angry about my manager", []emotion.Label{emotion.Anger})
	assert.Contains(t, remark, "Work stress")
}

func TestPersonalizeSleep(t *testing.T) {
	turns := []model.ConversationTurn{
		{UserMessage: "couldn't sleep last night", Emotions: []emotion.Label{emotion.Neutral}},
		{UserMessage: "so tired today", Emotions: []emotion.Label{emotion.Neutral}},
	}

	remark := personalize(turns, "how do I rest better", []emotion.Label{emotion.Neutral})
	assert.Contains(t, remark, "sleep and rest")
}

func TestPersonalizeNoMatch(t *testing.T) {
	turns := []model.ConversationTurn{
		{UserMessage: "hello there", Emotions: []emotion.Label{emotion.Neutral}},
		{UserMessage: "nice weather", Emotions: []emotion.Label{emotion.Neutral}},
	}

	remark := personalize(turns, "just saying hi", []emotion.Label{emotion.Neutral})
	assert.Empty(t, remark)
}

func TestGenerateEndToEndScenario(t *testing.T) {
	st := store.NewMemoryStore()
	seedTurn(t, st, "sid", "couldn't sleep last night", []emotion.Label{emotion.Neutral})
	seedTurn(t, st, "sid", "slept badly again", []emotion.Label{emotion.Neutral})

	chooser := &scriptedChooser{ints: []int{0, 0, 0}, floats: []float64{0.1}}
	svc := newTestAIService(st, &fixedPolarity{label: emotion.Neutral}, chooser)

	reply := svc.Generate(context.Background(), "I feel so anxious and overwhelmed about work, can't sleep", "sid")

	// anxiety 命中两个关键词（anxious + overwhelmed），排在 stress 之前
	assert.Equal(t, emotion.Anxiety, reply.PrimaryEmotion)
	assert.True(t, emotion.Contains(reply.Emotions, emotion.Stress))

	paragraphs := strings.Split(reply.Text, "\n\n")
	require.Len(t, paragraphs, 3)
	// 第一段：anxiety 模板 + 睡眠个性化语句
	assert.Equal(t, responsePatterns[emotion.Anxiety][0]+" I've noticed sleep and rest have come up in our conversations. Quality rest is so important for mental health.", paragraphs[0])
	// 第二段：呼吸类应对技巧
	assert.Equal(t, copingStrategies["breathing"][0], paragraphs[1])
	// 第三段：鼓励语
	assert.Equal(t, encouragements[0], paragraphs[2])

	assert.InDelta(t, -0.3, reply.SentimentScore, 1e-9)
}
