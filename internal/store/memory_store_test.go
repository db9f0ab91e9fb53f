package store

import (
	"context"
	"testing"
	"time"

	"github.com/GuptaSigma/ZenMate-AI/internal/emotion"
	"github.com/GuptaSigma/ZenMate-AI/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreTurns(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i, msg := range []string{"first", "second", "third"} {
		err := s.SaveTurn(ctx, &model.ConversationTurn{
			SessionID:      "sid",
			UserMessage:    msg,
			AIResponse:     "reply",
			Emotions:       []emotion.Label{emotion.Neutral},
			PrimaryEmotion: emotion.Neutral,
			Timestamp:      time.Now().Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	// 截断到最近 2 轮，从旧到新
	turns, err := s.RecentTurns(ctx, "sid", 2)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "second", turns[0].UserMessage)
	assert.Equal(t, "third", turns[1].UserMessage)
}

func TestMemoryStoreTurnsEmptySession(t *testing.T) {
	s := NewMemoryStore()
	turns, err := s.RecentTurns(context.Background(), "missing", 5)
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestMemoryStoreSaveTurnRequiresSession(t *testing.T) {
	s := NewMemoryStore()
	err := s.SaveTurn(context.Background(), &model.ConversationTurn{})
	assert.Error(t, err)
}

func TestMemoryStoreSuggestionsNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, kind := range []string{"quote", "technique", "resource"} {
		err := s.SaveSuggestion(ctx, &model.Suggestion{
			SessionID: "sid",
			Emotion:   emotion.Anxiety,
			Kind:      kind,
			Content:   "content",
		})
		require.NoError(t, err)
	}

	suggestions, err := s.RecentSuggestions(ctx, "sid", 2)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "resource", suggestions[0].Kind)
	assert.Equal(t, "technique", suggestions[1].Kind)
}

func TestMemoryStoreSessions(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	record := &model.SessionRecord{
		SessionID:  "sid",
		CreatedAt:  time.Now(),
		LastActive: time.Now(),
	}
	require.NoError(t, s.CreateSession(ctx, record))
	assert.NoError(t, s.TouchSession(ctx, "sid"))
	assert.Error(t, s.TouchSession(ctx, "missing"))
}
