package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentimentScore(t *testing.T) {
	tests := []struct {
		name     string
		emotions []Label
		want     float64
	}{
		{"空列表", nil, 0.0},
		{"单个正向", []Label{Happiness}, 0.3},
		{"两个正向", []Label{Happiness, Gratitude}, 0.6},
		{"正向截断到 0.8", []Label{Happiness, Excitement, Calm}, 0.8},
		{"三个负向截断到 -0.8", []Label{Depression, Anxiety, Anger}, -0.8},
		{"单个负向", []Label{Sadness}, -0.3},
		{"正负相抵", []Label{Happiness, Sadness}, 0.0},
		{"中性不计分", []Label{Neutral, Confusion}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SentimentScore(tt.emotions), 1e-9)
		})
	}
}

func TestEmojiLookup(t *testing.T) {
	assert.Equal(t, "😊", Emoji(Happiness))
	assert.Equal(t, "😰", Emoji(Anxiety))
}

func TestEmojiDefaultIsIdempotent(t *testing.T) {
	first := Emoji(Label("unknown"))
	second := Emoji(Label("unknown"))
	assert.Equal(t, "😐", first)
	assert.Equal(t, first, second)
}

func TestSentimentEmoji(t *testing.T) {
	assert.Equal(t, "😊", SentimentEmoji("positive"))
	assert.Equal(t, "😔", SentimentEmoji("negative"))
	assert.Equal(t, "😐", SentimentEmoji("something-else"))
}
