package emotion

// positiveEmotions 正向情绪集合
var positiveEmotions = map[Label]bool{
	Happiness:  true,
	Excitement: true,
	Calm:       true,
	Gratitude:  true,
}

// negativeEmotions 负向情绪集合
var negativeEmotions = map[Label]bool{
	Depression: true,
	Anxiety:    true,
	Anger:      true,
	Sadness:    true,
	Fear:       true,
	Loneliness: true,
	Guilt:      true,
}

// SentimentScore 根据情绪列表计算整体情感得分，范围 [-0.8, 0.8]
func SentimentScore(emotions []Label) float64 {
	positiveCount := 0
	negativeCount := 0
	for _, e := range emotions {
		if positiveEmotions[e] {
			positiveCount++
		}
		if negativeEmotions[e] {
			negativeCount++
		}
	}

	switch {
	case positiveCount > negativeCount:
		score := float64(positiveCount) * 0.3
		if score > 0.8 {
			score = 0.8
		}
		return score
	case negativeCount > positiveCount:
		score := -float64(negativeCount) * 0.3
		if score < -0.8 {
			score = -0.8
		}
		return score
	default:
		return 0.0
	}
}
