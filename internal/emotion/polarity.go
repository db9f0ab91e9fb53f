package emotion

import (
	"fmt"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
	"go.uber.org/zap"
)

// Analyzer 情感极性分析器，基于 VADER 词典。
// 作为关键词检测的补充信号使用，计算失败时降级为 neutral，不向上抛错。
type Analyzer struct {
	logger *zap.Logger
}

// NewAnalyzer 创建情感极性分析器
func NewAnalyzer(logger *zap.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Estimate 估计文本的情感极性并映射为情绪标签
func (a *Analyzer) Estimate(text string) Label {
	compound, err := a.compound(text)
	if err != nil {
		a.logger.Error("情感极性计算失败", zap.Error(err))
		return Neutral
	}

	return classifyPolarity(compound)
}

// classifyPolarity 极性得分到情绪标签的映射
func classifyPolarity(polarity float64) Label {
	switch {
	case polarity > 0.3:
		return Happiness
	case polarity < -0.3:
		return Sadness
	case polarity < -0.1:
		return Depression
	default:
		return Neutral
	}
}

// AnalyzeSentiment 计算文本的综合情感得分与倾向标签（positive/neutral/negative）
func (a *Analyzer) AnalyzeSentiment(text string) (float64, string) {
	compound, err := a.compound(text)
	if err != nil {
		a.logger.Error("情感分析失败", zap.Error(err))
		return 0.0, "neutral"
	}

	switch {
	case compound >= 0.05:
		return compound, "positive"
	case compound <= -0.05:
		return compound, "negative"
	default:
		return compound, "neutral"
	}
}

// compound 调用 VADER 计算综合极性得分，panic 转为 error
func (a *Analyzer) compound(text string) (score float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("VADER 计算异常: %v", r)
		}
	}()

	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	return sentitext.PolarityScore(parsed).Compound, nil
}
