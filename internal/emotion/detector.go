package emotion

import (
	"sort"
	"strings"
)

// Score 带得分的情绪
type Score struct {
	Label Label
	Value int
}

// Scores 对文本做关键词打分，返回得分大于 0 的情绪，按得分降序排列。
// 完整单词命中计 2 分，子串命中计 1 分。同一关键词既是其他命中词的
// 子串时会重复计分，这与线上行为一致，属于已知的打分特性。
func Scores(text string) []Score {
	lower := strings.ToLower(text)
	padded := " " + lower + " "

	var scores []Score
	for _, entry := range keywordTable {
		value := 0
		for _, keyword := range entry.Keywords {
			if strings.Contains(padded, " "+keyword+" ") {
				value += 2
			} else if strings.Contains(lower, keyword) {
				value++
			}
		}
		if value > 0 {
			scores = append(scores, Score{Label: entry.Label, Value: value})
		}
	}

	// 稳定排序：同分情绪保持关键词表的声明顺序
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Value > scores[j].Value
	})

	return scores
}

// Detect 检测文本中的情绪，按得分从高到低排列，无命中时返回 [neutral]
func Detect(text string) []Label {
	scores := Scores(text)
	if len(scores) == 0 {
		return []Label{Neutral}
	}

	labels := make([]Label, len(scores))
	for i, s := range scores {
		labels[i] = s.Label
	}
	return labels
}
