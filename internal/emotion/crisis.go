package emotion

import "strings"

// crisisKeywords 危机干预关键词。子串匹配且不处理否定语境，
// 宁可误报也不漏报。
var crisisKeywords = []string{
	"suicide",
	"kill myself",
	"end it all",
	"want to die",
	"hurt myself",
	"self harm",
	"no point living",
}

// CrisisResponse 固定的危机干预回复
const CrisisResponse = `I'm very concerned about what you've shared. Your life has value and meaning. Please reach out for immediate help:

• Call 988 (Suicide & Crisis Lifeline) - available 24/7
• Text HOME to 741741 (Crisis Text Line)
• Call 911 if you're in immediate danger

You don't have to go through this alone. There are people who want to help you, including professional counselors who are trained to support you through this difficult time.`

// IsCrisis 判断文本是否包含危机信号
func IsCrisis(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range crisisKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
