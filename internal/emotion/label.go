package emotion

// Label 情绪标签
type Label string

// 固定的情绪标签集合。Crisis 与其他标签互斥：一旦触发危机干预，
// 输出只包含 Crisis 一个标签。
const (
	Anxiety    Label = "anxiety"
	Depression Label = "depression"
	Stress     Label = "stress"
	Anger      Label = "anger"
	Loneliness Label = "loneliness"
	Fear       Label = "fear"
	Sadness    Label = "sadness"
	Happiness  Label = "happiness"
	Excitement Label = "excitement"
	Calm       Label = "calm"
	Confusion  Label = "confusion"
	Guilt      Label = "guilt"
	Gratitude  Label = "gratitude"
	Neutral    Label = "neutral"
	Crisis     Label = "crisis"
)

// emotionEmojis 情绪表情映射
var emotionEmojis = map[Label]string{
	Happiness:  "😊",
	Excitement: "🎉",
	Calm:       "😌",
	Gratitude:  "🙏",
	Anxiety:    "😰",
	Depression: "😔",
	Stress:     "😤",
	Anger:      "😠",
	Fear:       "😨",
	Sadness:    "😢",
	Loneliness: "😞",
	Confusion:  "😕",
	Guilt:      "😣",
	Neutral:    "😐",
}

// sentimentEmojis 情感倾向表情映射
var sentimentEmojis = map[string]string{
	"positive": "😊",
	"neutral":  "😐",
	"negative": "😔",
}

// Emoji 返回情绪对应的表情，未映射的标签返回中性表情
func Emoji(label Label) string {
	if emoji, ok := emotionEmojis[label]; ok {
		return emoji
	}
	return "😐"
}

// SentimentEmoji 返回情感倾向标签对应的表情
func SentimentEmoji(label string) string {
	if emoji, ok := sentimentEmojis[label]; ok {
		return emoji
	}
	return "😐"
}

// Contains 判断标签列表中是否包含指定标签
func Contains(labels []Label, target Label) bool {
	for _, l := range labels {
		if l == target {
			return true
		}
	}
	return false
}

// Strings 将标签列表转换为字符串列表（用于持久化）
func Strings(labels []Label) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = string(l)
	}
	return out
}
