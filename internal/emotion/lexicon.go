package emotion

// keywordEntry 情绪关键词条目
type keywordEntry struct {
	Label    Label
	Keywords []string
}

// keywordTable 情绪关键词表。进程启动后只读，顺序即同分时的排名顺序。
var keywordTable = []keywordEntry{
	{Anxiety, []string{"anxious", "anxiety", "worried", "nervous", "panic", "overwhelmed", "scared", "fearful", "restless", "tense"}},
	{Depression, []string{"depressed", "depression", "sad", "hopeless", "empty", "worthless", "down", "low", "blue", "miserable"}},
	{Stress, []string{"stress", "stressed", "pressure", "overwhelmed", "busy", "exhausted", "burned out", "frazzled"}},
	{Anger, []string{"angry", "mad", "furious", "frustrated", "irritated", "annoyed", "rage", "livid", "upset"}},
	{Loneliness, []string{"lonely", "alone", "isolated", "disconnected", "abandoned", "left out", "solitary"}},
	{Fear, []string{"afraid", "scared", "fearful", "terrified", "frightened", "worried", "apprehensive"}},
	{Sadness, []string{"sad", "sorrow", "grief", "melancholy", "dejected", "downhearted", "mournful"}},
	{Happiness, []string{"happy", "joy", "joyful", "elated", "cheerful", "delighted", "pleased", "content"}},
	{Excitement, []string{"excited", "thrilled", "enthusiastic", "energetic", "pumped", "eager"}},
	{Calm, []string{"calm", "peaceful", "serene", "tranquil", "relaxed", "at ease", "centered"}},
	{Confusion, []string{"confused", "lost", "uncertain", "unclear", "bewildered", "puzzled"}},
	{Guilt, []string{"guilty", "ashamed", "regretful", "remorseful", "sorry", "blame myself"}},
	{Gratitude, []string{"grateful", "thankful", "appreciative", "blessed", "fortunate"}},
}
