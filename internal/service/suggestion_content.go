package service

import "github.com/GuptaSigma/ZenMate-AI/internal/emotion"

// resourceEntry 外部资源条目
type resourceEntry struct {
	Title       string
	Description string
	URL         string
}

// suggestionContent 单个情绪的建议内容
type suggestionContent struct {
	Quotes     []string
	Techniques []string
	Resources  []resourceEntry
}

// suggestionTable 建议内容表，进程启动后只读。
// 未收录的情绪不产生建议。
var suggestionTable = map[emotion.Label]suggestionContent{
	emotion.Anxiety: {
		Quotes: []string{
			"You are braver than you believe, stronger than you seem, and smarter than you think. - A.A. Milne",
			"Anxiety is the mark of spiritual insecurity. - Thomas Merton",
			"The greatest weapon against stress is our ability to choose one thought over another. - William James",
			"Nothing can bring you peace but yourself. - Ralph Waldo Emerson",
		},
		Techniques: []string{
			"Progressive Muscle Relaxation: Tense and release each muscle group for 5 seconds",
			"Mindful Breathing: Focus on your breath for 2 minutes without judgment",
			"Grounding Exercise: Name 5 things you can see, 4 you can hear, 3 you can touch",
			"Journaling: Write down 3 things causing anxiety and 3 potential solutions",
		},
		Resources: []resourceEntry{
			{
				Title:       "Anxiety and Depression Association",
				Description: "Professional resources and support groups for anxiety",
				URL:         "https://adaa.org",
			},
			{
				Title:       "Calm App - Anxiety Programs",
				Description: "Guided meditations specifically for anxiety relief",
				URL:         "https://calm.com",
			},
		},
	},
	emotion.Depression: {
		Quotes: []string{
			"Even the darkest night will end and the sun will rise. - Victor Hugo",
			"You are stronger than you know. More resilient than you think.",
			"Depression is not a sign of weakness. It's a sign that you've been strong for too long.",
			"Your current situation is not your final destination.",
		},
		Techniques: []string{
			"Daily Gratitude Practice: Write down 3 things you're grateful for each day",
			"Gentle Movement: Take a 10-minute walk outside or do light stretching",
			"Connect with Nature: Spend time outdoors, even if just on a balcony",
			"Reach Out: Send a message to one friend or family member today",
		},
		Resources: []resourceEntry{
			{
				Title:       "National Alliance on Mental Illness",
				Description: "Support groups and educational resources for depression",
				URL:         "https://nami.org",
			},
			{
				Title:       "Depression and Bipolar Support Alliance",
				Description: "Peer support and mental health resources",
				URL:         "https://dbsalliance.org",
			},
		},
	},
	emotion.Stress: {
		Quotes: []string{
			"You have been assigned this mountain to show others it can be moved.",
			"Stress is caused by being 'here' but wanting to be 'there'. - Eckhart Tolle",
			"Take time to make your soul happy.",
			"The greatest weapon against stress is our ability to choose one thought over another.",
		},
		Techniques: []string{
			"Time Management: List your tasks and prioritize the top 3 most important",
			"Deep Breathing: Try 4-7-8 breathing (inhale 4, hold 7, exhale 8)",
			"Boundary Setting: Practice saying 'no' to one non-essential commitment",
			"Mini Breaks: Take 5-minute breaks every hour to reset your mind",
		},
		Resources: []resourceEntry{
			{
				Title:       "American Psychological Association - Stress",
				Description: "Evidence-based stress management techniques",
				URL:         "https://apa.org/topics/stress",
			},
			{
				Title:       "Headspace - Stress Relief",
				Description: "Guided meditations for stress management",
				URL:         "https://headspace.com",
			},
		},
	},
	emotion.Anger: {
		Quotes: []string{
			"Anger is an acid that can do more harm to the vessel in which it is stored than to anything on which it is poured. - Mark Twain",
			"The best fighter is never angry. - Lao Tzu",
			"Speak when you are angry and you will make the best speech you will ever regret. - Ambrose Bierce",
			"Holding onto anger is like grasping a hot coal with the intent of throwing it at someone else.",
		},
		Techniques: []string{
			"Count to 10: Take slow, deep breaths while counting to give yourself time",
			"Physical Release: Do jumping jacks, push-ups, or punch a pillow",
			"Identify Triggers: Write down what specifically made you angry",
			"Perspective Check: Ask yourself if this will matter in 5 years",
		},
		Resources: []resourceEntry{
			{
				Title:       "American Psychological Association - Anger",
				Description: "Professional strategies for anger management",
				URL:         "https://apa.org/topics/anger",
			},
		},
	},
	emotion.Sadness: {
		Quotes: []string{
			"Tears are words that need to be written. - Paulo Coelho",
			"The cure for anything is salt water: sweat, tears, or the sea. - Isak Dinesen",
			"Sadness gives depth. Happiness gives height. Sadness gives roots. Happiness gives branches.",
			"It's okay to not be okay. It's okay to cry. It's okay to feel sad.",
		},
		Techniques: []string{
			"Allow the Feeling: Give yourself permission to feel sad without judgment",
			"Creative Expression: Draw, write, or listen to music that matches your mood",
			"Comfort Activities: Make tea, take a warm bath, or wrap yourself in a soft blanket",
			"Memory Reflection: Look at photos or remember happy moments",
		},
		Resources: []resourceEntry{
			{
				Title:       "Mental Health America",
				Description: "Resources for understanding and coping with sadness",
				URL:         "https://mhanational.org",
			},
		},
	},
	emotion.Happiness: {
		Quotes: []string{
			"Happiness is not something ready-made. It comes from your own actions. - Dalai Lama",
			"The secret of being happy is accepting where you are in life and making the most out of everyday.",
			"Happiness is a choice, not a result. Nothing will make you happy until you choose to be happy.",
			"Collect moments, not things.",
		},
		Techniques: []string{
			"Gratitude Expansion: Share your happiness with someone who matters to you",
			"Happiness Journal: Write about what's making you feel good right now",
			"Pay It Forward: Do something kind for someone else to spread the joy",
			"Savor the Moment: Take time to really appreciate this positive feeling",
		},
		Resources: []resourceEntry{
			{
				Title:       "Greater Good Science Center",
				Description: "Research-based practices for happiness and well-being",
				URL:         "https://greatergood.berkeley.edu",
			},
		},
	},
	emotion.Loneliness: {
		Quotes: []string{
			"The greatest thing in the world is to know how to belong to oneself. - Michel de Montaigne",
			"You are never alone. You are eternally connected with everyone.",
			"Loneliness is not lack of company, loneliness is lack of purpose. - Guillermo Maldonado",
			"The eternal quest of the individual human being is to shatter his loneliness.",
		},
		Techniques: []string{
			"Virtual Connection: Reach out to an old friend via text or call",
			"Community Engagement: Join an online group or local activity",
			"Self-Companionship: Practice being comfortable with yourself through meditation",
			"Volunteer: Help others to create meaningful connections",
		},
		Resources: []resourceEntry{
			{
				Title:       "Campaign to End Loneliness",
				Description: "Resources and support for dealing with loneliness",
				URL:         "https://campaigntoendloneliness.org",
			},
		},
	},
}
