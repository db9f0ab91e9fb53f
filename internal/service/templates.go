package service

import "github.com/GuptaSigma/ZenMate-AI/internal/emotion"

// responsePatterns 各情绪的回复模板池，进程启动后只读
var responsePatterns = map[emotion.Label][]string{
	emotion.Anxiety: {
		"I understand that anxiety can feel overwhelming. It's completely normal to feel this way sometimes.",
		"Anxiety is your mind's way of trying to protect you. Let's work through this together.",
		"Take a deep breath with me. You're safe right now, and these feelings will pass.",
		"I hear that you're feeling anxious. Would you like to try a grounding technique?",
		"Anxiety can make everything feel urgent, but you have the strength to handle this step by step.",
	},
	emotion.Depression: {
		"I hear the pain in your words, and I want you to know that your feelings are valid.",
		"Depression can make everything feel heavy. You're not alone in this struggle.",
		"It takes courage to reach out when you're feeling low. I'm glad you're here.",
		"Even small steps forward matter. You don't have to carry this burden alone.",
		"Your feelings are real and important. There is hope, even when it's hard to see.",
	},
	emotion.Stress: {
		"Stress can feel like too much to handle sometimes. Let's break this down together.",
		"I understand you're feeling overwhelmed. What's the most pressing thing on your mind?",
		"Stress is your body's response to challenges. You've handled difficult times before.",
		"It sounds like you have a lot on your plate. Let's think about what you can control.",
		"Taking care of yourself during stressful times isn't selfish - it's necessary.",
	},
	emotion.Anger: {
		"I can sense your frustration. Anger often comes from feeling unheard or hurt.",
		"It's okay to feel angry. These emotions are telling you something important.",
		"Anger can be powerful energy. Let's think about healthy ways to channel it.",
		"I hear that something has really upset you. Your feelings are completely valid.",
		"Sometimes anger protects us from deeper pain. What's underneath these feelings?",
	},
	emotion.Loneliness: {
		"Feeling lonely can be one of the hardest emotions to sit with. I'm here with you now.",
		"Loneliness doesn't mean you're alone in the universe. You matter, and your feelings matter.",
		"I understand that loneliness can feel endless, but connection is always possible.",
		"Even though you feel isolated, there are people who care about you, including me right now.",
		"Loneliness is a signal that you need connection. That's a very human need.",
	},
	emotion.Fear: {
		"Fear is a natural response when we feel threatened or uncertain. You're safe here.",
		"I acknowledge your fear. It takes courage to face what scares us.",
		"Fear often protects us, but sometimes it can hold us back. Let's explore this together.",
		"Your fears are valid. Would you like to talk about what's frightening you?",
	},
	emotion.Sadness: {
		"Sadness is a deep and meaningful emotion. It's okay to sit with these feelings.",
		"I see your sadness, and it's completely valid to feel this way.",
		"Sometimes we need to honor our sadness before we can move through it.",
		"Your tears and sorrow are expressions of your humanity. You don't have to hide them.",
	},
	emotion.Happiness: {
		"It's wonderful to hear something positive from you! Tell me more about what's going well.",
		"I can sense the joy in your message. It's great to celebrate these moments.",
		"Your happiness is contagious! What's contributing to these good feelings?",
		"It's beautiful to witness your joy. These moments of happiness are important to acknowledge.",
	},
	emotion.Excitement: {
		"Your excitement is infectious! I love hearing about what's energizing you.",
		"It's fantastic that you're feeling so enthusiastic. What's got you so excited?",
		"This energy you're feeling is wonderful. How can we channel it positively?",
	},
	emotion.Calm: {
		"I can sense the peace in your words. It's beautiful when we find moments of calm.",
		"Your sense of tranquility is inspiring. What's helping you feel so centered?",
		"This calm energy you're experiencing is precious. How are you nurturing it?",
	},
	emotion.Confusion: {
		"Feeling confused is completely normal when we're processing complex situations.",
		"It's okay not to have all the answers right now. Let's explore this uncertainty together.",
		"Confusion often comes before clarity. What specific areas feel unclear to you?",
	},
	emotion.Guilt: {
		"Guilt can be a heavy burden to carry. Let's examine these feelings with compassion.",
		"Feeling guilty shows that you care, but remember that you're human and deserve forgiveness.",
		"These feelings of guilt are real, but they don't define your worth as a person.",
	},
	emotion.Gratitude: {
		"Gratitude is such a powerful emotion. It's wonderful that you're feeling thankful.",
		"Your appreciation for life's gifts is beautiful. What are you feeling most grateful for?",
		"This sense of gratitude can be a source of strength and joy.",
	},
	emotion.Neutral: {
		"I'm here to listen to whatever you'd like to share. How has your day been?",
		"Thank you for reaching out. What's on your mind today?",
		"I'm glad you're here. Is there something specific you'd like to talk about?",
		"How are you feeling right now? I'm here to support you through whatever you're experiencing.",
	},
}

// copingStrategies 各类别的应对技巧池
var copingStrategies = map[string][]string{
	"breathing": {
		"Try the 4-7-8 breathing technique: Breathe in for 4, hold for 7, exhale for 8.",
		"Focus on your breath. Breathe in slowly through your nose, out through your mouth.",
		"Try box breathing: In for 4, hold for 4, out for 4, hold for 4.",
	},
	"grounding": {
		"Try the 5-4-3-2-1 technique: Name 5 things you see, 4 you can touch, 3 you hear, 2 you smell, 1 you taste.",
		"Feel your feet on the ground. Notice the temperature of the air on your skin.",
		"Hold an object and focus on its texture, weight, and temperature.",
	},
	"self_care": {
		"Remember to be gentle with yourself. Self-compassion is not selfish.",
		"Have you eaten or had water recently? Sometimes basic needs affect our mood.",
		"Consider doing something small that brings you comfort - a warm drink, soft music, or a brief walk.",
	},
	"movement": {
		"Sometimes gentle movement can help release tension. Try stretching or a short walk.",
		"Physical activity can help process emotions. Even 5 minutes of movement can make a difference.",
		"Consider dancing to your favorite song or doing some light yoga.",
	},
	"mindfulness": {
		"Try to observe your thoughts without judgment, like clouds passing in the sky.",
		"Practice mindful awareness: notice what you're thinking and feeling without trying to change it.",
		"Ground yourself in the present moment. What do you notice around you right now?",
	},
}

// emotionToCoping 情绪到应对技巧类别的映射，未列出的情绪不附带技巧
var emotionToCoping = map[emotion.Label]string{
	emotion.Anxiety:    "breathing",
	emotion.Stress:     "breathing",
	emotion.Anger:      "movement",
	emotion.Depression: "self_care",
	emotion.Sadness:    "self_care",
	emotion.Fear:       "grounding",
	emotion.Confusion:  "mindfulness",
	emotion.Loneliness: "self_care",
}

// encouragements 困难情绪的鼓励语池
var encouragements = []string{
	"Remember, it's okay to take things one moment at a time.",
	"You're showing strength by reaching out and talking about this.",
	"Your feelings are valid, and so are you.",
	"It's okay to not be okay sometimes. Healing isn't linear.",
	"You're not alone in this journey.",
}

// fallbackResponse 内部异常时的兜底回复，保留危机热线作为安全网
const fallbackResponse = "I want you to know that I'm here for you, even though I'm having some technical difficulties right now. " +
	"Your feelings and experiences matter. If you're in crisis, please don't hesitate to reach out to a mental health professional or call 988 for the Suicide & Crisis Lifeline."
