package companion

import "strings"

type fallbackRule struct {
	keywords []string
	reply    string
}

// Checked in order; the first rule with a matching keyword wins.
var fallbackRules = []fallbackRule{
	{
		keywords: []string{"stress", "anxious", "anxiety", "worried"},
		reply:    "I understand that you're feeling stressed. Stress can be challenging, but there are techniques that might help. Would you like to try a 5-minute breathing exercise or perhaps talk more about what's causing your stress?",
	},
	{
		keywords: []string{"sad", "depress", "unhappy", "down"},
		reply:    "I'm sorry to hear you're feeling this way. It's important to acknowledge these feelings. Would it help to talk more about what's bothering you, or would you prefer to try an activity that might lift your mood?",
	},
	{
		keywords: []string{"sleep", "tired", "insomnia", "rest"},
		reply:    "Sleep is essential for mental health. Some strategies that might help include maintaining a regular sleep schedule, avoiding screens before bed, and creating a relaxing bedtime routine. Would you like more specific suggestions?",
	},
	{
		keywords: []string{"meditation", "meditate", "calm", "relax"},
		reply:    "Meditation can be a wonderful practice for mental wellbeing. Even just a few minutes of mindfulness each day can make a difference. Would you like to try a short guided meditation exercise?",
	},
}

const defaultReply = "I'm here to support you. Would you like to talk more about how you're feeling, or would you prefer suggestions for activities that might help with your mental wellbeing?"

// FallbackReply answers from a fixed keyword table. It is deterministic.
func FallbackReply(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}
	return defaultReply
}
