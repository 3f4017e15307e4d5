package events

import "time"

const (
	TypeUserCreated          = "user.created"
	TypeMoodLogged           = "mood.logged"
	TypeSleepLogged          = "sleep.logged"
	TypeCommunityPostCreated = "community.post.created"
	TypeChatMessageSent      = "chat.message.sent"
)

func newEvent(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}

func UserCreated(userId int64, username, name, email string) BaseEvent {
	return newEvent(TypeUserCreated, map[string]interface{}{
		"user_id":  userId,
		"username": username,
		"name":     name,
		"email":    email,
	})
}

func MoodLogged(userId, moodId int64, mood string, value int) BaseEvent {
	return newEvent(TypeMoodLogged, map[string]interface{}{
		"user_id": userId,
		"mood_id": moodId,
		"mood":    mood,
		"value":   value,
	})
}

func SleepLogged(userId, sleepId int64, hours float64) BaseEvent {
	return newEvent(TypeSleepLogged, map[string]interface{}{
		"user_id":  userId,
		"sleep_id": sleepId,
		"hours":    hours,
	})
}

// CommunityPostCreated carries the full post so subscribers can render it without a lookup.
func CommunityPostCreated(post interface{}) BaseEvent {
	return newEvent(TypeCommunityPostCreated, map[string]interface{}{
		"post": post,
	})
}

func ChatMessageSent(userId int64, historyLength int) BaseEvent {
	return newEvent(TypeChatMessageSent, map[string]interface{}{
		"user_id":        userId,
		"history_length": historyLength,
	})
}
