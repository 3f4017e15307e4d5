package entity

import "time"

const (
	ChatRoleUser   = "user"
	ChatRoleSystem = "system"
)

type ChatMessage struct {
	Role    string
	Content string
}

// ChatHistory is the single conversation kept per user.
type ChatHistory struct {
	Id        int64
	UserId    int64
	Messages  []ChatMessage
	CreatedAt time.Time
}
