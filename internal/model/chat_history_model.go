package model

import (
	"time"

	"gorm.io/datatypes"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatHistory struct {
	Id        int64                            `gorm:"primaryKey;autoIncrement"`
	UserId    int64                            `gorm:"not null;uniqueIndex"`
	Messages  datatypes.JSONSlice[ChatMessage] `gorm:"type:jsonb;not null"`
	CreatedAt time.Time                        `gorm:"autoCreateTime"`
}

func (ChatHistory) TableName() string {
	return "chat_history"
}
