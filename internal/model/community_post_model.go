package model

import "time"

type CommunityPost struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	Content   string    `gorm:"type:text;not null"`
	UserId    int64     `gorm:"not null;index"`
	Likes     int       `gorm:"not null;default:0"`
	Comments  int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (CommunityPost) TableName() string {
	return "community_posts"
}
