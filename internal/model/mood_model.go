package model

import "time"

type Mood struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	UserId    int64     `gorm:"not null;index"`
	Mood      string    `gorm:"type:varchar(20);not null"`
	Value     int       `gorm:"not null"`
	Note      *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (Mood) TableName() string {
	return "moods"
}
