package model

import "time"

type Sleep struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	UserId    int64     `gorm:"not null;index"`
	Hours     float64   `gorm:"not null"`
	Quality   *string   `gorm:"type:varchar(20)"`
	Note      *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (Sleep) TableName() string {
	return "sleep"
}
