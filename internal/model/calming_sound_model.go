package model

type CalmingSound struct {
	Id          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null"`
	Category    string `gorm:"type:varchar(20);not null"`
	Duration    int    `gorm:"not null"` // seconds
	AudioUrl    string `gorm:"type:text;not null"`
}

func (CalmingSound) TableName() string {
	return "calming_sounds"
}
