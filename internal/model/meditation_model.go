package model

type Meditation struct {
	Id          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null"`
	Duration    int    `gorm:"not null"` // minutes
	Type        string `gorm:"type:varchar(20);not null"`
}

func (Meditation) TableName() string {
	return "meditations"
}
