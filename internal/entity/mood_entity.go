package entity

import "time"

type MoodType string

const (
	MoodHappy   MoodType = "happy"
	MoodCalm    MoodType = "calm"
	MoodNeutral MoodType = "neutral"
	MoodAnxious MoodType = "anxious"
	MoodSad     MoodType = "sad"
)

// MoodTypes lists every mood in the order the client renders them.
var MoodTypes = []MoodType{MoodHappy, MoodCalm, MoodNeutral, MoodAnxious, MoodSad}

type MoodEntry struct {
	Id        int64
	UserId    int64
	Mood      MoodType
	Value     int // intensity 0-100
	Note      *string
	CreatedAt time.Time
}
