package entity

import "time"

type SleepQuality string

const (
	SleepQualityGood SleepQuality = "good"
	SleepQualityFair SleepQuality = "fair"
	SleepQualityPoor SleepQuality = "poor"
)

// SleepQualityForHours grades a night the same way the fixtures do.
func SleepQualityForHours(hours float64) SleepQuality {
	switch {
	case hours >= 7:
		return SleepQualityGood
	case hours >= 6:
		return SleepQualityFair
	default:
		return SleepQualityPoor
	}
}

type SleepEntry struct {
	Id        int64
	UserId    int64
	Hours     float64
	Quality   *SleepQuality
	Note      *string
	CreatedAt time.Time
}
