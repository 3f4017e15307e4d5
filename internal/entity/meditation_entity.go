package entity

type MeditationType string

const (
	MeditationBreathing MeditationType = "breathing"
	MeditationGuided    MeditationType = "guided"
	MeditationSilent    MeditationType = "silent"
)

type Meditation struct {
	Id          int64
	Title       string
	Description string
	Duration    int // minutes
	Type        MeditationType
}
