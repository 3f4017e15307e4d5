package entity

type SoundCategory string

const (
	SoundNature  SoundCategory = "nature"
	SoundAmbient SoundCategory = "ambient"
	SoundMusic   SoundCategory = "music"
)

type CalmingSound struct {
	Id          int64
	Title       string
	Description string
	Category    SoundCategory
	Duration    int // seconds
	AudioUrl    string
}
