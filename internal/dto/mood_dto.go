package dto

import "time"

type CreateMoodRequest struct {
	UserId int64   `json:"userId" validate:"required,gt=0"`
	Mood   string  `json:"mood" validate:"required,oneof=happy calm neutral anxious sad"`
	Value  *int    `json:"value" validate:"required,min=0,max=100"`
	Note   *string `json:"note" validate:"omitempty,max=1000"`
}

type MoodResponse struct {
	Id        int64     `json:"id"`
	UserId    int64     `json:"userId"`
	Mood      string    `json:"mood"`
	Value     int       `json:"value"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}
