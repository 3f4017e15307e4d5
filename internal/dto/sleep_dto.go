package dto

import "time"

type CreateSleepRequest struct {
	UserId  int64    `json:"userId" validate:"required,gt=0"`
	Hours   *float64 `json:"hours" validate:"required,gte=0,lte=24"`
	Quality *string  `json:"quality" validate:"omitempty,oneof=good fair poor"`
	Note    *string  `json:"note" validate:"omitempty,max=1000"`
}

type SleepResponse struct {
	Id        int64     `json:"id"`
	UserId    int64     `json:"userId"`
	Hours     float64   `json:"hours"`
	Quality   *string   `json:"quality"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}
