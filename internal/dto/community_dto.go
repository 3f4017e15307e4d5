package dto

import "time"

type CreateCommunityPostRequest struct {
	UserId  int64  `json:"userId" validate:"required,gt=0"`
	Content string `json:"content" validate:"required,max=2000"`
}

type CommunityPostResponse struct {
	Id        int64     `json:"id"`
	Content   string    `json:"content"`
	UserId    int64     `json:"userId"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
}
