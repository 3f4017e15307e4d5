package entity

import "time"

type CommunityPost struct {
	Id        int64
	Content   string
	UserId    int64
	Likes     int
	Comments  int
	CreatedAt time.Time
}
