package entity

import "time"

type User struct {
	Id           int64
	Username     string
	PasswordHash string
	Name         string
	Email        string
	CreatedAt    time.Time
}
