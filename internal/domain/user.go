package domain

import "time"

type User struct {
	Id          UserId
	ExtId       ExternalId
	Username    string
	Name        string
	Bio         string
	Image       string
	Onboarded   bool
	CreatedAt   time.Time
	Communities []Community
}

// UserUpdate carries profile fields through handler -> service -> storage.
// Upserting by ExtId marks the user as onboarded.
type UserUpdate struct {
	ExtId    ExternalId
	Username string
	Name     string
	Bio      string
	Image    string
}
