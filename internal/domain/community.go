package domain

import "time"

type Community struct {
	Id        CommunityId
	ExtId     ExternalId
	Name      string
	Image     string
	CreatedAt time.Time
}
