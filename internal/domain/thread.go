package domain

import "time"

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Author    UserId
	Text      string
	ParentId  *ThreadId
	Community *CommunityId
}

// Thread is a post or a reply (ParentId set). Children hold one level of
// replies, enriched with their authors; deeper levels require another fetch.
type Thread struct {
	Id        ThreadId
	Author    User
	Text      string
	ParentId  *ThreadId
	Community *Community
	CreatedAt time.Time
	Children  []*Thread
	Likes     []Like
}

// OwnedThread is the slim projection used by the reply-tree resolver:
// a thread id plus the ids of its direct children.
type OwnedThread struct {
	Id       ThreadId
	ChildIds []ThreadId
}
