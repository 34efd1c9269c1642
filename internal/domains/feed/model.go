package feed

import (
	"openblog-backend/internal/domains/comment"
	"openblog-backend/internal/domains/group"
	postmodel "openblog-backend/internal/domains/post/model"
	usermodel "openblog-backend/internal/domains/user/model"
	"openblog-backend/internal/shared/pagination"
)

// FollowState tells the viewer where they stand relative to a profile.
// Guests and profile owners get NotApplicable instead of a misleading
// boolean.
type FollowState string

const (
	Following     FollowState = "following"
	NotFollowing  FollowState = "not_following"
	NotApplicable FollowState = "not_applicable"
)

// PagedPosts is one page of a post listing plus its page descriptor.
type PagedPosts struct {
	Posts []*postmodel.Post `json:"posts"`
	Page  pagination.Page   `json:"page"`
}

// GroupFeed is a group's posts together with the group itself.
type GroupFeed struct {
	Group *group.Group `json:"group"`
	PagedPosts
}

// ProfileFeed is an author's posts together with the author and the
// viewer's follow state.
type ProfileFeed struct {
	Author      usermodel.UserDTO `json:"author"`
	FollowState FollowState       `json:"follow_state"`
	PagedPosts
}

// PostDetail is a single post with its full comment thread.
type PostDetail struct {
	Post     *postmodel.Post    `json:"post"`
	Comments []*comment.Comment `json:"comments"`
}
