package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"openblog-backend/internal/domains/comment"
	"openblog-backend/internal/domains/feed"
	"openblog-backend/internal/domains/follow"
	"openblog-backend/internal/domains/group"
	postmodel "openblog-backend/internal/domains/post/model"
	postrepo "openblog-backend/internal/domains/post/repository"
	usermodel "openblog-backend/internal/domains/user/model"
	userrepo "openblog-backend/internal/domains/user/repository"
	"openblog-backend/internal/shared/pagination"
)

type feedService struct {
	postRepo    postrepo.PostRepository
	groupRepo   group.Repository
	userRepo    userrepo.UserRepository
	followRepo  follow.Repository
	commentRepo comment.Repository
	pageSize    int
}

func NewFeedService(
	postRepo postrepo.PostRepository,
	groupRepo group.Repository,
	userRepo userrepo.UserRepository,
	followRepo follow.Repository,
	commentRepo comment.Repository,
	pageSize int,
) feed.Service {
	return &feedService{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		userRepo:    userRepo,
		followRepo:  followRepo,
		commentRepo: commentRepo,
		pageSize:    pageSize,
	}
}

// =====================================================
// INDEX FEED
// =====================================================

func (s *feedService) Index(ctx context.Context, page int) (*feed.PagedPosts, error) {
	return s.listPage(ctx, postmodel.ListFilter{}, page)
}

// =====================================================
// GROUP FEED
// =====================================================

func (s *feedService) Group(ctx context.Context, slug string, page int) (*feed.GroupFeed, error) {
	g, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, group.ErrGroupNotFound) {
			return nil, group.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	posts, err := s.listPage(ctx, postmodel.ListFilter{GroupID: &g.ID}, page)
	if err != nil {
		return nil, err
	}

	return &feed.GroupFeed{Group: g, PagedPosts: *posts}, nil
}

// =====================================================
// PROFILE FEED
// =====================================================

func (s *feedService) Profile(ctx context.Context, username string, viewerID *uuid.UUID, page int) (*feed.ProfileFeed, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, usermodel.ErrUserNotFound) {
			return nil, usermodel.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	posts, err := s.listPage(ctx, postmodel.ListFilter{AuthorID: &author.ID}, page)
	if err != nil {
		return nil, err
	}

	state, err := s.followState(ctx, viewerID, author.ID)
	if err != nil {
		return nil, err
	}

	return &feed.ProfileFeed{
		Author:      usermodel.NewUserDTO(author),
		FollowState: state,
		PagedPosts:  *posts,
	}, nil
}

// followState is NotApplicable for guests and for the profile owner;
// everyone else gets the real edge state.
func (s *feedService) followState(ctx context.Context, viewerID *uuid.UUID, authorID uuid.UUID) (feed.FollowState, error) {
	if viewerID == nil || *viewerID == authorID {
		return feed.NotApplicable, nil
	}

	following, err := s.followRepo.Exists(ctx, *viewerID, authorID)
	if err != nil {
		return "", fmt.Errorf("failed to check follow state: %w", err)
	}
	if following {
		return feed.Following, nil
	}
	return feed.NotFollowing, nil
}

// =====================================================
// PERSONAL FEED
// =====================================================

func (s *feedService) Personal(ctx context.Context, viewerID uuid.UUID, page int) (*feed.PagedPosts, error) {
	authorIDs, err := s.followRepo.ListAuthorIDs(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followed authors: %w", err)
	}

	// Following nobody means an empty feed; skip the post queries.
	if len(authorIDs) == 0 {
		return &feed.PagedPosts{
			Posts: []*postmodel.Post{},
			Page:  pagination.Resolve(page, s.pageSize, 0),
		}, nil
	}

	return s.listPage(ctx, postmodel.ListFilter{AuthorIDs: authorIDs}, page)
}

// =====================================================
// POST DETAIL
// =====================================================

func (s *feedService) PostDetail(ctx context.Context, postID uuid.UUID) (*feed.PostDetail, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, postmodel.ErrPostNotFound) {
			return nil, postmodel.NewPostNotFoundError()
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return &feed.PostDetail{Post: post, Comments: comments}, nil
}

// listPage runs the count-then-list pair behind every feed: resolve
// the page against the total, then fetch exactly that window.
func (s *feedService) listPage(ctx context.Context, filter postmodel.ListFilter, page int) (*feed.PagedPosts, error) {
	total, err := s.postRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	pg := pagination.Resolve(page, s.pageSize, total)

	posts, err := s.postRepo.List(ctx, filter, pg.Size, pg.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	if posts == nil {
		posts = []*postmodel.Post{}
	}

	return &feed.PagedPosts{Posts: posts, Page: pg}, nil
}
