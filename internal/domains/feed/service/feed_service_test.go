package service

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openblog-backend/internal/domains/comment"
	"openblog-backend/internal/domains/feed"
	"openblog-backend/internal/domains/group"
	postmodel "openblog-backend/internal/domains/post/model"
	usermodel "openblog-backend/internal/domains/user/model"
)

// ==== fakes ====

// fakePostRepo mimics the real listing semantics: newest first,
// filter-aware, windowed by limit/offset. Delete cascades into the
// shared comment repo the way the transactional repository does.
type fakePostRepo struct {
	posts    []*postmodel.Post
	comments *fakeCommentRepo
}

func (r *fakePostRepo) Create(_ context.Context, p *postmodel.Post) error {
	r.posts = append(r.posts, p)
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id uuid.UUID) (*postmodel.Post, error) {
	for _, p := range r.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, postmodel.ErrPostNotFound
}

func (r *fakePostRepo) Update(_ context.Context, _ *postmodel.Post) error { return nil }

func (r *fakePostRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			if r.comments != nil {
				r.comments.deleteByPost(id)
			}
			return nil
		}
	}
	return postmodel.ErrPostNotFound
}

func (r *fakePostRepo) List(_ context.Context, filter postmodel.ListFilter, limit, offset int) ([]*postmodel.Post, error) {
	matched := r.match(filter)
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (r *fakePostRepo) Count(_ context.Context, filter postmodel.ListFilter) (int, error) {
	return len(r.match(filter)), nil
}

func (r *fakePostRepo) match(filter postmodel.ListFilter) []*postmodel.Post {
	var out []*postmodel.Post
	for _, p := range r.posts {
		if filter.GroupID != nil && (p.GroupID == nil || *p.GroupID != *filter.GroupID) {
			continue
		}
		if filter.AuthorID != nil && p.AuthorID != *filter.AuthorID {
			continue
		}
		if filter.AuthorIDs != nil && !containsID(filter.AuthorIDs, p.AuthorID) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type fakeGroupRepo struct {
	groups []*group.Group
}

func (r *fakeGroupRepo) Create(_ context.Context, g *group.Group) error {
	r.groups = append(r.groups, g)
	return nil
}

func (r *fakeGroupRepo) GetByID(_ context.Context, id uuid.UUID) (*group.Group, error) {
	for _, g := range r.groups {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, group.ErrGroupNotFound
}

func (r *fakeGroupRepo) GetBySlug(_ context.Context, slug string) (*group.Group, error) {
	for _, g := range r.groups {
		if g.Slug == slug {
			return g, nil
		}
	}
	return nil, group.ErrGroupNotFound
}

func (r *fakeGroupRepo) List(_ context.Context) ([]*group.Group, error) {
	return r.groups, nil
}

type fakeUserRepo struct {
	users []*usermodel.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *usermodel.User) error {
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*usermodel.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, usermodel.ErrUserNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*usermodel.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, usermodel.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*usermodel.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, usermodel.ErrUserNotFound
}

type followEdge struct {
	follower uuid.UUID
	author   uuid.UUID
}

type fakeFollowRepo struct {
	edges map[followEdge]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: make(map[followEdge]bool)}
}

func (r *fakeFollowRepo) Create(_ context.Context, followerID, authorID uuid.UUID) (bool, error) {
	e := followEdge{followerID, authorID}
	if r.edges[e] {
		return false, nil
	}
	r.edges[e] = true
	return true, nil
}

func (r *fakeFollowRepo) Delete(_ context.Context, followerID, authorID uuid.UUID) (bool, error) {
	e := followEdge{followerID, authorID}
	if !r.edges[e] {
		return false, nil
	}
	delete(r.edges, e)
	return true, nil
}

func (r *fakeFollowRepo) Exists(_ context.Context, followerID, authorID uuid.UUID) (bool, error) {
	return r.edges[followEdge{followerID, authorID}], nil
}

func (r *fakeFollowRepo) ListAuthorIDs(_ context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for e := range r.edges {
		if e.follower == followerID {
			ids = append(ids, e.author)
		}
	}
	return ids, nil
}

type fakeCommentRepo struct {
	comments []*comment.Comment
}

func (r *fakeCommentRepo) Create(_ context.Context, c *comment.Comment) error {
	r.comments = append(r.comments, c)
	return nil
}

func (r *fakeCommentRepo) deleteByPost(postID uuid.UUID) {
	kept := r.comments[:0]
	for _, c := range r.comments {
		if c.PostID != postID {
			kept = append(kept, c)
		}
	}
	r.comments = kept
}

func (r *fakeCommentRepo) ListByPost(_ context.Context, postID uuid.UUID) ([]*comment.Comment, error) {
	var out []*comment.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// ==== fixture ====

type fixture struct {
	posts    *fakePostRepo
	groups   *fakeGroupRepo
	users    *fakeUserRepo
	follows  *fakeFollowRepo
	comments *fakeCommentRepo
	svc      feed.Service
}

func newFixture(pageSize int) *fixture {
	f := &fixture{
		groups:   &fakeGroupRepo{},
		users:    &fakeUserRepo{},
		follows:  newFakeFollowRepo(),
		comments: &fakeCommentRepo{},
	}
	f.posts = &fakePostRepo{comments: f.comments}
	f.svc = NewFeedService(f.posts, f.groups, f.users, f.follows, f.comments, pageSize)
	return f
}

func (f *fixture) addUser(username string) *usermodel.User {
	u := &usermodel.User{ID: uuid.New(), Username: username}
	f.users.users = append(f.users.users, u)
	return u
}

func (f *fixture) addPost(author *usermodel.User, groupID *uuid.UUID, createdAt time.Time) *postmodel.Post {
	p := &postmodel.Post{
		ID:        uuid.New(),
		AuthorID:  author.ID,
		GroupID:   groupID,
		Text:      fmt.Sprintf("post by %s", author.Username),
		CreatedAt: createdAt,
	}
	f.posts.posts = append(f.posts.posts, p)
	return p
}

// ==== index feed ====

func TestIndexNewestFirst(t *testing.T) {
	f := newFixture(10)
	author := f.addUser("writer")
	base := time.Now()

	old := f.addPost(author, nil, base.Add(-2*time.Hour))
	mid := f.addPost(author, nil, base.Add(-time.Hour))
	newest := f.addPost(author, nil, base)

	result, err := f.svc.Index(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, result.Posts, 3)
	assert.Equal(t, newest.ID, result.Posts[0].ID)
	assert.Equal(t, mid.ID, result.Posts[1].ID)
	assert.Equal(t, old.ID, result.Posts[2].ID)
}

func TestIndexPagination(t *testing.T) {
	f := newFixture(10)
	author := f.addUser("writer")
	base := time.Now()
	for i := 0; i < 13; i++ {
		f.addPost(author, nil, base.Add(time.Duration(i)*time.Minute))
	}

	page1, err := f.svc.Index(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, page1.Posts, 10)
	assert.Equal(t, 2, page1.Page.PageCount)
	assert.Equal(t, 13, page1.Page.Total)

	page2, err := f.svc.Index(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, page2.Posts, 3)

	// Out-of-range requests clamp to the last page.
	clamped, err := f.svc.Index(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, 2, clamped.Page.Number)
	assert.Len(t, clamped.Posts, 3)
}

func TestIndexEmpty(t *testing.T) {
	f := newFixture(10)

	result, err := f.svc.Index(context.Background(), 1)

	require.NoError(t, err)
	assert.NotNil(t, result.Posts)
	assert.Empty(t, result.Posts)
	assert.Equal(t, 1, result.Page.PageCount)
}

// ==== group feed ====

func TestGroupFeed(t *testing.T) {
	f := newFixture(10)
	author := f.addUser("writer")
	g := &group.Group{ID: uuid.New(), Title: "News", Slug: "news"}
	f.groups.groups = append(f.groups.groups, g)

	inGroup := f.addPost(author, &g.ID, time.Now())
	f.addPost(author, nil, time.Now())

	result, err := f.svc.Group(context.Background(), "news", 1)

	require.NoError(t, err)
	assert.Equal(t, g.ID, result.Group.ID)
	require.Len(t, result.Posts, 1)
	assert.Equal(t, inGroup.ID, result.Posts[0].ID)
}

func TestGroupFeedUnknownSlug(t *testing.T) {
	f := newFixture(10)

	_, err := f.svc.Group(context.Background(), "missing", 1)

	assert.ErrorIs(t, err, group.ErrGroupNotFound)
}

// ==== profile feed ====

func TestProfileGuest(t *testing.T) {
	f := newFixture(10)
	author := f.addUser("writer")
	f.addPost(author, nil, time.Now())

	result, err := f.svc.Profile(context.Background(), "writer", nil, 1)

	require.NoError(t, err)
	assert.Equal(t, author.ID, result.Author.ID)
	assert.Equal(t, feed.NotApplicable, result.FollowState)
	assert.Len(t, result.Posts, 1)
}

func TestProfileOwnPage(t *testing.T) {
	f := newFixture(10)
	author := f.addUser("writer")

	result, err := f.svc.Profile(context.Background(), "writer", &author.ID, 1)

	require.NoError(t, err)
	assert.Equal(t, feed.NotApplicable, result.FollowState)
}

func TestProfileFollowState(t *testing.T) {
	f := newFixture(10)
	author := f.addUser("writer")
	viewer := f.addUser("reader")

	result, err := f.svc.Profile(context.Background(), "writer", &viewer.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, feed.NotFollowing, result.FollowState)

	_, err = f.follows.Create(context.Background(), viewer.ID, author.ID)
	require.NoError(t, err)

	result, err = f.svc.Profile(context.Background(), "writer", &viewer.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, feed.Following, result.FollowState)
}

func TestProfileUnknownUser(t *testing.T) {
	f := newFixture(10)

	_, err := f.svc.Profile(context.Background(), "nobody", nil, 1)

	assert.ErrorIs(t, err, usermodel.ErrUserNotFound)
}

func TestProfileOnlyAuthorPosts(t *testing.T) {
	f := newFixture(10)
	writer := f.addUser("writer")
	other := f.addUser("other")
	mine := f.addPost(writer, nil, time.Now())
	f.addPost(other, nil, time.Now())

	result, err := f.svc.Profile(context.Background(), "writer", nil, 1)

	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	assert.Equal(t, mine.ID, result.Posts[0].ID)
}

// ==== personal feed ====

func TestPersonalFeedUnion(t *testing.T) {
	f := newFixture(10)
	alice := f.addUser("alice")
	bob := f.addUser("bob")
	carol := f.addUser("carol")
	reader := f.addUser("reader")
	base := time.Now()

	fromAlice := f.addPost(alice, nil, base.Add(-time.Hour))
	fromBob := f.addPost(bob, nil, base)
	f.addPost(carol, nil, base.Add(time.Hour)) // not followed

	_, err := f.follows.Create(context.Background(), reader.ID, alice.ID)
	require.NoError(t, err)
	_, err = f.follows.Create(context.Background(), reader.ID, bob.ID)
	require.NoError(t, err)

	result, err := f.svc.Personal(context.Background(), reader.ID, 1)

	require.NoError(t, err)
	require.Len(t, result.Posts, 2)
	assert.Equal(t, fromBob.ID, result.Posts[0].ID)
	assert.Equal(t, fromAlice.ID, result.Posts[1].ID)
}

func TestPersonalFeedFollowingNobody(t *testing.T) {
	f := newFixture(10)
	reader := f.addUser("reader")
	writer := f.addUser("writer")
	f.addPost(writer, nil, time.Now())

	result, err := f.svc.Personal(context.Background(), reader.ID, 1)

	require.NoError(t, err)
	assert.NotNil(t, result.Posts)
	assert.Empty(t, result.Posts)
	assert.Equal(t, 0, result.Page.Total)
}

func TestPersonalFeedAfterUnfollow(t *testing.T) {
	f := newFixture(10)
	writer := f.addUser("writer")
	reader := f.addUser("reader")
	f.addPost(writer, nil, time.Now())

	_, err := f.follows.Create(context.Background(), reader.ID, writer.ID)
	require.NoError(t, err)

	result, err := f.svc.Personal(context.Background(), reader.ID, 1)
	require.NoError(t, err)
	assert.Len(t, result.Posts, 1)

	_, err = f.follows.Delete(context.Background(), reader.ID, writer.ID)
	require.NoError(t, err)

	result, err = f.svc.Personal(context.Background(), reader.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, result.Posts)
}

// ==== post detail ====

func TestPostDetail(t *testing.T) {
	f := newFixture(10)
	writer := f.addUser("writer")
	reader := f.addUser("reader")
	post := f.addPost(writer, nil, time.Now())

	base := time.Now()
	second := &comment.Comment{ID: uuid.New(), PostID: post.ID, AuthorID: reader.ID, Text: "second", CreatedAt: base.Add(time.Minute)}
	first := &comment.Comment{ID: uuid.New(), PostID: post.ID, AuthorID: reader.ID, Text: "first", CreatedAt: base}
	f.comments.comments = append(f.comments.comments, second, first)

	result, err := f.svc.PostDetail(context.Background(), post.ID)

	require.NoError(t, err)
	assert.Equal(t, post.ID, result.Post.ID)
	require.Len(t, result.Comments, 2)
	assert.Equal(t, first.ID, result.Comments[0].ID)
	assert.Equal(t, second.ID, result.Comments[1].ID)
}

func TestDeletedPostLeavesNoTrace(t *testing.T) {
	f := newFixture(10)
	writer := f.addUser("writer")
	reader := f.addUser("reader")
	post := f.addPost(writer, nil, time.Now())
	kept := f.addPost(writer, nil, time.Now().Add(time.Minute))

	f.comments.comments = append(f.comments.comments,
		&comment.Comment{ID: uuid.New(), PostID: post.ID, AuthorID: reader.ID, Text: "one", CreatedAt: time.Now()},
		&comment.Comment{ID: uuid.New(), PostID: post.ID, AuthorID: reader.ID, Text: "two", CreatedAt: time.Now()},
	)

	require.NoError(t, f.posts.Delete(context.Background(), post.ID))

	// Detail is gone, comments went with the post, feeds no longer
	// serve it.
	_, err := f.svc.PostDetail(context.Background(), post.ID)
	assert.ErrorIs(t, err, postmodel.ErrPostNotFound)

	remaining, err := f.comments.ListByPost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	index, err := f.svc.Index(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, index.Posts, 1)
	assert.Equal(t, kept.ID, index.Posts[0].ID)
}

func TestPostDetailNotFound(t *testing.T) {
	f := newFixture(10)

	_, err := f.svc.PostDetail(context.Background(), uuid.New())

	assert.ErrorIs(t, err, postmodel.ErrPostNotFound)
}
