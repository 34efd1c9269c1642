package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openblog-backend/internal/domains/follow"
	usermodel "openblog-backend/internal/domains/user/model"
)

// ==== fakes ====

type edge struct {
	follower uuid.UUID
	author   uuid.UUID
}

type fakeFollowRepo struct {
	edges map[edge]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: make(map[edge]bool)}
}

func (r *fakeFollowRepo) Create(_ context.Context, followerID, authorID uuid.UUID) (bool, error) {
	e := edge{followerID, authorID}
	if r.edges[e] {
		return false, nil
	}
	r.edges[e] = true
	return true, nil
}

func (r *fakeFollowRepo) Delete(_ context.Context, followerID, authorID uuid.UUID) (bool, error) {
	e := edge{followerID, authorID}
	if !r.edges[e] {
		return false, nil
	}
	delete(r.edges, e)
	return true, nil
}

func (r *fakeFollowRepo) Exists(_ context.Context, followerID, authorID uuid.UUID) (bool, error) {
	return r.edges[edge{followerID, authorID}], nil
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

type fakeUserRepo struct {
	users map[string]*usermodel.User
}

func newFakeUserRepo(users ...*usermodel.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*usermodel.User)}
	for _, u := range users {
		r.users[u.Username] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *usermodel.User) error {
	r.users[u.Username] = u
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
	u, ok := r.users[username]
	if !ok {
		return nil, usermodel.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*usermodel.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, usermodel.ErrUserNotFound
}

// ==== tests ====

func TestFollow(t *testing.T) {
	author := &usermodel.User{ID: uuid.New(), Username: "author"}
	svc := NewFollowService(newFakeFollowRepo(), newFakeUserRepo(author))
	follower := uuid.New()

	result, err := svc.Follow(context.Background(), follower, "author")

	require.NoError(t, err)
	assert.True(t, result.Created)

	following, err := svc.IsFollowing(context.Background(), follower, author.ID)
	require.NoError(t, err)
	assert.True(t, following)
}

func TestFollowIdempotent(t *testing.T) {
	author := &usermodel.User{ID: uuid.New(), Username: "author"}
	svc := NewFollowService(newFakeFollowRepo(), newFakeUserRepo(author))
	follower := uuid.New()

	first, err := svc.Follow(context.Background(), follower, "author")
	require.NoError(t, err)
	assert.True(t, first.Created)

	second, err := svc.Follow(context.Background(), follower, "author")
	require.NoError(t, err)
	assert.False(t, second.Created)

	// Still exactly one edge.
	authors, err := svc.FollowedAuthors(context.Background(), follower)
	require.NoError(t, err)
	assert.Len(t, authors, 1)
}

func TestFollowSelf(t *testing.T) {
	me := &usermodel.User{ID: uuid.New(), Username: "me"}
	svc := NewFollowService(newFakeFollowRepo(), newFakeUserRepo(me))

	_, err := svc.Follow(context.Background(), me.ID, "me")

	assert.ErrorIs(t, err, follow.ErrSelfFollow)
}

func TestFollowUnknownAuthor(t *testing.T) {
	svc := NewFollowService(newFakeFollowRepo(), newFakeUserRepo())

	_, err := svc.Follow(context.Background(), uuid.New(), "nobody")

	assert.ErrorIs(t, err, usermodel.ErrUserNotFound)
}

func TestUnfollow(t *testing.T) {
	author := &usermodel.User{ID: uuid.New(), Username: "author"}
	svc := NewFollowService(newFakeFollowRepo(), newFakeUserRepo(author))
	follower := uuid.New()

	_, err := svc.Follow(context.Background(), follower, "author")
	require.NoError(t, err)

	result, err := svc.Unfollow(context.Background(), follower, "author")
	require.NoError(t, err)
	assert.True(t, result.Removed)

	following, err := svc.IsFollowing(context.Background(), follower, author.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestUnfollowNotFollowing(t *testing.T) {
	author := &usermodel.User{ID: uuid.New(), Username: "author"}
	svc := NewFollowService(newFakeFollowRepo(), newFakeUserRepo(author))

	result, err := svc.Unfollow(context.Background(), uuid.New(), "author")

	require.NoError(t, err)
	assert.False(t, result.Removed)
}

func TestFollowedAuthorsEmpty(t *testing.T) {
	svc := NewFollowService(newFakeFollowRepo(), newFakeUserRepo())

	authors, err := svc.FollowedAuthors(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Empty(t, authors)
}
