package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openblog-backend/internal/domains/group"
)

type fakeGroupRepo struct {
	groups []*group.Group
}

func (r *fakeGroupRepo) Create(_ context.Context, g *group.Group) error {
	for _, existing := range r.groups {
		if existing.Slug == g.Slug {
			return group.ErrSlugTaken
		}
	}
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

func TestCreateGroup(t *testing.T) {
	svc := NewGroupService(&fakeGroupRepo{})

	g, err := svc.Create(context.Background(), group.CreateGroupRequest{
		Title: "Local News",
		Slug:  "local-news",
	})

	require.NoError(t, err)
	assert.Equal(t, "Local News", g.Title)
	assert.Equal(t, "local-news", g.Slug)
}

func TestCreateGroupGeneratesSlug(t *testing.T) {
	svc := NewGroupService(&fakeGroupRepo{})

	g, err := svc.Create(context.Background(), group.CreateGroupRequest{
		Title: "Local News & Politics",
	})

	require.NoError(t, err)
	assert.Equal(t, "local-news-politics", g.Slug)
}

func TestCreateGroupDuplicateSlug(t *testing.T) {
	svc := NewGroupService(&fakeGroupRepo{})

	_, err := svc.Create(context.Background(), group.CreateGroupRequest{Title: "News", Slug: "news"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), group.CreateGroupRequest{Title: "More News", Slug: "news"})
	assert.ErrorIs(t, err, group.ErrSlugTaken)
}

func TestCreateGroupInvalidSlug(t *testing.T) {
	svc := NewGroupService(&fakeGroupRepo{})

	for _, slug := range []string{"Has Upper", "spa ces", "bad_underscore"} {
		_, err := svc.Create(context.Background(), group.CreateGroupRequest{Title: "News", Slug: slug})
		assert.Error(t, err, "slug %q", slug)
	}
}

func TestCreateGroupUnsluggableTitle(t *testing.T) {
	svc := NewGroupService(&fakeGroupRepo{})

	for _, title := range []string{"!!!", "???", "&&&"} {
		_, err := svc.Create(context.Background(), group.CreateGroupRequest{Title: title})
		assert.ErrorIs(t, err, group.ErrInvalidSlug, "title %q", title)
	}
}

func TestCreateGroupMissingTitle(t *testing.T) {
	svc := NewGroupService(&fakeGroupRepo{})

	_, err := svc.Create(context.Background(), group.CreateGroupRequest{})

	assert.Error(t, err)
}

func TestGetBySlug(t *testing.T) {
	svc := NewGroupService(&fakeGroupRepo{})

	created, err := svc.Create(context.Background(), group.CreateGroupRequest{Title: "News", Slug: "news"})
	require.NoError(t, err)

	got, err := svc.GetBySlug(context.Background(), "news")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, group.ErrGroupNotFound)
}
