package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	authdomain "sociopedia-backend/internal/auth/domain"
	"sociopedia-backend/internal/post/domain"
	"sociopedia-backend/internal/post/repository"
	"sociopedia-backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthors struct {
	users map[string]*authdomain.User
	err   error
}

func (s *stubAuthors) FindByID(_ context.Context, id string) (*authdomain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[id], nil
}

func newUsecase(t *testing.T) (PostUsecase, *stubAuthors) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.OpenMemory(name, &domain.Post{}, &domain.PostLike{})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	authors := &stubAuthors{users: map[string]*authdomain.User{
		"u1": {ID: "u1", FirstName: "Ada", LastName: "Lovelace", Location: "London", PicturePath: "ada.png"},
	}}
	return NewPostUsecase(repository.NewGormPostRepository(db), authors), authors
}

func TestCreatePost_CopiesAuthorFields(t *testing.T) {
	uc, authors := newUsecase(t)
	ctx := context.Background()

	posts, err := uc.CreatePost(ctx, "u1", "first post", "pic.jpg")
	require.NoError(t, err)
	require.Len(t, posts, 1)

	p := posts[0]
	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, "Ada", p.FirstName)
	assert.Equal(t, "Lovelace", p.LastName)
	assert.Equal(t, "London", p.Location)
	assert.Equal(t, "ada.png", p.UserPicturePath)
	assert.Equal(t, "pic.jpg", p.PicturePath)
	assert.Empty(t, p.Likes)
	assert.Empty(t, p.Comments)

	// later profile edits are not propagated
	authors.users["u1"].FirstName = "Augusta"
	feed, err := uc.GetFeed(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada", feed[0].FirstName)
}

func TestCreatePost_UnknownAuthor(t *testing.T) {
	uc, authors := newUsecase(t)
	ctx := context.Background()

	_, err := uc.CreatePost(ctx, "ghost", "boo", "")
	assert.ErrorIs(t, err, domain.ErrAuthorNotFound)

	feed, err := uc.GetFeed(ctx)
	require.NoError(t, err)
	assert.Empty(t, feed)

	authors.err = errors.New("db down")
	_, err = uc.CreatePost(ctx, "u1", "x", "")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAuthorNotFound)
}

func TestToggleLike_ReturnsUpdatedPost(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := context.Background()

	posts, err := uc.CreatePost(ctx, "u1", "hello", "")
	require.NoError(t, err)
	id := posts[0].ID

	post, err := uc.ToggleLike(ctx, id, "u2")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"u2": true}, post.Likes)

	post, err = uc.ToggleLike(ctx, id, "u2")
	require.NoError(t, err)
	assert.Empty(t, post.Likes)

	_, err = uc.ToggleLike(ctx, "missing", "u2")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestGetUserPosts(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := context.Background()

	_, err := uc.CreatePost(ctx, "u1", "a", "")
	require.NoError(t, err)

	posts, err := uc.GetUserPosts(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	posts, err = uc.GetUserPosts(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, posts)
}
