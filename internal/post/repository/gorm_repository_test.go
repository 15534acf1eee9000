package repository_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"sociopedia-backend/internal/post/domain"
	"sociopedia-backend/internal/post/repository"
	"sociopedia-backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) repository.PostRepository {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.OpenMemory(name, &domain.Post{}, &domain.PostLike{})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return repository.NewGormPostRepository(db)
}

func createPost(t *testing.T, repo repository.PostRepository, userID string) *domain.Post {
	t.Helper()
	p := &domain.Post{UserID: userID, FirstName: "Ada", Description: "hello"}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	p := createPost(t, repo, "u1")
	assert.NotEmpty(t, p.ID)
	assert.Empty(t, p.Likes)
	assert.NotNil(t, p.Comments)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "hello", got.Description)
	assert.Equal(t, map[string]bool{}, got.Likes)

	missing, err := repo.FindByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFindByUserID(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	createPost(t, repo, "u1")
	createPost(t, repo, "u1")
	createPost(t, repo, "u2")

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := repo.FindByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, p := range mine {
		assert.Equal(t, "u1", p.UserID)
	}

	none, err := repo.FindByUserID(ctx, "u3")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestToggleLike_PairRestoresState(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	p := createPost(t, repo, "author")

	liked, err := repo.ToggleLike(ctx, p.ID, "u1")
	require.NoError(t, err)
	assert.True(t, liked)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"u1": true}, got.Likes)

	liked, err = repo.ToggleLike(ctx, p.ID, "u1")
	require.NoError(t, err)
	assert.False(t, liked)

	got, err = repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Likes)
	_, present := got.Likes["u1"]
	assert.False(t, present, "unlike removes the entry instead of storing false")
}

func TestToggleLike_UnknownPost(t *testing.T) {
	repo := setupRepo(t)
	_, err := repo.ToggleLike(context.Background(), "missing", "u1")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestToggleLike_ConcurrentDistinctUsers(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	p := createPost(t, repo, "author")

	const n = 25
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := repo.ToggleLike(ctx, p.ID, fmt.Sprintf("user-%d", i)); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, got.Likes, n)
	for i := 0; i < n; i++ {
		assert.True(t, got.Likes[fmt.Sprintf("user-%d", i)])
	}
}

func TestToggleLike_CanceledContextStillCommits(t *testing.T) {
	repo := setupRepo(t)
	p := createPost(t, repo, "author")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	liked, err := repo.ToggleLike(ctx, p.ID, "u1")
	require.NoError(t, err)
	assert.True(t, liked)

	got, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.True(t, got.IsLikedBy("u1"))
}

func TestToggleLike_ConcurrentSameUserPairRestoresState(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	p := createPost(t, repo, "author")

	for round := 0; round < 10; round++ {
		var wg sync.WaitGroup
		results := make(chan bool, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				liked, err := repo.ToggleLike(ctx, p.ID, "u1")
				assert.NoError(t, err)
				results <- liked
			}()
		}
		wg.Wait()
		close(results)

		var likes, unlikes int
		for liked := range results {
			if liked {
				likes++
			} else {
				unlikes++
			}
		}
		assert.Equal(t, 1, likes, "round %d", round)
		assert.Equal(t, 1, unlikes, "round %d", round)

		got, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Likes, "round %d", round)
	}
}
