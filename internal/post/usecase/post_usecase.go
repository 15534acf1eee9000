package usecase

import (
	"context"
	"fmt"
	"log"

	"sociopedia-backend/internal/post/domain"
	"sociopedia-backend/internal/post/repository"
)

// postUsecase implements PostUsecase interface
type postUsecase struct {
	postRepo repository.PostRepository
	authors  AuthorLookup
}

// NewPostUsecase creates a new instance of postUsecase
func NewPostUsecase(postRepo repository.PostRepository, authors AuthorLookup) PostUsecase {
	return &postUsecase{
		postRepo: postRepo,
		authors:  authors,
	}
}

func (u *postUsecase) CreatePost(ctx context.Context, userID, description, picturePath string) ([]*domain.Post, error) {
	author, err := u.authors.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup author: %w", err)
	}
	if author == nil {
		return nil, domain.ErrAuthorNotFound
	}

	post := &domain.Post{
		UserID:          author.ID,
		FirstName:       author.FirstName,
		LastName:        author.LastName,
		Location:        author.Location,
		Description:     description,
		PicturePath:     picturePath,
		UserPicturePath: author.PicturePath,
		Comments:        []string{},
	}
	if err := u.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	log.Printf("[PostUsecase] User %s created post %s", userID, post.ID)

	return u.postRepo.FindAll(ctx)
}

func (u *postUsecase) GetFeed(ctx context.Context) ([]*domain.Post, error) {
	return u.postRepo.FindAll(ctx)
}

func (u *postUsecase) GetUserPosts(ctx context.Context, userID string) ([]*domain.Post, error) {
	return u.postRepo.FindByUserID(ctx, userID)
}

func (u *postUsecase) ToggleLike(ctx context.Context, postID, userID string) (*domain.Post, error) {
	if _, err := u.postRepo.ToggleLike(ctx, postID, userID); err != nil {
		return nil, err
	}

	post, err := u.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}
