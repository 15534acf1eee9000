package repository

import (
	"context"
	"errors"
	"time"

	"sociopedia-backend/internal/post/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormPostRepository implements PostRepository using GORM
type gormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GORM-based PostRepository
func NewGormPostRepository(db *gorm.DB) PostRepository {
	return &gormPostRepository{db: db}
}

func (r *gormPostRepository) Create(ctx context.Context, post *domain.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.Comments == nil {
		post.Comments = []string{}
	}
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()

	err := r.db.WithContext(context.WithoutCancel(ctx)).Omit("LikeRows").Create(post).Error
	if err != nil {
		return err
	}
	post.SyncLikes()
	return nil
}

func (r *gormPostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	var post domain.Post
	err := r.db.WithContext(ctx).Preload("LikeRows").Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	post.SyncLikes()
	return &post, nil
}

func (r *gormPostRepository) FindAll(ctx context.Context) ([]*domain.Post, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *gormPostRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Post, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *gormPostRepository) find(query *gorm.DB) ([]*domain.Post, error) {
	posts := []*domain.Post{}
	err := query.Preload("LikeRows").Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		p.SyncLikes()
	}
	return posts, nil
}

// ToggleLike never loads and re-saves the whole map: it deletes the single
// (post, user) row and inserts it only if nothing was deleted, all inside one
// transaction that holds a row lock on the post, so toggles on the same post
// run one after another.
func (r *gormPostRepository) ToggleLike(ctx context.Context, postID, userID string) (bool, error) {
	var liked bool
	err := r.db.WithContext(context.WithoutCancel(ctx)).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").Where("id = ?", postID).First(&domain.Post{}).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPostNotFound
			}
			return err
		}

		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&domain.PostLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
		} else {
			liked = true
			like := &domain.PostLike{PostID: postID, UserID: userID, CreatedAt: time.Now()}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
				return err
			}
		}

		return tx.Model(&domain.Post{}).Where("id = ?", postID).Update("updated_at", time.Now()).Error
	})
	return liked, err
}
