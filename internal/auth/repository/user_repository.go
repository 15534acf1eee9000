package repository

import (
	"context"
	"errors"
	"time"

	authdomain "sociopedia-backend/internal/auth/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *authdomain.User) error {
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	// A started insert is allowed to finish even if the client goes away.
	err := r.db.WithContext(context.WithoutCancel(ctx)).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return authdomain.ErrEmailTaken
	}
	return err
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*authdomain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*authdomain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *userRepository) findOne(ctx context.Context, query string, arg string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.WithContext(ctx).Where(query, arg).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	friends, err := r.FriendIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Friends = friends
	return &user, nil
}

func (r *userRepository) FindByIDs(ctx context.Context, ids []string) ([]*authdomain.User, error) {
	users := []*authdomain.User{}
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *userRepository) FriendIDs(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	err := r.db.WithContext(ctx).Model(&authdomain.Friendship{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("friend_id", &ids).Error
	return ids, err
}

func (r *userRepository) ToggleFriend(ctx context.Context, userID, friendID string) (bool, error) {
	var friends bool
	err := r.db.WithContext(context.WithoutCancel(ctx)).Transaction(func(tx *gorm.DB) error {
		// Lock both users in id order so opposite-direction toggles cannot deadlock.
		first, second := userID, friendID
		if second < first {
			first, second = second, first
		}
		for _, id := range []string{first, second} {
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Select("id").Where("id = ?", id).First(&authdomain.User{}).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return authdomain.ErrUserNotFound
				}
				return err
			}
		}

		res := tx.Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).Delete(&authdomain.Friendship{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			friends = false
			return nil
		}

		now := time.Now()
		links := []authdomain.Friendship{
			{UserID: userID, FriendID: friendID, CreatedAt: now},
			{UserID: friendID, FriendID: userID, CreatedAt: now},
		}
		friends = true
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
	})
	return friends, err
}
