package usecase

import (
	"context"
	"sort"

	authdomain "sociopedia-backend/internal/auth/domain"
	"sociopedia-backend/internal/auth/repository"
)

// UserUsecase serves profiles and friend lists.
type UserUsecase interface {
	GetUser(ctx context.Context, id string) (*authdomain.User, error)
	GetUserFriends(ctx context.Context, id string) ([]authdomain.FriendSummary, error)

	// AddRemoveFriend toggles the friendship and returns id's friends afterwards.
	AddRemoveFriend(ctx context.Context, id, friendID string) ([]authdomain.FriendSummary, error)
}

type userUsecase struct {
	userRepo repository.UserRepository
}

func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

func (u *userUsecase) GetUser(ctx context.Context, id string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}
	return user, nil
}

func (u *userUsecase) GetUserFriends(ctx context.Context, id string) ([]authdomain.FriendSummary, error) {
	user, err := u.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.summaries(ctx, user.Friends)
}

func (u *userUsecase) AddRemoveFriend(ctx context.Context, id, friendID string) ([]authdomain.FriendSummary, error) {
	if id == friendID {
		return nil, authdomain.ErrSelfFriend
	}
	if _, err := u.GetUser(ctx, id); err != nil {
		return nil, err
	}
	if _, err := u.GetUser(ctx, friendID); err != nil {
		return nil, err
	}

	if _, err := u.userRepo.ToggleFriend(ctx, id, friendID); err != nil {
		return nil, err
	}

	ids, err := u.userRepo.FriendIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.summaries(ctx, ids)
}

// summaries keeps the order of ids.
func (u *userUsecase) summaries(ctx context.Context, ids []string) ([]authdomain.FriendSummary, error) {
	users, err := u.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	sort.Slice(users, func(i, j int) bool { return pos[users[i].ID] < pos[users[j].ID] })

	out := make([]authdomain.FriendSummary, 0, len(users))
	for _, f := range users {
		out = append(out, f.Summary())
	}
	return out, nil
}
