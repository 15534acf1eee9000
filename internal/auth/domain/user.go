package domain

import "time"

type User struct {
	ID            string    `json:"_id" gorm:"primaryKey"`
	FirstName     string    `json:"firstName" gorm:"not null"`
	LastName      string    `json:"lastName" gorm:"not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null"`
	Password      string    `json:"-" gorm:"not null"` // Never return password in JSON
	PicturePath   string    `json:"picturePath"`
	Location      string    `json:"location"`
	Occupation    string    `json:"occupation"`
	ViewedProfile int       `json:"viewedProfile"`
	Impressions   int       `json:"impressions"`
	Friends       []string  `json:"friends" gorm:"-"` // Filled from friendships
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Friendship is one direction of a mutual friend link; both directions are
// always written together.
type Friendship struct {
	UserID    string `gorm:"primaryKey"`
	FriendID  string `gorm:"primaryKey;index"`
	CreatedAt time.Time
}

// FriendSummary is what a friends list exposes about each friend.
type FriendSummary struct {
	ID          string `json:"_id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Occupation  string `json:"occupation"`
	Location    string `json:"location"`
	PicturePath string `json:"picturePath"`
}

func (u *User) Summary() FriendSummary {
	return FriendSummary{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Occupation:  u.Occupation,
		Location:    u.Location,
		PicturePath: u.PicturePath,
	}
}
