package domain

import (
	"errors"
	"time"
)

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrAuthorNotFound = errors.New("author not found")
)

// Post carries author display fields copied at creation time; they are not
// kept in sync with later profile edits.
type Post struct {
	ID              string          `json:"_id" gorm:"primaryKey"`
	UserID          string          `json:"userId" gorm:"index;not null"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Location        string          `json:"location"`
	Description     string          `json:"description"`
	PicturePath     string          `json:"picturePath"`
	UserPicturePath string          `json:"userPicturePath"`
	Likes           map[string]bool `json:"likes" gorm:"-"`
	LikeRows        []PostLike      `json:"-" gorm:"foreignKey:PostID"`
	Comments        []string        `json:"comments" gorm:"type:text;serializer:json"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// PostLike is one entry of a post's liked-map. A row exists only while the
// user likes the post.
type PostLike struct {
	PostID    string `gorm:"primaryKey"`
	UserID    string `gorm:"primaryKey"`
	CreatedAt time.Time
}

// SyncLikes rebuilds Likes from the loaded rows.
func (p *Post) SyncLikes() {
	p.Likes = make(map[string]bool, len(p.LikeRows))
	for _, l := range p.LikeRows {
		p.Likes[l.UserID] = true
	}
	if p.Comments == nil {
		p.Comments = []string{}
	}
}

// IsLikedBy reports whether userID currently likes the post.
func (p *Post) IsLikedBy(userID string) bool {
	return p.Likes[userID]
}
