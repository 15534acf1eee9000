package dto

type CreatePostRequest struct {
	UserID      string `json:"userId"`
	Description string `json:"description"`
	PicturePath string `json:"picturePath"`
}

type LikePostRequest struct {
	UserID string `json:"userId"`
}
