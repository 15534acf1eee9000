package dto

import authdomain "sociopedia-backend/internal/auth/domain"

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest binds from JSON or from a multipart form carrying the
// optional "picture" file.
type RegisterRequest struct {
	FirstName   string `json:"firstName" form:"firstName"`
	LastName    string `json:"lastName" form:"lastName"`
	Email       string `json:"email" form:"email" binding:"required,email"`
	Password    string `json:"password" form:"password" binding:"required"`
	PicturePath string `json:"picturePath" form:"picturePath"`
	Location    string `json:"location" form:"location"`
	Occupation  string `json:"occupation" form:"occupation"`
}

type LoginResponse struct {
	Msg   string           `json:"msg"`
	Token string           `json:"token"`
	Data  *authdomain.User `json:"data"`
}
