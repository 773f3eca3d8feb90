package models

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SessionResponse struct {
	Token string `json:"token"`
}

type AddFavoriteRequest struct {
	Product Product `json:"product" validate:"required"`
}

type SearchResponse struct {
	Term     string    `json:"term"`
	Products []Product `json:"products"`
}

type FavoritesResponse struct {
	Products []Product `json:"products"`
}
