package dto

// LoginRequest carries the credentials for username+PIN login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	PIN      string `json:"pin" binding:"required"`
}

// LoginResponse returns the signed JWT for an authenticated user.
type LoginResponse struct {
	Token string `json:"token"`
}
