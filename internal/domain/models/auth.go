package models

// LoginRequest carries the credentials posted to /Auth/login.
type LoginRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the body returned by /Auth/login.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest is the body for /Auth/register.
type RegisterRequest struct {
	UserName string `json:"userName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"fullName"`
	Role     string `json:"role" validate:"required"`
}
