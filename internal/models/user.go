package models

import "time"

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	DisplayName  string    `json:"display_name,omitempty"`
	UserName     string    `json:"user_name,omitempty"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	Role         UserRole  `json:"role"`
	Verified     bool      `json:"verified"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type SignupRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"display_name" validate:"required"`
	UserName    string `json:"user_name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	ExpiresIn   int64    `json:"expires_in"`
	Email       string   `json:"email"`
	DisplayName string   `json:"display_name,omitempty"`
	UserName    string   `json:"user_name,omitempty"`
	Role        UserRole `json:"role"`
	Verified    bool     `json:"verified"`
}

type UpdateUserRequest struct {
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	DisplayName *string `json:"display_name,omitempty"`
	UserName    *string `json:"user_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type SetVerifiedRequest struct {
	Verified bool `json:"verified"`
}
