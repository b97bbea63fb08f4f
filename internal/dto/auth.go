package dto

import (
	"time"

	"github.com/bethehero/adopt_backend/internal/core/domain"
)

// --- Auth DTOs ---

// RegisterUserRequest defines data for self-registration.
type RegisterUserRequest struct {
	FullName string          `json:"fullName" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=GUARDIAN PARTNER_MEMBER"`
}

// LoginRequest defines data for email/password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleExchangeRequest carries the OAuth authorization code from the
// client-side Google flow.
type GoogleExchangeRequest struct {
	Code        string `json:"code" binding:"required"`
	RedirectURI string `json:"redirectURI" binding:"required,url"`
}

// AuthResponse returns the issued token together with the user.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse defines data returned for a user. The password hash
// never leaves the domain layer.
type UserResponse struct {
	UserID        string          `json:"userID"`
	FullName      string          `json:"fullName"`
	Email         string          `json:"email"`
	Role          domain.UserRole `json:"role"`
	EmailVerified bool            `json:"emailVerified"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		FullName:      u.FullName,
		Email:         u.Email,
		Role:          u.Role,
		EmailVerified: u.EmailVerified,
		IsActive:      u.IsActive,
		CreatedAt:     u.CreatedAt,
	}
}

// MeResponse is the authenticated profile with workspace memberships.
type MeResponse struct {
	UserResponse
	Memberships []MembershipResponse `json:"memberships"`
}
