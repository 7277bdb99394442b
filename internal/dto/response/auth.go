package response

import (
	"time"

	"bus-booking/internal/data/entity"
)

type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.UserID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, token string) AuthResponse {
	return AuthResponse{
		Token:  token,
		UserID: user.UserID.String(),
		Name:   user.Name,
		Email:  user.Email,
	}
}
