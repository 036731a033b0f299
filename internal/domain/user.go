package domain

import "time"

// User описывает учётную запись покупателя или продавца
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsCustomer   bool
	IsSeller     bool
	CreatedAt    time.Time
}

func NewUser(username, email, passwordHash string, isCustomer, isSeller bool) *User {
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		IsCustomer:   isCustomer,
		IsSeller:     isSeller,
	}
}

// UserProfile описывает профиль пользователя, создаётся явно вместе с учётной записью
type UserProfile struct {
	UserID  int64
	Phone   string
	Address string
}

func NewUserProfile(userID int64, phone, address string) *UserProfile {
	return &UserProfile{
		UserID:  userID,
		Phone:   phone,
		Address: address,
	}
}
