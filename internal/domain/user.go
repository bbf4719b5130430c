package domain

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleProvider UserRole = "provider"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID           int64     `json:"id" gorm:"column:id;primaryKey"`
	Name         string    `json:"name" gorm:"column:name"`
	Email        string    `json:"email" gorm:"column:email;uniqueIndex:idx_users_email"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	Phone        string    `json:"phone,omitempty" gorm:"column:phone"`
	City         string    `json:"city,omitempty" gorm:"column:city"`
	Role         UserRole  `json:"role" gorm:"column:role"`
	IsVerified   bool      `json:"isVerified" gorm:"column:is_verified"`
	IsSuspended  bool      `json:"isSuspended" gorm:"column:is_suspended"`
	Rating       float64   `json:"rating" gorm:"column:rating"`
	NumReviews   int       `json:"numReviews" gorm:"column:num_reviews"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
