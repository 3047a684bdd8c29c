package domain

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Username   string         `gorm:"column:username;unique;not null" json:"username"`
	Email      string         `gorm:"column:email;unique;not null" json:"email"`
	Password   string         `gorm:"column:password_hash;not null" json:"-"`
	Role       string         `gorm:"column:role;default:customer" json:"role"`
	IsVerified bool           `gorm:"column:is_verified;default:false" json:"is_verified"`
	CreatedAt  time.Time      `json:"-"`
	UpdatedAt  time.Time      `json:"-"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Wishlist []Product `gorm:"many2many:wishlist_items" json:"-"`
}

func (User) TableName() string {
	return "users"
}

const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
	RoleAdmin    = "admin"
)
