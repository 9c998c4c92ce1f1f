package domain

import (
	"context"

	"gorm.io/gorm"
)

// User accounts preexist this service; there is no registration here,
// so the row is read-only.
type User struct {
	UserID   int64  `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username string `gorm:"column:username;uniqueIndex;not null" json:"username"`
}

func (User) TableName() string { return "users" }

// FindByUsername reports an absent user as (nil, nil); callers map
// that to their own domain error.
type Repository interface {
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*User, error)
}
