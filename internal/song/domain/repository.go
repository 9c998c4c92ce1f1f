package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, song *Song) error
	FindByTitle(ctx context.Context, db *gorm.DB, title string) (*Song, error)
	ListSummaries(ctx context.Context, db *gorm.DB) ([]Summary, error)
}
