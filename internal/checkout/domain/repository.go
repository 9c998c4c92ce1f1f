package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// InsertCheckedOut inserts the slot row only while the song still
	// has capacity; it reports false when the song is fully booked.
	InsertCheckedOut(ctx context.Context, db *gorm.DB, row *SongCheckedOut) (bool, error)
	InsertHistory(ctx context.Context, db *gorm.DB, row *UserCheckedOut) error
	// DeleteCheckedOut is scoped to the owning user; deleting a row
	// that does not exist (or belongs to someone else) is a no-op.
	DeleteCheckedOut(ctx context.Context, db *gorm.DB, id int64, userID int64) (int64, error)
	PlayCount(ctx context.Context, db *gorm.DB, songTitle string) (int64, error)
}
