package repository

import (
	"context"

	"github.com/soundshelf/soundshelf/internal/checkout/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

// InsertCheckedOut locks the song row, then folds the capacity check
// into the insert itself, so two concurrent checkouts of the last slot
// serialize on the lock instead of both passing the count. Under READ
// COMMITTED the second claimant re-reads the count only after the
// first has committed.
func (r *repo) InsertCheckedOut(ctx context.Context, db *gorm.DB, row *domain.SongCheckedOut) (bool, error) {
	lock := `SELECT num_listening_slots FROM song_info WHERE song_title = ?`
	// sqlite has no row locks; its single writer serializes instead.
	switch db.Dialector.Name() {
	case "postgres", "mysql":
		lock += " FOR UPDATE"
	}
	var slots int
	if err := db.WithContext(ctx).Raw(lock, row.SongTitle).Scan(&slots).Error; err != nil {
		return false, err
	}

	result := db.WithContext(ctx).Exec(
		`INSERT INTO song_checked_out (id, user_id, song_title, checkout_datetime)
		 SELECT ?, ?, ?, ?
		 WHERE (SELECT num_listening_slots FROM song_info WHERE song_title = ?) >
		       (SELECT COUNT(*) FROM song_checked_out WHERE song_title = ?)`,
		row.ID,
		row.UserID,
		row.SongTitle,
		row.CheckoutDatetime,
		row.SongTitle,
		row.SongTitle,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repo) InsertHistory(ctx context.Context, db *gorm.DB, row *domain.UserCheckedOut) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO user_checked_out (id, user_id, song_title, checkout_datetime)
		 VALUES (?, ?, ?, ?)`,
		row.ID,
		row.UserID,
		row.SongTitle,
		row.CheckoutDatetime,
	).Error
}

func (r *repo) DeleteCheckedOut(ctx context.Context, db *gorm.DB, id int64, userID int64) (int64, error) {
	result := db.WithContext(ctx).Exec(
		`DELETE FROM song_checked_out WHERE id = ? AND user_id = ?`,
		id,
		userID,
	)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repo) PlayCount(ctx context.Context, db *gorm.DB, songTitle string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM user_checked_out WHERE song_title = ?`,
		songTitle,
	).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
