package repository

import (
	"context"

	"github.com/soundshelf/soundshelf/internal/song/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, song *domain.Song) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO song_info (song_title, lyrics, num_listening_slots, country, song_file_name)
		 VALUES (?, ?, ?, ?, ?)`,
		song.SongTitle,
		song.Lyrics,
		song.ListenSlots,
		song.Country,
		song.SongFileName,
	).Error
}

func (r *repo) FindByTitle(ctx context.Context, db *gorm.DB, title string) (*domain.Song, error) {
	var song domain.Song
	err := db.WithContext(ctx).Raw(
		`SELECT song_title, lyrics, num_listening_slots, country, song_file_name
		 FROM song_info WHERE song_title = ?`,
		title,
	).Scan(&song).Error
	if err != nil {
		return nil, err
	}
	if song.SongTitle == "" {
		return nil, nil
	}
	return &song, nil
}

// ListSummaries aggregates the active checkout count per song. Left
// join so songs nobody has checked out yet still appear.
func (r *repo) ListSummaries(ctx context.Context, db *gorm.DB) ([]domain.Summary, error) {
	var rows []domain.Summary
	err := db.WithContext(ctx).Raw(
		`SELECT si.song_title AS title,
		        si.country AS country,
		        si.num_listening_slots AS listen_slots,
		        COUNT(sco.id) AS checked_out
		 FROM song_info AS si
		 LEFT JOIN song_checked_out AS sco ON sco.song_title = si.song_title
		 GROUP BY si.song_title, si.country, si.num_listening_slots
		 ORDER BY si.song_title`,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
