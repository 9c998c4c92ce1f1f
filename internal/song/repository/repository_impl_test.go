package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/soundshelf/soundshelf/internal/song/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSongRepo(t *testing.T) (domain.Repository, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_loc=auto", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.Exec(`CREATE TABLE song_info (
		song_title TEXT PRIMARY KEY,
		lyrics TEXT,
		num_listening_slots INTEGER NOT NULL,
		country TEXT,
		song_file_name TEXT
	)`).Error)
	require.NoError(t, db.Exec(`CREATE TABLE song_checked_out (
		id BIGINT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		song_title TEXT NOT NULL,
		checkout_datetime DATETIME NOT NULL
	)`).Error)

	return Provide(), db
}

func TestInsertAndFindByTitle(t *testing.T) {
	repo, db := setupSongRepo(t)
	ctx := context.Background()

	song := domain.Song{
		SongTitle:    "Blue Moon",
		Lyrics:       "la la la",
		ListenSlots:  3,
		Country:      "Japan",
		SongFileName: "blob-key",
	}
	require.NoError(t, repo.Insert(ctx, db, &song))

	found, err := repo.FindByTitle(ctx, db, "Blue Moon")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, song, *found)

	missing, err := repo.FindByTitle(ctx, db, "No Such Song")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInsertDuplicateTitleFails(t *testing.T) {
	repo, db := setupSongRepo(t)
	ctx := context.Background()

	song := domain.Song{SongTitle: "Blue Moon", ListenSlots: 1}
	require.NoError(t, repo.Insert(ctx, db, &song))

	err := repo.Insert(ctx, db, &song)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
}

func TestListSummariesCountsActiveCheckouts(t *testing.T) {
	repo, db := setupSongRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, db, &domain.Song{SongTitle: "Waterloo", ListenSlots: 3, Country: "Sweden"}))
	require.NoError(t, repo.Insert(ctx, db, &domain.Song{SongTitle: "Blue Moon", ListenSlots: 2, Country: "Japan"}))

	now := time.Now().UTC()
	for i, title := range []string{"Blue Moon", "Blue Moon", "Waterloo"} {
		require.NoError(t, db.Exec(
			`INSERT INTO song_checked_out (id, user_id, song_title, checkout_datetime) VALUES (?, ?, ?, ?)`,
			i+1, 10, title, now,
		).Error)
	}

	rows, err := repo.ListSummaries(ctx, db)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Ordered by title.
	assert.Equal(t, "Blue Moon", rows[0].Title)
	assert.Equal(t, 2, rows[0].CheckedOut)
	assert.Equal(t, 2, rows[0].ListenSlots)
	assert.Equal(t, "Waterloo", rows[1].Title)
	assert.Equal(t, 1, rows[1].CheckedOut)
}

func TestListSummariesIncludesUncheckedSongs(t *testing.T) {
	repo, db := setupSongRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, db, &domain.Song{SongTitle: "Blue Moon", ListenSlots: 2, Country: "Japan"}))

	rows, err := repo.ListSummaries(ctx, db)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].CheckedOut)
}
