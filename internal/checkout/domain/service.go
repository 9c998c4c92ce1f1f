package domain

import (
	"context"
	"errors"

	songdomain "github.com/soundshelf/soundshelf/internal/song/domain"
)

// CheckoutResult carries everything the confirmation view renders.
type CheckoutResult struct {
	CheckoutID  int64
	PlayCount   int64
	Song        songdomain.Song
	CountryCode string
}

type Service interface {
	Checkout(ctx context.Context, songTitle, username string) (CheckoutResult, error)
	Release(ctx context.Context, checkoutID int64, username string) error
}

var (
	ErrUserNotFound = errors.New("checkout_user_not_found")
	ErrSongNotFound = errors.New("checkout_song_not_found")
	ErrNoSlots      = errors.New("no_listening_slots")
)
