package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/soundshelf/soundshelf/internal/checkout/domain"
	"github.com/soundshelf/soundshelf/internal/countries"
	songdomain "github.com/soundshelf/soundshelf/internal/song/domain"
	userdomain "github.com/soundshelf/soundshelf/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Repo   domain.Repository
	Songs  songdomain.Repository
	Users  userdomain.Repository
	Events domain.Publisher
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	repo   domain.Repository
	songs  songdomain.Repository
	users  userdomain.Repository
	events domain.Publisher
}

func New(p Params) domain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("checkout.service"),
		genID:  p.GenID,
		repo:   p.Repo,
		songs:  p.Songs,
		users:  p.Users,
		events: p.Events,
	}
}

// Checkout claims a listening slot. The slot row and the history row
// commit in one transaction, with the capacity check folded into the
// slot insert. The document-store mirror is written after commit;
// a mirror failure is logged, never surfaced.
func (s *Service) Checkout(ctx context.Context, songTitle, username string) (domain.CheckoutResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.CheckoutResult{}, domain.ErrUserNotFound
	}

	user, err := s.users.FindByUsername(ctx, s.db, username)
	if err != nil {
		return domain.CheckoutResult{}, err
	}
	if user == nil {
		return domain.CheckoutResult{}, domain.ErrUserNotFound
	}

	song, err := s.songs.FindByTitle(ctx, s.db, songTitle)
	if err != nil {
		return domain.CheckoutResult{}, err
	}
	if song == nil {
		return domain.CheckoutResult{}, domain.ErrSongNotFound
	}

	now := time.Now().UTC()
	slot := domain.SongCheckedOut{
		ID:               s.genID.Generate(),
		UserID:           user.UserID,
		SongTitle:        song.SongTitle,
		CheckoutDatetime: now,
	}
	history := domain.UserCheckedOut{
		ID:               s.genID.Generate(),
		UserID:           user.UserID,
		SongTitle:        song.SongTitle,
		CheckoutDatetime: now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inserted, err := s.repo.InsertCheckedOut(ctx, tx, &slot)
		if err != nil {
			return err
		}
		if !inserted {
			return domain.ErrNoSlots
		}
		return s.repo.InsertHistory(ctx, tx, &history)
	})
	if err != nil {
		return domain.CheckoutResult{}, err
	}

	s.mirror(ctx, domain.Event{
		EventID:          int64(slot.ID),
		UserID:           user.UserID,
		SongTitle:        song.SongTitle,
		CheckOutDateTime: now.UnixMilli(),
	})

	playCount, err := s.repo.PlayCount(ctx, s.db, song.SongTitle)
	if err != nil {
		return domain.CheckoutResult{}, err
	}

	result := domain.CheckoutResult{
		CheckoutID: int64(slot.ID),
		PlayCount:  playCount,
		Song:       *song,
	}
	if code, ok := countries.Code(song.Country); ok {
		result.CountryCode = code
	}

	s.log.Info("song checked out",
		zap.Int64("checkout_id", result.CheckoutID),
		zap.String("song_title", song.SongTitle),
		zap.String("username", username),
	)

	return result, nil
}

// Release frees a listening slot. The delete is scoped to the caller's
// own checkout; freeing an id that is gone or foreign is a no-op.
func (s *Service) Release(ctx context.Context, checkoutID int64, username string) error {
	user, err := s.users.FindByUsername(ctx, s.db, strings.TrimSpace(username))
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	deleted, err := s.repo.DeleteCheckedOut(ctx, s.db, checkoutID, user.UserID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		s.log.Debug("release was a no-op",
			zap.Int64("checkout_id", checkoutID),
			zap.String("username", username),
		)
	}
	return nil
}

func (s *Service) mirror(ctx context.Context, event domain.Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Error("checkout mirror failed",
			zap.Int64("event_id", event.EventID),
			zap.String("song_title", event.SongTitle),
			zap.Error(err),
		)
	}
}
