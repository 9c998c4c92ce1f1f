package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/soundshelf/soundshelf/internal/config"
	"github.com/soundshelf/soundshelf/internal/countries"
	"github.com/soundshelf/soundshelf/internal/objectstore"
	"github.com/soundshelf/soundshelf/internal/song/domain"
	userdomain "github.com/soundshelf/soundshelf/internal/user/domain"
	"github.com/soundshelf/soundshelf/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Cfg   config.Config
	Repo  domain.Repository
	Users userdomain.Repository
	Blobs domain.BlobStore
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	folder string
	repo   domain.Repository
	users  userdomain.Repository
	blobs  domain.BlobStore
}

func New(p Params) domain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("song.service"),
		folder: p.Cfg.SpaceFolder,
		repo:   p.Repo,
		users:  p.Users,
		blobs:  p.Blobs,
	}
}

// Upload authorizes the uploader, persists the blob, then the metadata.
// A blob that made it to the object store is not rolled back when the
// metadata insert fails; the orphaned key is logged instead.
func (s *Service) Upload(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return domain.UploadResult{}, domain.ErrMissingUploader
	}

	title := strings.TrimSpace(req.SongName)
	if title == "" {
		return domain.UploadResult{}, domain.ErrMissingTitle
	}
	if req.ListenSlots <= 0 {
		return domain.UploadResult{}, domain.ErrInvalidSlots
	}

	uploader, err := s.users.FindByUsername(ctx, s.db, username)
	if err != nil {
		return domain.UploadResult{}, err
	}
	if uploader == nil {
		return domain.UploadResult{}, domain.ErrUnknownUploader
	}

	storedName := uuid.NewString()
	key := s.folder + "/" + storedName

	err = s.blobs.Put(ctx, objectstore.PutInput{
		Key:           key,
		Body:          req.Body,
		ContentType:   req.ContentType,
		ContentLength: req.Size,
		OriginalName:  req.OriginalName,
		UploadedAt:    time.Now().UTC(),
	})
	if err != nil {
		return domain.UploadResult{}, err
	}

	song := domain.Song{
		SongTitle:    title,
		Lyrics:       req.Lyrics,
		ListenSlots:  req.ListenSlots,
		Country:      strings.TrimSpace(req.Country),
		SongFileName: storedName,
	}
	if err := s.repo.Insert(ctx, s.db, &song); err != nil {
		s.log.Error("metadata insert failed after blob upload",
			zap.String("key", key),
			zap.String("title", title),
			zap.Error(err),
		)
		if db.IsDuplicateKeyErr(err) {
			return domain.UploadResult{}, domain.ErrDuplicateTitle
		}
		return domain.UploadResult{}, err
	}

	s.log.Info("song uploaded",
		zap.String("title", title),
		zap.String("uploader", username),
		zap.String("key", key),
	)

	return domain.UploadResult{Song: song, StoredKey: key}, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Summary, error) {
	rows, err := s.repo.ListSummaries(ctx, s.db)
	if err != nil {
		return nil, err
	}
	enrich(rows)
	return rows, nil
}

// ListForListening additionally flags rows with a free listening slot.
func (s *Service) ListForListening(ctx context.Context) ([]domain.Summary, error) {
	rows, err := s.repo.ListSummaries(ctx, s.db)
	if err != nil {
		return nil, err
	}
	enrich(rows)
	for i := range rows {
		rows[i].Available = rows[i].ListenSlots > rows[i].CheckedOut
	}
	return rows, nil
}

// Unknown country names leave the code empty rather than failing the
// whole listing.
func enrich(rows []domain.Summary) {
	for i := range rows {
		if code, ok := countries.Code(rows[i].Country); ok {
			rows[i].CountryCode = code
		}
	}
}
