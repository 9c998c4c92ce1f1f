package domain

import (
	"context"
	"errors"
	"io"
)

// UploadRequest carries the multipart form fields plus the temp-file
// contents of the uploaded blob.
type UploadRequest struct {
	Username     string
	SongName     string
	Lyrics       string
	ListenSlots  int
	Country      string
	OriginalName string
	ContentType  string
	Size         int64
	Body         io.Reader
}

// UploadResult reports where the blob landed.
type UploadResult struct {
	Song      Song
	StoredKey string
}

type Service interface {
	Upload(ctx context.Context, req UploadRequest) (UploadResult, error)
	ListAll(ctx context.Context) ([]Summary, error)
	ListForListening(ctx context.Context) ([]Summary, error)
}

var (
	ErrMissingUploader = errors.New("missing_uploader")
	ErrUnknownUploader = errors.New("unknown_uploader")
	ErrInvalidSlots    = errors.New("invalid_listen_slots")
	ErrMissingTitle    = errors.New("missing_song_title")
	ErrNotFound        = errors.New("song_not_found")
	ErrDuplicateTitle  = errors.New("duplicate_song_title")
)
