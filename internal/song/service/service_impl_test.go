package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/soundshelf/soundshelf/internal/config"
	"github.com/soundshelf/soundshelf/internal/objectstore"
	"github.com/soundshelf/soundshelf/internal/song/domain"
	userdomain "github.com/soundshelf/soundshelf/internal/user/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type blobStoreStub struct {
	puts []objectstore.PutInput
	err  error
}

func (b *blobStoreStub) Put(ctx context.Context, in objectstore.PutInput) error {
	if b.err != nil {
		return b.err
	}
	b.puts = append(b.puts, in)
	return nil
}

type songRepoStub struct {
	inserted  []domain.Song
	insertErr error
	summaries []domain.Summary
}

func (r *songRepoStub) Insert(ctx context.Context, db *gorm.DB, song *domain.Song) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, *song)
	return nil
}

func (r *songRepoStub) FindByTitle(ctx context.Context, db *gorm.DB, title string) (*domain.Song, error) {
	for i := range r.inserted {
		if r.inserted[i].SongTitle == title {
			return &r.inserted[i], nil
		}
	}
	return nil, nil
}

func (r *songRepoStub) ListSummaries(ctx context.Context, db *gorm.DB) ([]domain.Summary, error) {
	out := make([]domain.Summary, len(r.summaries))
	copy(out, r.summaries)
	return out, nil
}

type userRepoStub struct {
	users map[string]int64
}

func (r *userRepoStub) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*userdomain.User, error) {
	id, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return &userdomain.User{UserID: id, Username: username}, nil
}

func newUploadService(repo *songRepoStub, users *userRepoStub, blobs *blobStoreStub) domain.Service {
	return New(Params{
		Log:   zap.NewNop(),
		Cfg:   config.Config{SpaceFolder: "songs"},
		Repo:  repo,
		Users: users,
		Blobs: blobs,
	})
}

func uploadRequest() domain.UploadRequest {
	return domain.UploadRequest{
		Username:     "alice",
		SongName:     "Blue Moon",
		Lyrics:       "la la la",
		ListenSlots:  3,
		Country:      "Japan",
		OriginalName: "bluemoon.mp3",
		ContentType:  "audio/mpeg",
		Size:         42,
		Body:         strings.NewReader("not really audio"),
	}
}

func TestUploadStoresBlobThenMetadata(t *testing.T) {
	repo := &songRepoStub{}
	blobs := &blobStoreStub{}
	svc := newUploadService(repo, &userRepoStub{users: map[string]int64{"alice": 10}}, blobs)

	result, err := svc.Upload(context.Background(), uploadRequest())
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if len(blobs.puts) != 1 {
		t.Fatalf("expected 1 blob put, got %d", len(blobs.puts))
	}
	put := blobs.puts[0]
	if !strings.HasPrefix(put.Key, "songs/") {
		t.Fatalf("expected key under songs/, got %q", put.Key)
	}
	if put.OriginalName != "bluemoon.mp3" || put.ContentType != "audio/mpeg" || put.ContentLength != 42 {
		t.Fatalf("unexpected put input: %+v", put)
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 metadata insert, got %d", len(repo.inserted))
	}
	song := repo.inserted[0]
	if song.SongTitle != "Blue Moon" || song.ListenSlots != 3 || song.Country != "Japan" {
		t.Fatalf("unexpected song row: %+v", song)
	}
	if song.SongFileName == "" || song.SongFileName == "bluemoon.mp3" {
		t.Fatalf("stored name must be generated, got %q", song.SongFileName)
	}
	if result.StoredKey != "songs/"+song.SongFileName {
		t.Fatalf("result key %q does not match stored name %q", result.StoredKey, song.SongFileName)
	}
}

func TestUploadValidationWritesNothing(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*domain.UploadRequest)
		wantErr error
	}{
		{"missing username", func(r *domain.UploadRequest) { r.Username = "  " }, domain.ErrMissingUploader},
		{"missing title", func(r *domain.UploadRequest) { r.SongName = "" }, domain.ErrMissingTitle},
		{"zero slots", func(r *domain.UploadRequest) { r.ListenSlots = 0 }, domain.ErrInvalidSlots},
		{"negative slots", func(r *domain.UploadRequest) { r.ListenSlots = -2 }, domain.ErrInvalidSlots},
		{"unknown uploader", func(r *domain.UploadRequest) { r.Username = "mallory" }, domain.ErrUnknownUploader},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &songRepoStub{}
			blobs := &blobStoreStub{}
			svc := newUploadService(repo, &userRepoStub{users: map[string]int64{"alice": 10}}, blobs)

			req := uploadRequest()
			tc.mutate(&req)

			_, err := svc.Upload(context.Background(), req)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if len(blobs.puts) != 0 {
				t.Fatalf("rejected upload must not touch the blob store, got %d puts", len(blobs.puts))
			}
			if len(repo.inserted) != 0 {
				t.Fatalf("rejected upload must not insert metadata, got %d rows", len(repo.inserted))
			}
		})
	}
}

func TestUploadBlobFailureSkipsMetadata(t *testing.T) {
	repo := &songRepoStub{}
	blobs := &blobStoreStub{err: errors.New("bucket unreachable")}
	svc := newUploadService(repo, &userRepoStub{users: map[string]int64{"alice": 10}}, blobs)

	_, err := svc.Upload(context.Background(), uploadRequest())
	if err == nil {
		t.Fatal("expected error when blob store fails")
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("metadata must not be written when the blob upload fails, got %d rows", len(repo.inserted))
	}
}

func TestUploadDuplicateTitle(t *testing.T) {
	repo := &songRepoStub{insertErr: gorm.ErrDuplicatedKey}
	svc := newUploadService(repo, &userRepoStub{users: map[string]int64{"alice": 10}}, &blobStoreStub{})

	_, err := svc.Upload(context.Background(), uploadRequest())
	if !errors.Is(err, domain.ErrDuplicateTitle) {
		t.Fatalf("expected ErrDuplicateTitle, got %v", err)
	}
}

func TestListForListeningFlagsAvailability(t *testing.T) {
	repo := &songRepoStub{summaries: []domain.Summary{
		{Title: "Blue Moon", Country: "Japan", ListenSlots: 2, CheckedOut: 2},
		{Title: "Waterloo", Country: "Sweden", ListenSlots: 3, CheckedOut: 1},
		{Title: "Wanderer", Country: "Atlantis", ListenSlots: 1, CheckedOut: 0},
	}}
	svc := newUploadService(repo, &userRepoStub{}, &blobStoreStub{})

	rows, err := svc.ListForListening(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[0].Available {
		t.Fatal("fully booked song must not be available")
	}
	if !rows[1].Available || !rows[2].Available {
		t.Fatal("songs with free slots must be available")
	}
	if rows[0].CountryCode != "jp" || rows[1].CountryCode != "se" {
		t.Fatalf("expected country codes jp/se, got %q/%q", rows[0].CountryCode, rows[1].CountryCode)
	}
	if rows[2].CountryCode != "" {
		t.Fatalf("unknown country must leave the code empty, got %q", rows[2].CountryCode)
	}
}

func TestListAllLeavesAvailabilityUnset(t *testing.T) {
	repo := &songRepoStub{summaries: []domain.Summary{
		{Title: "Blue Moon", Country: "japan", ListenSlots: 2, CheckedOut: 0},
	}}
	svc := newUploadService(repo, &userRepoStub{}, &blobStoreStub{})

	rows, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].CountryCode != "jp" {
		t.Fatalf("lookup must be case-insensitive, got %q", rows[0].CountryCode)
	}
}
