package service

import (
	"context"
	"strings"

	"github.com/soundshelf/soundshelf/internal/listing/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:  p.Log.Named("listing.service"),
		repo: p.Repo,
	}
}

func (s *Service) Countries(ctx context.Context) ([]string, error) {
	return s.repo.Distinct(ctx, "address.country")
}

func (s *Service) Search(ctx context.Context, country string, limit int64) ([]domain.Summary, error) {
	country = strings.TrimSpace(country)
	if limit <= 0 || limit > domain.DefaultSearchLimit {
		limit = domain.DefaultSearchLimit
	}
	return s.repo.ListByCountry(ctx, country, limit)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Listing, error) {
	listing, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, domain.ErrNotFound
	}
	return listing, nil
}
