package service

import (
	"context"
	"errors"
	"testing"

	"github.com/soundshelf/soundshelf/internal/listing/domain"
	"go.uber.org/zap"
)

type listingRepoStub struct {
	distinctAttr string
	countries    []string

	searchCountry string
	searchLimit   int64
	summaries     []domain.Summary

	listing *domain.Listing
	err     error
}

func (r *listingRepoStub) Distinct(ctx context.Context, attribute string) ([]string, error) {
	r.distinctAttr = attribute
	return r.countries, r.err
}

func (r *listingRepoStub) ListByCountry(ctx context.Context, country string, limit int64) ([]domain.Summary, error) {
	r.searchCountry = country
	r.searchLimit = limit
	return r.summaries, r.err
}

func (r *listingRepoStub) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	return r.listing, r.err
}

func TestCountriesUsesAddressAttribute(t *testing.T) {
	repo := &listingRepoStub{countries: []string{"Brazil", "Portugal"}}
	svc := New(Params{Log: zap.NewNop(), Repo: repo})

	values, err := svc.Countries(context.Background())
	if err != nil {
		t.Fatalf("countries: %v", err)
	}
	if repo.distinctAttr != "address.country" {
		t.Fatalf("expected distinct on address.country, got %q", repo.distinctAttr)
	}
	if len(values) != 2 {
		t.Fatalf("expected 2 countries, got %d", len(values))
	}
}

func TestSearchClampsLimit(t *testing.T) {
	cases := []struct {
		name  string
		limit int64
		want  int64
	}{
		{"zero defaults", 0, domain.DefaultSearchLimit},
		{"negative defaults", -5, domain.DefaultSearchLimit},
		{"over cap clamps", domain.DefaultSearchLimit + 100, domain.DefaultSearchLimit},
		{"in range passes through", 25, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &listingRepoStub{}
			svc := New(Params{Log: zap.NewNop(), Repo: repo})

			if _, err := svc.Search(context.Background(), " Brazil ", tc.limit); err != nil {
				t.Fatalf("search: %v", err)
			}
			if repo.searchLimit != tc.want {
				t.Fatalf("expected limit %d, got %d", tc.want, repo.searchLimit)
			}
			if repo.searchCountry != "Brazil" {
				t.Fatalf("expected trimmed country, got %q", repo.searchCountry)
			}
		})
	}
}

func TestGetMissingListing(t *testing.T) {
	svc := New(Params{Log: zap.NewNop(), Repo: &listingRepoStub{}})

	_, err := svc.Get(context.Background(), "10006546")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetReturnsListing(t *testing.T) {
	want := &domain.Listing{ID: "10006546", Name: "Ribeira Charming Duplex"}
	svc := New(Params{Log: zap.NewNop(), Repo: &listingRepoStub{listing: want}})

	got, err := svc.Get(context.Background(), " 10006546 ")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != want.ID || got.Name != want.Name {
		t.Fatalf("unexpected listing: %+v", got)
	}
}
