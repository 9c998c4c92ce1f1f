package song

import (
	"github.com/soundshelf/soundshelf/internal/objectstore"
	"github.com/soundshelf/soundshelf/internal/song/domain"
	"github.com/soundshelf/soundshelf/internal/song/repository"
	"github.com/soundshelf/soundshelf/internal/song/service"
	"go.uber.org/fx"
)

var Module = fx.Module("song.service",
	fx.Provide(repository.Provide),
	fx.Provide(func(store *objectstore.Store) domain.BlobStore { return store }),
	fx.Provide(service.New),
)
