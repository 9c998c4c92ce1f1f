package listing

import (
	"github.com/soundshelf/soundshelf/internal/listing/repository"
	"github.com/soundshelf/soundshelf/internal/listing/service"
	"go.uber.org/fx"
)

var Module = fx.Module("listing.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
