package checkout

import (
	"github.com/soundshelf/soundshelf/internal/checkout/events"
	"github.com/soundshelf/soundshelf/internal/checkout/repository"
	"github.com/soundshelf/soundshelf/internal/checkout/service"
	"go.uber.org/fx"
)

var Module = fx.Module("checkout.service",
	fx.Provide(repository.Provide),
	fx.Provide(events.New),
	fx.Provide(service.New),
)
