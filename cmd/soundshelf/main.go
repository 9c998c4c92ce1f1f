package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/soundshelf/soundshelf/internal/checkout"
	"github.com/soundshelf/soundshelf/internal/config"
	"github.com/soundshelf/soundshelf/internal/listing"
	"github.com/soundshelf/soundshelf/internal/migration"
	"github.com/soundshelf/soundshelf/internal/mongodb"
	"github.com/soundshelf/soundshelf/internal/objectstore"
	"github.com/soundshelf/soundshelf/internal/observability"
	"github.com/soundshelf/soundshelf/internal/server"
	"github.com/soundshelf/soundshelf/internal/song"
	"github.com/soundshelf/soundshelf/internal/user"
	"github.com/soundshelf/soundshelf/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		mongodb.Module,
		objectstore.Module,
		migration.Module,

		// Functional domains
		user.Module,
		song.Module,
		checkout.Module,
		listing.Module,

		server.Module,
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
