package migration

import (
	"github.com/soundshelf/soundshelf/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, log *zap.Logger) error {
		// The schema files are postgres DDL; other backends are
		// provisioned out of band.
		if cfg.DBType != "" && cfg.DBType != "postgres" {
			log.Warn("skipping embedded migrations, schema files are postgres-only",
				zap.String("database_type", cfg.DBType),
			)
			return nil
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)
