package migration

import (
	"github.com/smallbiznis/praxis/pkg/db"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg db.Config) error {
		return Run(conn, cfg.Type)
	}),
)
