package ledger

import (
	"github.com/smallbiznis/praxis/internal/ledger/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("ledger.repository",
	fx.Provide(repository.Provide),
)
