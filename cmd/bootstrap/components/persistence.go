package components

import (
	"washbook/internal/infra/readstore"
	"washbook/internal/infra/writerepo"
	"washbook/internal/usecase/commands"
	"washbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	writerepoModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Record
		fx.Annotate(
			readstore.NewRecordReadStore,
			fx.As(new(queries.RecordViewRepo)),
			fx.As(new(queries.LedgerLineRepo)),
		),
		// Washer
		fx.Annotate(
			readstore.NewWasherReadStore,
			fx.As(new(queries.WasherViewRepo)),
			fx.As(new(commands.WasherReader)),
		),
		// Service catalog
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceViewRepo)),
			fx.As(new(commands.ServiceReader)),
		),
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserViewRepo)),
			fx.As(new(commands.CredentialReader)),
		),
	),
)

var writerepoModule = fx.Module("persistence/writerepo",
	fx.Provide(
		fx.Annotate(
			writerepo.NewRecordWriteRepo,
			fx.As(new(commands.RecordWriteRepo)),
		),
	),
)
