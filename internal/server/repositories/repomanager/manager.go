package repomanager

import (
	"context"
	"database/sql"

	"github.com/puptrack/puptrack/internal/dbx"
	"github.com/puptrack/puptrack/internal/server/repositories/pets"
	"github.com/puptrack/puptrack/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Pets(db dbx.DBTX) pets.Repository
}
