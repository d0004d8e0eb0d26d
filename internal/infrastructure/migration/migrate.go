package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// Драйверы баз данных для миграций
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/lakhweratechnologies3/apptodopro/internal/infrastructure/storage/sqlstore"
	"github.com/lakhweratechnologies3/apptodopro/migrations"
)

// Migrator - интерфейс для самой библиотеки migrate.Migrate
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine - фабрика для создания мигратора, подменяется в тестах
type MigrationEngine func(src source.Driver, databaseURL string) (Migrator, error)

type Migration struct {
	databaseURI string
	path        string
	engine      MigrationEngine
}

// NewMigration готовит миграции для databaseURI. Пустой path означает встроенные миграции.
func NewMigration(databaseURI, path string, engine MigrationEngine) *Migration {
	return &Migration{
		databaseURI: databaseURI,
		path:        path,
		engine:      engine,
	}
}

// DefaultEngine - реальная реализация для продакшена
func DefaultEngine(src source.Driver, databaseURL string) (Migrator, error) {
	return migrate.NewWithSourceInstance("migrations", src, databaseURL)
}

// Up применяет все миграции диалекта базы.
func (mg *Migration) Up() (err error) {
	dialect, _, err := sqlstore.ParseURI(mg.databaseURI)
	if err != nil {
		return err
	}
	dbURL, err := sqlstore.MigrateURL(mg.databaseURI)
	if err != nil {
		return err
	}

	src, err := mg.source(string(dialect))
	if err != nil {
		return fmt.Errorf("open migration source: %w", err)
	}

	m, err := mg.engine(src, dbURL)
	if err != nil {
		_ = src.Close()
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}

func (mg *Migration) source(dir string) (source.Driver, error) {
	if mg.path == "" {
		return iofs.New(migrations.FS, dir)
	}
	return source.Open("file://" + mg.path + "/" + dir)
}
