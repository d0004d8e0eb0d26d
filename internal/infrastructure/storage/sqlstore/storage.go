// Package sqlstore хранит записи дашборда в PostgreSQL (pgx) или SQLite
// через единый слой репозиториев на sqlx.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	// Регистрация драйвера sqlite3 для database/sql
	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

var ErrUnsupportedURI = errors.New("unsupported database uri")

// ParseURI определяет диалект по схеме. Для SQLite возвращает путь к файлу.
func ParseURI(uri string) (Dialect, string, error) {
	switch {
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		return DialectPostgres, uri, nil
	case strings.HasPrefix(uri, "sqlite3://"):
		return sqlitePath(strings.TrimPrefix(uri, "sqlite3://"))
	case strings.HasPrefix(uri, "sqlite://"):
		return sqlitePath(strings.TrimPrefix(uri, "sqlite://"))
	}
	return "", "", fmt.Errorf("%w: %q", ErrUnsupportedURI, uri)
}

func sqlitePath(path string) (Dialect, string, error) {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "", "", fmt.Errorf("%w: empty sqlite path", ErrUnsupportedURI)
	}
	return DialectSQLite, path, nil
}

// MigrateURL адрес базы в формате golang-migrate.
func MigrateURL(uri string) (string, error) {
	dialect, target, err := ParseURI(uri)
	if err != nil {
		return "", err
	}
	if dialect == DialectSQLite {
		return "sqlite3://" + target, nil
	}
	return target, nil
}

type Storage struct {
	db      *sqlx.DB
	pool    *pgxpool.Pool
	dialect Dialect
}

// Open подключается к базе. Миграции выполняются отдельно.
func Open(ctx context.Context, uri string) (*Storage, error) {
	dialect, target, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	switch dialect {
	case DialectPostgres:
		pool, err := pgxpool.New(ctx, target)
		if err != nil {
			return nil, fmt.Errorf("create pool: %w", err)
		}
		db := sqlx.NewDb(stdlib.OpenDBFromPool(pool), "pgx")
		return &Storage{db: db, pool: pool, dialect: dialect}, nil
	default:
		dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", target)
		db, err := sqlx.Open("sqlite3", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		db.SetMaxOpenConns(1)
		return &Storage{db: db, dialect: dialect}, nil
	}
}

func (s *Storage) DB() *sqlx.DB {
	return s.db
}

func (s *Storage) Dialect() Dialect {
	return s.dialect
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Close() error {
	err := s.db.Close()
	if s.pool != nil {
		s.pool.Close()
	}
	return err
}

func newID() string {
	return ulid.Make().String()
}

// now время записи: UTC с точностью до микросекунд, как в PostgreSQL.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func deleteByID(ctx context.Context, db *sqlx.DB, table, id string) (bool, error) {
	res, err := db.ExecContext(ctx, db.Rebind("DELETE FROM "+table+" WHERE id = ?"), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// affected возвращает notFound, если запрос не затронул ни одной строки.
func affected(res interface{ RowsAffected() (int64, error) }, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
