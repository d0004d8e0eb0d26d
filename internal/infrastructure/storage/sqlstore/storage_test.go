package sqlstore_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/lakhweratechnologies3/apptodopro/internal/infrastructure/migration"
	"github.com/lakhweratechnologies3/apptodopro/internal/infrastructure/storage/sqlstore"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// openTestStorage создает мигрированную sqlite базу во временном каталоге.
func openTestStorage(t *testing.T) *sqlstore.Storage {
	t.Helper()

	uri := "sqlite3://" + filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, migration.NewMigration(uri, "", migration.DefaultEngine).Up())

	s, err := sqlstore.Open(context.Background(), uri)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestParseURI(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		dialect sqlstore.Dialect
		target  string
		wantErr bool
	}{
		{name: "postgres", uri: "postgres://u:p@localhost:5432/db", dialect: sqlstore.DialectPostgres, target: "postgres://u:p@localhost:5432/db"},
		{name: "postgresql", uri: "postgresql://localhost/db", dialect: sqlstore.DialectPostgres, target: "postgresql://localhost/db"},
		{name: "sqlite3", uri: "sqlite3://data/dash.db", dialect: sqlstore.DialectSQLite, target: "data/dash.db"},
		{name: "sqlite with query", uri: "sqlite://dash.db?cache=shared", dialect: sqlstore.DialectSQLite, target: "dash.db"},
		{name: "empty sqlite path", uri: "sqlite3://", wantErr: true},
		{name: "unknown scheme", uri: "mongodb://localhost", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialect, target, err := sqlstore.ParseURI(tt.uri)
			if tt.wantErr {
				assert.ErrorIs(t, err, sqlstore.ErrUnsupportedURI)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.dialect, dialect)
			assert.Equal(t, tt.target, target)
		})
	}
}

func TestMigrateURL(t *testing.T) {
	got, err := sqlstore.MigrateURL("sqlite://dash.db")
	require.NoError(t, err)
	assert.Equal(t, "sqlite3://dash.db", got)

	got, err = sqlstore.MigrateURL("postgres://localhost/db")
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/db", got)
}

func TestStorage_Ping(t *testing.T) {
	s := openTestStorage(t)

	assert.NoError(t, s.Ping(context.Background()))
	assert.Equal(t, sqlstore.DialectSQLite, s.Dialect())
}
