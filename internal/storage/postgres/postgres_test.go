package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sducloud/sduclouddb/config"
)

func TestDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", Name: "n"}
	assert.Equal(t, "postgres://u:p@db:5433/n?sslmode=disable", DSN(cfg))

	cfg.SSLMode = "require"
	assert.Contains(t, DSN(cfg), "sslmode=require")

	cfg.DSN = "postgres://u:p@db/n"
	assert.Equal(t, "postgres://u:p@db/n", DSN(cfg))
}

func TestDSN_SpecialCharacters(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "app user",
		Password: "s3cret pass'with\\quote@#",
		Name:     "sdu cloud",
	}

	parsed, err := pgconn.ParseConfig(DSN(cfg))
	require.NoError(t, err)
	assert.Equal(t, "db", parsed.Host)
	assert.Equal(t, uint16(5433), parsed.Port)
	assert.Equal(t, "app user", parsed.User)
	assert.Equal(t, "s3cret pass'with\\quote@#", parsed.Password)
	assert.Equal(t, "sdu cloud", parsed.Database)

	cfg.Password = ""
	parsed, err = pgconn.ParseConfig(DSN(cfg))
	require.NoError(t, err)
	assert.Equal(t, "app user", parsed.User)
	assert.Equal(t, "sdu cloud", parsed.Database)
}

func TestSQLState(t *testing.T) {
	pgxErr := fmt.Errorf("insert: %w", &pgconn.PgError{Code: CodeNotNullViolation, ColumnName: "orgrefid"})
	assert.Equal(t, CodeNotNullViolation, SQLState(pgxErr))
	assert.Equal(t, "orgrefid", ConstraintName(pgxErr))

	pqErr := &pq.Error{Code: CodeForeignKeyViolation, Constraint: "project_org_relation_orgrefid_fkey"}
	assert.Equal(t, CodeForeignKeyViolation, SQLState(pqErr))
	assert.Equal(t, "project_org_relation_orgrefid_fkey", ConstraintName(pqErr))

	assert.Equal(t, "", SQLState(errors.New("boom")))
	assert.Equal(t, "", ConstraintName(errors.New("boom")))
}

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements(Schema())
	require.NotEmpty(t, stmts)
	for _, s := range stmts {
		assert.NotContains(t, s, ";")
		assert.NotEqual(t, "", s)
	}
	assert.Contains(t, stmts[0], "CREATE TABLE IF NOT EXISTS org")

	var tables int
	for _, s := range stmts {
		if len(s) > 12 && s[:12] == "CREATE TABLE" {
			tables++
		}
	}
	assert.Equal(t, 5, tables)
}

func TestApplySchema(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db := sqlx.NewDb(mockDB, "sqlmock")

	stmts := splitStatements(Schema())
	mock.ExpectBegin()
	for range stmts {
		mock.ExpectExec(`CREATE`).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	require.NoError(t, ApplySchema(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplySchema_RollsBackOnError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db := sqlx.NewDb(mockDB, "sqlmock")

	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS org`).WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	err = ApplySchema(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	require.NoError(t, mock.ExpectationsWereMet())
}
