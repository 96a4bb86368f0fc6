// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

//go:embed migrations
var embeddedMigrations embed.FS

// Types lists the supported database types.
var Types = []string{"sqlite", "postgres", "mysql"}

// driverName maps a database type to its registered sql driver.
func driverName(dbType string) (string, error) {
	switch dbType {
	case "sqlite":
		return "sqlite", nil
	case "postgres":
		// pgx stdlib registers itself as "pgx"
		return "pgx", nil
	case "mysql":
		return "mysql", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupported, dbType)
	}
}

// NewStoreFromDSN opens the database, applies pending migrations and
// returns a Store backed by a long-lived *bun.DB.
func NewStoreFromDSN(dbType, dsn string) (*Store, error) {
	driver, err := driverName(dbType)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	const (
		defaultMaxOpenConns    = 10
		defaultMaxIdleConns    = 10
		defaultConnMaxLifetime = 5 * time.Minute
	)
	maxOpen := envInt("FOLIO_DB_MAX_OPEN_CONNS", defaultMaxOpenConns)
	maxIdle := envInt("FOLIO_DB_MAX_IDLE_CONNS", defaultMaxIdleConns)
	connMax := time.Duration(envInt("FOLIO_DB_CONN_MAX_LIFETIME_SECONDS", int(defaultConnMaxLifetime/time.Second))) * time.Second

	// Every connection to ":memory:" gets its own empty database.
	if dbType == "sqlite" && dsn == ":memory:" {
		maxOpen = 1
		maxIdle = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(connMax)

	dbLogf("db: opened %s driver in %s (max open=%d, max lifetime=%s)", driver, time.Since(start), maxOpen, connMax)

	migStart := time.Now()
	if err := RunMigrations(sqlDB, dbType); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	dbLogf("db: migrations for %s completed in %s", dbType, time.Since(migStart))

	return &Store{bun: createBunDB(sqlDB, dbType), dbType: dbType}, nil
}

func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

// createBunDB wraps sqlDB with the dialect for dbType.
func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

// RunMigrations applies the embedded migrations for dbType that are not yet
// recorded in schema_migrations. Each file runs in its own transaction.
func RunMigrations(db *sql.DB, dbType string) error {
	migrationsPath := "migrations/" + dbType
	entries, err := fs.ReadDir(embeddedMigrations, migrationsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read embedded migrations (%s): %w", migrationsPath, err)
	}

	var ups []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			ups = append(ups, e.Name())
		}
	}
	sort.Strings(ups)

	if err := ensureSchemaMigrationsTable(db, dbType); err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	selectQuery := "SELECT 1 FROM schema_migrations WHERE version = ?"
	insertQuery := "INSERT INTO schema_migrations(version, applied_at) VALUES(?, ?)"
	if dbType == "postgres" {
		selectQuery = "SELECT 1 FROM schema_migrations WHERE version = $1"
		insertQuery = "INSERT INTO schema_migrations(version, applied_at) VALUES($1, $2)"
	}

	for _, fname := range ups {
		version := strings.TrimSuffix(fname, ".up.sql")

		var exists int
		err := db.QueryRow(selectQuery, version).Scan(&exists)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to check migration version %s: %w", version, err)
		}

		file := path.Join(migrationsPath, fname)
		data, err := embeddedMigrations.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %s: %w", version, err)
		}
		for _, stmt := range splitStatements(string(data)) {
			if _, err := tx.Exec(stmt); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("failed to execute migration %s: %w", version, err)
			}
		}
		if _, err := tx.Exec(insertQuery, version, time.Now().UTC()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %s: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", version, err)
		}
		dbLogf("db: applied migration %s", version)
	}
	return nil
}

// splitStatements breaks a migration file into single statements. The mysql
// driver rejects multi-statement Exec unless multiStatements is set on the
// DSN. Migration files keep semicolons out of literals and comments.
func splitStatements(script string) []string {
	var b strings.Builder
	for _, line := range strings.Split(script, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	var out []string
	for _, stmt := range strings.Split(b.String(), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

// ensureSchemaMigrationsTable creates schema_migrations if missing.
func ensureSchemaMigrationsTable(db *sql.DB, dbType string) error {
	// MySQL cannot index TEXT without a prefix length.
	stmt := `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at TIMESTAMP)`
	if dbType == "mysql" {
		stmt = `CREATE TABLE IF NOT EXISTS schema_migrations (version VARCHAR(191) PRIMARY KEY, applied_at TIMESTAMP NULL)`
	}
	_, err := db.Exec(stmt)
	return err
}

// MaintenanceOptions tunes RunDBMaintenance.
type MaintenanceOptions struct {
	// SkipIntegrity skips the sqlite integrity_check.
	SkipIntegrity bool
	// Timeout bounds the whole run. Zero means two minutes.
	Timeout time.Duration
}

// RunDBMaintenance performs engine-specific housekeeping: PRAGMA optimize,
// VACUUM, a WAL checkpoint and an integrity check for sqlite, VACUUM ANALYZE
// for postgres and OPTIMIZE TABLE for every mysql table.
func RunDBMaintenance(ctx context.Context, dbType, dsn string, opts MaintenanceOptions) error {
	driver, err := driverName(dbType)
	if err != nil {
		return err
	}
	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open database for maintenance: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	switch dbType {
	case "sqlite":
		if _, err := sqlDB.ExecContext(ctx, "PRAGMA optimize;"); err != nil {
			dbLogf("db: sqlite optimize failed (ignored): %v", err)
		}
		if _, err := sqlDB.ExecContext(ctx, "VACUUM;"); err != nil {
			return fmt.Errorf("sqlite vacuum failed: %w", err)
		}
		_, _ = sqlDB.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE);")
		if !opts.SkipIntegrity {
			var res string
			if err := sqlDB.QueryRowContext(ctx, "PRAGMA integrity_check;").Scan(&res); err != nil {
				return fmt.Errorf("sqlite integrity_check failed: %w", err)
			}
			if res != "ok" {
				return fmt.Errorf("sqlite integrity_check failed: %s", res)
			}
		}
	case "postgres":
		if _, err := sqlDB.ExecContext(ctx, "VACUUM ANALYZE;"); err != nil {
			return fmt.Errorf("postgres vacuum failed: %w", err)
		}
	case "mysql":
		rows, err := sqlDB.QueryContext(ctx, "SHOW TABLES")
		if err != nil {
			return fmt.Errorf("mysql show tables failed: %w", err)
		}
		var tables []string
		for rows.Next() {
			var table string
			if err := rows.Scan(&table); err != nil {
				_ = rows.Close()
				return fmt.Errorf("mysql read table name failed: %w", err)
			}
			tables = append(tables, table)
		}
		_ = rows.Close()
		var lastErr error
		for _, table := range tables {
			if _, err := sqlDB.ExecContext(ctx, fmt.Sprintf("OPTIMIZE TABLE `%s`", table)); err != nil {
				dbLogf("db: mysql optimize table %s failed: %v", table, err)
				lastErr = err
			}
		}
		if lastErr != nil {
			return fmt.Errorf("mysql optimize encountered errors: %w", lastErr)
		}
	}
	return nil
}
