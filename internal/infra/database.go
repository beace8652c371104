package infra

import (
	"fmt"

	"osadash/internal/config"
	"osadash/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the backend selected by DB_BACKEND (postgres over pgx, or
// a local sqlite file), runs AutoMigrate for the three tables, then applies
// the idempotent index patches that AutoMigrate does not cover.
//
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey on both backends; the importer relies on that for its
// dedup race backstop.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBBackend {
	case "sqlite":
		dial = sqlite.Open(cfg.SQLitePath)
	case "postgres", "":
		dial = postgres.Open(cfg.PostgresDSN())
	default:
		return nil, fmt.Errorf("DB_BACKEND desconocido: %q", cfg.DBBackend)
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Medicion{},
		&model.Store{},
		&model.Usuario{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := ensureIndexes(db); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	return db, nil
}

// Close releases the connection pool; call at process shutdown.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ensureIndexes applies idempotent DDL for the query-path and dedup indexes.
// CREATE INDEX IF NOT EXISTS is understood by both postgres and sqlite, so
// re-running on an already-patched schema is a no-op by construction rather
// than by swallowed errors.
//
// The unique index on (id_conjunto, fecha_hora_medicion) backs the importer's
// dedup policy under concurrent uploads. Rows without a measurement timestamp
// are deduplicated by the application-level existence check alone: NULLs are
// distinct in both backends, so the index cannot cover that case.
func ensureIndexes(db *gorm.DB) error {
	patches := []string{
		`CREATE INDEX IF NOT EXISTS ix_measurements_fecha ON measurements (fecha)`,
		`CREATE INDEX IF NOT EXISTS ix_measurements_pv ON measurements (pv)`,
		`CREATE INDEX IF NOT EXISTS ix_measurements_codigo ON measurements (codigo_barra)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_measurements_conjunto_medicion
		    ON measurements (id_conjunto, fecha_hora_medicion)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_stores_name_lower ON stores (lower(name))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_users_username ON users (username)`,
	}
	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
