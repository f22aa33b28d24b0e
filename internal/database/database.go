package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"lfg-backend/internal/database/models"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const pingTimeout = 5 * time.Second

// Options tunes the connection pool. Zero values fall back to the defaults below.
type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SkipMigrate     bool
}

func (o *Options) withDefaults() Options {
	out := Options{
		LogLevel:        logger.Error,
		MaxOpenConns:    20,
		MaxIdleConns:    10,
		ConnMaxLifetime: 30 * time.Minute,
	}
	if o == nil {
		return out
	}
	if o.LogLevel != 0 {
		out.LogLevel = o.LogLevel
	}
	if o.MaxOpenConns != 0 {
		out.MaxOpenConns = o.MaxOpenConns
	}
	if o.MaxIdleConns != 0 {
		out.MaxIdleConns = o.MaxIdleConns
	}
	if o.ConnMaxLifetime != 0 {
		out.ConnMaxLifetime = o.ConnMaxLifetime
	}
	out.SkipMigrate = o.SkipMigrate
	return out
}

// Initialize connects to Postgres through pgx, checks the connection and
// migrates the group, membership, player and character tables.
// Unique violations surface as gorm.ErrDuplicatedKey.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	o := opts.withDefaults()

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(o.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Default.LogMode(o.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	if !o.SkipMigrate {
		if err := Migrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}
	return db, nil
}

// Migrate creates or updates the schema. Players come first since the other
// tables reference them.
func Migrate(db *gorm.DB) error {
	// gen_random_uuid() is the BaseModel default. It is built in from Postgres 13,
	// so a role without CREATE EXTENSION rights is not an error.
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error
	if err := db.AutoMigrate(
		&models.Player{},
		&models.Character{},
		&models.Group{},
		&models.GroupMember{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
