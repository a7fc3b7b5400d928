package repository

import (
	"context"
	"fmt"
	"time"

	"cruises/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PoolConfig tunes the database/sql pool behind gorm. Zero values keep the driver defaults.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
}

type Repository struct {
	db *gorm.DB
}

// New connects to PostgreSQL.
func New(dsn string, pool PoolConfig) (*Repository, error) {
	return Open(postgres.Open(dsn), pool)
}

// Open builds a Repository on any gorm dialector.
func Open(dialector gorm.Dialector, pool PoolConfig) (*Repository, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(pool.SlowThreshold).LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	return &Repository{db: db}, nil
}

// Migrate creates or updates the ship and cruise tables, ship first.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&ds.Ship{}); err != nil {
		return fmt.Errorf("migrate ship: %w", err)
	}
	if err := r.db.WithContext(ctx).AutoMigrate(&ds.Cruise{}); err != nil {
		return fmt.Errorf("migrate cruise: %w", err)
	}
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return storeErr(err)
	}
	return storeErr(sqlDB.PingContext(ctx))
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (r *Repository) DB() *gorm.DB {
	return r.db
}
