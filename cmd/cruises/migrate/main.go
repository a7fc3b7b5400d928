package main

import (
	"context"

	"cruises/internal/app/config"
	"cruises/internal/app/dsn"
	"cruises/internal/app/repository"

	"github.com/sirupsen/logrus"
)

func main() {
	_, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	rep, err := repository.New(dsn.FromEnv(), repository.PoolConfig{})
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	// ship before cruise: cruise.ship_id references ship.id
	err = rep.Migrate(context.Background())
	rep.Close()
	if err != nil {
		logrus.Fatalf("error migrating: %v", err)
	}

	logrus.Info("Database migration completed")
}
