package main

// go run ./cmd/cruises

import (
	"context"
	"time"

	"cruises/internal/app/config"
	"cruises/internal/app/dsn"
	"cruises/internal/app/handler"
	"cruises/internal/app/observability"
	"cruises/internal/app/pkg"
	"cruises/internal/app/repository"
	"cruises/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	_ "cruises/docs" // Swagger docs
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}
	observability.InitLogger(conf.LogLevel, conf.LogJSON)
	gin.SetMode(conf.GinMode)

	rep, err := repository.New(dsn.FromEnv(), repository.PoolConfig{
		MaxOpenConns:    conf.DBMaxOpenConns,
		MaxIdleConns:    conf.DBMaxIdleConns,
		ConnMaxLifetime: conf.DBConnMaxLifetime,
		SlowThreshold:   conf.DBSlowThreshold,
	})
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}
	defer rep.Close()

	var images storage.ImageStore
	if conf.MinioEndpoint != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		store, err := storage.NewMinioStore(ctx, storage.MinioConfig{
			Endpoint:  conf.MinioEndpoint,
			AccessKey: conf.MinioAccessKey,
			SecretKey: conf.MinioSecretKey,
			Bucket:    conf.MinioBucket,
			UseSSL:    conf.MinioUseSSL,
		})
		cancel()
		if err != nil {
			logrus.Warnf("image storage disabled: %v", err)
		} else {
			images = store
		}
	} else {
		logrus.Warn("MINIO_ENDPOINT not set, image uploads disabled")
	}

	hand := handler.NewHandler(rep, images)
	application := pkg.NewApp(conf, pkg.NewRouter(conf), hand)
	if err := application.RunApp(); err != nil {
		logrus.Errorf("server stopped: %v", err)
	}
}
