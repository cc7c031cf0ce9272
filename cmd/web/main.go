package main

import (
	"context"
	"log"
	"os"
	"strings"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/NixonSiagian/studio-archive-craft/internal/config"
	"github.com/NixonSiagian/studio-archive-craft/internal/events"
	apphttp "github.com/NixonSiagian/studio-archive-craft/internal/http"
	cartmod "github.com/NixonSiagian/studio-archive-craft/internal/modules/cart"
	"github.com/NixonSiagian/studio-archive-craft/internal/modules/catalog"
	"github.com/NixonSiagian/studio-archive-craft/internal/modules/orders"
	"github.com/NixonSiagian/studio-archive-craft/internal/storage"
	appredis "github.com/NixonSiagian/studio-archive-craft/pkg/redis"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load()
	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN environment variable is required")
	}
	if cfg.SecretKey == "" {
		log.Fatal("SECRET_KEY environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ctx := context.Background()

	// Redis is optional: without it the catalog just reads the database
	// every time.
	var catalogCache catalog.Cache
	if cfg.RedisAddr != "" {
		rdb := appredis.NewRedisDB(appredis.Config{Addr: cfg.RedisAddr})
		if err := rdb.Start(ctx); err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer rdb.Stop(ctx)
		catalogCache = catalog.NewRedisCache(rdb, cfg.CatalogTTL)
		logger.Info("redis connected", "addr", cfg.RedisAddr)
	}

	catalogRepo := catalog.NewRepo(db)
	catalogSvc := catalog.NewService(catalogRepo, catalogCache, logger)

	// Kafka is optional too; a nil publisher drops events.
	var publisher *events.KafkaPublisher
	if cfg.KafkaBrokers != "" {
		publisher, err = events.NewKafkaPublisher(strings.Split(cfg.KafkaBrokers, ","), cfg.OrderTopic, logger)
		if err != nil {
			log.Fatalf("failed to connect to kafka: %v", err)
		}
		defer publisher.Close()
		logger.Info("kafka producer ready", "topic", cfg.OrderTopic)
	}

	st, err := storage.FromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}
	logger.Info("storage ready", "driver", st.Driver)

	cartSvc := cartmod.NewService(cartmod.NewRepo(db), catalogSvc)
	ordersSvc := orders.NewService(db, cartSvc, publisher, logger, cfg.ShippingCents)

	r := apphttp.NewRouter(apphttp.Deps{
		Cfg:     cfg,
		Log:     logger,
		DB:      db,
		Catalog: catalogSvc,
		Storage: st.Storage,
		Orders:  ordersSvc,
	})

	logger.Info("listening", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
