package bootstrap

import (
	"context"
	"log"
	"time"

	"sql-workbench-be/internal/config"
	"sql-workbench-be/internal/controller"
	"sql-workbench-be/internal/pkg/logger"
	"sql-workbench-be/internal/repository/unitofwork"
	"sql-workbench-be/internal/service"
	"sql-workbench-be/pkg/cache"
	"sql-workbench-be/pkg/database"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	QueryController  controller.IQueryController
	SchemaController controller.ISchemaController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	executor := database.NewExecutor(db)

	// 2. Result Cache
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	var resultCache cache.Gateway
	if cfg.Cache.Backend == "memory" {
		resultCache = cache.NewMemoryGateway(ttl)
		log.Printf("[INFO] Using query result cache: MEMORY (ttl %s)", ttl)
	} else {
		opt, err := redis.ParseURL(cfg.Cache.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.Cache.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			// the gateway treats an unreachable Redis as always-miss
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		resultCache = cache.NewRedisGateway(rdb, ttl, sysLogger)
		log.Printf("[INFO] Using query result cache: REDIS (ttl %s)", ttl)
	}

	// 3. Services
	queryService := service.NewQueryService(uowFactory, resultCache, executor, sysLogger)
	schemaService := service.NewSchemaService(uowFactory, executor)

	// 4. Controllers
	queryController := controller.NewQueryController(queryService)
	schemaController := controller.NewSchemaController(schemaService)

	return &Container{
		QueryController:  queryController,
		SchemaController: schemaController,
		Logger:           sysLogger,
	}
}
