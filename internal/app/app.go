package app

import (
	"context"

	"hrms-backend/internal/config"
	"hrms-backend/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers every module's routes on
// the router. The store and cache handles are constructed once here and
// passed down, never reached for globally. The loaded configuration is
// returned so the caller can finish the server setup from the same source.
func BuildApp(ctx context.Context, router *gin.Engine) (*config.Config, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	_, db, err := connection.ConnectMongoWithRetry(ctx, cfg.MongoURI(), cfg.MongoDatabase(), 5)
	if err != nil {
		return nil, err
	}
	zap.L().Info("mongo connection established", zap.String("database", cfg.MongoDatabase()))

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return nil, err
	}
	zap.L().Info("redis connection established", zap.String("addr", cfg.RedisAddr))

	registerModules(router, cfg, db, rdb)
	return cfg, nil
}
