package connection

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	connectTimeout = 10 * time.Second
	retryBackoff   = 5 * time.Second
)

// ConnectMongoWithRetry establishes a MongoDB client, verifies connectivity
// with a ping, and returns the client plus the selected database.
func ConnectMongoWithRetry(ctx context.Context, uri, dbName string, maxRetries int) (*mongo.Client, *mongo.Database, error) {
	var lastErr error

	for i := 1; i <= maxRetries; i++ {
		connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)

		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
		if err != nil {
			cancel()
			lastErr = err
			zap.L().Warn("mongo connect failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
			time.Sleep(retryBackoff)
			continue
		}

		if err := client.Ping(connectCtx, nil); err != nil {
			_ = client.Disconnect(connectCtx)
			cancel()
			lastErr = err
			zap.L().Warn("mongo ping failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
			time.Sleep(retryBackoff)
			continue
		}

		cancel()
		zap.L().Info("mongo connected", zap.String("database", dbName))
		return client, client.Database(dbName), nil
	}

	return nil, nil, fmt.Errorf("mongo connection failed after %d retries: %w", maxRetries, lastErr)
}

func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err == nil {
			zap.L().Info("redis connected", zap.String("addr", addr))
			return rdb, nil
		}

		lastErr = err
		zap.L().Warn("redis ping failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
		time.Sleep(retryBackoff)
	}

	return nil, fmt.Errorf("redis connection failed after %d retries: %w", maxRetries, lastErr)
}

// NewKafkaWriter builds a writer for the outbox relay. kafka-go dials lazily,
// so no connectivity check happens here.
func NewKafkaWriter(broker string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:         kafkago.TCP(broker),
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireOne,
	}
}
