package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis giữ giỏ hàng và bộ đếm rate-limit. Kết nối lúc khởi động,
// dùng chung cho mọi request.
var Redis *redis.Client

// ConnectRedis khởi tạo kết nối Redis từ biến môi trường.
func ConnectRedis() error {
	redisHost := os.Getenv("REDIS_HOST")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	if redisHost == "" {
		redisHost = "localhost:6379"
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:         redisHost,
		Password:     redisPassword,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := Redis.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("không kết nối được Redis: %v", err)
	}

	log.Println("✅ Redis đã kết nối")
	return nil
}

// CloseRedis đóng kết nối Redis khi tắt server.
func CloseRedis() error {
	if Redis != nil {
		return Redis.Close()
	}
	return nil
}
