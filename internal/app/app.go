package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"ferremas-storefront/internal/backend"
	"ferremas-storefront/internal/cache"
	"ferremas-storefront/internal/messaging/kafka/producer"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		return fmt.Errorf("BACKEND_URL is not configured")
	}
	backendClient := backend.NewClient(backendURL)

	// Redis and kafka are optional: without them the storefront runs
	// uncached and without event publishing.
	refCache := cache.NewNop()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisClient, err := connectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
		refCache = cache.NewRedis(redisClient)
	}

	publisher := producer.NewNopPublisher()
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		kafkaWriter, err := connectKafkaWithRetry(broker, 5)
		if err != nil {
			return err
		}
		publisher = producer.NewPublisher(kafkaWriter)
	}

	// 2. Register Modules & Routes
	registerModules(router, backendClient, refCache, publisher)

	return nil
}
