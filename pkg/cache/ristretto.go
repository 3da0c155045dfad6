package cache

import (
	"fmt"

	"github.com/Meesho/BharatMLStack/task-scheduler/pkg/logger"
)

func InitRistrettoCache(config RistrettoConfig) *Cache {
	cache, err := NewCache(config.Size, config.Ttl)
	if err != nil {
		logger.Panic("Error initializing ristretto cache!", err)
	}
	logger.Info(fmt.Sprintf("Ristretto cache initialized with size %d and ttl %ds", config.Size, config.Ttl))
	return cache
}
