package scheduler

import (
	"sync"

	"github.com/Meesho/BharatMLStack/task-scheduler/pkg/cache"
	"github.com/Meesho/BharatMLStack/task-scheduler/pkg/config"
	"github.com/Meesho/BharatMLStack/task-scheduler/pkg/logger"
	"github.com/Meesho/BharatMLStack/task-scheduler/pkg/metric"
)

var (
	instance *Scheduler
	initOnce sync.Once
)

// Init loads configuration from the environment and builds the shared
// scheduler along with its logger and metrics client.
func Init() {
	config.InitConfig()
	logger.InitLogger(config.AppConfig)
	cfg, err := config.GetSchedulerConfig(config.AppConfig)
	if err != nil {
		logger.Panic("Error reading scheduler config!", err)
	}
	metric.Init(cfg)
	InitScheduler(cfg)
}

func InitScheduler(cfg *config.SchedulerConfig) *Scheduler {
	initOnce.Do(func() {
		policy, err := ParsePolicy(cfg.Scheduler)
		if err != nil {
			logger.Panic("Error initializing scheduler!", err)
		}
		instance = NewScheduler(cache.InitRistrettoCache(cfg.ScheduleCache), policy)
		logger.Info("Scheduler initialized")
	})
	return instance
}

func NewScheduler(c *cache.Cache, policy Policy) *Scheduler {
	return &Scheduler{Registry: &ScheduleRegistry{Cache: c, Policy: policy}}
}

// Instance returns the shared scheduler. InitScheduler must be called first.
func Instance() *Scheduler {
	if instance == nil {
		logger.Panic("Scheduler not initialized, call InitScheduler first", nil)
	}
	return instance
}
