package config

import (
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"

	"github.com/Meesho/BharatMLStack/task-scheduler/pkg/cache"
	"github.com/Meesho/BharatMLStack/task-scheduler/pkg/logger"
)

const (
	EnvDelimiter    string = "__"
	ConfigDelimiter string = "."
)

var (
	// Can be concurrently accessed if not being watched
	AppConfig *koanf.Koanf
)

type PolicyConfig struct {
	UnknownDependencies string `koanf:"unknownDependencies"`
	DuplicateTitles     string `koanf:"duplicateTitles"`
}

type MetricsConfig struct {
	TelegrafHost string  `koanf:"telegrafHost"`
	TelegrafPort string  `koanf:"telegrafPort"`
	SamplingRate float64 `koanf:"samplingRate"`
}

type SchedulerConfig struct {
	ApplicationName     string                `koanf:"applicationName"`
	ApplicationLogLevel string                `koanf:"applicationLogLevel"`
	ApplicationEnv      string                `koanf:"applicationEnv"`
	ScheduleCache       cache.RistrettoConfig `koanf:"scheduleCache"`
	Scheduler           PolicyConfig          `koanf:"scheduler"`
	Metrics             MetricsConfig         `koanf:"metrics"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"applicationName":               "task-scheduler",
		"applicationLogLevel":           "INFO",
		"applicationEnv":                "local",
		"scheduleCache.ttlSec":          300,
		"scheduleCache.cacheSize":       1000,
		"scheduler.unknownDependencies": "implicit",
		"scheduler.duplicateTitles":     "merge",
		"metrics.telegrafHost":          "localhost",
		"metrics.telegrafPort":          "8125",
		"metrics.samplingRate":          1.0,
	}
}

// NewKoanf loads the defaults and overrides them with environment variables.
// Nested keys use "__" in the variable name, e.g. scheduleCache__ttlSec.
func NewKoanf() (*koanf.Koanf, error) {
	k := koanf.New(ConfigDelimiter)
	if err := k.Load(confmap.Provider(defaults(), ConfigDelimiter), nil); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("", EnvDelimiter, nil), nil); err != nil {
		return nil, err
	}
	return k, nil
}

func InitConfig() {
	k, err := NewKoanf()
	if err != nil {
		logger.Panic("Error occurred while loading environment variables!", err)
	}
	AppConfig = k
}

func GetSchedulerConfig(k *koanf.Koanf) (*SchedulerConfig, error) {
	var cfg SchedulerConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
