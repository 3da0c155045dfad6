package metric

import (
	"net"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/rs/zerolog/log"

	"github.com/Meesho/BharatMLStack/task-scheduler/pkg/config"
)

const (
	ScheduleRequestCount   = "schedule_request_count"
	ScheduleRequestLatency = "schedule_request_latency"
	ScheduleCacheCount     = "schedule_cache_count"
	ScheduleTaskCount      = "schedule_task_count"
)

var (
	// it is safe to use one client from multiple goroutines simultaneously
	statsDClient statsd.ClientInterface = getDefaultClient()
	samplingRate                        = 1.0
	appName                             = ""
	once                                sync.Once
)

// Init points the client at telegraf. The env and service tags are attached
// to the client here, so callers only pass request-specific tags. Until Init
// is called metrics go to a no-op client.
func Init(cfg *config.SchedulerConfig) {
	once.Do(func() {
		samplingRate = cfg.Metrics.SamplingRate
		appName = cfg.ApplicationName
		address := net.JoinHostPort(cfg.Metrics.TelegrafHost, cfg.Metrics.TelegrafPort)
		client, err := statsd.New(address, statsd.WithTags([]string{
			TagAsString(TagEnv, cfg.ApplicationEnv),
			TagAsString(TagService, appName),
		}))
		if err != nil {
			log.Error().AnErr("StatsD client initialization failed", err).Msg("metrics disabled")
			return
		}
		statsDClient = client
		log.Info().Msgf("Metrics client initialized with telegraf address - %s and sampling rate - %f",
			address, samplingRate)
	})
}

func getDefaultClient() statsd.ClientInterface {
	return &statsd.NoOpClient{}
}

// Timing sends timing information
func Timing(name string, value time.Duration, tags []string) {
	if err := statsDClient.Timing(name, value, tags, samplingRate); err != nil {
		log.Warn().AnErr("Error occurred while doing statsd timing", err).Send()
	}
}

// Count increases metric counter by value
func Count(name string, value int64, tags []string) {
	if err := statsDClient.Count(name, value, tags, samplingRate); err != nil {
		log.Warn().AnErr("Error occurred while doing statsd count", err).Send()
	}
}

func Incr(name string, tags []string) {
	Count(name, 1, tags)
}
