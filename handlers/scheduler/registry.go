package scheduler

import (
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/spaolacci/murmur3"

	"github.com/Meesho/BharatMLStack/task-scheduler/pkg/cache"
	"github.com/Meesho/BharatMLStack/task-scheduler/pkg/metric"
)

// ScheduleRegistry memoises orders keyed by the request content. Orders are
// deterministic, so a cached order is identical to a recomputed one.
type ScheduleRegistry struct {
	Cache  *cache.Cache
	Policy Policy
	mutex  sync.Mutex
}

func (sr *ScheduleRegistry) getOrder(tasks []Task) ([]string, error) {

	key, err := getMurmurHash(tasks, sr.Policy)
	if err != nil {
		return nil, err
	}

	// try to get the order from the cache
	if order, found := sr.lookup(key); found {
		return order, nil
	}

	// acquire a lock to prevent multiple goroutines from
	// computing the same order at the same time
	sr.mutex.Lock()
	defer sr.mutex.Unlock()

	// another goroutine may have stored it while we waited
	if order, found := sr.lookup(key); found {
		return order, nil
	}

	metric.Incr(metric.ScheduleCacheCount, metric.BuildTag(metric.NewTag(metric.TagCacheResult, metric.TagValueCacheMiss)))
	order, err := OrderWithPolicy(tasks, sr.Policy)
	if err != nil {
		return nil, err
	}
	sr.Cache.SetWithTTL(key, order)
	return copyOrder(order), nil
}

func (sr *ScheduleRegistry) lookup(key string) ([]string, bool) {
	val, found := sr.Cache.Get(key)
	if !found {
		return nil, false
	}
	metric.Incr(metric.ScheduleCacheCount, metric.BuildTag(metric.NewTag(metric.TagCacheResult, metric.TagValueCacheHit)))
	return copyOrder(val.([]string)), true
}

func copyOrder(order []string) []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// getMurmurHash keys on both the tasks and the policy, since the same tasks
// may be valid under one policy and rejected under another.
func getMurmurHash(tasks []Task, policy Policy) (string, error) {

	payload, err := json.Marshal(struct {
		Tasks  []Task `json:"tasks"`
		Policy Policy `json:"policy"`
	}{Tasks: tasks, Policy: policy})
	if err != nil {
		return "", err
	}

	h128 := murmur3.New128()
	h128.Write(payload)
	return hex.EncodeToString(h128.Sum(nil)), nil
}
