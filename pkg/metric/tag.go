package metric

const (
	TagEnv         = "env"
	TagService     = "service"
	TagOutcome     = "outcome"
	TagCacheResult = "cache_result"

	TagValueCacheHit  = "hit"
	TagValueCacheMiss = "miss"
)

type Tag struct {
	Name  string
	Value string
}

func NewTag(name, value string) Tag {
	return Tag{
		Name:  name,
		Value: value,
	}
}

// BuildTag builds statsd tags from the given name/value pairs
func BuildTag(tags ...Tag) []string {
	allTags := make([]string, 0, len(tags))
	for _, tag := range tags {
		allTags = append(allTags, TagAsString(tag.Name, tag.Value))
	}
	return allTags
}

func TagAsString(name string, value string) string {
	return name + ":" + value
}
