package repository

// CacheRepository stores rendered chat responses keyed by normalized query.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
