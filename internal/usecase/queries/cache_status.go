package queries

import "context"

type cacheStatusKey struct{}

// WithCacheStatus returns a context in which a caching read store can report
// whether it answered from cache.
func WithCacheStatus(ctx context.Context) (context.Context, *bool) {
	hit := new(bool)
	return context.WithValue(ctx, cacheStatusKey{}, hit), hit
}

func ReportCacheHit(ctx context.Context, hit bool) {
	if p, ok := ctx.Value(cacheStatusKey{}).(*bool); ok {
		*p = hit
	}
}
