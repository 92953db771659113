package content

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/TechMintOfficial/emotion-verse-recommend/internal/emotion"
)

// newProviderBreaker builds the circuit breaker guarding one provider.
// A tripped breaker short-circuits straight to the fallback catalog until
// the provider has had time to recover.
func newProviderBreaker(name string) *gobreaker.CircuitBreaker[[]Item] {
	settings := gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		// Absent credentials are a normal state, not a provider fault,
		// and must not count toward tripping.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNoCredentials)
		},
	}
	return gobreaker.NewCircuitBreaker[[]Item](settings)
}

type guardedProvider struct {
	provider Provider
	breaker  *gobreaker.CircuitBreaker[[]Item]
}

// Resolver fans an emotion out to the three content providers and
// aggregates their results. Each provider is independently fault-isolated:
// a failure in one degrades only that kind, to its fallback catalog.
type Resolver struct {
	providers []guardedProvider
	fallback  *Catalog
	logger    zerolog.Logger
}

func NewResolver(providers []Provider, fallback *Catalog, logger zerolog.Logger) *Resolver {
	guarded := make([]guardedProvider, 0, len(providers))
	for _, p := range providers {
		guarded = append(guarded, guardedProvider{
			provider: p,
			breaker:  newProviderBreaker(string(p.Kind())),
		})
	}
	return &Resolver{
		providers: guarded,
		fallback:  fallback,
		logger:    logger.With().Str("component", "resolver").Logger(),
	}
}

// Resolve queries all providers concurrently and returns once every one
// has settled, by success or by fallback. Idempotent and side-effect-free
// beyond the network requests; safe to re-invoke on every emotion change.
func (r *Resolver) Resolve(ctx context.Context, label emotion.Label) Recommendations {
	recs := Recommendations{
		Movies: []Item{},
		Songs:  []Item{},
		Books:  []Item{},
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, gp := range r.providers {
		wg.Add(1)
		go func(gp guardedProvider) {
			defer wg.Done()
			items := r.resolveKind(ctx, gp, label)

			mu.Lock()
			defer mu.Unlock()
			switch gp.provider.Kind() {
			case KindMovie:
				recs.Movies = items
			case KindSong:
				recs.Songs = items
			case KindBook:
				recs.Books = items
			}
		}(gp)
	}
	wg.Wait()

	return recs
}

func (r *Resolver) resolveKind(ctx context.Context, gp guardedProvider, label emotion.Label) []Item {
	items, err := gp.breaker.Execute(func() ([]Item, error) {
		return gp.provider.Search(ctx, label)
	})
	if err == nil {
		if len(items) > pageSize {
			items = items[:pageSize]
		}
		return items
	}

	kind := gp.provider.Kind()
	switch {
	case errors.Is(err, ErrNoCredentials):
		r.logger.Debug().Str("kind", string(kind)).Msg("Provider credentials absent, using fallback catalog")
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		r.logger.Debug().Str("kind", string(kind)).Msg("Provider breaker open, using fallback catalog")
	default:
		r.logger.Warn().Err(err).Str("kind", string(kind)).Msg("Provider failed, using fallback catalog")
	}

	fallback := r.fallback.Items(kind, label)
	if len(fallback) > pageSize {
		fallback = fallback[:pageSize]
	}
	return fallback
}
