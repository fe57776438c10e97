package countries

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/directory/internal/cache"
	"github.com/joefazee/directory/internal/logger"
)

const nameKeyPrefix = "country:name:"

// NameResolver maps country ids to display names for the persons module,
// caching names that resolve.
type NameResolver struct {
	service Service
	cache   cache.Cache[string]
	ttl     time.Duration
	logger  logger.Logger
}

// NewNameResolver creates a resolver. A nil cache disables caching.
func NewNameResolver(service Service, c cache.Cache[string], ttl time.Duration, log logger.Logger) *NameResolver {
	return &NameResolver{
		service: service,
		cache:   c,
		ttl:     ttl,
		logger:  logger.OrNull(log),
	}
}

func nameKey(id uuid.UUID) string {
	return nameKeyPrefix + id.String()
}

// CountryNames returns the names of the given ids that exist.
// Ids that do not resolve are absent from the result.
func (r *NameResolver) CountryNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	ids = uniqueIDs(ids)
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	missing := ids
	if r.cache != nil {
		keys := make([]string, len(ids))
		for i, id := range ids {
			keys[i] = nameKey(id)
		}
		values, errs := r.cache.MGet(ctx, keys...)
		missing = nil
		for i, id := range ids {
			if errs[i] == nil {
				names[id] = values[i]
				continue
			}
			if !errors.Is(errs[i], cache.ErrCacheMiss) {
				r.logger.Debug("country name cache read failed", map[string]interface{}{
					"key":   keys[i],
					"error": errs[i].Error(),
				})
			}
			missing = append(missing, id)
		}
	}

	fresh := make(map[string]string, len(missing))
	for _, id := range missing {
		country, err := r.service.GetCountryByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if country == nil {
			continue
		}
		names[id] = country.Name
		fresh[nameKey(id)] = country.Name
	}

	if r.cache != nil && len(fresh) > 0 {
		if err := r.cache.MSet(ctx, fresh, r.ttl); err != nil {
			r.logger.Error(err, map[string]interface{}{"operation": "cache country names"})
		}
	}
	return names, nil
}

// FindCountryIDs returns the ids of countries whose name contains fragment,
// ignoring case.
func (r *NameResolver) FindCountryIDs(ctx context.Context, fragment string) ([]uuid.UUID, error) {
	all, err := r.service.GetAllCountries(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(fragment)
	var ids []uuid.UUID
	for _, country := range all {
		if strings.Contains(strings.ToLower(country.Name), needle) {
			ids = append(ids, country.ID)
		}
	}
	return ids, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
