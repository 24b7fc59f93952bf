package application

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/kepl/map2-server/internal/geodata"
	"github.com/kepl/map2-server/internal/infrastructure/geocode"
	"github.com/kepl/map2-server/pkg/helpers"
)

const geocodeCacheTTL = 24 * time.Hour

// GeocodeProvider is the external address resolver. *geocode.NaverClient
// implements it.
type GeocodeProvider interface {
	Configured() bool
	Geocode(ctx context.Context, query string) ([]geocode.Result, error)
}

// GeocodingService proxies address lookups to the configured provider with a
// Redis cache in front, and falls back to the built-in place table when the
// provider is unconfigured, failing, or comes back empty.
type GeocodingService struct {
	Provider GeocodeProvider
	Redis    *redis.Client
	Logger   *logrus.Logger
}

func NewGeocodingService(provider GeocodeProvider, rdb *redis.Client, logger *logrus.Logger) *GeocodingService {
	return &GeocodingService{Provider: provider, Redis: rdb, Logger: logger}
}

// GeocodeResponse tells clients which path produced the results.
type GeocodeResponse struct {
	Query    string           `json:"query"`
	Source   string           `json:"source"` // "naver", "cache" or "fallback"
	Results  []geocode.Result `json:"results"`
	Fallback bool             `json:"fallback"`
}

func fallbackResults(query string) []geocode.Result {
	matches := geodata.Search(query)
	out := make([]geocode.Result, 0, len(matches))
	for _, m := range matches {
		out = append(out, geocode.Result{
			Name:      m.Name,
			Address:   m.Address,
			Latitude:  m.Latitude,
			Longitude: m.Longitude,
		})
	}
	return out
}

func (s *GeocodingService) Lookup(ctx context.Context, query string) (*GeocodeResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, validationf("query is required")
	}

	cacheKey := "geocode:" + strings.ToLower(query)
	if s.Redis != nil {
		var cached []geocode.Result
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, cacheKey, &cached); err != nil {
			s.Logger.WithError(err).Warn("geocode cache read failed")
		} else if ok {
			return &GeocodeResponse{Query: query, Source: "cache", Results: cached}, nil
		}
	}

	if s.Provider != nil && s.Provider.Configured() {
		results, err := s.Provider.Geocode(ctx, query)
		switch {
		case err != nil:
			s.Logger.WithError(err).WithField("query", query).Warn("geocode provider failed, using fallback")
		case len(results) > 0:
			if s.Redis != nil {
				if err := helpers.RedisSetJSON(ctx, s.Redis, cacheKey, results, geocodeCacheTTL); err != nil {
					s.Logger.WithError(err).Warn("geocode cache write failed")
				}
			}
			return &GeocodeResponse{Query: query, Source: "naver", Results: results}, nil
		}
	}

	return &GeocodeResponse{
		Query:    query,
		Source:   "fallback",
		Results:  fallbackResults(query),
		Fallback: true,
	}, nil
}
