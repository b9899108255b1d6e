package vendors

import (
	"context"
	"time"

	"tourlytics/internal/records"
	"tourlytics/internal/shared/constants"
	"tourlytics/pkg/cache"
	"tourlytics/pkg/logger"
)

// Service defines the vendor analytics service interface
type Service interface {
	GetAccommodationInsights() (*AccommodationReport, error)
	GetAttractionInsights() (*AttractionReport, error)
	GetFoodInsights() (*FoodReport, error)
	GetShoppingInsights() (*ShoppingReport, error)
	GetTransportInsights() (*TransportReport, error)

	SetCacheService(cacheService cache.Service)
}

// service implements the Service interface
type service struct {
	provider     *records.Provider
	cacheService cache.Service
	log          *logger.Logger
}

// NewService creates a new vendor analytics service instance
func NewService(provider *records.Provider) Service {
	return &service{provider: provider, log: logger.GetDefault()}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func cached[T any](s *service, key string, compute func(*records.Dataset) (T, error)) (T, error) {
	var zero T

	fetch := func() (interface{}, error) {
		ds, err := s.provider.Dataset()
		if err != nil {
			return nil, err
		}
		start := time.Now()
		result, err := compute(ds)
		if err != nil {
			return nil, err
		}
		s.log.LogAnalyticsComputed(key, time.Since(start))
		return result, nil
	}

	if s.cacheService == nil {
		result, err := fetch()
		if err != nil {
			return zero, err
		}
		return result.(T), nil
	}

	var result T
	if err := s.cacheService.GetOrSet(context.Background(), key, constants.TTL_VENDOR, fetch, &result); err != nil {
		return zero, err
	}
	return result, nil
}

func (s *service) GetAccommodationInsights() (*AccommodationReport, error) {
	return cached(s, constants.CACHE_KEY_VENDOR_ACCOMMODATION, BuildAccommodationReport)
}

func (s *service) GetAttractionInsights() (*AttractionReport, error) {
	return cached(s, constants.CACHE_KEY_VENDOR_ATTRACTIONS, BuildAttractionReport)
}

func (s *service) GetFoodInsights() (*FoodReport, error) {
	return cached(s, constants.CACHE_KEY_VENDOR_FOOD, BuildFoodReport)
}

func (s *service) GetShoppingInsights() (*ShoppingReport, error) {
	return cached(s, constants.CACHE_KEY_VENDOR_SHOPPING, BuildShoppingReport)
}

func (s *service) GetTransportInsights() (*TransportReport, error) {
	return cached(s, constants.CACHE_KEY_VENDOR_TRANSPORT, BuildTransportReport)
}
