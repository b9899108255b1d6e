package analytics

import (
	"context"
	"time"

	"tourlytics/internal/records"
	"tourlytics/internal/shared/constants"
	"tourlytics/pkg/cache"
	"tourlytics/pkg/logger"
)

// Service defines the analytics service interface
type Service interface {
	GetOverview() (*Overview, error)
	GetSpendingBreakdown() (*SpendingBreakdown, error)
	GetSegmentation() (*SegmentationReport, error)
	GetCohortAnalysis() (*CohortReport, error)
	GetRegressionAnalysis() (*RegressionReport, error)
	GetNationalities() ([]NationalitySummary, error)
	GetNationalityDetail(nationality string) (*NationalityDetail, error)
	GetTimeSeries() ([]TimeSeriesPoint, error)
	GetDiagnostics() (*DiagnosticsReport, error)

	SetCacheService(cacheService cache.Service)
}

// service implements the Service interface
type service struct {
	provider     *records.Provider
	cacheService cache.Service
	log          *logger.Logger
}

// NewService creates a new analytics service instance
func NewService(provider *records.Provider) Service {
	return &service{provider: provider, log: logger.GetDefault()}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// cached serves a report from Redis when possible, computing and storing it
// otherwise. With no cache wired it just computes.
func cached[T any](s *service, key string, ttl time.Duration, compute func(*records.Dataset) (T, error)) (T, error) {
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
	if err := s.cacheService.GetOrSet(context.Background(), key, ttl, fetch, &result); err != nil {
		return zero, err
	}
	return result, nil
}

func (s *service) GetOverview() (*Overview, error) {
	return cached(s, constants.CACHE_KEY_OVERVIEW, constants.TTL_OVERVIEW, BuildOverview)
}

func (s *service) GetSpendingBreakdown() (*SpendingBreakdown, error) {
	return cached(s, constants.CACHE_KEY_SPENDING_BREAKDOWN, constants.TTL_OVERVIEW, BuildSpendingBreakdown)
}

func (s *service) GetSegmentation() (*SegmentationReport, error) {
	return cached(s, constants.CACHE_KEY_SEGMENTATION, constants.TTL_SEGMENTATION, BuildSegmentation)
}

func (s *service) GetCohortAnalysis() (*CohortReport, error) {
	return cached(s, constants.CACHE_KEY_COHORTS, constants.TTL_COHORTS, BuildCohortReport)
}

func (s *service) GetRegressionAnalysis() (*RegressionReport, error) {
	return cached(s, constants.CACHE_KEY_REGRESSION, constants.TTL_REGRESSION, BuildRegressionReport)
}

func (s *service) GetNationalities() ([]NationalitySummary, error) {
	return cached(s, constants.CACHE_KEY_NATIONALITY_LIST, constants.TTL_NATIONALITY, BuildNationalityList)
}

func (s *service) GetNationalityDetail(nationality string) (*NationalityDetail, error) {
	key := constants.BuildNationalityDetailKey(nationality)
	return cached(s, key, constants.TTL_NATIONALITY_DETAIL, func(ds *records.Dataset) (*NationalityDetail, error) {
		return BuildNationalityDetail(ds, nationality)
	})
}

func (s *service) GetTimeSeries() ([]TimeSeriesPoint, error) {
	return cached(s, constants.CACHE_KEY_TIMESERIES, constants.TTL_COHORTS, BuildTimeSeries)
}

func (s *service) GetDiagnostics() (*DiagnosticsReport, error) {
	return cached(s, constants.CACHE_KEY_DIAGNOSTICS, constants.TTL_DIAGNOSTICS, BuildDiagnostics)
}
