package constants

import (
	"fmt"
	"strings"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values.
// Pattern: tourlytics:{module}:{operation}:{identifier?}

// ================== CACHE TTL DURATIONS ==================

// The dataset is immutable for a process lifetime, so TTLs mostly bound
// memory rather than staleness.
const (
	TTL_REPORT_LONG   = 6 * time.Hour // heavy computations (clustering, regression)
	TTL_REPORT_MEDIUM = 1 * time.Hour // standard reports
	TTL_REPORT_SHORT  = 15 * time.Minute
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "tourlytics"
)

// ================== ANALYTICS MODULE ==================

const (
	CACHE_KEY_OVERVIEW           = CACHE_PREFIX + ":analytics:overview"
	CACHE_KEY_SPENDING_BREAKDOWN = CACHE_PREFIX + ":analytics:spending_breakdown"
	CACHE_KEY_SEGMENTATION       = CACHE_PREFIX + ":analytics:segmentation"
	CACHE_KEY_COHORTS            = CACHE_PREFIX + ":analytics:cohorts"
	CACHE_KEY_REGRESSION         = CACHE_PREFIX + ":analytics:regression"
	CACHE_KEY_TIMESERIES         = CACHE_PREFIX + ":analytics:timeseries"
	CACHE_KEY_DIAGNOSTICS        = CACHE_PREFIX + ":analytics:diagnostics"
	CACHE_KEY_NATIONALITY_LIST   = CACHE_PREFIX + ":analytics:nationality:list"
	CACHE_KEY_NATIONALITY_DETAIL = CACHE_PREFIX + ":analytics:nationality:detail:" // + lowercased name
)

const (
	TTL_OVERVIEW           = TTL_REPORT_MEDIUM
	TTL_SEGMENTATION       = TTL_REPORT_LONG
	TTL_COHORTS            = TTL_REPORT_MEDIUM
	TTL_REGRESSION         = TTL_REPORT_LONG
	TTL_NATIONALITY        = TTL_REPORT_MEDIUM
	TTL_NATIONALITY_DETAIL = TTL_REPORT_SHORT // one key per nationality, keep the set small
	TTL_DIAGNOSTICS        = TTL_REPORT_MEDIUM
)

// ================== VENDOR MODULE ==================

const (
	CACHE_KEY_VENDOR_ACCOMMODATION = CACHE_PREFIX + ":vendors:accommodation"
	CACHE_KEY_VENDOR_ATTRACTIONS   = CACHE_PREFIX + ":vendors:attractions"
	CACHE_KEY_VENDOR_FOOD          = CACHE_PREFIX + ":vendors:food"
	CACHE_KEY_VENDOR_SHOPPING      = CACHE_PREFIX + ":vendors:shopping"
	CACHE_KEY_VENDOR_TRANSPORT     = CACHE_PREFIX + ":vendors:transport"
)

const (
	TTL_VENDOR = TTL_REPORT_MEDIUM
)

// ================== KEY BUILDERS ==================

// BuildNationalityDetailKey builds the per-nationality cache key. Names are
// lowercased so lookups are case-insensitive.
func BuildNationalityDetailKey(nationality string) string {
	return fmt.Sprintf("%s%s", CACHE_KEY_NATIONALITY_DETAIL, strings.ToLower(nationality))
}
