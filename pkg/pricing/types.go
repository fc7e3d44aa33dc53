package pricing

import (
	"sync"
)

// PricingSource represents the source of pricing information
type PricingSource string

const (
	// PricingSourceAPI indicates pricing data came from AWS API
	PricingSourceAPI PricingSource = "API"

	// PricingSourceCache indicates pricing data came from cache
	PricingSourceCache PricingSource = "Cache"

	// PricingSourceDefault indicates pricing data came from hardcoded defaults
	PricingSourceDefault PricingSource = "Default"
)

// Stats tracking for pricing API calls
var (
	// PricingAPIStats tracks API call statistics by service and region
	PricingAPIStats = make(map[string]map[string]map[string]int) // service -> region -> {success, failure, cache}

	// PricingAPIStatsLock protects the stats map from concurrent access
	PricingAPIStatsLock sync.RWMutex
)

// Snapshot price cache
var (
	// SnapshotPricingCache caches EBS snapshot GB-month rates by region
	SnapshotPricingCache = make(map[string]float64)

	// SnapshotPricingCacheLock protects the snapshot cache from concurrent access
	SnapshotPricingCacheLock sync.RWMutex
)

// DefaultSnapshotPrices holds fallback EBS snapshot rates in USD per
// GB-month, used when the Pricing API is unreachable
var DefaultSnapshotPrices = map[string]float64{
	"us-east-1":      0.05,
	"us-east-2":      0.05,
	"us-west-1":      0.055,
	"us-west-2":      0.05,
	"eu-west-1":      0.05,
	"eu-central-1":   0.054,
	"ap-northeast-1": 0.05,
	"ap-northeast-2": 0.057,
	"ap-southeast-1": 0.05,
	"ap-southeast-2": 0.055,
	"sa-east-1":      0.068,
}

// FallbackSnapshotPrice is used when a region has no entry in
// DefaultSnapshotPrices
const FallbackSnapshotPrice = 0.05
