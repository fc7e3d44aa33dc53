package pricing

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/pricing/types"

	"github.com/ebsight/ebsight/internal/models"
)

// Cost period ratios for the snapshot cost schedule
const (
	daysPerMonth   = 30.0
	daysPerWeek    = 7.0
	monthsPerYear  = 12.0
	snapshotFamily = "Storage Snapshot"
)

// GetSnapshotPrice returns the EBS snapshot price in USD per GB-month for a region
func GetSnapshotPrice(region string) float64 {
	price, _ := GetSnapshotPriceWithSource(region)
	return price
}

// GetSnapshotPriceWithSource returns the snapshot GB-month rate together
// with where the figure came from (API, cache, or fallback table)
func GetSnapshotPriceWithSource(region string) (float64, string) {
	// Initialize pricing client if not already done
	PricingInitOnce.Do(InitPricingClient)

	cacheKey := fmt.Sprintf("snapshot:%s", region)

	// Check cache first
	SnapshotPricingCacheLock.RLock()
	if price, found := SnapshotPricingCache[cacheKey]; found {
		SnapshotPricingCacheLock.RUnlock()

		UpdateCacheHitStats("EBSSnapshot", region)

		return price, string(PricingSourceCache)
	}
	SnapshotPricingCacheLock.RUnlock()

	var price float64
	var err error
	source := string(PricingSourceAPI)

	if PricingClient != nil {
		price, err = getSnapshotPriceFromAPI(region)
	} else {
		err = fmt.Errorf("pricing client not initialized")
	}

	if err != nil {
		log.Printf("Error getting snapshot price from API: %v. Using fallback pricing for %s.", err, region)

		UpdateAPIFailureStats("EBSSnapshot", region)

		source = string(PricingSourceDefault)
		if regionPrice, found := DefaultSnapshotPrices[region]; found {
			price = regionPrice
		} else {
			price = FallbackSnapshotPrice
		}
	} else {
		UpdateAPISuccessStats("EBSSnapshot", region)
	}

	// Cache the result
	SnapshotPricingCacheLock.Lock()
	SnapshotPricingCache[cacheKey] = price
	SnapshotPricingCacheLock.Unlock()

	return price, source
}

// getSnapshotPriceFromAPI retrieves EBS snapshot pricing from the AWS Pricing API
func getSnapshotPriceFromAPI(region string) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filters := []types.Filter{
		{
			Type:  types.FilterTypeTermMatch,
			Field: aws.String("productFamily"),
			Value: aws.String(snapshotFamily),
		},
		{
			Type:  types.FilterTypeTermMatch,
			Field: aws.String("location"),
			Value: aws.String(GetRegionDescriptiveName(region)),
		},
		{
			Type:  types.FilterTypeTermMatch,
			Field: aws.String("storageMedia"),
			Value: aws.String("Amazon S3"),
		},
	}

	priceJSON, err := GetPriceFromAPI(ctx, "AmazonEC2", filters, "EBSSnapshot", "snapshot storage", region)
	if err != nil {
		return 0, err
	}

	return ExtractOnDemandPrice(priceJSON)
}

// CalculateSnapshotCosts derives the backup cost schedule from a snapshot
// footprint and a GB-month rate. Monthly cost is size times rate; the
// daily, weekly, and annual figures are fixed ratios of it.
func CalculateSnapshotCosts(sizeGiB float64, ratePerGBMonth float64) models.SnapshotCosts {
	monthly := sizeGiB * ratePerGBMonth
	daily := monthly / daysPerMonth

	return models.SnapshotCosts{
		Daily:   daily,
		Weekly:  daily * daysPerWeek,
		Monthly: monthly,
		Annual:  monthly * monthsPerYear,
	}
}
