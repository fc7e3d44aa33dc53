package pricing

import (
	"math"
	"testing"
)

func TestCalculateSnapshotCosts(t *testing.T) {
	tests := []struct {
		name        string
		sizeGiB     float64
		rate        float64
		wantMonthly float64
	}{
		{name: "zero size", sizeGiB: 0, rate: 0.05, wantMonthly: 0},
		{name: "typical footprint", sizeGiB: 79.8, rate: 0.05, wantMonthly: 3.99},
		{name: "seoul rate", sizeGiB: 100, rate: 0.057, wantMonthly: 5.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			costs := CalculateSnapshotCosts(tt.sizeGiB, tt.rate)

			if math.Abs(costs.Monthly-tt.wantMonthly) > 1e-9 {
				t.Errorf("Monthly = %.4f, want %.4f", costs.Monthly, tt.wantMonthly)
			}
			if math.Abs(costs.Daily-costs.Monthly/30) > 1e-9 {
				t.Errorf("Daily = %.4f, want monthly/30 = %.4f", costs.Daily, costs.Monthly/30)
			}
			if math.Abs(costs.Weekly-costs.Daily*7) > 1e-9 {
				t.Errorf("Weekly = %.4f, want daily*7 = %.4f", costs.Weekly, costs.Daily*7)
			}
			if math.Abs(costs.Annual-costs.Monthly*12) > 1e-9 {
				t.Errorf("Annual = %.4f, want monthly*12 = %.4f", costs.Annual, costs.Monthly*12)
			}

			// The schedule must stay self-consistent end to end
			if math.Abs(costs.Annual-costs.Daily*30*12) > 1e-6 {
				t.Errorf("Annual = %.6f, want daily*30*12 = %.6f", costs.Annual, costs.Daily*30*12)
			}
		})
	}
}

func TestGetSnapshotPriceWithSource_Fallback(t *testing.T) {
	// Force the fallback path: mark the init done, no client, empty cache
	PricingInitOnce.Do(func() {})
	PricingClient = nil
	SnapshotPricingCacheLock.Lock()
	SnapshotPricingCache = make(map[string]float64)
	SnapshotPricingCacheLock.Unlock()

	price, source := GetSnapshotPriceWithSource("ap-northeast-2")
	if price != DefaultSnapshotPrices["ap-northeast-2"] {
		t.Errorf("price = %.3f, want fallback %.3f", price, DefaultSnapshotPrices["ap-northeast-2"])
	}
	if source != string(PricingSourceDefault) {
		t.Errorf("source = %s, want %s", source, PricingSourceDefault)
	}

	// Second lookup must come from the cache
	price, source = GetSnapshotPriceWithSource("ap-northeast-2")
	if price != DefaultSnapshotPrices["ap-northeast-2"] {
		t.Errorf("cached price = %.3f, want %.3f", price, DefaultSnapshotPrices["ap-northeast-2"])
	}
	if source != string(PricingSourceCache) {
		t.Errorf("source = %s, want %s", source, PricingSourceCache)
	}
}

func TestGetSnapshotPriceWithSource_UnknownRegion(t *testing.T) {
	PricingInitOnce.Do(func() {})
	PricingClient = nil
	SnapshotPricingCacheLock.Lock()
	SnapshotPricingCache = make(map[string]float64)
	SnapshotPricingCacheLock.Unlock()

	price, _ := GetSnapshotPriceWithSource("xx-nowhere-1")
	if price != FallbackSnapshotPrice {
		t.Errorf("price = %.3f, want global fallback %.3f", price, FallbackSnapshotPrice)
	}
}
