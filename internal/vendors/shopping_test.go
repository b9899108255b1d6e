package vendors

import (
	"errors"
	"testing"

	"tourlytics/internal/records"
	"tourlytics/internal/stats"
)

func TestBuildShoppingReportEmpty(t *testing.T) {
	if _, err := BuildShoppingReport(testDataset()); !errors.Is(err, stats.ErrInsufficientData) {
		t.Errorf("error = %v, want ErrInsufficientData", err)
	}
}

func TestBuildShoppingReport(t *testing.T) {
	tourists := []records.Tourist{
		testTourist(1, func(tr *records.Tourist) { tr.ShoppingCostNPR = 10000; tr.TotalSpentNPR = 50000 }),
		testTourist(2, func(tr *records.Tourist) { tr.ShoppingCostNPR = 0; tr.TotalSpentNPR = 30000 }),
		testTourist(3, func(tr *records.Tourist) {
			tr.Nationality = "Chinese"
			tr.MainInterest = "Shopping"
			tr.ShoppingCostNPR = 20000
			tr.TotalSpentNPR = 60000
		}),
	}

	report, err := BuildShoppingReport(testDataset(tourists...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.ByNationality) != 2 {
		t.Fatalf("got %d nationalities, want 2", len(report.ByNationality))
	}
	chinese := report.ByNationality[0]
	if chinese.Nationality != "Chinese" || chinese.AvgShopping != 20000 {
		t.Errorf("first entry = %+v, want Chinese at 20000", chinese)
	}
	if chinese.ShoppingShareOfSpend != 33.3 {
		t.Errorf("Chinese shopping share = %v, want 33.3", chinese.ShoppingShareOfSpend)
	}

	indian := report.ByNationality[1]
	if indian.ShopperRate != 50.0 {
		t.Errorf("Indian shopper rate = %v, want 50 (one of two bought anything)", indian.ShopperRate)
	}
	if indian.TotalShoppingRevenue != 10000 {
		t.Errorf("Indian revenue = %v, want 10000", indian.TotalShoppingRevenue)
	}

	if len(report.ByInterest) != 2 || report.ByInterest[0].Interest != "Shopping" {
		t.Errorf("interests = %+v, want Shopping first", report.ByInterest)
	}
	if len(report.TopShoppingSegments) != 2 {
		t.Errorf("got %d top segments, want 2", len(report.TopShoppingSegments))
	}
}

func TestShoppingRecommendations(t *testing.T) {
	nationality := []NationalityShopping{
		{Nationality: "Chinese", Count: 600, AvgShopping: 8000, TotalShoppingRevenue: 4800000},
		{Nationality: "American", Count: 200, AvgShopping: 6000, TotalShoppingRevenue: 1200000},
		{Nationality: "Indian", Count: 900, AvgShopping: 2500, TotalShoppingRevenue: 2250000},
		{Nationality: "German", Count: 100, AvgShopping: 1500, TotalShoppingRevenue: 150000},
	}

	recs := shoppingRecommendations(nationality)
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}

	highValue := recs[0]
	if highValue.Title != "Target High-Value Shoppers" {
		t.Fatalf("first title = %q", highValue.Title)
	}
	if len(highValue.Segments) != 3 {
		t.Errorf("got %d high-value segments, want top 3", len(highValue.Segments))
	}
	if highValue.Segments[0].Nationality != "Chinese" || highValue.Segments[0].AvgSpend != 8000 {
		t.Errorf("top shopper = %+v, want Chinese at 8000", highValue.Segments[0])
	}

	// Volume market needs both scale and meaningful spend: Chinese and
	// Indian qualify, German fails both bars, American is too small.
	volume := recs[1]
	if volume.Title != "Volume Market Opportunity" {
		t.Fatalf("second title = %q", volume.Title)
	}
	if len(volume.Segments) != 2 {
		t.Fatalf("got %d volume segments, want 2", len(volume.Segments))
	}
	if volume.Segments[0].Nationality != "Chinese" || volume.Segments[1].Nationality != "Indian" {
		t.Errorf("volume segments = %+v, want Chinese then Indian", volume.Segments)
	}
}

func TestShoppingRecommendationsNoVolumeSegment(t *testing.T) {
	nationality := []NationalityShopping{
		{Nationality: "German", Count: 100, AvgShopping: 1500},
	}
	recs := shoppingRecommendations(nationality)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1 (high value only)", len(recs))
	}
	if recs[0].Title != "Target High-Value Shoppers" {
		t.Errorf("title = %q", recs[0].Title)
	}
}
