package vendors

import (
	"errors"
	"testing"

	"tourlytics/internal/records"
	"tourlytics/internal/stats"
)

func TestBuildAccommodationReportEmpty(t *testing.T) {
	if _, err := BuildAccommodationReport(testDataset()); !errors.Is(err, stats.ErrInsufficientData) {
		t.Errorf("error = %v, want ErrInsufficientData", err)
	}
}

func TestBuildAccommodationReport(t *testing.T) {
	ds := &records.Dataset{
		Tourists: []records.Tourist{
			testTourist(1, func(tr *records.Tourist) { tr.AccommodationCostNPR = 10000 }),
			testTourist(2, func(tr *records.Tourist) { tr.AccommodationCostNPR = 20000 }),
			testTourist(3, func(tr *records.Tourist) {
				tr.AccommodationType = "Luxury Hotel"
				tr.AccommodationCostNPR = 60000
			}),
		},
		Accommodations: []records.Accommodation{
			{ID: 1, HotelType: "Mid-range Hotel", PricePerNight: 2000},
			{ID: 2, HotelType: "Mid-range Hotel", PricePerNight: 3000},
			{ID: 3, HotelType: "Luxury Hotel", PricePerNight: 12000},
		},
	}

	report, err := BuildAccommodationReport(ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.TypeAnalysis) != 2 {
		t.Fatalf("got %d types, want 2", len(report.TypeAnalysis))
	}
	// Sorted by tourist count descending.
	midRange := report.TypeAnalysis[0]
	if midRange.Type != "Mid-range Hotel" || midRange.TouristCount != 2 {
		t.Errorf("first type = %+v, want Mid-range Hotel with 2 guests", midRange)
	}
	if midRange.AvgAccommodationCost != 15000 {
		t.Errorf("avg cost = %v, want 15000", midRange.AvgAccommodationCost)
	}
	if midRange.AvgNightlyRate != 2500 {
		t.Errorf("catalog nightly rate = %v, want 2500", midRange.AvgNightlyRate)
	}

	// Revenue: mid-range 15000*2 = 30000, luxury 60000*1 = 60000.
	if report.RevenueByType[0].TotalRevenue != 30000 {
		t.Errorf("mid-range revenue = %v, want 30000", report.RevenueByType[0].TotalRevenue)
	}
	if report.RevenueByType[1].RevenueShare != 66.7 {
		t.Errorf("luxury share = %v, want 66.7", report.RevenueByType[1].RevenueShare)
	}

	if len(report.LocationInsights) != 1 || report.LocationInsights[0].City != "Kathmandu" {
		t.Errorf("location insights = %+v, want single Kathmandu entry", report.LocationInsights)
	}
}

func TestAccommodationDiagnosticsSatisfactionBand(t *testing.T) {
	mk := func(sat float64) []records.Tourist {
		return []records.Tourist{
			testTourist(1, func(tr *records.Tourist) { tr.SatisfactionScore = sat; tr.UsesTourGuide = true }),
		}
	}

	// Slightly below the benchmark but inside the 0.3 tolerance: no flag.
	diags := accommodationDiagnostics("Guesthouse", mk(7.75), 8.0)
	for _, d := range diags {
		if d.Issue == "Below average satisfaction" {
			t.Errorf("satisfaction inside tolerance band still flagged: %+v", d)
		}
	}

	// Clearly below the band: flagged, with the benchmark attached.
	diags = accommodationDiagnostics("Guesthouse", mk(7.5), 8.0)
	found := false
	for _, d := range diags {
		if d.Issue == "Below average satisfaction" {
			found = true
			if d.Value != "7.50" || d.Benchmark != "8.00" {
				t.Errorf("diagnostic values = %s vs %s, want 7.50 vs 8.00", d.Value, d.Benchmark)
			}
		}
	}
	if !found {
		t.Error("satisfaction below tolerance band not flagged")
	}
}

func TestAccommodationDiagnosticsRates(t *testing.T) {
	// No guides, no recommendations: both rate diagnostics fire.
	group := []records.Tourist{
		testTourist(1, func(tr *records.Tourist) { tr.WouldRecommend = false }),
		testTourist(2, func(tr *records.Tourist) { tr.WouldRecommend = false }),
	}
	diags := accommodationDiagnostics("Budget Hotel", group, 8.0)

	issues := make(map[string]bool, len(diags))
	for _, d := range diags {
		issues[d.Issue] = true
	}
	if !issues["Low guide usage"] {
		t.Error("guide usage of 0% not flagged")
	}
	if !issues["Low recommendation rate"] {
		t.Error("recommendation rate of 0% not flagged")
	}
}

func TestPriceRecommendations(t *testing.T) {
	// 25000 over 5 nights = 5000 per night of actual spend.
	group := []records.Tourist{
		testTourist(1, func(tr *records.Tourist) {
			tr.AccommodationCostNPR = 25000
			tr.DurationDays = 5
		}),
	}
	byType := stats.GroupBy(group, func(tr records.Tourist) string { return tr.AccommodationType })

	t.Run("market price too high", func(t *testing.T) {
		catalog := []records.Accommodation{{HotelType: "Mid-range Hotel", PricePerNight: 7000}}
		recs := priceRecommendations(byType, catalog)
		if len(recs) != 1 {
			t.Fatalf("got %d recommendations, want 1", len(recs))
		}
		r := recs[0]
		if r.Insight != "Market prices may be too high for this segment" {
			t.Errorf("insight = %q", r.Insight)
		}
		if r.RecommendedRange.Low != 4250 || r.RecommendedRange.High != 5750 {
			t.Errorf("range = %v-%v, want 4250-5750", r.RecommendedRange.Low, r.RecommendedRange.High)
		}
		if r.AvgDailyBudgetUSD != 100 {
			t.Errorf("daily budget = %v, want 100 (kept in USD)", r.AvgDailyBudgetUSD)
		}
	})

	t.Run("room to raise prices", func(t *testing.T) {
		catalog := []records.Accommodation{{HotelType: "Mid-range Hotel", PricePerNight: 3500}}
		recs := priceRecommendations(byType, catalog)
		if recs[0].Insight != "Opportunity to increase prices" {
			t.Errorf("insight = %q", recs[0].Insight)
		}
	})

	t.Run("aligned pricing", func(t *testing.T) {
		catalog := []records.Accommodation{{HotelType: "Mid-range Hotel", PricePerNight: 5000}}
		recs := priceRecommendations(byType, catalog)
		if recs[0].Insight != "Pricing is well-aligned with demand" {
			t.Errorf("insight = %q", recs[0].Insight)
		}
	})
}
