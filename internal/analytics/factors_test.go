package analytics

import (
	"errors"
	"testing"

	"tourlytics/internal/records"
	"tourlytics/internal/stats"
)

func TestBuildRegressionReportInsufficient(t *testing.T) {
	ds := testDataset(testTourist(1, nil))
	if _, err := BuildRegressionReport(ds); !errors.Is(err, stats.ErrInsufficientData) {
		t.Errorf("error = %v, want ErrInsufficientData", err)
	}
}

func TestAnalyzeSpendingFactorsRegressionLine(t *testing.T) {
	// Spending is exactly 5000 per day, so the fit has slope 5000 and
	// intercept 0.
	tourists := []records.Tourist{
		testTourist(1, func(tr *records.Tourist) { tr.DurationDays = 2; tr.TotalSpentNPR = 10000 }),
		testTourist(2, func(tr *records.Tourist) { tr.DurationDays = 4; tr.TotalSpentNPR = 20000 }),
		testTourist(3, func(tr *records.Tourist) { tr.DurationDays = 18; tr.TotalSpentNPR = 90000 }),
	}

	factors, err := analyzeSpendingFactors(tourists)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if factors.Regression.Slope != 5000 {
		t.Errorf("slope = %v, want 5000", factors.Regression.Slope)
	}
	if factors.Regression.Intercept != 0 {
		t.Errorf("intercept = %v, want 0", factors.Regression.Intercept)
	}
	if factors.Regression.Equation != "Spending = 5000 × Days + 0" {
		t.Errorf("equation = %q", factors.Regression.Equation)
	}

	// A perfect duration correlation is classified as Strong Positive.
	var duration *SpendingFactor
	for i := range factors.Factors {
		if factors.Factors[i].Factor == "Duration (days)" {
			duration = &factors.Factors[i]
		}
	}
	if duration == nil {
		t.Fatal("duration factor missing")
	}
	if duration.Correlation != 1 {
		t.Errorf("duration correlation = %v, want 1", duration.Correlation)
	}
	if duration.Impact != "Strong Positive" {
		t.Errorf("duration impact = %q, want Strong Positive", duration.Impact)
	}

	// Zero-variance attributes (age, group size) are skipped, not reported.
	for _, f := range factors.Factors {
		if f.Factor == "Age" || f.Factor == "Group Size" {
			t.Errorf("constant attribute %q reported as a factor", f.Factor)
		}
	}
}

func TestAnalyzeSatisfactionFactors(t *testing.T) {
	tourists := []records.Tourist{
		testTourist(1, func(tr *records.Tourist) { tr.UsesTourGuide = true; tr.SatisfactionScore = 9 }),
		testTourist(2, func(tr *records.Tourist) { tr.SatisfactionScore = 7 }),
		testTourist(3, func(tr *records.Tourist) {
			tr.AccommodationType = "Luxury Hotel"
			tr.Season = "Autumn"
			tr.SatisfactionScore = 9.5
		}),
	}

	factors := analyzeSatisfactionFactors(tourists)
	if len(factors) != 3 {
		t.Fatalf("got %d factors, want 3", len(factors))
	}

	guide := factors[0]
	if guide.Factor != "Tour Guide Usage" {
		t.Fatalf("first factor = %q", guide.Factor)
	}
	if guide.WithFactor != 9 || guide.WithoutFactor != 8.25 || guide.Difference != 0.75 {
		t.Errorf("guide split = %v/%v/%v, want 9/8.25/0.75",
			guide.WithFactor, guide.WithoutFactor, guide.Difference)
	}

	accommodation := factors[1]
	if len(accommodation.Breakdown) != 2 {
		t.Fatalf("accommodation breakdown has %d entries, want 2", len(accommodation.Breakdown))
	}
	// Breakdown is sorted by satisfaction descending.
	if accommodation.Breakdown[0].Category != "Luxury Hotel" {
		t.Errorf("top accommodation = %q, want Luxury Hotel", accommodation.Breakdown[0].Category)
	}
}

func TestAnalyzeSatisfactionFactorsNoGuideSplit(t *testing.T) {
	// Every tourist uses a guide, so the binary split is omitted.
	tourists := []records.Tourist{
		testTourist(1, func(tr *records.Tourist) { tr.UsesTourGuide = true }),
		testTourist(2, func(tr *records.Tourist) { tr.UsesTourGuide = true }),
	}
	factors := analyzeSatisfactionFactors(tourists)
	for _, f := range factors {
		if f.Factor == "Tour Guide Usage" {
			t.Error("guide split reported with only one side populated")
		}
	}
}

func TestAnalyzeDurationImpact(t *testing.T) {
	tourists := []records.Tourist{
		testTourist(1, func(tr *records.Tourist) { tr.DurationDays = 2; tr.TotalSpentNPR = 10000 }),
		testTourist(2, func(tr *records.Tourist) { tr.DurationDays = 3; tr.TotalSpentNPR = 12000 }),
		testTourist(3, func(tr *records.Tourist) { tr.DurationDays = 10; tr.TotalSpentNPR = 60000 }),
	}

	impacts := analyzeDurationImpact(tourists)

	// Empty buckets (4-7 and 15+) are omitted.
	if len(impacts) != 2 {
		t.Fatalf("got %d buckets, want 2", len(impacts))
	}
	short := impacts[0]
	if short.Duration != "1-3 days" || short.Count != 2 {
		t.Errorf("first bucket = %+v, want 1-3 days with 2 tourists", short)
	}
	if short.AvgSpending != 11000 {
		t.Errorf("short stay spending = %v, want 11000", short.AvgSpending)
	}
	if impacts[1].Duration != "8-14 days" {
		t.Errorf("second bucket = %q, want 8-14 days", impacts[1].Duration)
	}
}

func TestAnalyzeNationalitySpending(t *testing.T) {
	tourists := []records.Tourist{
		testTourist(1, func(tr *records.Tourist) { tr.Nationality = "Chinese"; tr.TotalSpentNPR = 90000 }),
		testTourist(2, func(tr *records.Tourist) { tr.TotalSpentNPR = 30000 }),
		testTourist(3, func(tr *records.Tourist) { tr.TotalSpentNPR = 40000 }),
	}

	aggregates := analyzeNationalitySpending(tourists)
	if len(aggregates) != 2 {
		t.Fatalf("got %d aggregates, want 2", len(aggregates))
	}
	// Sorted by total revenue descending: Chinese 90000 beats Indian 70000.
	if aggregates[0].Nationality != "Chinese" || aggregates[0].TotalRevenue != 90000 {
		t.Errorf("first aggregate = %+v, want Chinese/90000", aggregates[0])
	}
	if aggregates[1].MarketShare != 66.7 {
		t.Errorf("Indian market share = %v, want 66.7", aggregates[1].MarketShare)
	}
}

func TestBuildPredictiveInsights(t *testing.T) {
	tourists := []records.Tourist{
		testTourist(1, func(tr *records.Tourist) { tr.TotalSpentNPR = 100000; tr.Age = 50 }),
		testTourist(2, func(tr *records.Tourist) { tr.SatisfactionScore = 4 }),
		testTourist(3, nil),
	}

	insights := buildPredictiveInsights(tourists)
	if len(insights) != 2 {
		t.Fatalf("got %d insights, want 2", len(insights))
	}
	if insights[0].Type != "high_value_profile" {
		t.Errorf("first type = %q", insights[0].Type)
	}
	if insights[0].Profile.AvgAge != 50 {
		t.Errorf("high value avg age = %v, want 50", insights[0].Profile.AvgAge)
	}
	atRisk := insights[1]
	if atRisk.Type != "at_risk_segment" || atRisk.Profile.Count != 1 {
		t.Errorf("at risk insight = %+v, want 1 tourist", atRisk)
	}
	if atRisk.Profile.Percentage != 33.3 {
		t.Errorf("at risk percentage = %v, want 33.3", atRisk.Profile.Percentage)
	}
}
