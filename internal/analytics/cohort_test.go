package analytics

import (
	"errors"
	"strings"
	"testing"
	"time"

	"tourlytics/internal/records"
	"tourlytics/internal/stats"
)

func arrivedIn(year int, month time.Month) func(*records.Tourist) {
	return func(t *records.Tourist) {
		t.ArrivalDate = time.Date(year, month, 10, 0, 0, 0, 0, time.UTC)
	}
}

func TestCohortLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2023-04", "Apr 2023"},
		{"2023-12", "Dec 2023"},
		{"2024-01", "Jan 2024"},
		{"garbage", "garbage"},
		{"2023-13", "2023-13"},
	}
	for _, tt := range tests {
		if got := cohortLabel(tt.in); got != tt.want {
			t.Errorf("cohortLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildCohortReportEmpty(t *testing.T) {
	if _, err := BuildCohortReport(testDataset()); !errors.Is(err, stats.ErrInsufficientData) {
		t.Errorf("error = %v, want ErrInsufficientData", err)
	}
}

func TestBuildCohortReportPartition(t *testing.T) {
	tourists := []records.Tourist{
		testTourist(1, arrivedIn(2023, time.April)),
		testTourist(2, arrivedIn(2023, time.April)),
		testTourist(3, arrivedIn(2023, time.June)),
		testTourist(4, func(tr *records.Tourist) {
			arrivedIn(2023, time.June)(tr)
			tr.PreviousVisits = 2
		}),
		testTourist(5, arrivedIn(2023, time.January)),
	}

	report, err := BuildCohortReport(testDataset(tourists...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Cohorts) != 3 {
		t.Fatalf("got %d cohorts, want 3", len(report.Cohorts))
	}
	// Sorted by cohort id ascending, every tourist in exactly one cohort.
	wantIDs := []string{"2023-01", "2023-04", "2023-06"}
	wantSizes := []int{1, 2, 2}
	total := 0
	for i, c := range report.Cohorts {
		if c.CohortID != wantIDs[i] {
			t.Errorf("cohort %d id = %s, want %s", i, c.CohortID, wantIDs[i])
		}
		if c.Size != wantSizes[i] {
			t.Errorf("cohort %s size = %d, want %d", c.CohortID, c.Size, wantSizes[i])
		}
		total += c.Size
	}
	if total != len(tourists) {
		t.Errorf("cohort sizes sum to %d, want %d", total, len(tourists))
	}
	if report.Cohorts[1].CohortLabel != "Apr 2023" {
		t.Errorf("label = %s, want Apr 2023", report.Cohorts[1].CohortLabel)
	}

	// Return visitor trend follows the same months.
	june := report.ReturnVisitorTrend[2]
	if june.Month != "2023-06" || june.ReturnVisitors != 1 || june.ReturnRate != 50.0 {
		t.Errorf("june trend = %+v, want 1 of 2 returning", june)
	}

	// Four seasons are always present even when a season has no cohorts.
	if len(report.SeasonalPatterns) != 4 {
		t.Errorf("got %d seasonal patterns, want 4", len(report.SeasonalPatterns))
	}
	for _, p := range report.SeasonalPatterns {
		if p.Season == "Autumn" && p.TotalVisitors != 0 {
			t.Errorf("autumn has %d visitors, want 0", p.TotalVisitors)
		}
		if p.Season == "Monsoon" && p.TotalVisitors != 2 {
			t.Errorf("monsoon has %d visitors, want 2", p.TotalVisitors)
		}
	}
}

func TestCohortDiagnosticsSatisfactionDip(t *testing.T) {
	mk := func(id string, sat float64) Cohort {
		return Cohort{
			CohortID:    id,
			CohortLabel: cohortLabel(id),
			Size:        10,
			Metrics:     CohortMetrics{AvgSpending: 30000, AvgSatisfaction: sat},
		}
	}

	// Mean is 7.9125; only values below 7.6125 count as dips.
	cohorts := []Cohort{
		mk("2023-01", 8.5),
		mk("2023-02", 8.5),
		mk("2023-03", 7.65), // below mean but inside the 0.3 band
		mk("2023-04", 7.0),
	}
	diags := cohortDiagnostics(cohorts)

	var dip *CohortDiagnostic
	for i := range diags {
		if diags[i].Type == "satisfaction_dip" {
			dip = &diags[i]
		}
	}
	if dip == nil {
		t.Fatal("no satisfaction_dip diagnostic emitted")
	}
	if !strings.Contains(dip.Insight, "Apr 2023") {
		t.Errorf("dip insight %q missing Apr 2023", dip.Insight)
	}
	if strings.Contains(dip.Insight, "Mar 2023") {
		t.Errorf("dip insight %q wrongly includes boundary cohort Mar 2023", dip.Insight)
	}
}

func TestCohortDiagnosticsSpendingVariation(t *testing.T) {
	cohorts := []Cohort{
		{CohortID: "2023-01", CohortLabel: "Jan 2023", Metrics: CohortMetrics{AvgSpending: 20000, AvgSatisfaction: 8}},
		{CohortID: "2023-02", CohortLabel: "Feb 2023", Metrics: CohortMetrics{AvgSpending: 50000, AvgSatisfaction: 8}},
	}
	diags := cohortDiagnostics(cohorts)
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2 (highest and lowest spending)", len(diags))
	}
	if !strings.Contains(diags[0].Insight, "Feb 2023") {
		t.Errorf("highest insight = %q, want Feb 2023", diags[0].Insight)
	}
	if !strings.Contains(diags[1].Insight, "Jan 2023") {
		t.Errorf("lowest insight = %q, want Jan 2023", diags[1].Insight)
	}
}

func TestBuildTimeSeries(t *testing.T) {
	tourists := []records.Tourist{
		testTourist(1, func(tr *records.Tourist) {
			arrivedIn(2023, time.March)(tr)
			tr.TotalSpentNPR = 10000
		}),
		testTourist(2, func(tr *records.Tourist) {
			arrivedIn(2023, time.March)(tr)
			tr.TotalSpentNPR = 30000
		}),
		testTourist(3, func(tr *records.Tourist) {
			arrivedIn(2023, time.May)(tr)
			tr.TotalSpentNPR = 50000
		}),
	}

	series, err := BuildTimeSeries(testDataset(tourists...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("got %d points, want 2", len(series))
	}
	march := series[0]
	if march.Month != "2023-03" || march.Visitors != 2 {
		t.Errorf("first point = %+v, want 2023-03 with 2 visitors", march)
	}
	if march.AvgSpending != 20000 || march.TotalRevenue != 40000 {
		t.Errorf("march spending = %v / revenue %v, want 20000 / 40000", march.AvgSpending, march.TotalRevenue)
	}
}
