package vendors

import (
	"errors"
	"testing"

	"tourlytics/internal/records"
	"tourlytics/internal/stats"
)

func TestBuildTransportReportEmpty(t *testing.T) {
	if _, err := BuildTransportReport(testDataset()); !errors.Is(err, stats.ErrInsufficientData) {
		t.Errorf("error = %v, want ErrInsufficientData", err)
	}
}

func TestBuildTransportReport(t *testing.T) {
	tourists := []records.Tourist{
		testTourist(1, func(tr *records.Tourist) { tr.TransportCostNPR = 2000 }),
		testTourist(2, func(tr *records.Tourist) { tr.TransportCostNPR = 4000 }),
		testTourist(3, func(tr *records.Tourist) { tr.PrimaryTransport = "Public Bus"; tr.TransportCostNPR = 500 }),
	}

	report, err := BuildTransportReport(testDataset(tourists...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.TransportAnalysis) != 2 {
		t.Fatalf("got %d modes, want 2", len(report.TransportAnalysis))
	}
	taxi := report.TransportAnalysis[0]
	if taxi.Transport != "Taxi" || taxi.Count != 2 {
		t.Errorf("first mode = %+v, want Taxi with 2 tourists", taxi)
	}
	if taxi.AvgTransportCost != 3000 {
		t.Errorf("taxi avg cost = %v, want 3000", taxi.AvgTransportCost)
	}
	if taxi.MarketShare != 66.7 {
		t.Errorf("taxi share = %v, want 66.7", taxi.MarketShare)
	}
}

func TestTransportDiagnosticsCrossModeBenchmark(t *testing.T) {
	// Benchmark is the mean of per-mode means (8.33), not weighted by volume.
	analysis := []TransportAnalysis{
		{Transport: "Taxi", AvgSatisfaction: 9},
		{Transport: "Rental Car", AvgSatisfaction: 9},
		{Transport: "Public Bus", AvgSatisfaction: 7},
	}

	diags := transportDiagnostics(analysis)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if diags[0].Transport != "Public Bus" || diags[0].Value != 7 {
		t.Errorf("diagnostic = %+v, want Public Bus at 7", diags[0])
	}
}

func TestTransportDiagnosticsNoneFlagged(t *testing.T) {
	analysis := []TransportAnalysis{
		{Transport: "Taxi", AvgSatisfaction: 8.1},
		{Transport: "Public Bus", AvgSatisfaction: 7.9},
	}
	if diags := transportDiagnostics(analysis); len(diags) != 0 {
		t.Errorf("got %d diagnostics, want 0 inside the tolerance band", len(diags))
	}
}

func TestTransportOpportunities(t *testing.T) {
	tests := []struct {
		share float64
		want  string
	}{
		{10, "Growth opportunity - increase visibility and service quality"},
		{15, "Stable segment - focus on differentiation"},
		{20, "Stable segment - focus on differentiation"},
		{25, "Stable segment - focus on differentiation"},
		{30, "Dominant segment - maintain quality, explore premium offerings"},
	}
	for _, tt := range tests {
		analysis := []TransportAnalysis{{Transport: "Taxi", MarketShare: tt.share, AvgTransportCost: 1000}}
		opps := transportOpportunities(analysis)
		if len(opps) != 1 {
			t.Fatalf("share %v: got %d opportunities, want 1", tt.share, len(opps))
		}
		if opps[0].Opportunity != tt.want {
			t.Errorf("share %v opportunity = %q, want %q", tt.share, opps[0].Opportunity, tt.want)
		}
	}
}
