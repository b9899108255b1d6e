package analytics

import (
	"errors"
	"testing"

	"tourlytics/internal/records"
	"tourlytics/internal/stats"
)

func TestBuildSegmentationEmpty(t *testing.T) {
	if _, err := BuildSegmentation(testDataset()); !errors.Is(err, stats.ErrInsufficientData) {
		t.Errorf("error = %v, want ErrInsufficientData", err)
	}
}

func TestBuildSegmentation(t *testing.T) {
	tourists := make([]records.Tourist, 0, 40)
	for i := 0; i < 40; i++ {
		i := i
		tourists = append(tourists, testTourist(i+1, func(tr *records.Tourist) {
			switch i % 4 {
			case 0: // premium long stay
				tr.TotalSpentNPR = 120000
				tr.DurationDays = 12
			case 1: // budget quick visit
				tr.TotalSpentNPR = 15000
				tr.DurationDays = 2
			case 2: // mid-range
				tr.TotalSpentNPR = 45000
				tr.DurationDays = 6
			case 3: // long budget
				tr.TotalSpentNPR = 35000
				tr.DurationDays = 15
			}
		}))
	}

	report, err := BuildSegmentation(testDataset(tourists...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.TouristClusters) != len(tourists) {
		t.Errorf("got %d assignments, want %d", len(report.TouristClusters), len(tourists))
	}

	totalSize := 0
	var totalPct float64
	for i, c := range report.Clusters {
		totalSize += c.Size
		totalPct += c.Percentage
		if i > 0 && report.Clusters[i-1].ClusterID >= c.ClusterID {
			t.Error("clusters not sorted by id")
		}
		if c.Size == 0 {
			t.Errorf("cluster %d reported with zero members", c.ClusterID)
		}
		if c.Characteristics.TopNationality != "Indian" {
			t.Errorf("cluster %d top nationality = %q, want Indian", c.ClusterID, c.Characteristics.TopNationality)
		}
	}
	if totalSize != len(tourists) {
		t.Errorf("cluster sizes sum to %d, want %d", totalSize, len(tourists))
	}
	if totalPct < 99 || totalPct > 101 {
		t.Errorf("cluster percentages sum to %v, want about 100", totalPct)
	}
}

func TestClusterName(t *testing.T) {
	tests := []struct {
		name                             string
		spending, duration, satisfaction float64
		want                             string
	}{
		{"premium long stay", 90000, 10, 6, "Premium Long-stay Seekers"},
		{"high value satisfied", 70000, 5, 8, "High-Value Cultural Enthusiasts"},
		{"budget quick", 20000, 3, 8, "Budget Quick Visitors"},
		{"satisfied extended", 40000, 9, 7.5, "Satisfied Extended Explorers"},
		{"default", 45000, 5, 6.5, "General Tourists"},
		{"short stay falls through to high value", 90000, 5, 8, "High-Value Cultural Enthusiasts"},
		{"boundary values excluded", 80000, 7, 7, "General Tourists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clusterName(tt.spending, tt.duration, tt.satisfaction); got != tt.want {
				t.Errorf("clusterName(%v, %v, %v) = %q, want %q",
					tt.spending, tt.duration, tt.satisfaction, got, tt.want)
			}
		})
	}
}

func TestClusterDiagnostics(t *testing.T) {
	t.Run("high spending and guide usage", func(t *testing.T) {
		diags := clusterDiagnostics(80000, 8, 60)
		if len(diags) != 2 {
			t.Fatalf("got %d diagnostics, want 2", len(diags))
		}
		if diags[0].Insight != "High spending segment" {
			t.Errorf("first insight = %q", diags[0].Insight)
		}
		if diags[1].Insight != "High guide usage" {
			t.Errorf("second insight = %q", diags[1].Insight)
		}
	})

	t.Run("budget with low satisfaction", func(t *testing.T) {
		diags := clusterDiagnostics(20000, 6.5, 10)
		if len(diags) != 2 {
			t.Fatalf("got %d diagnostics, want 2", len(diags))
		}
		if diags[0].Insight != "Budget-conscious segment" {
			t.Errorf("first insight = %q", diags[0].Insight)
		}
		if diags[1].Insight != "Below average satisfaction" {
			t.Errorf("second insight = %q", diags[1].Insight)
		}
	})

	t.Run("unremarkable cluster", func(t *testing.T) {
		if diags := clusterDiagnostics(50000, 8, 20); len(diags) != 0 {
			t.Errorf("got %d diagnostics, want 0", len(diags))
		}
	})
}

func TestClusterVendorRecommendations(t *testing.T) {
	recs := clusterVendorRecommendations(70000, "Pilgrimage", "Indian")
	if len(recs) != 6 {
		t.Fatalf("got %d recommendations, want 6", len(recs))
	}
	recs = clusterVendorRecommendations(40000, "Adventure", "German")
	if len(recs) != 0 {
		t.Errorf("got %d recommendations, want 0", len(recs))
	}
}
