package vendors

import (
	"errors"
	"testing"

	"tourlytics/internal/records"
	"tourlytics/internal/stats"
)

func TestBuildAttractionReportEmpty(t *testing.T) {
	if _, err := BuildAttractionReport(&records.Dataset{}); !errors.Is(err, stats.ErrInsufficientData) {
		t.Errorf("error = %v, want ErrInsufficientData", err)
	}
}

func TestBuildAttractionReport(t *testing.T) {
	ds := &records.Dataset{
		Tourists: []records.Tourist{testTourist(1, nil)},
		Attractions: []records.Attraction{
			{ID: 1, Name: "Pashupatinath Temple", City: "Kathmandu", Category: "Religious Sites", EntryFeeForeign: 1000},
			{ID: 2, Name: "Garden of Dreams", City: "Kathmandu", Category: "Cultural Sites", EntryFeeForeign: 400},
			{ID: 3, Name: "Nagarkot Viewpoint", City: "Bhaktapur", Category: "Nature", EntryFeeForeign: 0},
		},
		Visits: []records.Visit{
			{TouristID: 1, AttractionID: 1, AttractionName: "Pashupatinath Temple", City: "Kathmandu", Category: "Religious Sites", EntryFeePaid: 1000, VisitRating: 9},
			{TouristID: 2, AttractionID: 1, AttractionName: "Pashupatinath Temple", City: "Kathmandu", Category: "Religious Sites", EntryFeePaid: 1000, VisitRating: 8},
			{TouristID: 3, AttractionID: 2, AttractionName: "Garden of Dreams", City: "Kathmandu", Category: "Cultural Sites", EntryFeePaid: 400, VisitRating: 7},
		},
	}

	report, err := BuildAttractionReport(ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.TopAttractions) != 3 {
		t.Fatalf("got %d attractions, want 3 (zero-visit entries kept)", len(report.TopAttractions))
	}
	top := report.TopAttractions[0]
	if top.AttractionID != 1 || top.VisitCount != 2 {
		t.Errorf("top = %+v, want attraction 1 with 2 visits", top)
	}
	if top.AvgRating != 8.5 || top.TotalRevenue != 2000 {
		t.Errorf("top rating/revenue = %v/%v, want 8.5/2000", top.AvgRating, top.TotalRevenue)
	}
	unvisited := report.TopAttractions[2]
	if unvisited.AttractionID != 3 || unvisited.VisitCount != 0 || unvisited.AvgRating != 0 {
		t.Errorf("unvisited entry = %+v", unvisited)
	}

	if len(report.CategoryAnalysis) != 2 {
		t.Errorf("got %d categories, want 2", len(report.CategoryAnalysis))
	}
	if report.CategoryAnalysis[0].Category != "Religious Sites" {
		t.Errorf("top category = %q, want Religious Sites", report.CategoryAnalysis[0].Category)
	}

	if len(report.TourPackageRecommendations) != 3 {
		t.Errorf("got %d packages, want 3", len(report.TourPackageRecommendations))
	}
}

func TestUnderperformers(t *testing.T) {
	analysis := []AttractionAnalysis{
		{AttractionID: 1, Name: "Popular Favorite", VisitCount: 100, AvgRating: 9},
		{AttractionID: 2, Name: "Busy But Disliked", VisitCount: 60, AvgRating: 6.5},
		{AttractionID: 3, Name: "Quiet And Disliked", VisitCount: 40, AvgRating: 6},
		{AttractionID: 4, Name: "Never Visited", VisitCount: 0},
	}
	// Mean over visited attractions is (9 + 6.5 + 6) / 3 = 7.17; the
	// underperformer bar is 6.67 with at least 50 visits.

	out := underperformers(analysis)
	if len(out) != 1 {
		t.Fatalf("got %d underperformers, want 1", len(out))
	}
	if out[0].AttractionID != 2 {
		t.Errorf("flagged attraction %d, want 2", out[0].AttractionID)
	}
	if out[0].Issue != "Below average satisfaction" {
		t.Errorf("issue = %q", out[0].Issue)
	}
}

func TestUnderperformersNoVisitedAttractions(t *testing.T) {
	analysis := []AttractionAnalysis{{AttractionID: 1, VisitCount: 0}}
	if out := underperformers(analysis); out != nil {
		t.Errorf("got %v, want nil with no rated attractions", out)
	}
}
