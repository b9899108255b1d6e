package analytics

import (
	"math"

	"tourlytics/internal/records"
	"tourlytics/internal/stats"
)

// Overview is the top-level KPI snapshot of the dataset.
type Overview struct {
	TotalTourists       int     `json:"totalTourists"`
	TotalAttractions    int     `json:"totalAttractions"`
	TotalAccommodations int     `json:"totalAccommodations"`
	TotalVisits         int     `json:"totalVisits"`
	AvgSpending         float64 `json:"avgSpending"`
	AvgDuration         float64 `json:"avgDuration"`
	AvgSatisfaction     float64 `json:"avgSatisfaction"`
	RecommendRate       float64 `json:"recommendRate"`
	GuideUsageRate      float64 `json:"guideUsageRate"`
	TotalRevenue        float64 `json:"totalRevenue"`

	TopNationalities          []stats.LabelCount `json:"topNationalities"`
	SeasonDistribution        []stats.LabelCount `json:"seasonDistribution"`
	PurposeDistribution       []stats.LabelCount `json:"purposeDistribution"`
	AccommodationDistribution []stats.LabelCount `json:"accommodationDistribution"`
	TransportDistribution     []stats.LabelCount `json:"transportDistribution"`
	TopAttractions            []stats.LabelCount `json:"topAttractions"`
}

// BuildOverview computes the dataset KPIs. An empty tourist collection makes
// the whole report impossible.
func BuildOverview(ds *records.Dataset) (*Overview, error) {
	tourists := ds.Tourists

	avgSpending, err := stats.MeanBy(tourists, spending)
	if err != nil {
		return nil, err
	}
	avgDuration, _ := stats.MeanBy(tourists, durationDays)
	avgSatisfaction, _ := stats.MeanBy(tourists, satisfaction)

	visitNames := make([]string, len(ds.Visits))
	for i, v := range ds.Visits {
		visitNames[i] = v.AttractionName
	}

	return &Overview{
		TotalTourists:       len(tourists),
		TotalAttractions:    len(ds.Attractions),
		TotalAccommodations: len(ds.Accommodations),
		TotalVisits:         len(ds.Visits),
		AvgSpending:         math.Round(avgSpending),
		AvgDuration:         stats.Round1(avgDuration),
		AvgSatisfaction:     stats.Round2(avgSatisfaction),
		RecommendRate:       stats.RateBy(tourists, recommends),
		GuideUsageRate:      stats.RateBy(tourists, usesGuide),
		TotalRevenue:        math.Round(stats.SumBy(tourists, spending)),

		TopNationalities:          stats.TopN(nationalities(tourists), 10),
		SeasonDistribution:        stats.Distribution(tourists, func(t records.Tourist) string { return t.Season }),
		PurposeDistribution:       stats.Distribution(tourists, func(t records.Tourist) string { return t.TravelPurpose }),
		AccommodationDistribution: stats.Distribution(tourists, func(t records.Tourist) string { return t.AccommodationType }),
		TransportDistribution:     stats.Distribution(tourists, func(t records.Tourist) string { return t.PrimaryTransport }),
		TopAttractions:            stats.TopN(visitNames, 15),
	}, nil
}

// SpendingMeans holds the mean of each cost component in NPR.
type SpendingMeans struct {
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Shopping      float64 `json:"shopping"`
	Activities    float64 `json:"activities"`
	Transport     float64 `json:"transport"`
	Guide         float64 `json:"guide"`
}

// SpendingBreakdown pairs the component means with their share of the
// summed means.
type SpendingBreakdown struct {
	Breakdown   SpendingMeans `json:"breakdown"`
	Percentages SpendingMeans `json:"percentages"`
}

// BuildSpendingBreakdown averages the six cost components. The guide mean
// covers only tourists who actually paid for a guide; with none present the
// component is zero rather than undefined.
func BuildSpendingBreakdown(ds *records.Dataset) (*SpendingBreakdown, error) {
	tourists := ds.Tourists
	if len(tourists) == 0 {
		return nil, stats.ErrInsufficientData
	}

	meanOf := func(f func(records.Tourist) float64) float64 {
		m, _ := stats.MeanBy(tourists, f)
		return math.Round(m)
	}

	guideMean := 0.0
	var guidePayers []records.Tourist
	for _, t := range tourists {
		if t.GuideCostNPR > 0 {
			guidePayers = append(guidePayers, t)
		}
	}
	if len(guidePayers) > 0 {
		m, _ := stats.MeanBy(guidePayers, func(t records.Tourist) float64 { return t.GuideCostNPR })
		guideMean = math.Round(m)
	}

	breakdown := SpendingMeans{
		Accommodation: meanOf(func(t records.Tourist) float64 { return t.AccommodationCostNPR }),
		Food:          meanOf(func(t records.Tourist) float64 { return t.FoodCostNPR }),
		Shopping:      meanOf(func(t records.Tourist) float64 { return t.ShoppingCostNPR }),
		Activities:    meanOf(func(t records.Tourist) float64 { return t.ActivitiesCostNPR }),
		Transport:     meanOf(func(t records.Tourist) float64 { return t.TransportCostNPR }),
		Guide:         guideMean,
	}

	total := breakdown.Accommodation + breakdown.Food + breakdown.Shopping +
		breakdown.Activities + breakdown.Transport + breakdown.Guide

	share := func(v float64) float64 {
		if total == 0 {
			return 0
		}
		return stats.Round1(v / total * 100)
	}

	return &SpendingBreakdown{
		Breakdown: breakdown,
		Percentages: SpendingMeans{
			Accommodation: share(breakdown.Accommodation),
			Food:          share(breakdown.Food),
			Shopping:      share(breakdown.Shopping),
			Activities:    share(breakdown.Activities),
			Transport:     share(breakdown.Transport),
			Guide:         share(breakdown.Guide),
		},
	}, nil
}

// Shared field accessors used across the report builders.

func spending(t records.Tourist) float64     { return t.TotalSpentNPR }
func durationDays(t records.Tourist) float64 { return float64(t.DurationDays) }
func satisfaction(t records.Tourist) float64 { return t.SatisfactionScore }
func dailySpending(t records.Tourist) float64 {
	return t.TotalSpentNPR / float64(t.DurationDays)
}
func recommends(t records.Tourist) bool { return t.WouldRecommend }
func usesGuide(t records.Tourist) bool  { return t.UsesTourGuide }

func nationalities(tourists []records.Tourist) []string {
	out := make([]string, len(tourists))
	for i, t := range tourists {
		out[i] = t.Nationality
	}
	return out
}

func purposes(tourists []records.Tourist) []string {
	out := make([]string, len(tourists))
	for i, t := range tourists {
		out[i] = t.TravelPurpose
	}
	return out
}
