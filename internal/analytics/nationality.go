package analytics

import (
	"errors"
	"math"
	"sort"
	"strings"

	"tourlytics/internal/records"
	"tourlytics/internal/stats"
)

// ErrNationalityNotFound marks a lookup for a nationality with no records.
var ErrNationalityNotFound = errors.New("nationality not found")

// NationalitySummary is one row of the nationality list.
type NationalitySummary struct {
	Nationality string  `json:"nationality"`
	Count       int     `json:"count"`
	MarketShare float64 `json:"marketShare"`
	AvgSpending float64 `json:"avgSpending"`
}

// NationalityDetail is the full per-market profile.
type NationalityDetail struct {
	Nationality     string  `json:"nationality"`
	Count           int     `json:"count"`
	MarketShare     float64 `json:"marketShare"`
	AvgSpending     float64 `json:"avgSpending"`
	AvgDuration     float64 `json:"avgDuration"`
	AvgSatisfaction float64 `json:"avgSatisfaction"`
	RecommendRate   float64 `json:"recommendRate"`

	AgeDistribution         []AgeGroup         `json:"ageDistribution"`
	PurposeDistribution     []stats.LabelCount `json:"purposeDistribution"`
	AccommodationPreference []stats.LabelCount `json:"accommodationPreference"`
	TransportPreference     []stats.LabelCount `json:"transportPreference"`
	SeasonDistribution      []stats.LabelCount `json:"seasonDistribution"`
	TopAttractions          []stats.LabelCount `json:"topAttractions"`
	SpendingBreakdown       SpendingMeans      `json:"spendingBreakdown"`
}

type AgeGroup struct {
	AgeGroup   string  `json:"ageGroup"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// BuildNationalityList summarizes every nationality, sorted by count
// descending.
func BuildNationalityList(ds *records.Dataset) ([]NationalitySummary, error) {
	tourists := ds.Tourists
	if len(tourists) == 0 {
		return nil, stats.ErrInsufficientData
	}

	groups := stats.GroupBy(tourists, func(t records.Tourist) string { return t.Nationality })
	summaries := make([]NationalitySummary, 0, len(groups))
	for _, g := range groups {
		avgSpend, _ := stats.MeanBy(g.Items, spending)
		summaries = append(summaries, NationalitySummary{
			Nationality: g.Key,
			Count:       len(g.Items),
			MarketShare: stats.Percentage(len(g.Items), len(tourists)),
			AvgSpending: math.Round(avgSpend),
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool { return summaries[i].Count > summaries[j].Count })
	return summaries, nil
}

// BuildNationalityDetail profiles one nationality. The match is
// case-insensitive; an unknown name is ErrNationalityNotFound.
func BuildNationalityDetail(ds *records.Dataset, nationality string) (*NationalityDetail, error) {
	tourists := ds.Tourists
	if len(tourists) == 0 {
		return nil, stats.ErrInsufficientData
	}

	var filtered []records.Tourist
	for _, t := range tourists {
		if strings.EqualFold(t.Nationality, nationality) {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) == 0 {
		return nil, ErrNationalityNotFound
	}

	touristIDs := make(map[int]struct{}, len(filtered))
	for _, t := range filtered {
		touristIDs[t.ID] = struct{}{}
	}
	var visitNames []string
	for _, v := range ds.Visits {
		if _, ok := touristIDs[v.TouristID]; ok {
			visitNames = append(visitNames, v.AttractionName)
		}
	}

	avgSpend, _ := stats.MeanBy(filtered, spending)
	avgDur, _ := stats.MeanBy(filtered, durationDays)
	avgSat, _ := stats.MeanBy(filtered, satisfaction)

	meanOf := func(f func(records.Tourist) float64) float64 {
		m, _ := stats.MeanBy(filtered, f)
		return math.Round(m)
	}

	return &NationalityDetail{
		Nationality:     filtered[0].Nationality,
		Count:           len(filtered),
		MarketShare:     stats.Percentage(len(filtered), len(tourists)),
		AvgSpending:     math.Round(avgSpend),
		AvgDuration:     stats.Round1(avgDur),
		AvgSatisfaction: stats.Round2(avgSat),
		RecommendRate:   stats.RateBy(filtered, recommends),

		AgeDistribution:         ageDistribution(filtered),
		PurposeDistribution:     stats.Distribution(filtered, func(t records.Tourist) string { return t.TravelPurpose }),
		AccommodationPreference: stats.Distribution(filtered, func(t records.Tourist) string { return t.AccommodationType }),
		TransportPreference:     stats.Distribution(filtered, func(t records.Tourist) string { return t.PrimaryTransport }),
		SeasonDistribution:      stats.Distribution(filtered, func(t records.Tourist) string { return t.Season }),
		TopAttractions:          stats.TopN(visitNames, 10),
		SpendingBreakdown: SpendingMeans{
			Accommodation: meanOf(func(t records.Tourist) float64 { return t.AccommodationCostNPR }),
			Food:          meanOf(func(t records.Tourist) float64 { return t.FoodCostNPR }),
			Shopping:      meanOf(func(t records.Tourist) float64 { return t.ShoppingCostNPR }),
			Activities:    meanOf(func(t records.Tourist) float64 { return t.ActivitiesCostNPR }),
			Transport:     meanOf(func(t records.Tourist) float64 { return t.TransportCostNPR }),
		},
	}, nil
}

var ageBuckets = []stats.Bucket{
	{Label: "18-25", Min: 18, Max: 25},
	{Label: "26-35", Min: 26, Max: 35},
	{Label: "36-45", Min: 36, Max: 45},
	{Label: "46-55", Min: 46, Max: 55},
	{Label: "56-65", Min: 56, Max: 65},
	{Label: "65+", Min: 65, Max: 100},
}

func ageDistribution(tourists []records.Tourist) []AgeGroup {
	groups := stats.Bucketize(tourists, func(t records.Tourist) float64 { return float64(t.Age) }, ageBuckets)
	out := make([]AgeGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, AgeGroup{
			AgeGroup:   g.Label,
			Count:      len(g.Items),
			Percentage: stats.Percentage(len(g.Items), len(tourists)),
		})
	}
	return out
}
