package vendors

import (
	"fmt"
	"math"
	"sort"

	"tourlytics/internal/records"
	"tourlytics/internal/stats"
)

// AccommodationReport is the hotel-operator view of the dataset.
type AccommodationReport struct {
	TypeAnalysis         []AccommodationTypeAnalysis `json:"typeAnalysis"`
	RevenueByType        []AccommodationRevenue      `json:"revenueByType"`
	PriceRecommendations []PriceRecommendation       `json:"priceRecommendations"`
	LocationInsights     []LocationInsight           `json:"locationInsights"`
}

type AccommodationTypeAnalysis struct {
	Type                 string                    `json:"type"`
	TouristCount         int                       `json:"touristCount"`
	MarketShare          float64                   `json:"marketShare"`
	AvgSpending          float64                   `json:"avgSpending"`
	AvgAccommodationCost float64                   `json:"avgAccommodationCost"`
	AvgNightlyRate       float64                   `json:"avgNightlyRate"`
	AvgDuration          float64                   `json:"avgDuration"`
	AvgSatisfaction      float64                   `json:"avgSatisfaction"`
	TopNationalities     []stats.LabelCount        `json:"topNationalities"`
	TopPurposes          []stats.LabelCount        `json:"topPurposes"`
	SeasonalDistribution []stats.LabelCount        `json:"seasonalDistribution"`
	Diagnostics          []AccommodationDiagnostic `json:"diagnostics"`
}

type AccommodationDiagnostic struct {
	Issue     string `json:"issue"`
	Value     string `json:"value"`
	Benchmark string `json:"benchmark,omitempty"`
	Reason    string `json:"reason"`
	Action    string `json:"action"`
}

type AccommodationRevenue struct {
	Type         string  `json:"type"`
	TotalRevenue float64 `json:"totalRevenue"`
	RevenueShare float64 `json:"revenueShare"`
}

// PriceRecommendation bands nightly pricing around what guests of a type
// actually spend per night. The daily budget stays in USD as reported by
// the tourists; everything else is NPR.
type PriceRecommendation struct {
	Type               string     `json:"type"`
	AvgDailyBudgetUSD  float64    `json:"avgDailyBudgetUsd"`
	AvgDailyAccomSpend float64    `json:"avgDailyAccomSpend"`
	CurrentMarketPrice float64    `json:"currentMarketPrice"`
	RecommendedRange   PriceRange `json:"recommendedRange"`
	Insight            string     `json:"insight"`
}

type PriceRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

type LocationInsight struct {
	City             string             `json:"city"`
	TouristCount     int                `json:"touristCount"`
	MarketShare      float64            `json:"marketShare"`
	AvgSpending      float64            `json:"avgSpending"`
	AvgSatisfaction  float64            `json:"avgSatisfaction"`
	TopNationalities []stats.LabelCount `json:"topNationalities"`
	TopPurposes      []stats.LabelCount `json:"topPurposes"`
}

// BuildAccommodationReport analyzes guests per accommodation type, joined
// against the accommodation catalog on hotel type.
func BuildAccommodationReport(ds *records.Dataset) (*AccommodationReport, error) {
	tourists := ds.Tourists
	if len(tourists) == 0 {
		return nil, stats.ErrInsufficientData
	}

	overallSat, _ := stats.MeanBy(tourists, satisfaction)
	byType := stats.GroupBy(tourists, func(t records.Tourist) string { return t.AccommodationType })

	analysis := make([]AccommodationTypeAnalysis, 0, len(byType))
	for _, g := range byType {
		avgSpend, _ := stats.MeanBy(g.Items, spending)
		avgAccomCost, _ := stats.MeanBy(g.Items, func(t records.Tourist) float64 { return t.AccommodationCostNPR })
		avgDur, _ := stats.MeanBy(g.Items, durationDays)
		avgSat, _ := stats.MeanBy(g.Items, satisfaction)

		analysis = append(analysis, AccommodationTypeAnalysis{
			Type:                 g.Key,
			TouristCount:         len(g.Items),
			MarketShare:          stats.Percentage(len(g.Items), len(tourists)),
			AvgSpending:          math.Round(avgSpend),
			AvgAccommodationCost: math.Round(avgAccomCost),
			AvgNightlyRate:       catalogNightlyRate(ds.Accommodations, g.Key),
			AvgDuration:          stats.Round1(avgDur),
			AvgSatisfaction:      stats.Round2(avgSat),
			TopNationalities:     stats.TopN(nationalities(g.Items), 5),
			TopPurposes:          stats.TopN(purposes(g.Items), 3),
			SeasonalDistribution: stats.Distribution(g.Items, func(t records.Tourist) string { return t.Season }),
			Diagnostics:          accommodationDiagnostics(g.Key, g.Items, overallSat),
		})
	}
	sort.SliceStable(analysis, func(i, j int) bool { return analysis[i].TouristCount > analysis[j].TouristCount })

	return &AccommodationReport{
		TypeAnalysis:         analysis,
		RevenueByType:        revenueByType(analysis),
		PriceRecommendations: priceRecommendations(byType, ds.Accommodations),
		LocationInsights:     locationInsights(tourists),
	}, nil
}

func catalogNightlyRate(accommodations []records.Accommodation, hotelType string) float64 {
	var matching []records.Accommodation
	for _, a := range accommodations {
		if a.HotelType == hotelType {
			matching = append(matching, a)
		}
	}
	if len(matching) == 0 {
		return 0
	}
	m, _ := stats.MeanBy(matching, func(a records.Accommodation) float64 { return a.PricePerNight })
	return math.Round(m)
}

func accommodationDiagnostics(hotelType string, group []records.Tourist, overallSat float64) []AccommodationDiagnostic {
	var diagnostics []AccommodationDiagnostic

	avgSat, _ := stats.MeanBy(group, satisfaction)
	if avgSat < overallSat-0.3 {
		diagnostics = append(diagnostics, AccommodationDiagnostic{
			Issue:     "Below average satisfaction",
			Value:     fmt.Sprintf("%.2f", avgSat),
			Benchmark: fmt.Sprintf("%.2f", overallSat),
			Reason:    fmt.Sprintf("%s guests report lower satisfaction. Common issues: amenities, service quality, value perception.", hotelType),
			Action:    "Review guest feedback, improve service touchpoints, consider amenity upgrades.",
		})
	}

	guideRate := stats.RateBy(group, usesGuide)
	if guideRate < 30 {
		diagnostics = append(diagnostics, AccommodationDiagnostic{
			Issue:  "Low guide usage",
			Value:  fmt.Sprintf("%.1f%%", guideRate),
			Reason: "Guests may be unaware of guide services or find them too expensive.",
			Action: "Partner with local guides, offer package deals with guided tours.",
		})
	}

	recommendRate := stats.RateBy(group, recommends)
	if recommendRate < 60 {
		diagnostics = append(diagnostics, AccommodationDiagnostic{
			Issue:  "Low recommendation rate",
			Value:  fmt.Sprintf("%.1f%%", recommendRate),
			Reason: "Guests are not enthusiastic about recommending. Service or value issues.",
			Action: "Implement guest satisfaction program, follow up on feedback.",
		})
	}

	return diagnostics
}

func revenueByType(analysis []AccommodationTypeAnalysis) []AccommodationRevenue {
	revenues := make([]AccommodationRevenue, 0, len(analysis))
	var total float64
	for _, a := range analysis {
		revenue := math.Round(a.AvgAccommodationCost * float64(a.TouristCount))
		total += revenue
		revenues = append(revenues, AccommodationRevenue{Type: a.Type, TotalRevenue: revenue})
	}
	for i := range revenues {
		if total > 0 {
			revenues[i].RevenueShare = stats.Round1(revenues[i].TotalRevenue / total * 100)
		}
	}
	return revenues
}

func priceRecommendations(byType []stats.Group[records.Tourist], accommodations []records.Accommodation) []PriceRecommendation {
	recommendations := make([]PriceRecommendation, 0, len(byType))
	for _, g := range byType {
		avgBudget, _ := stats.MeanBy(g.Items, func(t records.Tourist) float64 { return t.DailyBudgetUSD })
		avgAccomSpend, _ := stats.MeanBy(g.Items, func(t records.Tourist) float64 {
			return t.AccommodationCostNPR / float64(t.DurationDays)
		})
		marketPrice := catalogNightlyRate(accommodations, g.Key)

		insight := "Pricing is well-aligned with demand"
		switch {
		case marketPrice > avgAccomSpend*1.2:
			insight = "Market prices may be too high for this segment"
		case marketPrice < avgAccomSpend*0.8:
			insight = "Opportunity to increase prices"
		}

		recommendations = append(recommendations, PriceRecommendation{
			Type:               g.Key,
			AvgDailyBudgetUSD:  math.Round(avgBudget),
			AvgDailyAccomSpend: math.Round(avgAccomSpend),
			CurrentMarketPrice: marketPrice,
			RecommendedRange: PriceRange{
				Low:  math.Round(avgAccomSpend * 0.85),
				High: math.Round(avgAccomSpend * 1.15),
			},
			Insight: insight,
		})
	}
	return recommendations
}

func locationInsights(tourists []records.Tourist) []LocationInsight {
	byCity := stats.GroupBy(tourists, func(t records.Tourist) string { return t.AccommodationCity })

	insights := make([]LocationInsight, 0, len(byCity))
	for _, g := range byCity {
		avgSpend, _ := stats.MeanBy(g.Items, spending)
		avgSat, _ := stats.MeanBy(g.Items, satisfaction)
		insights = append(insights, LocationInsight{
			City:             g.Key,
			TouristCount:     len(g.Items),
			MarketShare:      stats.Percentage(len(g.Items), len(tourists)),
			AvgSpending:      math.Round(avgSpend),
			AvgSatisfaction:  stats.Round2(avgSat),
			TopNationalities: stats.TopN(nationalities(g.Items), 3),
			TopPurposes:      stats.TopN(purposes(g.Items), 3),
		})
	}
	sort.SliceStable(insights, func(i, j int) bool { return insights[i].TouristCount > insights[j].TouristCount })
	return insights
}

// Shared accessors for the vendor views.

func spending(t records.Tourist) float64     { return t.TotalSpentNPR }
func durationDays(t records.Tourist) float64 { return float64(t.DurationDays) }
func satisfaction(t records.Tourist) float64 { return t.SatisfactionScore }
func recommends(t records.Tourist) bool      { return t.WouldRecommend }
func usesGuide(t records.Tourist) bool       { return t.UsesTourGuide }

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
