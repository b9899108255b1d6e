package vendors

import (
	"math"
	"sort"
	"strings"

	"tourlytics/internal/records"
	"tourlytics/internal/stats"
)

// FoodReport is the restaurant-vendor view of food spending.
type FoodReport struct {
	ByNationality   []NationalityFoodSpending `json:"byNationality"`
	ByPurpose       []PurposeFoodSpending     `json:"byPurpose"`
	BySeason        []SeasonFoodSpending      `json:"bySeason"`
	Recommendations []FoodRecommendation      `json:"recommendations"`
}

type NationalityFoodSpending struct {
	Nationality      string  `json:"nationality"`
	Count            int     `json:"count"`
	AvgTotalFood     float64 `json:"avgTotalFood"`
	AvgDailyFood     float64 `json:"avgDailyFood"`
	AvgDuration      float64 `json:"avgDuration"`
	TotalFoodRevenue float64 `json:"totalFoodRevenue"`
	MarketShare      float64 `json:"marketShare"`
}

type PurposeFoodSpending struct {
	Purpose          string  `json:"purpose"`
	Count            int     `json:"count"`
	AvgDailyFood     float64 `json:"avgDailyFood"`
	TotalFoodRevenue float64 `json:"totalFoodRevenue"`
}

type SeasonFoodSpending struct {
	Season           string  `json:"season"`
	Count            int     `json:"count"`
	AvgDailyFood     float64 `json:"avgDailyFood"`
	TotalFoodRevenue float64 `json:"totalFoodRevenue"`
}

type FoodRecommendation struct {
	Segment         string   `json:"segment"`
	Nationalities   string   `json:"nationalities,omitempty"`
	Count           int      `json:"count,omitempty"`
	AvgDailyBudget  float64  `json:"avgDailyBudget,omitempty"`
	Recommendation  string   `json:"recommendation"`
	MenuSuggestions []string `json:"menuSuggestions"`
}

const (
	premiumDailyFoodFloor  = 1500
	budgetDailyFoodCeiling = 800
	budgetSegmentMinCount  = 100
)

func dailyFood(t records.Tourist) float64 {
	return t.FoodCostNPR / float64(t.DurationDays)
}

// BuildFoodReport breaks food spending down by nationality, travel purpose,
// and season.
func BuildFoodReport(ds *records.Dataset) (*FoodReport, error) {
	tourists := ds.Tourists
	if len(tourists) == 0 {
		return nil, stats.ErrInsufficientData
	}

	byNationality := stats.GroupBy(tourists, func(t records.Tourist) string { return t.Nationality })
	nationality := make([]NationalityFoodSpending, 0, len(byNationality))
	for _, g := range byNationality {
		avgTotal, _ := stats.MeanBy(g.Items, func(t records.Tourist) float64 { return t.FoodCostNPR })
		avgDaily, _ := stats.MeanBy(g.Items, dailyFood)
		avgDur, _ := stats.MeanBy(g.Items, durationDays)
		nationality = append(nationality, NationalityFoodSpending{
			Nationality:      g.Key,
			Count:            len(g.Items),
			AvgTotalFood:     math.Round(avgTotal),
			AvgDailyFood:     math.Round(avgDaily),
			AvgDuration:      stats.Round1(avgDur),
			TotalFoodRevenue: math.Round(stats.SumBy(g.Items, func(t records.Tourist) float64 { return t.FoodCostNPR })),
			MarketShare:      stats.Percentage(len(g.Items), len(tourists)),
		})
	}
	sort.SliceStable(nationality, func(i, j int) bool { return nationality[i].AvgDailyFood > nationality[j].AvgDailyFood })

	byPurpose := stats.GroupBy(tourists, func(t records.Tourist) string { return t.TravelPurpose })
	purpose := make([]PurposeFoodSpending, 0, len(byPurpose))
	for _, g := range byPurpose {
		avgDaily, _ := stats.MeanBy(g.Items, dailyFood)
		purpose = append(purpose, PurposeFoodSpending{
			Purpose:          g.Key,
			Count:            len(g.Items),
			AvgDailyFood:     math.Round(avgDaily),
			TotalFoodRevenue: math.Round(stats.SumBy(g.Items, func(t records.Tourist) float64 { return t.FoodCostNPR })),
		})
	}
	sort.SliceStable(purpose, func(i, j int) bool { return purpose[i].AvgDailyFood > purpose[j].AvgDailyFood })

	bySeason := stats.GroupBy(tourists, func(t records.Tourist) string { return t.Season })
	season := make([]SeasonFoodSpending, 0, len(bySeason))
	for _, g := range bySeason {
		avgDaily, _ := stats.MeanBy(g.Items, dailyFood)
		season = append(season, SeasonFoodSpending{
			Season:           g.Key,
			Count:            len(g.Items),
			AvgDailyFood:     math.Round(avgDaily),
			TotalFoodRevenue: math.Round(stats.SumBy(g.Items, func(t records.Tourist) float64 { return t.FoodCostNPR })),
		})
	}

	return &FoodReport{
		ByNationality:   nationality,
		ByPurpose:       purpose,
		BySeason:        season,
		Recommendations: foodRecommendations(nationality, purpose),
	}, nil
}

func foodRecommendations(nationality []NationalityFoodSpending, purpose []PurposeFoodSpending) []FoodRecommendation {
	var recommendations []FoodRecommendation

	var premium []NationalityFoodSpending
	for _, n := range nationality {
		if n.AvgDailyFood > premiumDailyFoodFloor {
			premium = append(premium, n)
		}
	}
	if len(premium) > 0 {
		recommendations = append(recommendations, FoodRecommendation{
			Segment:        "Premium Diners",
			Nationalities:  joinNationalities(premium),
			AvgDailyBudget: segmentDailyBudget(premium),
			Recommendation: "Offer premium dining experiences, international cuisine options",
			MenuSuggestions: []string{
				"Fine dining set menus",
				"Wine pairing options",
				"Authentic local cuisine with premium presentation",
			},
		})
	}

	var budget []NationalityFoodSpending
	for _, n := range nationality {
		if n.AvgDailyFood < budgetDailyFoodCeiling && n.Count > budgetSegmentMinCount {
			budget = append(budget, n)
		}
	}
	if len(budget) > 0 {
		recommendations = append(recommendations, FoodRecommendation{
			Segment:        "Budget Conscious",
			Nationalities:  joinNationalities(budget),
			AvgDailyBudget: segmentDailyBudget(budget),
			Recommendation: "Value meals, set lunch specials, local authentic options",
			MenuSuggestions: []string{
				"Dal Bhat combos",
				"Momo platters",
				"Thali meals",
				"Budget breakfast sets",
			},
		})
	}

	for _, p := range purpose {
		if p.Purpose == "Pilgrimage" {
			recommendations = append(recommendations, FoodRecommendation{
				Segment:        "Pilgrimage Travelers",
				Count:          p.Count,
				Recommendation: "Vegetarian options, pure/satvik food, temple vicinity locations",
				MenuSuggestions: []string{
					"Pure vegetarian thali",
					"No onion/garlic options",
					"Traditional sweets",
					"Fresh fruit juices",
				},
			})
			break
		}
	}

	return recommendations
}

func joinNationalities(segment []NationalityFoodSpending) string {
	names := make([]string, len(segment))
	for i, n := range segment {
		names[i] = n.Nationality
	}
	return strings.Join(names, ", ")
}

func segmentDailyBudget(segment []NationalityFoodSpending) float64 {
	m, _ := stats.MeanBy(segment, func(n NationalityFoodSpending) float64 { return n.AvgDailyFood })
	return math.Round(m)
}
