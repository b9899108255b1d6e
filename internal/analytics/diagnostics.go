package analytics

import (
	"fmt"
	"math"
	"sort"

	"tourlytics/internal/records"
	"tourlytics/internal/stats"
)

// DiagnosticsReport is the narrative health check over the whole dataset.
type DiagnosticsReport struct {
	SatisfactionDrivers   []SatisfactionDriver    `json:"satisfactionDrivers"`
	SpendingPatterns      []SpendingPattern       `json:"spendingPatterns"`
	SeasonalInsights      []SeasonalInsight       `json:"seasonalInsights"`
	AttractionPerformance []AttractionPerformance `json:"attractionPerformance"`
	MarketOpportunities   []MarketOpportunity     `json:"marketOpportunities"`
}

// SatisfactionDriver is either a binary split or a best/worst comparison.
type SatisfactionDriver struct {
	Factor        string       `json:"factor"`
	WithFactor    float64      `json:"withFactor,omitempty"`
	WithoutFactor float64      `json:"withoutFactor,omitempty"`
	Impact        float64      `json:"impact,omitempty"`
	Best          *SeasonScore `json:"best,omitempty"`
	Worst         *SeasonScore `json:"worst,omitempty"`
	Insight       string       `json:"insight"`
}

type SeasonScore struct {
	Season       string  `json:"season"`
	Satisfaction float64 `json:"satisfaction"`
}

type SpendingPattern struct {
	Segment         string                 `json:"segment"`
	Count           int                    `json:"count"`
	Percentage      float64                `json:"percentage"`
	Characteristics PatternCharacteristics `json:"characteristics"`
}

type PatternCharacteristics struct {
	AvgDuration      float64            `json:"avgDuration"`
	TopNationalities []stats.LabelCount `json:"topNationalities"`
	GuideUsage       float64            `json:"guideUsage"`
}

type SeasonalInsight struct {
	Season          string  `json:"season"`
	Visitors        int     `json:"visitors"`
	AvgSpending     float64 `json:"avgSpending"`
	AvgSatisfaction float64 `json:"avgSatisfaction"`
	RecommendRate   float64 `json:"recommendRate"`
	Insight         string  `json:"insight"`
}

type AttractionPerformance struct {
	AttractionID int     `json:"attractionId"`
	Name         string  `json:"name"`
	City         string  `json:"city"`
	Category     string  `json:"category"`
	VisitCount   int     `json:"visitCount"`
	AvgRating    float64 `json:"avgRating"`
	Performance  string  `json:"performance"`
}

type MarketOpportunity struct {
	Type           string  `json:"type"`
	Nationality    string  `json:"nationality,omitempty"`
	Season         string  `json:"season,omitempty"`
	CurrentShare   float64 `json:"currentShare,omitempty"`
	Satisfaction   float64 `json:"satisfaction,omitempty"`
	AvgSpending    float64 `json:"avgSpending,omitempty"`
	AvgDailySpend  float64 `json:"avgDailySpend,omitempty"`
	Insight        string  `json:"insight,omitempty"`
	Recommendation string  `json:"recommendation"`
}

// BuildDiagnostics assembles every diagnostic section.
func BuildDiagnostics(ds *records.Dataset) (*DiagnosticsReport, error) {
	tourists := ds.Tourists
	if len(tourists) == 0 {
		return nil, stats.ErrInsufficientData
	}

	return &DiagnosticsReport{
		SatisfactionDrivers:   satisfactionDrivers(tourists),
		SpendingPatterns:      spendingPatterns(tourists),
		SeasonalInsights:      seasonalInsights(tourists),
		AttractionPerformance: attractionPerformance(ds.Visits, ds.Attractions),
		MarketOpportunities:   marketOpportunities(tourists),
	}, nil
}

func satisfactionDrivers(tourists []records.Tourist) []SatisfactionDriver {
	var drivers []SatisfactionDriver

	var withGuide, withoutGuide []records.Tourist
	for _, t := range tourists {
		if t.UsesTourGuide {
			withGuide = append(withGuide, t)
		} else {
			withoutGuide = append(withoutGuide, t)
		}
	}
	if len(withGuide) > 0 && len(withoutGuide) > 0 {
		withSat, _ := stats.MeanBy(withGuide, satisfaction)
		withoutSat, _ := stats.MeanBy(withoutGuide, satisfaction)
		drivers = append(drivers, SatisfactionDriver{
			Factor:        "Tour Guide Usage",
			WithFactor:    stats.Round2(withSat),
			WithoutFactor: stats.Round2(withoutSat),
			Impact:        stats.Round2(withSat - withoutSat),
			Insight:       "Tour guides significantly boost satisfaction through expertise and convenience",
		})
	}

	groups := stats.GroupBy(tourists, func(t records.Tourist) string { return t.Season })
	scores := make([]SeasonScore, 0, len(groups))
	for _, g := range groups {
		avg, err := stats.MeanBy(g.Items, satisfaction)
		if err != nil {
			continue
		}
		scores = append(scores, SeasonScore{Season: g.Key, Satisfaction: stats.Round2(avg)})
	}
	if len(scores) > 0 {
		sort.SliceStable(scores, func(i, j int) bool { return scores[i].Satisfaction > scores[j].Satisfaction })
		best := scores[0]
		worst := scores[len(scores)-1]
		drivers = append(drivers, SatisfactionDriver{
			Factor:  "Season",
			Best:    &best,
			Worst:   &worst,
			Insight: fmt.Sprintf("%s provides best experience, %s needs improvement", best.Season, worst.Season),
		})
	}

	return drivers
}

func spendingPatterns(tourists []records.Tourist) []SpendingPattern {
	avgSpend, err := stats.MeanBy(tourists, spending)
	if err != nil {
		return nil
	}

	var high, low []records.Tourist
	for _, t := range tourists {
		switch {
		case t.TotalSpentNPR > avgSpend*1.5:
			high = append(high, t)
		case t.TotalSpentNPR < avgSpend*0.5:
			low = append(low, t)
		}
	}

	patterns := make([]SpendingPattern, 0, 2)
	patterns = append(patterns, spendingPattern("High Spenders (>1.5x average)", high, len(tourists)))
	patterns = append(patterns, spendingPattern("Budget Travelers (<0.5x average)", low, len(tourists)))
	return patterns
}

func spendingPattern(segment string, group []records.Tourist, total int) SpendingPattern {
	pattern := SpendingPattern{
		Segment:    segment,
		Count:      len(group),
		Percentage: stats.Percentage(len(group), total),
	}
	if len(group) > 0 {
		avgDur, _ := stats.MeanBy(group, durationDays)
		pattern.Characteristics = PatternCharacteristics{
			AvgDuration:      stats.Round1(avgDur),
			TopNationalities: stats.TopN(nationalities(group), 3),
			GuideUsage:       stats.RateBy(group, usesGuide),
		}
	}
	return pattern
}

// seasonalInsightText is keyed on the four local seasons; unknown season
// labels get no narrative.
func seasonalInsightText(season string) string {
	switch season {
	case "Autumn":
		return "Peak season with highest tourist volume and spending"
	case "Spring":
		return "Second peak with pleasant weather and festivals"
	case "Monsoon":
		return "Low season with reduced prices - opportunity for long-stay visitors"
	case "Winter":
		return "Moderate season with clear mountain views"
	}
	return ""
}

func seasonalInsights(tourists []records.Tourist) []SeasonalInsight {
	groups := stats.GroupBy(tourists, func(t records.Tourist) string { return t.Season })

	insights := make([]SeasonalInsight, 0, len(groups))
	for _, g := range groups {
		avgSpend, err := stats.MeanBy(g.Items, spending)
		if err != nil {
			continue
		}
		avgSat, _ := stats.MeanBy(g.Items, satisfaction)
		insights = append(insights, SeasonalInsight{
			Season:          g.Key,
			Visitors:        len(g.Items),
			AvgSpending:     math.Round(avgSpend),
			AvgSatisfaction: stats.Round2(avgSat),
			RecommendRate:   stats.RateBy(g.Items, recommends),
			Insight:         seasonalInsightText(g.Key),
		})
	}
	return insights
}

func attractionPerformance(visits []records.Visit, attractions []records.Attraction) []AttractionPerformance {
	byAttraction := make(map[int][]records.Visit)
	for _, v := range visits {
		byAttraction[v.AttractionID] = append(byAttraction[v.AttractionID], v)
	}

	performance := make([]AttractionPerformance, 0, len(attractions))
	for _, attr := range attractions {
		attrVisits := byAttraction[attr.ID]
		var avgRating float64
		if len(attrVisits) > 0 {
			avgRating, _ = stats.MeanBy(attrVisits, func(v records.Visit) float64 { return v.VisitRating })
		}
		performance = append(performance, AttractionPerformance{
			AttractionID: attr.ID,
			Name:         attr.Name,
			City:         attr.City,
			Category:     attr.Category,
			VisitCount:   len(attrVisits),
			AvgRating:    stats.Round2(avgRating),
			Performance:  classifyPerformance(avgRating),
		})
	}

	sort.SliceStable(performance, func(i, j int) bool { return performance[i].VisitCount > performance[j].VisitCount })
	if len(performance) > 20 {
		performance = performance[:20]
	}
	return performance
}

func classifyPerformance(avgRating float64) string {
	switch {
	case avgRating > 8:
		return "Excellent"
	case avgRating > 7:
		return "Good"
	case avgRating > 6:
		return "Average"
	default:
		return "Needs Improvement"
	}
}

func marketOpportunities(tourists []records.Tourist) []MarketOpportunity {
	var opportunities []MarketOpportunity

	groups := stats.GroupBy(tourists, func(t records.Tourist) string { return t.Nationality })
	for _, g := range groups {
		share := float64(len(g.Items)) / float64(len(tourists)) * 100
		avgSat, _ := stats.MeanBy(g.Items, satisfaction)
		avgSpend, _ := stats.MeanBy(g.Items, spending)

		if share < 5 && avgSat > 7.5 && avgSpend > 50000 {
			opportunities = append(opportunities, MarketOpportunity{
				Type:           "Underserved High-Value Market",
				Nationality:    g.Key,
				CurrentShare:   stats.Round1(share),
				Satisfaction:   stats.Round2(avgSat),
				AvgSpending:    math.Round(avgSpend),
				Recommendation: fmt.Sprintf("Increase marketing to %s market - high satisfaction and spending potential", g.Key),
			})
		}
	}

	var monsoon []records.Tourist
	for _, t := range tourists {
		if t.Season == "Monsoon" {
			monsoon = append(monsoon, t)
		}
	}
	if len(monsoon) > 0 {
		dailySpend, _ := stats.MeanBy(monsoon, dailySpending)
		opportunities = append(opportunities, MarketOpportunity{
			Type:           "Seasonal Opportunity",
			Season:         "Monsoon",
			Insight:        "Lower volume but longer stays",
			AvgDailySpend:  math.Round(dailySpend),
			Recommendation: "Create monsoon packages with indoor activities, cultural experiences",
		})
	}

	return opportunities
}
