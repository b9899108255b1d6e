package analytics

import (
	"fmt"
	"math"
	"sort"

	"tourlytics/internal/records"
	"tourlytics/internal/stats"
)

// RegressionReport bundles every factor analysis over the tourist records.
type RegressionReport struct {
	SpendingFactors     SpendingFactors        `json:"spendingFactors"`
	SatisfactionFactors []SatisfactionFactor   `json:"satisfactionFactors"`
	DurationImpact      []DurationBucketImpact `json:"durationImpact"`
	NationalitySpending []NationalityAggregate `json:"nationalitySpending"`
	PredictiveInsights  []PredictiveInsight    `json:"predictiveInsights"`
}

// SpendingFactor is one correlation between a numeric attribute and total
// spending, classified by an impact rule table.
type SpendingFactor struct {
	Factor      string  `json:"factor"`
	Correlation float64 `json:"correlation"`
	Impact      string  `json:"impact"`
	Insight     string  `json:"insight"`
}

// RegressionLine is the OLS fit of spending on stay duration.
type RegressionLine struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	Equation  string  `json:"equation"`
}

type SpendingFactors struct {
	Factors    []SpendingFactor `json:"factors"`
	Regression RegressionLine   `json:"regression"`
}

// SatisfactionFactor is either a binary split (WithFactor/WithoutFactor set)
// or a categorical breakdown (Breakdown set), never both.
type SatisfactionFactor struct {
	Factor        string                 `json:"factor"`
	WithFactor    float64                `json:"withFactor,omitempty"`
	WithoutFactor float64                `json:"withoutFactor,omitempty"`
	Difference    float64                `json:"difference,omitempty"`
	Breakdown     []CategorySatisfaction `json:"breakdown,omitempty"`
	Insight       string                 `json:"insight"`
}

type CategorySatisfaction struct {
	Category        string  `json:"category"`
	AvgSatisfaction float64 `json:"avgSatisfaction"`
	Count           int     `json:"count"`
}

// DurationBucketImpact summarizes one stay-length bucket. Empty buckets are
// omitted from the report.
type DurationBucketImpact struct {
	Duration         string  `json:"duration"`
	Count            int     `json:"count"`
	AvgSpending      float64 `json:"avgSpending"`
	AvgDailySpending float64 `json:"avgDailySpending"`
	AvgSatisfaction  float64 `json:"avgSatisfaction"`
	RecommendRate    float64 `json:"recommendRate"`
}

type NationalityAggregate struct {
	Nationality      string  `json:"nationality"`
	Count            int     `json:"count"`
	MarketShare      float64 `json:"marketShare"`
	AvgSpending      float64 `json:"avgSpending"`
	AvgDuration      float64 `json:"avgDuration"`
	AvgSatisfaction  float64 `json:"avgSatisfaction"`
	TopPurpose       string  `json:"topPurpose"`
	TopAccommodation string  `json:"topAccommodation"`
	GuideUsageRate   float64 `json:"guideUsageRate"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

type PredictiveInsight struct {
	Type           string         `json:"type"`
	Title          string         `json:"title"`
	Profile        InsightProfile `json:"profile"`
	Recommendation string         `json:"recommendation"`
}

type InsightProfile struct {
	Count            int                `json:"count,omitempty"`
	Percentage       float64            `json:"percentage,omitempty"`
	AvgAge           float64            `json:"avgAge,omitempty"`
	AvgDuration      float64            `json:"avgDuration,omitempty"`
	AvgSpending      float64            `json:"avgSpending,omitempty"`
	GuideUsageRate   float64            `json:"guideUsageRate,omitempty"`
	TopNationalities []stats.LabelCount `json:"topNationalities,omitempty"`
	TopPurposes      []stats.LabelCount `json:"topPurposes,omitempty"`
}

const (
	highValueSpendingThreshold = 80000
	atRiskSatisfactionCeiling  = 6.0
)

// BuildRegressionReport runs the four correlation factors, the satisfaction
// splits, the duration-bucket table, the per-nationality aggregates, and the
// predictive profiles.
func BuildRegressionReport(ds *records.Dataset) (*RegressionReport, error) {
	tourists := ds.Tourists
	if len(tourists) < 2 {
		return nil, stats.ErrInsufficientData
	}

	spendingFactors, err := analyzeSpendingFactors(tourists)
	if err != nil {
		return nil, err
	}

	return &RegressionReport{
		SpendingFactors:     *spendingFactors,
		SatisfactionFactors: analyzeSatisfactionFactors(tourists),
		DurationImpact:      analyzeDurationImpact(tourists),
		NationalitySpending: analyzeNationalitySpending(tourists),
		PredictiveInsights:  buildPredictiveInsights(tourists),
	}, nil
}

func analyzeSpendingFactors(tourists []records.Tourist) (*SpendingFactors, error) {
	spend := make([]float64, len(tourists))
	durations := make([]float64, len(tourists))
	groupSizes := make([]float64, len(tourists))
	ages := make([]float64, len(tourists))
	attractions := make([]float64, len(tourists))
	for i, t := range tourists {
		spend[i] = t.TotalSpentNPR
		durations[i] = float64(t.DurationDays)
		groupSizes[i] = float64(t.GroupSize)
		ages[i] = float64(t.Age)
		attractions[i] = float64(t.AttractionsVisited)
	}

	var factors []SpendingFactor

	if corr, err := stats.Correlation(durations, spend); err == nil {
		avgDaily, _ := stats.MeanBy(tourists, dailySpending)
		impact := "Weak"
		switch {
		case corr > 0.5:
			impact = "Strong Positive"
		case corr > 0.3:
			impact = "Moderate Positive"
		}
		factors = append(factors, SpendingFactor{
			Factor:      "Duration (days)",
			Correlation: stats.Round3(corr),
			Impact:      impact,
			Insight:     fmt.Sprintf("Each additional day adds approximately NPR %.0f to spending", math.Round(avgDaily)),
		})
	}

	if corr, err := stats.Correlation(groupSizes, spend); err == nil {
		impact := "Minimal"
		switch {
		case corr > 0.3:
			impact = "Positive"
		case corr < -0.1:
			impact = "Negative"
		}
		factors = append(factors, SpendingFactor{
			Factor:      "Group Size",
			Correlation: stats.Round3(corr),
			Impact:      impact,
			Insight:     "Larger groups tend to spend more on group activities but may seek budget options per person",
		})
	}

	if corr, err := stats.Correlation(ages, spend); err == nil {
		impact := "Weak"
		if corr > 0.2 {
			impact = "Moderate Positive"
		}
		factors = append(factors, SpendingFactor{
			Factor:      "Age",
			Correlation: stats.Round3(corr),
			Impact:      impact,
			Insight:     "Older tourists tend to have higher budgets and preference for comfort",
		})
	}

	if corr, err := stats.Correlation(attractions, spend); err == nil {
		impact := "Moderate"
		if corr > 0.4 {
			impact = "Strong Positive"
		}
		factors = append(factors, SpendingFactor{
			Factor:      "Attractions Visited",
			Correlation: stats.Round3(corr),
			Impact:      impact,
			Insight:     "More attractions = higher activity costs and entry fees",
		})
	}

	slope, intercept, err := stats.LinearRegression(durations, spend)
	if err != nil {
		return nil, err
	}

	return &SpendingFactors{
		Factors: factors,
		Regression: RegressionLine{
			Slope:     stats.Round2(slope),
			Intercept: stats.Round2(intercept),
			Equation:  fmt.Sprintf("Spending = %.0f × Days + %.0f", slope, intercept),
		},
	}, nil
}

func analyzeSatisfactionFactors(tourists []records.Tourist) []SatisfactionFactor {
	var factors []SatisfactionFactor

	var withGuide, withoutGuide []records.Tourist
	for _, t := range tourists {
		if t.UsesTourGuide {
			withGuide = append(withGuide, t)
		} else {
			withoutGuide = append(withoutGuide, t)
		}
	}
	// The split is only meaningful when both sides have members.
	if len(withGuide) > 0 && len(withoutGuide) > 0 {
		withSat, _ := stats.MeanBy(withGuide, satisfaction)
		withoutSat, _ := stats.MeanBy(withoutGuide, satisfaction)
		factors = append(factors, SatisfactionFactor{
			Factor:        "Tour Guide Usage",
			WithFactor:    stats.Round2(withSat),
			WithoutFactor: stats.Round2(withoutSat),
			Difference:    stats.Round2(withSat - withoutSat),
			Insight:       "Tour guides significantly improve satisfaction through expert knowledge and convenience",
		})
	}

	factors = append(factors, SatisfactionFactor{
		Factor:    "Accommodation Type",
		Breakdown: satisfactionBreakdown(tourists, func(t records.Tourist) string { return t.AccommodationType }),
		Insight:   "Higher-end accommodations correlate with better satisfaction",
	})

	factors = append(factors, SatisfactionFactor{
		Factor:    "Season",
		Breakdown: satisfactionBreakdown(tourists, func(t records.Tourist) string { return t.Season }),
		Insight:   "Weather and crowd levels significantly impact satisfaction",
	})

	return factors
}

func satisfactionBreakdown(tourists []records.Tourist, key func(records.Tourist) string) []CategorySatisfaction {
	groups := stats.GroupBy(tourists, key)
	breakdown := make([]CategorySatisfaction, 0, len(groups))
	for _, g := range groups {
		avg, err := stats.MeanBy(g.Items, satisfaction)
		if err != nil {
			continue
		}
		breakdown = append(breakdown, CategorySatisfaction{
			Category:        g.Key,
			AvgSatisfaction: stats.Round2(avg),
			Count:           len(g.Items),
		})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].AvgSatisfaction > breakdown[j].AvgSatisfaction
	})
	return breakdown
}

var durationBuckets = []stats.Bucket{
	{Label: "1-3 days", Min: 1, Max: 3},
	{Label: "4-7 days", Min: 4, Max: 7},
	{Label: "8-14 days", Min: 8, Max: 14},
	{Label: "15+ days", Min: 15, Max: 100},
}

func analyzeDurationImpact(tourists []records.Tourist) []DurationBucketImpact {
	groups := stats.Bucketize(tourists, durationDays, durationBuckets)

	impacts := make([]DurationBucketImpact, 0, len(groups))
	for _, g := range groups {
		avgSpend, err := stats.MeanBy(g.Items, spending)
		if err != nil {
			continue
		}
		avgDaily, _ := stats.MeanBy(g.Items, dailySpending)
		avgSat, _ := stats.MeanBy(g.Items, satisfaction)
		impacts = append(impacts, DurationBucketImpact{
			Duration:         g.Label,
			Count:            len(g.Items),
			AvgSpending:      math.Round(avgSpend),
			AvgDailySpending: math.Round(avgDaily),
			AvgSatisfaction:  stats.Round2(avgSat),
			RecommendRate:    stats.RateBy(g.Items, recommends),
		})
	}
	return impacts
}

func analyzeNationalitySpending(tourists []records.Tourist) []NationalityAggregate {
	groups := stats.GroupBy(tourists, func(t records.Tourist) string { return t.Nationality })

	aggregates := make([]NationalityAggregate, 0, len(groups))
	for _, g := range groups {
		avgSpend, _ := stats.MeanBy(g.Items, spending)
		avgDur, _ := stats.MeanBy(g.Items, durationDays)
		avgSat, _ := stats.MeanBy(g.Items, satisfaction)
		aggregates = append(aggregates, NationalityAggregate{
			Nationality:      g.Key,
			Count:            len(g.Items),
			MarketShare:      stats.Percentage(len(g.Items), len(tourists)),
			AvgSpending:      math.Round(avgSpend),
			AvgDuration:      stats.Round1(avgDur),
			AvgSatisfaction:  stats.Round2(avgSat),
			TopPurpose:       stats.MostFrequent(purposes(g.Items)),
			TopAccommodation: stats.MostFrequent(accommodationTypes(g.Items)),
			GuideUsageRate:   stats.RateBy(g.Items, usesGuide),
			TotalRevenue:     math.Round(stats.SumBy(g.Items, spending)),
		})
	}
	sort.SliceStable(aggregates, func(i, j int) bool {
		return aggregates[i].TotalRevenue > aggregates[j].TotalRevenue
	})
	return aggregates
}

func buildPredictiveInsights(tourists []records.Tourist) []PredictiveInsight {
	var insights []PredictiveInsight

	var highValue []records.Tourist
	for _, t := range tourists {
		if t.TotalSpentNPR > highValueSpendingThreshold {
			highValue = append(highValue, t)
		}
	}
	if len(highValue) > 0 {
		avgAge, _ := stats.MeanBy(highValue, func(t records.Tourist) float64 { return float64(t.Age) })
		avgDur, _ := stats.MeanBy(highValue, durationDays)
		insights = append(insights, PredictiveInsight{
			Type:  "high_value_profile",
			Title: "High-Value Tourist Profile",
			Profile: InsightProfile{
				AvgAge:           math.Round(avgAge),
				TopNationalities: stats.TopN(nationalities(highValue), 3),
				AvgDuration:      stats.Round1(avgDur),
				TopPurposes:      stats.TopN(purposes(highValue), 3),
				GuideUsageRate:   stats.RateBy(highValue, usesGuide),
			},
			Recommendation: "Target marketing towards this profile for maximum revenue",
		})
	}

	var atRisk []records.Tourist
	for _, t := range tourists {
		if t.SatisfactionScore < atRiskSatisfactionCeiling {
			atRisk = append(atRisk, t)
		}
	}
	if len(atRisk) > 0 {
		avgSpend, _ := stats.MeanBy(atRisk, spending)
		insights = append(insights, PredictiveInsight{
			Type:  "at_risk_segment",
			Title: "At-Risk Segment Analysis",
			Profile: InsightProfile{
				Count:            len(atRisk),
				Percentage:       stats.Percentage(len(atRisk), len(tourists)),
				TopNationalities: stats.TopN(nationalities(atRisk), 3),
				TopPurposes:      stats.TopN(purposes(atRisk), 3),
				AvgSpending:      math.Round(avgSpend),
			},
			Recommendation: "Address service gaps for these segments to improve overall ratings",
		})
	}

	return insights
}

func accommodationTypes(tourists []records.Tourist) []string {
	out := make([]string, len(tourists))
	for i, t := range tourists {
		out[i] = t.AccommodationType
	}
	return out
}
