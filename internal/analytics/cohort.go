package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"tourlytics/internal/records"
	"tourlytics/internal/stats"
)

// CohortReport groups tourists into monthly arrival cohorts and summarizes
// each one.
type CohortReport struct {
	Cohorts            []Cohort             `json:"cohorts"`
	ReturnVisitorTrend []ReturnVisitorMonth `json:"returnVisitorTrend"`
	Diagnostics        []CohortDiagnostic   `json:"diagnostics"`
	SeasonalPatterns   []SeasonalPattern    `json:"seasonalPatterns"`
}

type Cohort struct {
	CohortID         string             `json:"cohortId"`
	CohortLabel      string             `json:"cohortLabel"`
	Size             int                `json:"size"`
	Metrics          CohortMetrics      `json:"metrics"`
	TopNationalities []stats.LabelCount `json:"topNationalities"`
	TopPurposes      []stats.LabelCount `json:"topPurposes"`
}

type CohortMetrics struct {
	AvgSpending     float64 `json:"avgSpending"`
	AvgDuration     float64 `json:"avgDuration"`
	AvgSatisfaction float64 `json:"avgSatisfaction"`
	RecommendRate   float64 `json:"recommendRate"`
	GuideUsageRate  float64 `json:"guideUsageRate"`
}

type ReturnVisitorMonth struct {
	Month          string  `json:"month"`
	TotalVisitors  int     `json:"totalVisitors"`
	ReturnVisitors int     `json:"returnVisitors"`
	ReturnRate     float64 `json:"returnRate"`
}

type CohortDiagnostic struct {
	Type           string `json:"type"`
	Insight        string `json:"insight"`
	Reason         string `json:"reason"`
	Recommendation string `json:"recommendation"`
}

// SeasonalPattern rolls monthly cohorts up into the four tourist seasons.
// Spending and satisfaction are means of the already-rounded cohort means,
// not recomputed from raw records.
type SeasonalPattern struct {
	Season          string  `json:"season"`
	TotalVisitors   int     `json:"totalVisitors"`
	AvgSpending     float64 `json:"avgSpending"`
	AvgSatisfaction float64 `json:"avgSatisfaction"`
}

var monthAbbrevs = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// cohortKey is the "YYYY-MM" arrival month of a tourist.
func cohortKey(t records.Tourist) string {
	return fmt.Sprintf("%04d-%02d", t.ArrivalDate.Year(), int(t.ArrivalDate.Month()))
}

func cohortLabel(cohortID string) string {
	parts := strings.SplitN(cohortID, "-", 2)
	if len(parts) != 2 {
		return cohortID
	}
	var month int
	fmt.Sscanf(parts[1], "%d", &month)
	if month < 1 || month > 12 {
		return cohortID
	}
	return monthAbbrevs[month-1] + " " + parts[0]
}

// BuildCohortReport partitions tourists by arrival month. Every tourist lands
// in exactly one cohort.
func BuildCohortReport(ds *records.Dataset) (*CohortReport, error) {
	tourists := ds.Tourists
	if len(tourists) == 0 {
		return nil, stats.ErrInsufficientData
	}

	groups := stats.GroupBy(tourists, cohortKey)
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })

	cohorts := make([]Cohort, 0, len(groups))
	for _, g := range groups {
		avgSpend, _ := stats.MeanBy(g.Items, spending)
		avgDur, _ := stats.MeanBy(g.Items, durationDays)
		avgSat, _ := stats.MeanBy(g.Items, satisfaction)
		cohorts = append(cohorts, Cohort{
			CohortID:    g.Key,
			CohortLabel: cohortLabel(g.Key),
			Size:        len(g.Items),
			Metrics: CohortMetrics{
				AvgSpending:     math.Round(avgSpend),
				AvgDuration:     stats.Round1(avgDur),
				AvgSatisfaction: stats.Round2(avgSat),
				RecommendRate:   stats.RateBy(g.Items, recommends),
				GuideUsageRate:  stats.RateBy(g.Items, usesGuide),
			},
			TopNationalities: stats.TopN(nationalities(g.Items), 3),
			TopPurposes:      stats.TopN(purposes(g.Items), 3),
		})
	}

	return &CohortReport{
		Cohorts:            cohorts,
		ReturnVisitorTrend: returnVisitorTrend(groups),
		Diagnostics:        cohortDiagnostics(cohorts),
		SeasonalPatterns:   seasonalPatterns(cohorts),
	}, nil
}

func returnVisitorTrend(groups []stats.Group[records.Tourist]) []ReturnVisitorMonth {
	trend := make([]ReturnVisitorMonth, 0, len(groups))
	for _, g := range groups {
		returning := stats.CountBy(g.Items, func(t records.Tourist) bool { return t.PreviousVisits > 0 })
		trend = append(trend, ReturnVisitorMonth{
			Month:          g.Key,
			TotalVisitors:  len(g.Items),
			ReturnVisitors: returning,
			ReturnRate:     stats.Percentage(returning, len(g.Items)),
		})
	}
	return trend
}

func cohortDiagnostics(cohorts []Cohort) []CohortDiagnostic {
	var diagnostics []CohortDiagnostic

	sorted := make([]Cohort, len(cohorts))
	copy(sorted, cohorts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Metrics.AvgSpending > sorted[j].Metrics.AvgSpending
	})
	highest := sorted[0]
	lowest := sorted[len(sorted)-1]

	diagnostics = append(diagnostics, CohortDiagnostic{
		Type:           "spending_variation",
		Insight:        fmt.Sprintf("Highest spending cohort: %s (NPR %.0f)", highest.CohortLabel, highest.Metrics.AvgSpending),
		Reason:         "Peak season typically attracts higher-spending tourists seeking premium experiences.",
		Recommendation: "Increase inventory and staffing during peak months.",
	})
	diagnostics = append(diagnostics, CohortDiagnostic{
		Type:           "spending_variation",
		Insight:        fmt.Sprintf("Lowest spending cohort: %s (NPR %.0f)", lowest.CohortLabel, lowest.Metrics.AvgSpending),
		Reason:         "Off-season arrivals skew budget-conscious.",
		Recommendation: "Offer value packages and promotions to lift off-peak revenue.",
	})

	satMeans := make([]float64, len(cohorts))
	for i, c := range cohorts {
		satMeans[i] = c.Metrics.AvgSatisfaction
	}
	grandMean, _ := stats.Mean(satMeans)

	var dips []string
	for _, c := range cohorts {
		if c.Metrics.AvgSatisfaction < grandMean-0.3 {
			dips = append(dips, c.CohortLabel)
		}
	}
	if len(dips) > 0 {
		diagnostics = append(diagnostics, CohortDiagnostic{
			Type:           "satisfaction_dip",
			Insight:        "Low satisfaction periods: " + strings.Join(dips, ", "),
			Reason:         "Possible causes: overcrowding, monsoon weather, service quality issues.",
			Recommendation: "Review operational issues during these periods. Consider capacity management.",
		})
	}

	return diagnostics
}

var seasonMonths = []struct {
	season string
	months []string
}{
	{"Spring", []string{"03", "04", "05"}},
	{"Monsoon", []string{"06", "07", "08"}},
	{"Autumn", []string{"09", "10", "11"}},
	{"Winter", []string{"12", "01", "02"}},
}

func seasonalPatterns(cohorts []Cohort) []SeasonalPattern {
	patterns := make([]SeasonalPattern, 0, len(seasonMonths))
	for _, sm := range seasonMonths {
		var members []Cohort
		for _, c := range cohorts {
			parts := strings.SplitN(c.CohortID, "-", 2)
			if len(parts) != 2 {
				continue
			}
			for _, m := range sm.months {
				if parts[1] == m {
					members = append(members, c)
					break
				}
			}
		}

		pattern := SeasonalPattern{Season: sm.season}
		if len(members) > 0 {
			var spendMeans, satMeans []float64
			for _, c := range members {
				pattern.TotalVisitors += c.Size
				spendMeans = append(spendMeans, c.Metrics.AvgSpending)
				satMeans = append(satMeans, c.Metrics.AvgSatisfaction)
			}
			avgSpend, _ := stats.Mean(spendMeans)
			avgSat, _ := stats.Mean(satMeans)
			pattern.AvgSpending = math.Round(avgSpend)
			pattern.AvgSatisfaction = stats.Round2(avgSat)
		}
		patterns = append(patterns, pattern)
	}
	return patterns
}

// TimeSeriesPoint is one month of arrival volume and revenue.
type TimeSeriesPoint struct {
	Month           string  `json:"month"`
	Visitors        int     `json:"visitors"`
	AvgSpending     float64 `json:"avgSpending"`
	TotalRevenue    float64 `json:"totalRevenue"`
	AvgSatisfaction float64 `json:"avgSatisfaction"`
}

// BuildTimeSeries aggregates tourists into a monthly arrival series.
func BuildTimeSeries(ds *records.Dataset) ([]TimeSeriesPoint, error) {
	tourists := ds.Tourists
	if len(tourists) == 0 {
		return nil, stats.ErrInsufficientData
	}

	groups := stats.GroupBy(tourists, cohortKey)
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })

	series := make([]TimeSeriesPoint, 0, len(groups))
	for _, g := range groups {
		avgSpend, _ := stats.MeanBy(g.Items, spending)
		avgSat, _ := stats.MeanBy(g.Items, satisfaction)
		series = append(series, TimeSeriesPoint{
			Month:           g.Key,
			Visitors:        len(g.Items),
			AvgSpending:     math.Round(avgSpend),
			TotalRevenue:    math.Round(stats.SumBy(g.Items, spending)),
			AvgSatisfaction: stats.Round2(avgSat),
		})
	}
	return series, nil
}
