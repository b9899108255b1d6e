package vendors

import (
	"math"
	"sort"

	"tourlytics/internal/records"
	"tourlytics/internal/stats"
)

// AttractionReport is the tour-operator view: the attraction catalog joined
// against the visit log.
type AttractionReport struct {
	TopAttractions             []AttractionAnalysis `json:"topAttractions"`
	CategoryAnalysis           []CategoryAnalysis   `json:"categoryAnalysis"`
	CityAnalysis               []CityAnalysis       `json:"cityAnalysis"`
	UnderperformingAttractions []Underperformer     `json:"underperformingAttractions"`
	TourPackageRecommendations []TourPackage        `json:"tourPackageRecommendations"`
}

// AttractionAnalysis covers one catalog attraction; zero-visit entries are
// kept so operators can see what draws nobody.
type AttractionAnalysis struct {
	AttractionID    int     `json:"attractionId"`
	Name            string  `json:"name"`
	City            string  `json:"city"`
	Category        string  `json:"category"`
	EntryFeeForeign float64 `json:"entryFeeForeign"`
	PopularityScore float64 `json:"popularityScore"`
	VisitCount      int     `json:"visitCount"`
	AvgRating       float64 `json:"avgRating"`
	TotalRevenue    float64 `json:"totalRevenue"`
	AvgFeeCollected float64 `json:"avgFeeCollected"`
}

type CategoryAnalysis struct {
	Category       string             `json:"category"`
	VisitCount     int                `json:"visitCount"`
	AvgRating      float64            `json:"avgRating"`
	TotalRevenue   float64            `json:"totalRevenue"`
	TopAttractions []stats.LabelCount `json:"topAttractions"`
}

type CityAnalysis struct {
	City         string  `json:"city"`
	VisitCount   int     `json:"visitCount"`
	AvgRating    float64 `json:"avgRating"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type Underperformer struct {
	AttractionAnalysis
	Issue          string `json:"issue"`
	Recommendation string `json:"recommendation"`
}

type TourPackage struct {
	Name           string   `json:"name"`
	Duration       string   `json:"duration"`
	Attractions    []string `json:"attractions"`
	TargetMarket   string   `json:"targetMarket"`
	EstimatedPrice string   `json:"estimatedPrice"`
	Rationale      string   `json:"rationale"`
}

// BuildAttractionReport joins visits against the attraction catalog and
// derives category, city, and package insights.
func BuildAttractionReport(ds *records.Dataset) (*AttractionReport, error) {
	if len(ds.Attractions) == 0 {
		return nil, stats.ErrInsufficientData
	}

	byAttraction := make(map[int][]records.Visit)
	for _, v := range ds.Visits {
		byAttraction[v.AttractionID] = append(byAttraction[v.AttractionID], v)
	}

	analysis := make([]AttractionAnalysis, 0, len(ds.Attractions))
	for _, attr := range ds.Attractions {
		visits := byAttraction[attr.ID]
		a := AttractionAnalysis{
			AttractionID:    attr.ID,
			Name:            attr.Name,
			City:            attr.City,
			Category:        attr.Category,
			EntryFeeForeign: attr.EntryFeeForeign,
			PopularityScore: attr.PopularityScore,
			VisitCount:      len(visits),
			TotalRevenue:    math.Round(stats.SumBy(visits, entryFee)),
		}
		if len(visits) > 0 {
			rating, _ := stats.MeanBy(visits, visitRating)
			fee, _ := stats.MeanBy(visits, entryFee)
			a.AvgRating = stats.Round2(rating)
			a.AvgFeeCollected = math.Round(fee)
		}
		analysis = append(analysis, a)
	}
	sort.SliceStable(analysis, func(i, j int) bool { return analysis[i].VisitCount > analysis[j].VisitCount })

	top := analysis
	if len(top) > 15 {
		top = top[:15]
	}

	return &AttractionReport{
		TopAttractions:             top,
		CategoryAnalysis:           categoryAnalysis(ds.Visits),
		CityAnalysis:               cityAnalysis(ds.Visits),
		UnderperformingAttractions: underperformers(analysis),
		TourPackageRecommendations: tourPackages(analysis),
	}, nil
}

func categoryAnalysis(visits []records.Visit) []CategoryAnalysis {
	groups := stats.GroupBy(visits, func(v records.Visit) string { return v.Category })

	analysis := make([]CategoryAnalysis, 0, len(groups))
	for _, g := range groups {
		rating, _ := stats.MeanBy(g.Items, visitRating)
		names := make([]string, len(g.Items))
		for i, v := range g.Items {
			names[i] = v.AttractionName
		}
		analysis = append(analysis, CategoryAnalysis{
			Category:       g.Key,
			VisitCount:     len(g.Items),
			AvgRating:      stats.Round2(rating),
			TotalRevenue:   math.Round(stats.SumBy(g.Items, entryFee)),
			TopAttractions: stats.TopN(names, 5),
		})
	}
	sort.SliceStable(analysis, func(i, j int) bool { return analysis[i].VisitCount > analysis[j].VisitCount })
	return analysis
}

func cityAnalysis(visits []records.Visit) []CityAnalysis {
	groups := stats.GroupBy(visits, func(v records.Visit) string { return v.City })

	analysis := make([]CityAnalysis, 0, len(groups))
	for _, g := range groups {
		rating, _ := stats.MeanBy(g.Items, visitRating)
		analysis = append(analysis, CityAnalysis{
			City:         g.Key,
			VisitCount:   len(g.Items),
			AvgRating:    stats.Round2(rating),
			TotalRevenue: math.Round(stats.SumBy(g.Items, entryFee)),
		})
	}
	return analysis
}

// underperformers flags well-visited attractions rated more than half a
// point below the mean of all visited attractions.
func underperformers(analysis []AttractionAnalysis) []Underperformer {
	var ratings []float64
	for _, a := range analysis {
		if a.VisitCount > 0 {
			ratings = append(ratings, a.AvgRating)
		}
	}
	meanRating, err := stats.Mean(ratings)
	if err != nil {
		return nil
	}

	var out []Underperformer
	for _, a := range analysis {
		if a.VisitCount > 50 && a.AvgRating < meanRating-0.5 {
			out = append(out, Underperformer{
				AttractionAnalysis: a,
				Issue:              "Below average satisfaction",
				Recommendation:     "Review visitor experience, consider improvements to facilities or services",
			})
		}
	}
	return out
}

func tourPackages(analysis []AttractionAnalysis) []TourPackage {
	byCategory := func(category string, n int) []AttractionAnalysis {
		var out []AttractionAnalysis
		for _, a := range analysis {
			if a.Category == category {
				out = append(out, a)
				if len(out) == n {
					break
				}
			}
		}
		return out
	}
	names := func(groups ...[]AttractionAnalysis) []string {
		var out []string
		for _, g := range groups {
			for _, a := range g {
				out = append(out, a.Name)
			}
		}
		return out
	}

	religious := byCategory("Religious Sites", 3)
	cultural := byCategory("Cultural Sites", 3)
	activities := byCategory("Activities", 3)

	topOverall := analysis
	if len(topOverall) > 4 {
		topOverall = topOverall[:4]
	}

	return []TourPackage{
		{
			Name:           "Heritage & Spirituality Package",
			Duration:       "3 days",
			Attractions:    names(firstN(religious, 2), firstN(cultural, 2)),
			TargetMarket:   "Indian, Japanese, American tourists",
			EstimatedPrice: "NPR 8,000-12,000",
			Rationale:      "Combines most popular religious and cultural sites",
		},
		{
			Name:           "Cultural Immersion Package",
			Duration:       "5 days",
			Attractions:    names(cultural, firstN(activities, 2)),
			TargetMarket:   "European, American tourists",
			EstimatedPrice: "NPR 15,000-25,000",
			Rationale:      "Deep cultural experience with hands-on activities",
		},
		{
			Name:           "Quick City Highlights",
			Duration:       "1 day",
			Attractions:    names(topOverall),
			TargetMarket:   "Business travelers, short-stay visitors",
			EstimatedPrice: "NPR 3,000-5,000",
			Rationale:      "Must-see attractions for time-constrained visitors",
		},
	}
}

func firstN(analysis []AttractionAnalysis, n int) []AttractionAnalysis {
	if len(analysis) > n {
		return analysis[:n]
	}
	return analysis
}

func entryFee(v records.Visit) float64    { return v.EntryFeePaid }
func visitRating(v records.Visit) float64 { return v.VisitRating }
