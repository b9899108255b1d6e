package vendors

import (
	"math"
	"sort"

	"tourlytics/internal/records"
	"tourlytics/internal/stats"
)

// ShoppingReport is the retail-vendor view of shopping spend.
type ShoppingReport struct {
	ByNationality       []NationalityShopping    `json:"byNationality"`
	ByInterest          []InterestShopping       `json:"byInterest"`
	TopShoppingSegments []NationalityShopping    `json:"topShoppingSegments"`
	Recommendations     []ShoppingRecommendation `json:"recommendations"`
}

type NationalityShopping struct {
	Nationality          string  `json:"nationality"`
	Count                int     `json:"count"`
	AvgShopping          float64 `json:"avgShopping"`
	TotalShoppingRevenue float64 `json:"totalShoppingRevenue"`
	ShopperRate          float64 `json:"shopperRate"`
	AvgTotalSpend        float64 `json:"avgTotalSpend"`
	ShoppingShareOfSpend float64 `json:"shoppingShareOfSpend"`
}

type InterestShopping struct {
	Interest     string  `json:"interest"`
	Count        int     `json:"count"`
	AvgShopping  float64 `json:"avgShopping"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type ShoppingRecommendation struct {
	Title    string            `json:"title"`
	Segments []ShoppingSegment `json:"segments"`
	Products []string          `json:"products"`
	Strategy string            `json:"strategy"`
}

type ShoppingSegment struct {
	Nationality  string  `json:"nationality"`
	AvgSpend     float64 `json:"avgSpend,omitempty"`
	TotalRevenue float64 `json:"totalRevenue,omitempty"`
	Count        int     `json:"count"`
}

const (
	volumeSegmentMinCount = 500
	volumeSegmentMinSpend = 2000
)

func shoppingCost(t records.Tourist) float64 { return t.ShoppingCostNPR }

// BuildShoppingReport aggregates shopping spend by nationality and by the
// tourists' stated main interest.
func BuildShoppingReport(ds *records.Dataset) (*ShoppingReport, error) {
	tourists := ds.Tourists
	if len(tourists) == 0 {
		return nil, stats.ErrInsufficientData
	}

	byNationality := stats.GroupBy(tourists, func(t records.Tourist) string { return t.Nationality })
	nationality := make([]NationalityShopping, 0, len(byNationality))
	for _, g := range byNationality {
		avgShopping, _ := stats.MeanBy(g.Items, shoppingCost)
		avgTotal, _ := stats.MeanBy(g.Items, spending)

		share := 0.0
		if avgTotal > 0 {
			share = stats.Round1(avgShopping / avgTotal * 100)
		}

		nationality = append(nationality, NationalityShopping{
			Nationality:          g.Key,
			Count:                len(g.Items),
			AvgShopping:          math.Round(avgShopping),
			TotalShoppingRevenue: math.Round(stats.SumBy(g.Items, shoppingCost)),
			ShopperRate:          stats.RateBy(g.Items, func(t records.Tourist) bool { return t.ShoppingCostNPR > 0 }),
			AvgTotalSpend:        math.Round(avgTotal),
			ShoppingShareOfSpend: share,
		})
	}
	sort.SliceStable(nationality, func(i, j int) bool { return nationality[i].AvgShopping > nationality[j].AvgShopping })

	byInterest := stats.GroupBy(tourists, func(t records.Tourist) string { return t.MainInterest })
	interest := make([]InterestShopping, 0, len(byInterest))
	for _, g := range byInterest {
		avgShopping, _ := stats.MeanBy(g.Items, shoppingCost)
		interest = append(interest, InterestShopping{
			Interest:     g.Key,
			Count:        len(g.Items),
			AvgShopping:  math.Round(avgShopping),
			TotalRevenue: math.Round(stats.SumBy(g.Items, shoppingCost)),
		})
	}
	sort.SliceStable(interest, func(i, j int) bool { return interest[i].AvgShopping > interest[j].AvgShopping })

	top := nationality
	if len(top) > 5 {
		top = top[:5]
	}

	return &ShoppingReport{
		ByNationality:       nationality,
		ByInterest:          interest,
		TopShoppingSegments: top,
		Recommendations:     shoppingRecommendations(nationality),
	}, nil
}

func shoppingRecommendations(nationality []NationalityShopping) []ShoppingRecommendation {
	var recommendations []ShoppingRecommendation

	topShoppers := nationality
	if len(topShoppers) > 3 {
		topShoppers = topShoppers[:3]
	}
	if len(topShoppers) > 0 {
		segments := make([]ShoppingSegment, len(topShoppers))
		for i, n := range topShoppers {
			segments[i] = ShoppingSegment{Nationality: n.Nationality, AvgSpend: n.AvgShopping, Count: n.Count}
		}
		recommendations = append(recommendations, ShoppingRecommendation{
			Title:    "Target High-Value Shoppers",
			Segments: segments,
			Products: []string{"Premium handicrafts", "Authentic thangka paintings", "Quality pashmina", "Silver jewelry"},
			Strategy: "Position premium products, offer certificates of authenticity",
		})
	}

	var volume []ShoppingSegment
	for _, n := range nationality {
		if n.Count > volumeSegmentMinCount && n.AvgShopping > volumeSegmentMinSpend {
			volume = append(volume, ShoppingSegment{
				Nationality:  n.Nationality,
				TotalRevenue: n.TotalShoppingRevenue,
				Count:        n.Count,
			})
		}
	}
	if len(volume) > 0 {
		recommendations = append(recommendations, ShoppingRecommendation{
			Title:    "Volume Market Opportunity",
			Segments: volume,
			Products: []string{"Souvenirs", "Religious items", "Budget handicrafts", "Prayer flags"},
			Strategy: "Stock popular items, offer bundle deals",
		})
	}

	return recommendations
}
