package analytics

import (
	"fmt"
	"math"
	"sort"

	"tourlytics/internal/records"
	"tourlytics/internal/stats"
)

const segmentCount = 4

// SegmentationReport is the k-means customer segmentation over spending,
// stay duration, satisfaction, and attractions visited.
type SegmentationReport struct {
	Clusters        []Cluster           `json:"clusters"`
	Centroids       [][]float64         `json:"centroids"`
	TouristClusters []TouristAssignment `json:"touristClusters"`
}

type Cluster struct {
	ClusterID             int                    `json:"clusterId"`
	Name                  string                 `json:"name"`
	Size                  int                    `json:"size"`
	Percentage            float64                `json:"percentage"`
	Characteristics       ClusterCharacteristics `json:"characteristics"`
	Diagnostics           []ClusterDiagnostic    `json:"diagnostics"`
	VendorRecommendations []string               `json:"vendorRecommendations"`
}

type ClusterCharacteristics struct {
	AvgSpending      float64 `json:"avgSpending"`
	AvgDuration      float64 `json:"avgDuration"`
	AvgSatisfaction  float64 `json:"avgSatisfaction"`
	AvgAttractions   float64 `json:"avgAttractions"`
	TopNationality   string  `json:"topNationality"`
	TopPurpose       string  `json:"topPurpose"`
	TopAccommodation string  `json:"topAccommodation"`
	TopTransport     string  `json:"topTransport"`
	GuideUsageRate   float64 `json:"guideUsageRate"`
	RecommendRate    float64 `json:"recommendRate"`
}

type ClusterDiagnostic struct {
	Insight string `json:"insight"`
	Reason  string `json:"reason"`
	Action  string `json:"action"`
}

type TouristAssignment struct {
	TouristID int `json:"touristId"`
	Cluster   int `json:"cluster"`
}

// BuildSegmentation clusters tourists into four segments. Spending is scaled
// to thousands so it does not dominate the Euclidean distance.
func BuildSegmentation(ds *records.Dataset) (*SegmentationReport, error) {
	tourists := ds.Tourists
	if len(tourists) == 0 {
		return nil, stats.ErrInsufficientData
	}

	features := make([][]float64, len(tourists))
	for i, t := range tourists {
		features[i] = []float64{
			t.TotalSpentNPR / 1000,
			float64(t.DurationDays),
			t.SatisfactionScore,
			float64(t.AttractionsVisited),
		}
	}

	result, err := runKMeans(features, segmentCount)
	if err != nil {
		return nil, err
	}

	assignments := make([]TouristAssignment, len(tourists))
	byCluster := make(map[int][]records.Tourist)
	for i, t := range tourists {
		c := result.assignments[i]
		assignments[i] = TouristAssignment{TouristID: t.ID, Cluster: c}
		byCluster[c] = append(byCluster[c], t)
	}

	clusterIDs := make([]int, 0, len(byCluster))
	for id := range byCluster {
		clusterIDs = append(clusterIDs, id)
	}
	sort.Ints(clusterIDs)

	clusters := make([]Cluster, 0, len(clusterIDs))
	for _, id := range clusterIDs {
		group := byCluster[id]
		clusters = append(clusters, characterizeCluster(id, group, len(tourists)))
	}

	return &SegmentationReport{
		Clusters:        clusters,
		Centroids:       result.centroids,
		TouristClusters: assignments,
	}, nil
}

func characterizeCluster(id int, group []records.Tourist, total int) Cluster {
	avgSpend, _ := stats.MeanBy(group, spending)
	avgDur, _ := stats.MeanBy(group, durationDays)
	avgSat, _ := stats.MeanBy(group, satisfaction)
	avgAttr, _ := stats.MeanBy(group, func(t records.Tourist) float64 { return float64(t.AttractionsVisited) })
	guideRate := stats.RateBy(group, usesGuide)

	chars := ClusterCharacteristics{
		AvgSpending:      math.Round(avgSpend),
		AvgDuration:      stats.Round1(avgDur),
		AvgSatisfaction:  stats.Round2(avgSat),
		AvgAttractions:   stats.Round1(avgAttr),
		TopNationality:   stats.MostFrequent(nationalities(group)),
		TopPurpose:       stats.MostFrequent(purposes(group)),
		TopAccommodation: stats.MostFrequent(accommodationTypes(group)),
		TopTransport:     stats.MostFrequent(transportModes(group)),
		GuideUsageRate:   guideRate,
		RecommendRate:    stats.RateBy(group, recommends),
	}

	return Cluster{
		ClusterID:       id,
		Name:            clusterName(avgSpend, avgDur, avgSat),
		Size:            len(group),
		Percentage:      stats.Percentage(len(group), total),
		Characteristics: chars,
		Diagnostics:     clusterDiagnostics(avgSpend, avgSat, guideRate),
		VendorRecommendations: clusterVendorRecommendations(
			avgSpend, chars.TopPurpose, chars.TopNationality),
	}
}

// clusterName classifies a segment by its mean spending, duration, and
// satisfaction. Rules are evaluated in order, first match wins.
func clusterName(avgSpending, avgDuration, avgSatisfaction float64) string {
	switch {
	case avgSpending > 80000 && avgDuration > 8:
		return "Premium Long-stay Seekers"
	case avgSpending > 60000 && avgSatisfaction > 7.5:
		return "High-Value Cultural Enthusiasts"
	case avgSpending < 30000 && avgDuration < 5:
		return "Budget Quick Visitors"
	case avgDuration > 7 && avgSatisfaction > 7:
		return "Satisfied Extended Explorers"
	default:
		return "General Tourists"
	}
}

func clusterDiagnostics(avgSpending, avgSatisfaction, guideUsageRate float64) []ClusterDiagnostic {
	var diagnostics []ClusterDiagnostic

	if avgSpending > 70000 {
		diagnostics = append(diagnostics, ClusterDiagnostic{
			Insight: "High spending segment",
			Reason:  fmt.Sprintf("This cluster has significantly higher spending (NPR %.0f), likely due to preference for premium services and longer stays.", math.Round(avgSpending)),
			Action:  "Target with luxury offerings and personalized experiences.",
		})
	} else if avgSpending < 30000 {
		diagnostics = append(diagnostics, ClusterDiagnostic{
			Insight: "Budget-conscious segment",
			Reason:  "Lower spending indicates price sensitivity. Common among backpackers and pilgrimage tourists.",
			Action:  "Offer value packages and group discounts.",
		})
	}

	if guideUsageRate > 50 {
		diagnostics = append(diagnostics, ClusterDiagnostic{
			Insight: "High guide usage",
			Reason:  fmt.Sprintf("Over %.0f%% use tour guides, indicating preference for structured experiences.", math.Round(guideUsageRate)),
			Action:  "Partner with local guides for referral programs.",
		})
	}

	if avgSatisfaction < 7 {
		diagnostics = append(diagnostics, ClusterDiagnostic{
			Insight: "Below average satisfaction",
			Reason:  fmt.Sprintf("Satisfaction score of %.1f suggests room for improvement in service quality.", avgSatisfaction),
			Action:  "Focus on improving pain points: wait times, language barriers, service consistency.",
		})
	}

	return diagnostics
}

func clusterVendorRecommendations(avgSpending float64, topPurpose, topNationality string) []string {
	var recommendations []string

	if avgSpending > 60000 {
		recommendations = append(recommendations,
			"Premium service positioning - tourists willing to pay more for quality",
			"Focus on exclusive experiences and personalized attention")
	}

	switch topPurpose {
	case "Pilgrimage":
		recommendations = append(recommendations,
			"Partner with temple management for pilgrimage packages",
			"Offer vegetarian food options prominently")
	case "Cultural Tourism":
		recommendations = append(recommendations,
			"Highlight heritage and authenticity in marketing",
			"Offer cultural workshops and local artisan connections")
	}

	switch topNationality {
	case "Indian":
		recommendations = append(recommendations,
			"Hindi-speaking staff recommended",
			"Indian payment methods (UPI, Paytm) beneficial")
	case "Chinese":
		recommendations = append(recommendations,
			"Mandarin-speaking staff and signage valuable",
			"Accept WeChat Pay/Alipay if possible")
	}

	return recommendations
}

func transportModes(tourists []records.Tourist) []string {
	out := make([]string, len(tourists))
	for i, t := range tourists {
		out[i] = t.PrimaryTransport
	}
	return out
}
