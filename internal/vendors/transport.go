package vendors

import (
	"fmt"
	"math"
	"sort"

	"tourlytics/internal/records"
	"tourlytics/internal/stats"
)

// TransportReport is the transport-operator view of mode usage.
type TransportReport struct {
	TransportAnalysis []TransportAnalysis    `json:"transportAnalysis"`
	Diagnostics       []TransportDiagnostic  `json:"diagnostics"`
	Opportunities     []TransportOpportunity `json:"opportunities"`
}

type TransportAnalysis struct {
	Transport         string             `json:"transport"`
	Count             int                `json:"count"`
	MarketShare       float64            `json:"marketShare"`
	AvgTransportCost  float64            `json:"avgTransportCost"`
	AvgTotalSpend     float64            `json:"avgTotalSpend"`
	AvgSatisfaction   float64            `json:"avgSatisfaction"`
	TopNationalities  []stats.LabelCount `json:"topNationalities"`
	TopAccommodations []stats.LabelCount `json:"topAccommodations"`
}

type TransportDiagnostic struct {
	Transport      string  `json:"transport"`
	Issue          string  `json:"issue"`
	Value          float64 `json:"value"`
	Recommendation string  `json:"recommendation"`
}

type TransportOpportunity struct {
	Transport    string  `json:"transport"`
	CurrentShare float64 `json:"currentShare"`
	AvgCost      float64 `json:"avgCost"`
	Opportunity  string  `json:"opportunity"`
}

// BuildTransportReport aggregates tourists by primary transport mode.
func BuildTransportReport(ds *records.Dataset) (*TransportReport, error) {
	tourists := ds.Tourists
	if len(tourists) == 0 {
		return nil, stats.ErrInsufficientData
	}

	groups := stats.GroupBy(tourists, func(t records.Tourist) string { return t.PrimaryTransport })

	analysis := make([]TransportAnalysis, 0, len(groups))
	for _, g := range groups {
		avgCost, _ := stats.MeanBy(g.Items, func(t records.Tourist) float64 { return t.TransportCostNPR })
		avgTotal, _ := stats.MeanBy(g.Items, spending)
		avgSat, _ := stats.MeanBy(g.Items, satisfaction)

		accomTypes := make([]string, len(g.Items))
		for i, t := range g.Items {
			accomTypes[i] = t.AccommodationType
		}

		analysis = append(analysis, TransportAnalysis{
			Transport:         g.Key,
			Count:             len(g.Items),
			MarketShare:       stats.Percentage(len(g.Items), len(tourists)),
			AvgTransportCost:  math.Round(avgCost),
			AvgTotalSpend:     math.Round(avgTotal),
			AvgSatisfaction:   stats.Round2(avgSat),
			TopNationalities:  stats.TopN(nationalities(g.Items), 3),
			TopAccommodations: stats.TopN(accomTypes, 3),
		})
	}
	sort.SliceStable(analysis, func(i, j int) bool { return analysis[i].Count > analysis[j].Count })

	return &TransportReport{
		TransportAnalysis: analysis,
		Diagnostics:       transportDiagnostics(analysis),
		Opportunities:     transportOpportunities(analysis),
	}, nil
}

// transportDiagnostics benchmarks each mode against the mean of the
// per-mode satisfaction means, not the raw dataset mean.
func transportDiagnostics(analysis []TransportAnalysis) []TransportDiagnostic {
	sats := make([]float64, len(analysis))
	for i, a := range analysis {
		sats[i] = a.AvgSatisfaction
	}
	crossModeMean, err := stats.Mean(sats)
	if err != nil {
		return nil
	}

	var diagnostics []TransportDiagnostic
	for _, a := range analysis {
		if a.AvgSatisfaction < crossModeMean-0.3 {
			diagnostics = append(diagnostics, TransportDiagnostic{
				Transport:      a.Transport,
				Issue:          "Below average satisfaction",
				Value:          a.AvgSatisfaction,
				Recommendation: fmt.Sprintf("Improve %s experience - possible issues with pricing, availability, or quality", a.Transport),
			})
		}
	}
	return diagnostics
}

func transportOpportunities(analysis []TransportAnalysis) []TransportOpportunity {
	opportunities := make([]TransportOpportunity, 0, len(analysis))
	for _, a := range analysis {
		opportunity := "Stable segment - focus on differentiation"
		switch {
		case a.MarketShare < 15:
			opportunity = "Growth opportunity - increase visibility and service quality"
		case a.MarketShare > 25:
			opportunity = "Dominant segment - maintain quality, explore premium offerings"
		}
		opportunities = append(opportunities, TransportOpportunity{
			Transport:    a.Transport,
			CurrentShare: a.MarketShare,
			AvgCost:      a.AvgTransportCost,
			Opportunity:  opportunity,
		})
	}
	return opportunities
}
