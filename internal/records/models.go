package records

import "time"

// Tourist is one cleaned tourism visit record. Rows are immutable after
// loading; the whole collection is only ever replaced by a full reload.
type Tourist struct {
	ID                   int       `json:"tourist_id"`
	Nationality          string    `json:"nationality"`
	Age                  int       `json:"age" validate:"gte=0,lte=120"`
	Gender               string    `json:"gender"`
	TravelPurpose        string    `json:"travel_purpose"`
	ArrivalDate          time.Time `json:"arrival_date"`
	DepartureDate        time.Time `json:"departure_date"`
	DurationDays         int       `json:"duration_days" validate:"gte=1"`
	Season               string    `json:"season" validate:"oneof=Spring Monsoon Autumn Winter"`
	GroupSize            int       `json:"group_size" validate:"gte=1"`
	TravelWith           string    `json:"travel_with"`
	PreviousVisits       int       `json:"previous_visits" validate:"gte=0"`
	HotelID              int       `json:"hotel_id"`
	AccommodationType    string    `json:"accommodation_type"`
	AccommodationCity    string    `json:"accommodation_city"`
	CitiesVisited        []string  `json:"cities_visited"`
	AttractionsVisited   int       `json:"num_attractions_visited" validate:"gte=0"`
	PrimaryTransport     string    `json:"primary_transport"`
	UsesTourGuide        bool      `json:"uses_tour_guide"`
	DailyBudgetUSD       float64   `json:"daily_budget_usd"`
	AccommodationCostNPR float64   `json:"accommodation_cost_npr" validate:"gte=0"`
	FoodCostNPR          float64   `json:"food_cost_npr" validate:"gte=0"`
	ShoppingCostNPR      float64   `json:"shopping_cost_npr" validate:"gte=0"`
	ActivitiesCostNPR    float64   `json:"activities_cost_npr" validate:"gte=0"`
	TransportCostNPR     float64   `json:"transport_cost_npr" validate:"gte=0"`
	GuideCostNPR         float64   `json:"guide_cost_npr" validate:"gte=0"`
	TotalSpentNPR        float64   `json:"total_spent_npr" validate:"gt=0"`
	InformationSource    string    `json:"information_source"`
	MainInterest         string    `json:"main_interest"`
	SatisfactionScore    float64   `json:"satisfaction_score" validate:"gte=0,lte=10"`
	WouldRecommend       bool      `json:"would_recommend"`
}

// Attraction is a catalog entry for a point of interest.
type Attraction struct {
	ID              int     `json:"attraction_id"`
	Name            string  `json:"attraction_name"`
	City            string  `json:"city"`
	Category        string  `json:"category"`
	EntryFeeForeign float64 `json:"entry_fee_foreigner"`
	EntryFeeSAARC   float64 `json:"entry_fee_saarc"`
	AvgDurationMin  float64 `json:"avg_duration_min"`
	PopularityScore float64 `json:"popularity_score"`
}

// Accommodation is a catalog entry for a lodging unit. It relates to
// tourists only through the hotel_type / accommodation_type string, not
// by id.
type Accommodation struct {
	ID            int     `json:"hotel_id"`
	HotelType     string  `json:"hotel_type"`
	City          string  `json:"city"`
	Area          string  `json:"area"`
	PricePerNight float64 `json:"price_per_night"`
	Rating        float64 `json:"rating"`
	HasWiFi       bool    `json:"has_wifi"`
	HasBreakfast  bool    `json:"has_breakfast"`
}

// Visit links a tourist to an attraction they visited. Both references are
// soft: analytics must tolerate orphaned ids on either side.
type Visit struct {
	TouristID      int     `json:"tourist_id"`
	AttractionID   int     `json:"attraction_id"`
	AttractionName string  `json:"attraction_name"`
	City           string  `json:"city"`
	Category       string  `json:"category"`
	EntryFeePaid   float64 `json:"entry_fee_paid"`
	VisitRating    float64 `json:"visit_rating" validate:"gte=0,lte=10"`
}

// Dataset bundles the four loaded collections. After loading it is
// read-only and safe to share across concurrent analytics computations.
type Dataset struct {
	Tourists       []Tourist
	Attractions    []Attraction
	Accommodations []Accommodation
	Visits         []Visit
}
