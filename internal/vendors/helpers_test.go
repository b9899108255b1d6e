package vendors

import (
	"time"

	"tourlytics/internal/records"
)

// testTourist builds a valid baseline record; mut adjusts the fields a test
// cares about.
func testTourist(id int, mut func(*records.Tourist)) records.Tourist {
	t := records.Tourist{
		ID:                   id,
		Nationality:          "Indian",
		Age:                  30,
		TravelPurpose:        "Cultural Tourism",
		ArrivalDate:          time.Date(2023, time.April, 10, 0, 0, 0, 0, time.UTC),
		DurationDays:         5,
		Season:               "Spring",
		GroupSize:            2,
		AccommodationType:    "Mid-range Hotel",
		AccommodationCity:    "Kathmandu",
		AttractionsVisited:   4,
		PrimaryTransport:     "Taxi",
		MainInterest:         "Temples",
		DailyBudgetUSD:       100,
		AccommodationCostNPR: 15000,
		FoodCostNPR:          8000,
		ShoppingCostNPR:      3000,
		ActivitiesCostNPR:    2000,
		TransportCostNPR:     1500,
		TotalSpentNPR:        29500,
		SatisfactionScore:    8,
		WouldRecommend:       true,
	}
	if mut != nil {
		mut(&t)
	}
	return t
}

func testDataset(tourists ...records.Tourist) *records.Dataset {
	return &records.Dataset{Tourists: tourists}
}
