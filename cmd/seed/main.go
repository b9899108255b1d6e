package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"tourlytics/internal/shared/config"

	"github.com/joho/godotenv"
)

// Seeder writes a synthetic copy of the four dataset CSVs so the server can
// be exercised without the real export.
type Seeder struct {
	dir string
	rng *rand.Rand
}

const (
	touristCount     = 2000
	visitsPerTourist = 4
)

var (
	nationalities = []string{"Indian", "Chinese", "American", "British", "German", "French", "Japanese", "Australian", "Sri Lankan", "Thai"}
	purposes      = []string{"Cultural Tourism", "Pilgrimage", "Adventure", "Business", "Leisure"}
	genders       = []string{"Male", "Female", "Other"}
	travelWith    = []string{"Solo", "Couple", "Family", "Friends", "Tour Group"}
	hotelTypes    = []string{"Budget Hotel", "Mid-range Hotel", "Luxury Hotel", "Guesthouse", "Resort"}
	cities        = []string{"Kathmandu", "Lalitpur", "Bhaktapur"}
	transports    = []string{"Taxi", "Public Bus", "Rental Car", "Walking", "Rickshaw"}
	interests     = []string{"Temples", "Architecture", "Food", "Trekking", "Shopping", "Festivals"}
	infoSources   = []string{"Internet", "Travel Agent", "Friends/Family", "Social Media", "Guidebook"}
	categories    = []string{"Religious Sites", "Cultural Sites", "Activities", "Nature", "Museums"}

	attractionNames = []string{
		"Pashupatinath Temple", "Boudhanath Stupa", "Swayambhunath", "Kathmandu Durbar Square",
		"Patan Durbar Square", "Bhaktapur Durbar Square", "Garden of Dreams", "Changu Narayan",
		"Nyatapola Temple", "Golden Temple", "Thamel Walking Tour", "Nagarkot Viewpoint",
		"Chandragiri Cable Car", "National Museum", "Everest Scenic Flight",
	}
)

func main() {
	fmt.Println("Starting tourlytics CSV seeder...")

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}
	cfg := config.Load()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	seeder := &Seeder{
		dir: cfg.DataDir,
		rng: rand.New(rand.NewSource(42)),
	}

	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed data files: %v", err)
	}

	fmt.Printf("Seeding completed! CSV files written to %s\n", cfg.DataDir)
}

func (s *Seeder) SeedAll() error {
	if err := s.seedAttractions(); err != nil {
		return fmt.Errorf("seeding attractions: %w", err)
	}
	if err := s.seedAccommodations(); err != nil {
		return fmt.Errorf("seeding accommodations: %w", err)
	}
	if err := s.seedTourists(); err != nil {
		return fmt.Errorf("seeding tourists: %w", err)
	}
	if err := s.seedVisits(); err != nil {
		return fmt.Errorf("seeding visits: %w", err)
	}
	return nil
}

func (s *Seeder) writeCSV(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (s *Seeder) seedAttractions() error {
	header := []string{"attraction_id", "attraction_name", "city", "category",
		"entry_fee_foreigner_npr", "entry_fee_saarc_npr", "avg_visit_duration_min", "popularity_score"}

	rows := make([][]string, 0, len(attractionNames))
	for i, name := range attractionNames {
		fee := float64(s.rng.Intn(10)) * 100
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			name,
			s.pick(cities),
			categories[i%len(categories)],
			ftoa(fee),
			ftoa(fee / 4),
			strconv.Itoa(60 + s.rng.Intn(120)),
			ftoa(5 + s.rng.Float64()*5),
		})
	}
	return s.writeCSV("attractions_catalog.csv", header, rows)
}

func (s *Seeder) seedAccommodations() error {
	header := []string{"hotel_id", "hotel_type", "city", "area",
		"price_per_night_npr", "rating", "has_wifi", "has_breakfast"}

	rows := make([][]string, 0, 200)
	for i := 0; i < 200; i++ {
		hotelType := s.pick(hotelTypes)
		price := 1000.0
		switch hotelType {
		case "Mid-range Hotel", "Guesthouse":
			price = 2500
		case "Luxury Hotel", "Resort":
			price = 9000
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			hotelType,
			s.pick(cities),
			fmt.Sprintf("Area %d", s.rng.Intn(20)+1),
			ftoa(price * (0.7 + s.rng.Float64()*0.6)),
			ftoa(5 + s.rng.Float64()*5),
			strconv.FormatBool(s.rng.Intn(10) > 1),
			strconv.FormatBool(s.rng.Intn(2) == 0),
		})
	}
	return s.writeCSV("accommodations_catalog.csv", header, rows)
}

func (s *Seeder) seedTourists() error {
	header := []string{"tourist_id", "nationality", "age", "gender", "travel_purpose",
		"arrival_date", "departure_date", "duration_days", "season", "group_size",
		"travel_with", "previous_visits_to_nepal", "hotel_id", "accommodation_type",
		"accommodation_city", "cities_visited", "num_attractions_visited",
		"primary_transport", "uses_tour_guide", "daily_budget_usd",
		"accommodation_cost_npr", "food_cost_npr", "shopping_cost_npr",
		"activities_cost_npr", "transport_cost_npr", "guide_cost_npr",
		"total_spent_npr", "information_source", "main_interest",
		"satisfaction_score", "would_recommend"}

	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	rows := make([][]string, 0, touristCount)
	for i := 0; i < touristCount; i++ {
		duration := 1 + s.rng.Intn(20)
		arrival := start.AddDate(0, 0, s.rng.Intn(365))
		departure := arrival.AddDate(0, 0, duration)

		accom := float64(duration) * (800 + s.rng.Float64()*8000)
		food := float64(duration) * (400 + s.rng.Float64()*2000)
		shopping := s.rng.Float64() * 15000
		activities := s.rng.Float64() * 10000
		transport := float64(duration) * (100 + s.rng.Float64()*900)
		guide := 0.0
		usesGuide := s.rng.Intn(3) == 0
		if usesGuide {
			guide = float64(duration) * (500 + s.rng.Float64()*1500)
		}
		total := accom + food + shopping + activities + transport + guide

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			s.pick(nationalities),
			strconv.Itoa(18 + s.rng.Intn(60)),
			s.pick(genders),
			s.pick(purposes),
			arrival.Format("2006-01-02"),
			departure.Format("2006-01-02"),
			strconv.Itoa(duration),
			seasonFor(arrival.Month()),
			strconv.Itoa(1 + s.rng.Intn(8)),
			s.pick(travelWith),
			strconv.Itoa(s.rng.Intn(4)),
			strconv.Itoa(1 + s.rng.Intn(200)),
			s.pick(hotelTypes),
			s.pick(cities),
			"Kathmandu,Bhaktapur",
			strconv.Itoa(1 + s.rng.Intn(10)),
			s.pick(transports),
			strconv.FormatBool(usesGuide),
			ftoa(30 + s.rng.Float64()*270),
			ftoa(accom),
			ftoa(food),
			ftoa(shopping),
			ftoa(activities),
			ftoa(transport),
			ftoa(guide),
			ftoa(total),
			s.pick(infoSources),
			s.pick(interests),
			ftoa(3 + s.rng.Float64()*7),
			strconv.FormatBool(s.rng.Intn(4) > 0),
		})
	}
	return s.writeCSV("kathmandu_valley_tourists.csv", header, rows)
}

func (s *Seeder) seedVisits() error {
	header := []string{"tourist_id", "attraction_id", "attraction_name", "city",
		"category", "entry_fee_paid", "visit_rating"}

	rows := make([][]string, 0, touristCount*visitsPerTourist)
	for touristID := 1; touristID <= touristCount; touristID++ {
		visitCount := 1 + s.rng.Intn(visitsPerTourist*2-1)
		for v := 0; v < visitCount; v++ {
			attrIdx := s.rng.Intn(len(attractionNames))
			rows = append(rows, []string{
				strconv.Itoa(touristID),
				strconv.Itoa(attrIdx + 1),
				attractionNames[attrIdx],
				s.pick(cities),
				categories[attrIdx%len(categories)],
				ftoa(float64(s.rng.Intn(10)) * 100),
				ftoa(4 + s.rng.Float64()*6),
			})
		}
	}
	return s.writeCSV("tourist_attraction_visits.csv", header, rows)
}

func (s *Seeder) pick(options []string) string {
	return options[s.rng.Intn(len(options))]
}

func seasonFor(m time.Month) string {
	switch m {
	case time.March, time.April, time.May:
		return "Spring"
	case time.June, time.July, time.August:
		return "Monsoon"
	case time.September, time.October, time.November:
		return "Autumn"
	default:
		return "Winter"
	}
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
