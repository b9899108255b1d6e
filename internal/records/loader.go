package records

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"tourlytics/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// Source file names inside the data directory.
const (
	touristsFile       = "kathmandu_valley_tourists.csv"
	attractionsFile    = "attractions_catalog.csv"
	accommodationsFile = "accommodations_catalog.csv"
	visitsFile         = "tourist_attraction_visits.csv"
)

// Loader produces the four cleaned collections.
type Loader interface {
	Load() (*Dataset, error)
}

// CSVLoader reads the four CSV files from a data directory, coerces column
// types, and drops rows that violate the record invariants.
type CSVLoader struct {
	dir      string
	validate *validator.Validate
	log      *logger.Logger
}

// NewCSVLoader creates a loader rooted at dir.
func NewCSVLoader(dir string, log *logger.Logger) *CSVLoader {
	if log == nil {
		log = logger.GetDefault()
	}
	return &CSVLoader{
		dir:      dir,
		validate: validator.New(),
		log:      log,
	}
}

// Load reads and cleans all four collections. Any file or header failure
// makes the whole dataset unavailable; row-level failures only drop rows.
func (l *CSVLoader) Load() (*Dataset, error) {
	tourists, err := l.loadTourists()
	if err != nil {
		return nil, fmt.Errorf("loading tourists: %w", err)
	}
	attractions, err := l.loadAttractions()
	if err != nil {
		return nil, fmt.Errorf("loading attractions: %w", err)
	}
	accommodations, err := l.loadAccommodations()
	if err != nil {
		return nil, fmt.Errorf("loading accommodations: %w", err)
	}
	visits, err := l.loadVisits()
	if err != nil {
		return nil, fmt.Errorf("loading visits: %w", err)
	}

	ds := &Dataset{
		Tourists:       tourists,
		Attractions:    attractions,
		Accommodations: accommodations,
		Visits:         visits,
	}
	l.log.LogDatasetLoaded(len(tourists), len(attractions), len(accommodations), len(visits))
	return ds, nil
}

func (l *CSVLoader) loadTourists() ([]Tourist, error) {
	rows, err := l.readFile(touristsFile)
	if err != nil {
		return nil, err
	}

	tourists := make([]Tourist, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		id, err := r.intCol("tourist_id")
		if err != nil {
			dropped++
			continue
		}

		t := Tourist{
			ID:                   id,
			Nationality:          r.col("nationality"),
			Age:                  r.intColOr("age", 0),
			Gender:               r.col("gender"),
			TravelPurpose:        r.col("travel_purpose"),
			ArrivalDate:          r.dateCol("arrival_date"),
			DepartureDate:        r.dateCol("departure_date"),
			DurationDays:         r.intColOr("duration_days", 0),
			Season:               r.col("season"),
			GroupSize:            r.intColOr("group_size", 0),
			TravelWith:           r.col("travel_with"),
			PreviousVisits:       r.intColOr("previous_visits_to_nepal", 0),
			HotelID:              r.intColOr("hotel_id", 0),
			AccommodationType:    r.col("accommodation_type"),
			AccommodationCity:    r.col("accommodation_city"),
			CitiesVisited:        splitList(r.col("cities_visited")),
			AttractionsVisited:   r.intColOr("num_attractions_visited", 0),
			PrimaryTransport:     r.col("primary_transport"),
			UsesTourGuide:        r.boolCol("uses_tour_guide"),
			DailyBudgetUSD:       r.floatColOr("daily_budget_usd", 0),
			AccommodationCostNPR: r.floatColOr("accommodation_cost_npr", 0),
			FoodCostNPR:          r.floatColOr("food_cost_npr", 0),
			ShoppingCostNPR:      r.floatColOr("shopping_cost_npr", 0),
			ActivitiesCostNPR:    r.floatColOr("activities_cost_npr", 0),
			TransportCostNPR:     r.floatColOr("transport_cost_npr", 0),
			GuideCostNPR:         r.floatColOr("guide_cost_npr", 0),
			TotalSpentNPR:        r.floatColOr("total_spent_npr", 0),
			InformationSource:    r.col("information_source"),
			MainInterest:         r.col("main_interest"),
			SatisfactionScore:    r.floatColOr("satisfaction_score", 0),
			WouldRecommend:       r.boolCol("would_recommend"),
		}

		// Invariant checks: total_spent_npr > 0 plus the struct tag rules.
		if err := l.validate.Struct(t); err != nil {
			dropped++
			continue
		}
		tourists = append(tourists, t)
	}

	if dropped > 0 {
		l.log.Warn("dropped invalid tourist rows",
			slog.Int("dropped", dropped), slog.Int("kept", len(tourists)))
	}
	return tourists, nil
}

func (l *CSVLoader) loadAttractions() ([]Attraction, error) {
	rows, err := l.readFile(attractionsFile)
	if err != nil {
		return nil, err
	}

	attractions := make([]Attraction, 0, len(rows))
	for _, r := range rows {
		id, err := r.intCol("attraction_id")
		if err != nil {
			continue
		}
		attractions = append(attractions, Attraction{
			ID:              id,
			Name:            r.col("attraction_name"),
			City:            r.col("city"),
			Category:        r.col("category"),
			EntryFeeForeign: r.floatColOr("entry_fee_foreigner_npr", 0),
			EntryFeeSAARC:   r.floatColOr("entry_fee_saarc_npr", 0),
			AvgDurationMin:  r.floatColOr("avg_visit_duration_min", 0),
			PopularityScore: r.floatColOr("popularity_score", 0),
		})
	}
	return attractions, nil
}

func (l *CSVLoader) loadAccommodations() ([]Accommodation, error) {
	rows, err := l.readFile(accommodationsFile)
	if err != nil {
		return nil, err
	}

	accommodations := make([]Accommodation, 0, len(rows))
	for _, r := range rows {
		id, err := r.intCol("hotel_id")
		if err != nil {
			continue
		}
		accommodations = append(accommodations, Accommodation{
			ID:            id,
			HotelType:     r.col("hotel_type"),
			City:          r.col("city"),
			Area:          r.col("area"),
			PricePerNight: r.floatColOr("price_per_night_npr", 0),
			Rating:        r.floatColOr("rating", 0),
			HasWiFi:       r.boolCol("has_wifi"),
			HasBreakfast:  r.boolCol("has_breakfast"),
		})
	}
	return accommodations, nil
}

func (l *CSVLoader) loadVisits() ([]Visit, error) {
	rows, err := l.readFile(visitsFile)
	if err != nil {
		return nil, err
	}

	visits := make([]Visit, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		// Rows whose tourist id does not parse are dropped.
		touristID, err := r.intCol("tourist_id")
		if err != nil {
			dropped++
			continue
		}
		visits = append(visits, Visit{
			TouristID:      touristID,
			AttractionID:   r.intColOr("attraction_id", 0),
			AttractionName: r.col("attraction_name"),
			City:           r.col("city"),
			Category:       r.col("category"),
			EntryFeePaid:   r.floatColOr("entry_fee_paid", 0),
			VisitRating:    r.floatColOr("visit_rating", 0),
		})
	}

	if dropped > 0 {
		l.log.Warn("dropped invalid visit rows",
			slog.Int("dropped", dropped), slog.Int("kept", len(visits)))
	}
	return visits, nil
}

// row gives header-keyed access to one CSV record.
type row struct {
	index  map[string]int
	fields []string
}

func (r row) col(name string) string {
	i, ok := r.index[name]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func (r row) intCol(name string) (int, error) {
	return strconv.Atoi(r.col(name))
}

func (r row) intColOr(name string, fallback int) int {
	v, err := strconv.Atoi(r.col(name))
	if err != nil {
		return fallback
	}
	return v
}

func (r row) floatColOr(name string, fallback float64) float64 {
	v, err := strconv.ParseFloat(r.col(name), 64)
	if err != nil {
		return fallback
	}
	return v
}

func (r row) boolCol(name string) bool {
	return strings.EqualFold(r.col(name), "true")
}

func (r row) dateCol(name string) time.Time {
	t, err := time.Parse("2006-01-02", r.col(name))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (l *CSVLoader) readFile(name string) ([]row, error) {
	f, err := os.Open(filepath.Join(l.dir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readRows(f)
}

// readRows parses CSV content into header-indexed rows. Malformed rows are
// skipped rather than failing the whole file.
func readRows(r io.Reader) ([]row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.TrimSpace(h)] = i
	}

	var rows []row
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		rows = append(rows, row{index: index, fields: fields})
	}
	return rows, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
