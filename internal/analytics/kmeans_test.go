package analytics

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"tourlytics/internal/stats"
)

func TestRunKMeansEmpty(t *testing.T) {
	if _, err := runKMeans(nil, 4); !errors.Is(err, stats.ErrInsufficientData) {
		t.Errorf("error = %v, want ErrInsufficientData", err)
	}
}

func TestRunKMeansClampsK(t *testing.T) {
	points := [][]float64{{0, 0}, {10, 10}}
	result, err := runKMeans(points, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.centroids) != 2 {
		t.Errorf("got %d centroids, want 2 (k clamped to point count)", len(result.centroids))
	}
}

func TestRunKMeansSeparatedClusters(t *testing.T) {
	// Two tight groups far apart must end up in different clusters.
	points := [][]float64{
		{0, 0}, {1, 0}, {0, 1},
		{100, 100}, {101, 100}, {100, 101},
	}
	result, err := runKMeans(points, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.assignments) != len(points) {
		t.Fatalf("got %d assignments, want %d", len(result.assignments), len(points))
	}
	low := result.assignments[0]
	for i := 0; i < 3; i++ {
		if result.assignments[i] != low {
			t.Errorf("point %d assigned to %d, want %d", i, result.assignments[i], low)
		}
	}
	high := result.assignments[3]
	if high == low {
		t.Fatal("both groups landed in the same cluster")
	}
	for i := 3; i < 6; i++ {
		if result.assignments[i] != high {
			t.Errorf("point %d assigned to %d, want %d", i, result.assignments[i], high)
		}
	}
}

func TestRunKMeansDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	points := make([][]float64, 50)
	for i := range points {
		points[i] = []float64{rng.Float64() * 100, rng.Float64() * 10}
	}

	first, err := runKMeans(points, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := runKMeans(points, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first.assignments, second.assignments) {
		t.Error("assignments differ between identical runs")
	}
	if !reflect.DeepEqual(first.centroids, second.centroids) {
		t.Error("centroids differ between identical runs")
	}
}

func TestNearestCentroid(t *testing.T) {
	centroids := [][]float64{{0, 0}, {10, 0}, {5, 5}}
	tests := []struct {
		point []float64
		want  int
	}{
		{[]float64{1, 1}, 0},
		{[]float64{9, 1}, 1},
		{[]float64{5, 4}, 2},
	}
	for _, tt := range tests {
		if got := nearestCentroid(tt.point, centroids); got != tt.want {
			t.Errorf("nearestCentroid(%v) = %d, want %d", tt.point, got, tt.want)
		}
	}
}
