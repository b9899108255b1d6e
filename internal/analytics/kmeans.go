package analytics

import (
	"math"

	"tourlytics/internal/stats"
)

const kmeansMaxIterations = 100

// kmeansResult holds the cluster index per input point and the final
// centroids.
type kmeansResult struct {
	assignments []int
	centroids   [][]float64
}

// runKMeans is Lloyd's algorithm with deterministic seeding: the initial
// centroids are the points at evenly spaced indices, so the same dataset
// always yields the same segmentation. k is clamped to the number of points.
// Hitting the iteration cap without convergence is not an error; the last
// assignment stands.
func runKMeans(points [][]float64, k int) (*kmeansResult, error) {
	n := len(points)
	if n == 0 {
		return nil, stats.ErrInsufficientData
	}
	if k > n {
		k = n
	}

	dims := len(points[0])
	centroids := make([][]float64, k)
	for i := 0; i < k; i++ {
		seed := points[i*n/k]
		centroids[i] = append([]float64(nil), seed...)
	}

	assignments := make([]int, n)
	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := false
		for i, p := range points {
			best := nearestCentroid(p, centroids)
			if best != assignments[i] {
				assignments[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		sums := make([][]float64, k)
		counts := make([]int, k)
		for c := range sums {
			sums[c] = make([]float64, dims)
		}
		for i, p := range points {
			c := assignments[i]
			counts[c]++
			for d, v := range p {
				sums[c][d] += v
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				// Empty cluster keeps its previous centroid.
				continue
			}
			for d := 0; d < dims; d++ {
				centroids[c][d] = sums[c][d] / float64(counts[c])
			}
		}
	}

	return &kmeansResult{assignments: assignments, centroids: centroids}, nil
}

func nearestCentroid(p []float64, centroids [][]float64) int {
	best := 0
	bestDist := math.MaxFloat64
	for c, centroid := range centroids {
		var dist float64
		for d, v := range p {
			diff := v - centroid[d]
			dist += diff * diff
		}
		if dist < bestDist {
			bestDist = dist
			best = c
		}
	}
	return best
}
