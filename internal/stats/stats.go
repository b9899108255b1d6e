// Package stats holds the aggregation and summary-statistic primitives
// shared by every analytics component: frequency counts, grouping,
// Pearson correlation, ordinary least squares, and fixed-bucket
// histogramming.
package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrInsufficientData is returned when a statistic is asked to summarize
// fewer points than it needs (empty input, a single point, or zero
// variance). Callers summarizing subgroups should omit the group rather
// than fail the whole report.
var ErrInsufficientData = errors.New("insufficient data")

// LabelCount is one entry of a frequency table.
type LabelCount struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// TopN frequency-counts labels and returns the n most frequent, sorted by
// count descending. Ties keep first-encountered order. Percentages are of
// the full input length, one decimal.
func TopN(labels []string, n int) []LabelCount {
	table := frequencyTable(labels)
	if n < len(table) {
		table = table[:n]
	}
	return table
}

// Distribution emits one entry per distinct key value with count and
// percentage of total, sorted by count descending.
func Distribution[T any](items []T, key func(T) string) []LabelCount {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = key(item)
	}
	return frequencyTable(labels)
}

func frequencyTable(labels []string) []LabelCount {
	counts := make(map[string]int, len(labels))
	order := make([]string, 0)
	for _, label := range labels {
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	table := make([]LabelCount, 0, len(order))
	for _, label := range order {
		table = append(table, LabelCount{
			Label:      label,
			Count:      counts[label],
			Percentage: Percentage(counts[label], len(labels)),
		})
	}
	sort.SliceStable(table, func(i, j int) bool { return table[i].Count > table[j].Count })
	return table
}

// MostFrequent returns the modal label, ties broken by first encounter.
// Empty input returns "".
func MostFrequent(labels []string) string {
	counts := make(map[string]int, len(labels))
	best := ""
	bestCount := 0
	for _, label := range labels {
		counts[label]++
		if counts[label] > bestCount {
			best = label
			bestCount = counts[label]
		}
	}
	return best
}

// Group is one bucket of a GroupBy result.
type Group[T any] struct {
	Key   string
	Items []T
}

// GroupBy partitions items by key, preserving original relative order
// within each group and first-encounter order across groups.
func GroupBy[T any](items []T, key func(T) string) []Group[T] {
	index := make(map[string]int, len(items))
	groups := make([]Group[T], 0)
	for _, item := range items {
		k := key(item)
		i, seen := index[k]
		if !seen {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// Mean averages xs, failing on empty input.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrInsufficientData
	}
	return Sum(xs) / float64(len(xs)), nil
}

// MeanBy averages f over items, failing on empty input.
func MeanBy[T any](items []T, f func(T) float64) (float64, error) {
	if len(items) == 0 {
		return 0, ErrInsufficientData
	}
	return SumBy(items, f) / float64(len(items)), nil
}

// Sum totals xs.
func Sum(xs []float64) float64 {
	var total float64
	for _, x := range xs {
		total += x
	}
	return total
}

// SumBy totals f over items.
func SumBy[T any](items []T, f func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += f(item)
	}
	return total
}

// CountBy counts items matching pred.
func CountBy[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// RateBy returns the percentage of items matching pred, one decimal.
// Empty input yields 0.
func RateBy[T any](items []T, pred func(T) bool) float64 {
	return Percentage(CountBy(items, pred), len(items))
}

// Correlation computes the sample Pearson correlation of xs and ys.
// Fewer than two points or zero variance in either dimension is
// ErrInsufficientData rather than NaN.
func Correlation(xs, ys []float64) (float64, error) {
	n := len(xs)
	if n != len(ys) || n < 2 {
		return 0, ErrInsufficientData
	}

	meanX, _ := Mean(xs)
	meanY, _ := Mean(ys)

	var sxy, sxx, syy float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, ErrInsufficientData
	}
	return sxy / math.Sqrt(sxx*syy), nil
}

// LinearRegression fits y = slope*x + intercept by ordinary least squares.
// Fewer than two points or zero variance in x is ErrInsufficientData.
func LinearRegression(xs, ys []float64) (slope, intercept float64, err error) {
	n := len(xs)
	if n != len(ys) || n < 2 {
		return 0, 0, ErrInsufficientData
	}

	meanX, _ := Mean(xs)
	meanY, _ := Mean(ys)

	var sxy, sxx float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		sxy += dx * (ys[i] - meanY)
		sxx += dx * dx
	}
	if sxx == 0 {
		return 0, 0, ErrInsufficientData
	}
	slope = sxy / sxx
	intercept = meanY - slope*meanX
	return slope, intercept, nil
}

// Bucket is one inclusive [Min, Max] histogram bucket.
type Bucket struct {
	Label string
	Min   float64
	Max   float64
}

// BucketGroup holds the items that fell into one bucket.
type BucketGroup[T any] struct {
	Bucket
	Items []T
}

// Bucketize assigns each item to the first bucket whose inclusive bounds
// contain its value. Items matching no bucket are excluded; this is not
// an error.
func Bucketize[T any](items []T, value func(T) float64, buckets []Bucket) []BucketGroup[T] {
	groups := make([]BucketGroup[T], len(buckets))
	for i, b := range buckets {
		groups[i].Bucket = b
	}
	for _, item := range items {
		v := value(item)
		for i, b := range buckets {
			if v >= b.Min && v <= b.Max {
				groups[i].Items = append(groups[i].Items, item)
				break
			}
		}
	}
	return groups
}

// Percentage is part/total*100 rounded to one decimal; 0 when total is 0.
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round1(float64(part) / float64(total) * 100)
}

// Round1 rounds to 1 decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round3 rounds to 3 decimal places.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
