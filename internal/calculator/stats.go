package calculator

import (
	"github.com/montanaflynn/stats"
)

// Mean returns the arithmetic mean, or 0 for empty input.
func Mean(xs []float64) float64 {
	m, err := stats.Mean(xs)
	if err != nil {
		return 0
	}
	return m
}

// PopulationStdDev returns the population standard deviation, or 0 for
// empty input.
func PopulationStdDev(xs []float64) float64 {
	sd, err := stats.StandardDeviationPopulation(xs)
	if err != nil {
		return 0
	}
	return sd
}

// Sum returns the total, or 0 for empty input.
func Sum(xs []float64) float64 {
	s, err := stats.Sum(xs)
	if err != nil {
		return 0
	}
	return s
}

// Max returns the largest value, or 0 for empty input.
func Max(xs []float64) float64 {
	m, err := stats.Max(xs)
	if err != nil {
		return 0
	}
	return m
}

// Min returns the smallest value, or 0 for empty input.
func Min(xs []float64) float64 {
	m, err := stats.Min(xs)
	if err != nil {
		return 0
	}
	return m
}
