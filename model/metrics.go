package model

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// NMSE returns the range-normalized root mean squared error of a
// prediction: the RMS of (yhat-y)/(max(y)-min(y)).
//
// It returns +Inf when the slices differ in length, are empty, the target
// has zero or non-finite range, or the result itself is not finite. A +Inf
// score marks the prediction as unusable, matching the infinity convention
// used by Simulate on invalid models.
func NMSE(yhat, y []float64) float64 {
	if len(yhat) != len(y) || len(y) == 0 {
		return math.Inf(1)
	}

	rng := floats.Max(y) - floats.Min(y)
	if rng == 0 || math.IsNaN(rng) || math.IsInf(rng, 0) {
		return math.Inf(1)
	}

	sum := 0.0
	for i := range y {
		d := (yhat[i] - y[i]) / rng
		sum += d * d
	}

	res := math.Sqrt(sum / float64(len(y)))
	if math.IsNaN(res) {
		return math.Inf(1)
	}

	return res
}

// RMSE returns the root mean squared error of a prediction, or +Inf when
// the slices differ in length, are empty, or the result is not finite.
func RMSE(yhat, y []float64) float64 {
	if len(yhat) != len(y) || len(y) == 0 {
		return math.Inf(1)
	}

	sq := make([]float64, len(y))
	for i := range y {
		d := yhat[i] - y[i]
		sq[i] = d * d
	}

	res := math.Sqrt(stat.Mean(sq, nil))
	if math.IsNaN(res) {
		return math.Inf(1)
	}

	return res
}
