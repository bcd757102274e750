package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNMSE(t *testing.T) {
	y := []float64{0, 1, 2, 3, 4}

	t.Run("perfect prediction scores zero", func(t *testing.T) {
		require.Equal(t, 0.0, NMSE(y, y))
	})

	t.Run("known offset", func(t *testing.T) {
		yhat := []float64{1, 2, 3, 4, 5}
		// Every residual is 1, range is 4, so NMSE = 1/4.
		require.InDelta(t, 0.25, NMSE(yhat, y), 1e-12)
	})

	t.Run("constant target is unusable", func(t *testing.T) {
		c := []float64{2, 2, 2}
		require.True(t, math.IsInf(NMSE([]float64{2, 2, 2}, c), 1))
	})

	t.Run("length mismatch", func(t *testing.T) {
		require.True(t, math.IsInf(NMSE([]float64{1}, y), 1))
	})

	t.Run("empty input", func(t *testing.T) {
		require.True(t, math.IsInf(NMSE(nil, nil), 1))
	})

	t.Run("infinite prediction", func(t *testing.T) {
		yhat := []float64{0, 1, 2, 3, math.Inf(1)}
		require.True(t, math.IsInf(NMSE(yhat, y), 1))
	})

	t.Run("NaN prediction", func(t *testing.T) {
		yhat := []float64{0, 1, 2, 3, math.NaN()}
		require.True(t, math.IsInf(NMSE(yhat, y), 1))
	})
}

func TestRMSE(t *testing.T) {
	y := []float64{1, 2, 3}

	t.Run("perfect prediction scores zero", func(t *testing.T) {
		require.Equal(t, 0.0, RMSE(y, y))
	})

	t.Run("known offset", func(t *testing.T) {
		yhat := []float64{3, 4, 5}
		require.InDelta(t, 2.0, RMSE(yhat, y), 1e-12)
	})

	t.Run("length mismatch", func(t *testing.T) {
		require.True(t, math.IsInf(RMSE([]float64{1}, y), 1))
	})

	t.Run("NaN prediction", func(t *testing.T) {
		require.True(t, math.IsInf(RMSE([]float64{1, math.NaN(), 3}, y), 1))
	})
}
