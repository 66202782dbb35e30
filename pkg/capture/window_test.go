package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmplitudeWindow_NeverExceedsCapacity(t *testing.T) {
	w := NewAmplitudeWindow(5)

	for i := 0; i < 100; i++ {
		w.Push(float64(i) / 100)
		assert.LessOrEqual(t, w.Len(), 5, "window grew past its capacity")
	}

	assert.Equal(t, 5, w.Len())
	assert.Equal(t, 5, w.Cap())
}

func TestAmplitudeWindow_EvictsOldestFirst(t *testing.T) {
	w := NewAmplitudeWindow(3)

	w.Push(0.1)
	w.Push(0.2)
	w.Push(0.3)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, w.Values())

	// Fourth push evicts 0.1, fifth evicts 0.2
	w.Push(0.4)
	assert.Equal(t, []float64{0.2, 0.3, 0.4}, w.Values())
	w.Push(0.5)
	assert.Equal(t, []float64{0.3, 0.4, 0.5}, w.Values())
}

func TestAmplitudeWindow_Average(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		want    float64
	}{
		{name: "empty window", samples: nil, want: 0},
		{name: "single sample", samples: []float64{0.4}, want: 0.4},
		{name: "mean of samples", samples: []float64{0.2, 0.4, 0.6}, want: 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewAmplitudeWindow(10)
			for _, s := range tt.samples {
				w.Push(s)
			}
			assert.InDelta(t, tt.want, w.Average(), 1e-9)
		})
	}
}

func TestAmplitudeWindow_AverageAfterEviction(t *testing.T) {
	w := NewAmplitudeWindow(2)
	w.Push(1.0)
	w.Push(0.5)
	w.Push(0.3)

	// 1.0 was evicted, only 0.5 and 0.3 remain
	assert.InDelta(t, 0.4, w.Average(), 1e-9)
}

func TestAmplitudeWindow_Reset(t *testing.T) {
	w := NewAmplitudeWindow(4)
	w.Push(0.9)
	w.Push(0.9)
	w.Reset()

	assert.Equal(t, 0, w.Len())
	assert.Equal(t, 0.0, w.Average())
}

func TestNewAmplitudeWindow_DefaultsInvalidCapacity(t *testing.T) {
	w := NewAmplitudeWindow(0)
	assert.Equal(t, DefaultWindowCapacity, w.Cap())

	w = NewAmplitudeWindow(-3)
	assert.Equal(t, DefaultWindowCapacity, w.Cap())
}
