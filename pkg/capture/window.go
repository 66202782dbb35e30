package capture

// AmplitudeWindow is a fixed-capacity FIFO buffer of normalized amplitude
// samples. When full, pushing a new sample evicts the oldest one.
type AmplitudeWindow struct {
	samples  []float64
	capacity int
	head     int
	size     int
}

// DefaultWindowCapacity is the number of recent samples kept for the
// advisory average-amplitude check. At a 50ms sample interval this covers
// roughly the last five seconds of audio.
const DefaultWindowCapacity = 100

// NewAmplitudeWindow creates a window holding at most capacity samples
func NewAmplitudeWindow(capacity int) *AmplitudeWindow {
	if capacity <= 0 {
		capacity = DefaultWindowCapacity
	}
	return &AmplitudeWindow{
		samples:  make([]float64, capacity),
		capacity: capacity,
	}
}

// Push appends a sample, evicting the oldest one if the window is full
func (w *AmplitudeWindow) Push(v float64) {
	idx := (w.head + w.size) % w.capacity
	w.samples[idx] = v
	if w.size < w.capacity {
		w.size++
		return
	}
	// Window full: the slot we just wrote was the oldest sample
	w.head = (w.head + 1) % w.capacity
}

// Len returns the number of samples currently held
func (w *AmplitudeWindow) Len() int {
	return w.size
}

// Cap returns the fixed capacity of the window
func (w *AmplitudeWindow) Cap() int {
	return w.capacity
}

// Average returns the mean of the held samples, or 0 if the window is empty
func (w *AmplitudeWindow) Average() float64 {
	if w.size == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < w.size; i++ {
		sum += w.samples[(w.head+i)%w.capacity]
	}
	return sum / float64(w.size)
}

// Values returns the held samples in insertion order (oldest first)
func (w *AmplitudeWindow) Values() []float64 {
	out := make([]float64, w.size)
	for i := 0; i < w.size; i++ {
		out[i] = w.samples[(w.head+i)%w.capacity]
	}
	return out
}

// Reset discards all held samples
func (w *AmplitudeWindow) Reset() {
	w.head = 0
	w.size = 0
}
