package capture

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// State represents the lifecycle state of a recording session
type State string

const (
	StateIdle      State = "idle"
	StateRecording State = "recording"
	StatePaused    State = "paused"
	StateStopped   State = "stopped"
	StateError     State = "error"
)

// AmplitudeSource reads the instantaneous input level, normalized onto
// 0.0 (silence) to 1.0 (maximum). Implementations must return 0 rather
// than an error when the underlying device is unavailable; device
// failures belong to the capture subsystem, not the sampler.
type AmplitudeSource interface {
	Level() float64
}

// ProgressFunc receives elapsed-time updates while recording
type ProgressFunc func(elapsed time.Duration)

// Recorder owns at most one recording session at a time and drives its
// state machine: idle -> recording <-> paused -> stopped, with cancel
// returning to idle and capture faults landing in the error state.
//
// A Recorder is not process-global state. The controller that owns the
// recording flow should create one and inject fake tick sources and
// clocks in tests.
type Recorder struct {
	mu         sync.Mutex
	state      State
	source     AmplitudeSource
	thresholds QualityThresholds

	newTicker       TickFactory
	now             func() time.Time
	sampleInterval  time.Duration
	elapsedInterval time.Duration
	windowCapacity  int
	fileSize        func(path string) (int64, error)
	remove          func(path string) error
	checkPermission func() error
	onProgress      ProgressFunc

	outputPath  string
	accumulated time.Duration
	resumedAt   time.Time
	peak        float64
	window      *AmplitudeWindow
	lastErr     error

	sampler     TickSource
	samplerDone chan struct{}
	elapsed     TickSource
	elapsedDone chan struct{}
}

// Option configures a Recorder
type Option func(*Recorder)

// WithTickFactory replaces the wall-clock tick source, letting tests
// drive deterministic ticks
func WithTickFactory(f TickFactory) Option {
	return func(r *Recorder) { r.newTicker = f }
}

// WithClock replaces the wall clock used for elapsed-time accounting
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

// WithSampleInterval sets the amplitude sampling period
func WithSampleInterval(d time.Duration) Option {
	return func(r *Recorder) { r.sampleInterval = d }
}

// WithWindowCapacity sets the amplitude window capacity
func WithWindowCapacity(n int) Option {
	return func(r *Recorder) { r.windowCapacity = n }
}

// WithFileSizer replaces the function used to measure the recorded file
func WithFileSizer(f func(path string) (int64, error)) Option {
	return func(r *Recorder) { r.fileSize = f }
}

// WithRemover replaces the function used to discard cancelled recordings
func WithRemover(f func(path string) error) Option {
	return func(r *Recorder) { r.remove = f }
}

// WithPermissionCheck sets the microphone permission check run at Start
func WithPermissionCheck(f func() error) Option {
	return func(r *Recorder) { r.checkPermission = f }
}

// WithProgress registers a callback receiving elapsed-time ticks once
// per second while recording
func WithProgress(f ProgressFunc) Option {
	return func(r *Recorder) { r.onProgress = f }
}

// NewRecorder creates a Recorder reading levels from source and judging
// stopped recordings against thresholds
func NewRecorder(source AmplitudeSource, thresholds QualityThresholds, opts ...Option) *Recorder {
	r := &Recorder{
		state:           StateIdle,
		source:          source,
		thresholds:      thresholds,
		newTicker:       NewWallTicker,
		now:             time.Now,
		sampleInterval:  50 * time.Millisecond,
		elapsedInterval: time.Second,
		windowCapacity:  DefaultWindowCapacity,
		remove:          os.Remove,
	}
	r.fileSize = func(path string) (int64, error) {
		info, err := os.Stat(path)
		if err != nil {
			return 0, err
		}
		return info.Size(), nil
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current session state
func (r *Recorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Elapsed returns the recorded duration accumulated so far, excluding
// paused time
func (r *Recorder) Elapsed() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.elapsedLocked()
}

func (r *Recorder) elapsedLocked() time.Duration {
	if r.state == StateRecording {
		return r.accumulated + r.now().Sub(r.resumedAt)
	}
	return r.accumulated
}

// Peak returns the running maximum amplitude of the current session
func (r *Recorder) Peak() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.peak
}

// LastError returns the fault that moved the session into the error state
func (r *Recorder) LastError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

// Start begins a new recording session writing to outputPath. Starting
// while a session is recording or paused fails with ErrSessionActive
// rather than replacing the in-flight session.
func (r *Recorder) Start(outputPath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateRecording || r.state == StatePaused {
		return ErrSessionActive
	}
	if r.checkPermission != nil {
		if err := r.checkPermission(); err != nil {
			r.state = StateError
			r.lastErr = fmt.Errorf("%w: %v", ErrPermissionDenied, err)
			return r.lastErr
		}
	}

	r.outputPath = outputPath
	r.accumulated = 0
	r.peak = 0
	r.window = NewAmplitudeWindow(r.windowCapacity)
	r.lastErr = nil
	r.resumedAt = r.now()
	r.state = StateRecording
	r.startTimersLocked()
	return nil
}

// Pause suspends sampling and elapsed-time accumulation, preserving all
// accumulated state
func (r *Recorder) Pause() error {
	r.mu.Lock()
	if r.state != StateRecording {
		r.mu.Unlock()
		return ErrInvalidState
	}
	r.accumulated += r.now().Sub(r.resumedAt)
	r.state = StatePaused
	sampler, samplerDone, elapsed, elapsedDone := r.takeTimersLocked()
	r.mu.Unlock()

	haltTimers(sampler, samplerDone, elapsed, elapsedDone)
	return nil
}

// Resume restarts sampling and elapsed-time accumulation without
// resetting the accumulated peak or window
func (r *Recorder) Resume() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StatePaused {
		return ErrInvalidState
	}
	r.resumedAt = r.now()
	r.state = StateRecording
	r.startTimersLocked()
	return nil
}

// Stop halts the session, waits for the sampler to drain so the
// validator observes a quiescent snapshot, and runs the capture-time
// quality gate. The session is consumed regardless of outcome.
func (r *Recorder) Stop() (Outcome, error) {
	r.mu.Lock()
	if r.state != StateRecording && r.state != StatePaused {
		r.mu.Unlock()
		return Outcome{}, ErrInvalidState
	}
	if r.state == StateRecording {
		r.accumulated += r.now().Sub(r.resumedAt)
	}
	r.state = StateStopped
	sampler, samplerDone, elapsed, elapsedDone := r.takeTimersLocked()
	r.mu.Unlock()

	haltTimers(sampler, samplerDone, elapsed, elapsedDone)

	r.mu.Lock()
	defer r.mu.Unlock()

	size, err := r.fileSize(r.outputPath)
	if err != nil {
		r.state = StateError
		r.lastErr = fmt.Errorf("%w: %v", ErrNoOutput, err)
		return Outcome{}, r.lastErr
	}

	snap := Snapshot{
		Elapsed:          r.accumulated,
		FileSizeBytes:    size,
		PeakAmplitude:    r.peak,
		AverageAmplitude: r.window.Average(),
		OutputPath:       r.outputPath,
	}
	return Validate(snap, r.thresholds), nil
}

// Cancel discards the in-flight recording and returns the session to
// idle. No validation runs and no error is reported; cancellation is a
// user-initiated no-op, not a failure.
func (r *Recorder) Cancel() error {
	r.mu.Lock()
	if r.state != StateRecording && r.state != StatePaused {
		r.mu.Unlock()
		return ErrInvalidState
	}
	path := r.outputPath
	r.outputPath = ""
	r.accumulated = 0
	r.peak = 0
	if r.window != nil {
		r.window.Reset()
	}
	r.state = StateIdle
	sampler, samplerDone, elapsed, elapsedDone := r.takeTimersLocked()
	r.mu.Unlock()

	haltTimers(sampler, samplerDone, elapsed, elapsedDone)
	if path != "" {
		_ = r.remove(path)
	}
	return nil
}

// Fault moves the session into the terminal error state after a
// capture-layer failure such as device loss or an encode error
func (r *Recorder) Fault(cause error) {
	r.mu.Lock()
	r.state = StateError
	r.lastErr = cause
	sampler, samplerDone, elapsed, elapsedDone := r.takeTimersLocked()
	r.mu.Unlock()

	haltTimers(sampler, samplerDone, elapsed, elapsedDone)
}

// startTimersLocked launches the amplitude sampler and the elapsed-time
// ticker. Caller must hold r.mu.
func (r *Recorder) startTimersLocked() {
	r.sampler = r.newTicker(r.sampleInterval)
	r.samplerDone = make(chan struct{})
	go func(ts TickSource, done chan struct{}) {
		defer close(done)
		for range ts.Ticks() {
			r.sample()
		}
	}(r.sampler, r.samplerDone)

	if r.onProgress != nil {
		r.elapsed = r.newTicker(r.elapsedInterval)
		r.elapsedDone = make(chan struct{})
		go func(ts TickSource, done chan struct{}) {
			defer close(done)
			for range ts.Ticks() {
				r.onProgress(r.Elapsed())
			}
		}(r.elapsed, r.elapsedDone)
	}
}

func (r *Recorder) takeTimersLocked() (TickSource, chan struct{}, TickSource, chan struct{}) {
	sampler, samplerDone := r.sampler, r.samplerDone
	elapsed, elapsedDone := r.elapsed, r.elapsedDone
	r.sampler, r.samplerDone = nil, nil
	r.elapsed, r.elapsedDone = nil, nil
	return sampler, samplerDone, elapsed, elapsedDone
}

func haltTimers(sampler TickSource, samplerDone chan struct{}, elapsed TickSource, elapsedDone chan struct{}) {
	if sampler != nil {
		sampler.Stop()
		<-samplerDone
	}
	if elapsed != nil {
		elapsed.Stop()
		<-elapsedDone
	}
}

// sample reads one amplitude sample and applies it to the session.
// Samples arriving after the session left the recording state are
// dropped, which keeps the post-stop snapshot quiescent.
func (r *Recorder) sample() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateRecording {
		return
	}
	v := 0.0
	if r.source != nil {
		v = r.source.Level()
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	if v > r.peak {
		r.peak = v
	}
	r.window.Push(v)
}
