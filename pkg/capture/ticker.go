package capture

import "time"

// TickSource delivers periodic ticks to the amplitude sampler and the
// elapsed-time tracker. Stop must close the Ticks channel so consumers
// can drain and exit. Tests inject fake sources to drive deterministic
// ticks instead of wall-clock timers.
type TickSource interface {
	Ticks() <-chan time.Time
	Stop()
}

// TickFactory creates a TickSource firing at the given interval
type TickFactory func(interval time.Duration) TickSource

type wallTicker struct {
	out  chan time.Time
	quit chan struct{}
}

// NewWallTicker returns a TickSource backed by a real time.Ticker
func NewWallTicker(interval time.Duration) TickSource {
	w := &wallTicker{
		out:  make(chan time.Time),
		quit: make(chan struct{}),
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer close(w.out)
		defer ticker.Stop()
		for {
			select {
			case t := <-ticker.C:
				select {
				case w.out <- t:
				case <-w.quit:
					return
				}
			case <-w.quit:
				return
			}
		}
	}()
	return w
}

func (w *wallTicker) Ticks() <-chan time.Time {
	return w.out
}

func (w *wallTicker) Stop() {
	select {
	case <-w.quit:
	default:
		close(w.quit)
	}
}
