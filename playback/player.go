package playback

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is the auto-advance cadence of the visualizer.
const DefaultInterval = 100 * time.Millisecond

// Sentinel errors for Player.
var (
	// ErrNoFrames is returned by New for an empty trace.
	ErrNoFrames = errors.New("playback: trace has no frames")

	// ErrBadInterval is returned when a non-positive interval is supplied.
	ErrBadInterval = errors.New("playback: interval must be positive")

	// ErrAlreadyPlaying is returned by Play while another Play is running.
	ErrAlreadyPlaying = errors.New("playback: already playing")
)

// Option configures a Player.
type Option func(*Options)

// Options holds the Player tunables.
//
//   - Interval: delay between auto-advanced frames (default DefaultInterval).
//   - Loop: wrap to frame 0 after the last frame instead of stopping.
//   - OnFrame: called with the new index whenever the cursor moves.
type Options struct {
	Interval time.Duration
	Loop     bool
	OnFrame  func(i int)

	err error
}

// DefaultOptions returns Options with DefaultInterval, no looping and a
// no-op OnFrame.
func DefaultOptions() Options {
	return Options{
		Interval: DefaultInterval,
		OnFrame:  func(int) {},
	}
}

// WithInterval sets the auto-advance cadence; d ≤ 0 → ErrBadInterval.
func WithInterval(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: %v", ErrBadInterval, d)

			return
		}
		o.Interval = d
	}
}

// WithLoop makes Play restart from the first frame after the last one.
func WithLoop(loop bool) Option {
	return func(o *Options) { o.Loop = loop }
}

// WithOnFrame registers a callback fired on every cursor move.
func WithOnFrame(fn func(i int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFrame = fn
		}
	}
}

// Player replays an immutable slice of frames.
type Player[T any] struct {
	frames  []T
	opts    Options
	cursor  atomic.Int64
	playing atomic.Bool

	mu   sync.Mutex
	stop chan struct{}
}

// New builds a Player positioned on frame 0.
// The frames slice is retained, not copied; callers must not modify it.
func New[T any](frames []T, opts ...Option) (*Player[T], error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Player[T]{frames: frames, opts: o}, nil
}

// Len returns the number of frames.
func (p *Player[T]) Len() int { return len(p.frames) }

// Index returns the cursor position.
func (p *Player[T]) Index() int { return int(p.cursor.Load()) }

// Current returns the frame under the cursor.
func (p *Player[T]) Current() T { return p.frames[p.Index()] }

// Frame returns frame i, clamped into range.
func (p *Player[T]) Frame(i int) T { return p.frames[p.clamp(i)] }

// AtEnd reports whether the cursor is on the last frame.
func (p *Player[T]) AtEnd() bool { return p.Index() == len(p.frames)-1 }

// Playing reports whether Play is running.
func (p *Player[T]) Playing() bool { return p.playing.Load() }

// Seek moves the cursor to i clamped to [0, Len()-1] and returns the new
// position.
func (p *Player[T]) Seek(i int) int {
	i = p.clamp(i)
	if old := p.cursor.Swap(int64(i)); old != int64(i) {
		p.opts.OnFrame(i)
	}

	return i
}

// Next advances one frame and reports whether the cursor moved.
func (p *Player[T]) Next() bool {
	i := p.Index()

	return p.Seek(i+1) != i
}

// Prev steps back one frame and reports whether the cursor moved.
func (p *Player[T]) Prev() bool {
	i := p.Index()

	return p.Seek(i-1) != i
}

// Reset moves the cursor back to frame 0.
func (p *Player[T]) Reset() { p.Seek(0) }

// Play advances the cursor once per interval until the last frame is shown
// (nil), Pause is called (nil) or ctx is done (ctx.Err()).
// Starting on the last frame without looping rewinds to frame 0 first.
func (p *Player[T]) Play(ctx context.Context) error {
	stop := make(chan struct{})
	// playing and stop change together under mu, so a Pause that observes
	// Playing() == true always finds the channel to close.
	p.mu.Lock()
	if !p.playing.CompareAndSwap(false, true) {
		p.mu.Unlock()
		return ErrAlreadyPlaying
	}
	p.stop = stop
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.stop = nil
		p.playing.Store(false)
		p.mu.Unlock()
	}()

	if p.AtEnd() && !p.opts.Loop {
		p.Reset()
	}
	if len(p.frames) == 1 && !p.opts.Loop {
		return nil
	}

	ticker := time.NewTicker(p.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			return nil
		case <-ticker.C:
			if !p.tick() {
				return nil
			}
		}
	}
}

// Pause stops a running Play; it is a no-op otherwise.
func (p *Player[T]) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
}

// tick advances one frame and reports whether playback should continue.
func (p *Player[T]) tick() bool {
	last := len(p.frames) - 1
	i := p.Index()
	if i >= last {
		if !p.opts.Loop {
			return false
		}
		p.Seek(0)

		return true
	}
	p.Seek(i + 1)

	return p.opts.Loop || i+1 < last
}

func (p *Player[T]) clamp(i int) int {
	switch {
	case i < 0:
		return 0
	case i >= len(p.frames):
		return len(p.frames) - 1
	default:
		return i
	}
}
