package playback_test

import (
	"context"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/algotrace/playback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Errors verifies constructor validation.
func TestNew_Errors(t *testing.T) {
	_, err := playback.New([]int{})
	assert.ErrorIs(t, err, playback.ErrNoFrames)

	_, err = playback.New([]int{1}, playback.WithInterval(0))
	assert.ErrorIs(t, err, playback.ErrBadInterval)

	_, err = playback.New([]int{1}, playback.WithInterval(-time.Second))
	assert.ErrorIs(t, err, playback.ErrBadInterval)
}

// TestPlayer_SeekClamps checks cursor clamping and stepping.
func TestPlayer_SeekClamps(t *testing.T) {
	p, err := playback.New([]string{"a", "b", "c", "d"})
	require.NoError(t, err)

	assert.Equal(t, 0, p.Index())
	assert.Equal(t, "a", p.Current())
	assert.Equal(t, 3, p.Seek(10))
	assert.True(t, p.AtEnd())
	assert.Equal(t, 0, p.Seek(-5))

	assert.False(t, p.Prev(), "cannot step before the first frame")
	assert.True(t, p.Next())
	assert.Equal(t, "b", p.Current())
	p.Seek(3)
	assert.False(t, p.Next(), "cannot step past the last frame")
	assert.True(t, p.Prev())
	assert.Equal(t, 2, p.Index())

	p.Reset()
	assert.Equal(t, 0, p.Index())
	assert.Equal(t, "d", p.Frame(99))
	assert.Equal(t, "a", p.Frame(-1))
	assert.Equal(t, 4, p.Len())
}

// TestPlayer_OnFrame records every cursor move.
func TestPlayer_OnFrame(t *testing.T) {
	var moves []int
	p, err := playback.New([]int{10, 20, 30}, playback.WithOnFrame(func(i int) { moves = append(moves, i) }))
	require.NoError(t, err)

	p.Next()
	p.Next()
	p.Next() // clamped, no move
	p.Seek(2)
	p.Prev()
	p.Reset()

	assert.Equal(t, []int{1, 2, 1, 0}, moves)
}

// TestPlayer_PlayToEnd plays the whole trace and stops on the last frame.
func TestPlayer_PlayToEnd(t *testing.T) {
	var mu sync.Mutex
	var moves []int
	p, err := playback.New([]int{1, 2, 3, 4, 5},
		playback.WithInterval(time.Millisecond),
		playback.WithOnFrame(func(i int) {
			mu.Lock()
			moves = append(moves, i)
			mu.Unlock()
		}),
	)
	require.NoError(t, err)

	require.NoError(t, p.Play(context.Background()))
	assert.True(t, p.AtEnd())
	assert.False(t, p.Playing())

	mu.Lock()
	assert.Equal(t, []int{1, 2, 3, 4}, moves)
	mu.Unlock()

	// Playing again from the end rewinds first.
	require.NoError(t, p.Play(context.Background()))
	assert.True(t, p.AtEnd())
}

// TestPlayer_SingleFrame returns immediately without looping.
func TestPlayer_SingleFrame(t *testing.T) {
	p, err := playback.New([]int{42}, playback.WithInterval(time.Hour))
	require.NoError(t, err)
	assert.NoError(t, p.Play(context.Background()))
}

// TestPlayer_Cancel stops playback through the context.
func TestPlayer_Cancel(t *testing.T) {
	p, err := playback.New([]int{1, 2, 3}, playback.WithInterval(time.Hour))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Play(ctx), context.Canceled)
	assert.Equal(t, 0, p.Index(), "cancellation leaves the cursor alone")
}

// TestPlayer_PauseAndDoublePlay pauses a running Play and rejects a
// concurrent second one.
func TestPlayer_PauseAndDoublePlay(t *testing.T) {
	p, err := playback.New([]int{1, 2, 3}, playback.WithInterval(time.Hour))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- p.Play(context.Background()) }()
	require.Eventually(t, p.Playing, time.Second, time.Millisecond)

	assert.ErrorIs(t, p.Play(context.Background()), playback.ErrAlreadyPlaying)

	p.Pause()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Play did not return after Pause")
	}
	assert.Eventually(t, func() bool { return !p.Playing() }, time.Second, time.Millisecond)

	p.Pause() // no-op when idle
}

// TestPlayer_PauseAsSoonAsPlaying pauses the instant Playing reports true,
// many times over; every Play must return.
func TestPlayer_PauseAsSoonAsPlaying(t *testing.T) {
	p, err := playback.New([]int{1, 2, 3}, playback.WithInterval(time.Hour))
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		done := make(chan error, 1)
		go func() { done <- p.Play(context.Background()) }()
		for !p.Playing() {
			runtime.Gosched()
		}
		p.Pause()

		select {
		case err := <-done:
			require.NoError(t, err, "run %d", i)
		case <-time.After(time.Second):
			t.Fatalf("run %d: Play ignored a Pause issued while playing", i)
		}
		require.Eventually(t, func() bool { return !p.Playing() }, time.Second, time.Microsecond)
	}
}

// TestPlayer_Loop wraps around until the context deadline.
func TestPlayer_Loop(t *testing.T) {
	var mu sync.Mutex
	wrapped := false
	p, err := playback.New([]int{1, 2, 3},
		playback.WithInterval(time.Millisecond),
		playback.WithLoop(true),
		playback.WithOnFrame(func(i int) {
			if i == 0 {
				mu.Lock()
				wrapped = true
				mu.Unlock()
			}
		}),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, p.Play(ctx), context.DeadlineExceeded)

	mu.Lock()
	assert.True(t, wrapped, "looping playback must revisit frame 0")
	mu.Unlock()
}

// TestPlayer_ConcurrentReaders polls the cursor while playback advances it.
func TestPlayer_ConcurrentReaders(t *testing.T) {
	frames := make([]int, 50)
	for i := range frames {
		frames[i] = i
	}
	p, err := playback.New(frames, playback.WithInterval(time.Millisecond))
	require.NoError(t, err)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					v := p.Current()
					assert.GreaterOrEqual(t, v, 0)
					assert.Less(t, v, len(frames))
				}
			}
		}()
	}

	require.NoError(t, p.Play(context.Background()))
	close(stop)
	wg.Wait()
	assert.Equal(t, 49, p.Current())
}
