// Package playback steps through a pre-computed trace: a call tree's nodes,
// a list of sweep snapshots, or any other immutable slice of frames.
//
// A Player owns only a cursor and a play flag, both stored atomically, so a
// renderer may poll Current from another goroutine while Play advances the
// cursor on a ticker. The frames themselves are never written after New.
//
//	p, _ := playback.New(res.States, playback.WithInterval(50*time.Millisecond))
//	go p.Play(ctx)       // auto-advance until the end, Pause or ctx cancel
//	p.Seek(10)           // scrub; clamped to [0, Len()-1]
//	p.Prev(); p.Next()   // single steps
//
// Cancelling playback stops the ticker and leaves the trace untouched.
package playback
