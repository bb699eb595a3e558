// Package loop adapts the host engine's frame loop: Run opens the window and
// pumps frames, and Scheduler hosts cooperative scripts that suspend between
// frames. Scripts run in goroutines but in strict lock-step with the frame
// pump, so from their point of view everything is single-threaded.
package loop

import (
	"sync"
)

// Frame is a script's handle to the frame pump. Wait suspends the script
// until the scheduler ticks the next frame.
type Frame struct {
	resume chan float32
	yield  chan struct{}
	done   chan struct{}
	stop   chan struct{}
}

// Wait suspends until the next frame and returns its delta time. It returns
// ok=false when the scheduler has been stopped; the script should return.
func (f *Frame) Wait() (dt float32, ok bool) {
	select {
	case f.yield <- struct{}{}:
	case <-f.stop:
		return 0, false
	}
	select {
	case dt = <-f.resume:
		return dt, true
	case <-f.stop:
		return 0, false
	}
}

// Scheduler runs cooperative scripts one frame at a time. Between Tick calls
// every live script is suspended; during Tick each script runs until it
// reaches its next Wait or returns.
type Scheduler struct {
	mu      sync.Mutex
	frames  []*Frame
	stop    chan struct{}
	stopped bool
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{stop: make(chan struct{})}
}

// Go registers fn as a script. The script body up to its first Wait is its
// start phase, executed during the next Tick; each Wait-delimited stretch
// after that runs once per frame. The start phase consumes that first frame,
// so the script's first Wait resumes with the SECOND Tick's delta time. The
// script keeps running for the scheduler lifetime unless it returns or the
// scheduler is stopped.
func (s *Scheduler) Go(fn func(*Frame)) {
	f := &Frame{
		resume: make(chan float32),
		yield:  make(chan struct{}),
		done:   make(chan struct{}),
		stop:   s.stop,
	}
	go func() {
		defer close(f.done)
		// Gate: the start phase waits for the first Tick.
		select {
		case <-f.resume:
		case <-f.stop:
			return
		}
		fn(f)
	}()
	s.mu.Lock()
	s.frames = append(s.frames, f)
	s.mu.Unlock()
}

// Script registers a start/update callback pair: start runs on the first
// frame, then update runs once per frame with that frame's delta time.
func (s *Scheduler) Script(start func(), update func(dt float32)) {
	s.Go(func(f *Frame) {
		if start != nil {
			start()
		}
		for {
			dt, ok := f.Wait()
			if !ok {
				return
			}
			if update != nil {
				update(dt)
			}
		}
	})
}

// Tick advances every script by one frame, blocking until each has suspended
// again or returned. Finished scripts are dropped.
func (s *Scheduler) Tick(dt float32) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	frames := make([]*Frame, len(s.frames))
	copy(frames, s.frames)
	s.mu.Unlock()

	for _, f := range frames {
		select {
		case f.resume <- dt:
		case <-f.done:
			s.drop(f)
			continue
		}
		select {
		case <-f.yield:
		case <-f.done:
			s.drop(f)
		}
	}
}

func (s *Scheduler) drop(f *Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.frames {
		if cur == f {
			s.frames = append(s.frames[:i], s.frames[i+1:]...)
			return
		}
	}
}

// Len returns the number of live scripts.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}

// Stop cancels the scheduler: suspended scripts observe Wait returning false
// and unwind. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	close(s.stop)
}
