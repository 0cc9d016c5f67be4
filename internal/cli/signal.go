package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ErrInterrupted is returned by reads from the terminal once the game has
// been interrupted.
var ErrInterrupted = errors.New("game interrupted")

// SeatInterruptedError names the seat whose question was left unanswered.
type SeatInterruptedError struct {
	Seat string
	Err  error
}

func (e *SeatInterruptedError) Error() string {
	return fmt.Sprintf("interrupted while waiting for %s: %v", e.Seat, e.Err)
}

func (e *SeatInterruptedError) Unwrap() error { return e.Err }

// Interrupt ends a game on SIGINT or SIGTERM and remembers which one arrived.
type Interrupt struct {
	ctx    context.Context
	cancel context.CancelFunc
	sigCh  chan os.Signal

	mu  sync.Mutex
	sig os.Signal
}

// WatchInterrupts starts listening for SIGINT and SIGTERM until the returned
// Interrupt is stopped or parent is done.
func WatchInterrupts(parent context.Context) *Interrupt {
	ctx, cancel := context.WithCancel(parent)
	it := &Interrupt{
		ctx:    ctx,
		cancel: cancel,
		sigCh:  make(chan os.Signal, 1),
	}
	signal.Notify(it.sigCh, os.Interrupt, syscall.SIGTERM)
	go it.wait()
	return it
}

func (it *Interrupt) wait() {
	select {
	case sig := <-it.sigCh:
		it.mu.Lock()
		it.sig = sig
		it.mu.Unlock()
		it.cancel()
	case <-it.ctx.Done():
	}
	signal.Stop(it.sigCh)
}

// Context is cancelled when a signal arrives or Stop is called.
func (it *Interrupt) Context() context.Context { return it.ctx }

// Stop releases the signal handler.
func (it *Interrupt) Stop() { it.cancel() }

// Signal returns the signal that interrupted the game, or nil.
func (it *Interrupt) Signal() os.Signal {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.sig
}

// Reader wraps r so that reads fail with ErrInterrupted once the game is
// interrupted. A line typed after the interrupt is discarded.
func (it *Interrupt) Reader(r io.Reader) io.Reader {
	return &interruptibleReader{base: r, done: it.ctx.Done()}
}

type interruptibleReader struct {
	base io.Reader
	done <-chan struct{}
}

func (r *interruptibleReader) Read(p []byte) (int, error) {
	select {
	case <-r.done:
		return 0, ErrInterrupted
	default:
	}

	// Blocks until the terminal delivers a line.
	n, err := r.base.Read(p)

	select {
	case <-r.done:
		return 0, ErrInterrupted
	default:
	}
	return n, err
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, ErrInterrupted)
}
