package trafficlight

import (
	"context"
	"sync"
)

// Channel is an unbounded FIFO handoff queue. Any number of goroutines may
// send and receive; every sent value is delivered to exactly one receiver.
//
// Send never blocks beyond lock contention. Receive blocks until a value is
// available. Each Send wakes at most one blocked receiver, and which one is
// left to the scheduler.
type Channel[T any] struct {
	mutex sync.Mutex
	cond  *sync.Cond
	queue []T
}

// NewChannel creates an empty channel
func NewChannel[T any]() *Channel[T] {
	c := &Channel[T]{}
	c.cond = sync.NewCond(&c.mutex)
	return c
}

// Send appends value to the back of the queue and wakes one waiting receiver
func (c *Channel[T]) Send(value T) {
	c.mutex.Lock()
	c.queue = append(c.queue, value)
	c.mutex.Unlock()

	c.cond.Signal()
}

// Receive blocks until the queue is non-empty, then removes and returns the
// oldest value.
func (c *Channel[T]) Receive() T {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for len(c.queue) == 0 {
		c.cond.Wait()
	}
	return c.popFront()
}

// ReceiveContext is like Receive but gives up when ctx is done, returning
// ctx.Err(). A value already queued is returned even if ctx is done.
func (c *Channel[T]) ReceiveContext(ctx context.Context) (T, error) {
	stop := context.AfterFunc(ctx, func() {
		c.mutex.Lock()
		defer c.mutex.Unlock()
		c.cond.Broadcast()
	})
	defer stop()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	for len(c.queue) == 0 {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		c.cond.Wait()
	}
	return c.popFront(), nil
}

// TryReceive removes and returns the oldest value without blocking. The
// boolean is false when the queue was empty.
func (c *Channel[T]) TryReceive() (T, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if len(c.queue) == 0 {
		var zero T
		return zero, false
	}
	return c.popFront(), true
}

// Len returns the number of values waiting to be received
func (c *Channel[T]) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.queue)
}

// popFront must be called with the mutex held and a non-empty queue
func (c *Channel[T]) popFront() T {
	value := c.queue[0]

	var zero T
	c.queue[0] = zero
	c.queue = c.queue[1:]
	if len(c.queue) == 0 {
		c.queue = nil
	}
	return value
}
