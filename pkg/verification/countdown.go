package verification

import (
	"context"
	"sync"
	"time"
)

// Countdown drives the OTP resend timer. Tick delivers the remaining seconds
// once per second until zero. Stop must be called when the owning screen is
// torn down so no tick fires after disposal.
type Countdown struct {
	cancel context.CancelFunc
	ticks  chan int
	once   sync.Once
}

func NewCountdown(seconds int) *Countdown {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Countdown{
		cancel: cancel,
		ticks:  make(chan int),
	}

	go func() {
		defer close(c.ticks)
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		remaining := seconds
		for remaining > 0 {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				remaining--
				select {
				case c.ticks <- remaining:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return c
}

func (c *Countdown) Tick() <-chan int {
	return c.ticks
}

func (c *Countdown) Stop() {
	c.once.Do(c.cancel)
}
