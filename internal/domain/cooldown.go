package domain

import (
	"sync"
	"time"
)

type CooldownState int

const (
	// Ready means the earn action can be triggered.
	Ready CooldownState = iota
	// Pending means a trigger is in flight and further triggers are refused.
	Pending
	// Cooling means the server imposed a wait before the next trigger.
	Cooling
)

// Cooldown gates the repeatable earn action. Transitions are Ready -> Pending
// on trigger, Pending -> Cooling on success or a rate-limit rejection,
// Pending -> Ready on any other failure. Cooling expires back to Ready on its
// own.
//
// Remaining time is derived from a deadline instead of a running ticker, so
// there is never more than one countdown for the same instance and no timer
// to leak or forget to stop.
type Cooldown struct {
	mu             sync.Mutex
	state          CooldownState
	deadline       time.Time
	defaultSeconds int

	now func() time.Time
}

func NewCooldown(defaultSeconds int) *Cooldown {
	return &Cooldown{
		state:          Ready,
		defaultSeconds: defaultSeconds,
		now:            time.Now,
	}
}

// TryBegin moves Ready to Pending. It reports false while a trigger is in
// flight or the cooldown has not expired yet.
func (c *Cooldown) TryBegin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.resolve() != Ready {
		return false
	}

	c.state = Pending
	return true
}

// Finish moves Pending to Cooling for the given number of seconds. A
// non-positive value falls back to the default length, the server never hands
// out a free retry.
func (c *Cooldown) Finish(seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seconds <= 0 {
		seconds = c.defaultSeconds
	}

	c.state = Cooling
	c.deadline = c.now().Add(time.Duration(seconds) * time.Second)
}

// Fail moves Pending back to Ready without imposing a wait.
func (c *Cooldown) Fail() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Pending {
		c.state = Ready
	}
}

func (c *Cooldown) State() CooldownState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.resolve()
}

// Remaining returns the whole seconds left in the current cooldown, rounded
// up, and zero when the action is not cooling.
func (c *Cooldown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.resolve() != Cooling {
		return 0
	}

	remaining := c.deadline.Sub(c.now())
	seconds := int((remaining + time.Second - 1) / time.Second)
	if seconds < 0 {
		return 0
	}

	return seconds
}

// resolve collapses an expired Cooling into Ready. Callers must hold mu.
func (c *Cooldown) resolve() CooldownState {
	if c.state == Cooling && !c.now().Before(c.deadline) {
		c.state = Ready
	}

	return c.state
}
