package scene

import (
	"log/slog"

	"github.com/milk9111/skirmish/schedule"
)

// Handler receives scene-change requests by scene name.
type Handler func(name string)

// Director turns scene-change requests into handler calls, optionally after
// a delay measured on the scheduler's clock.
type Director struct {
	sched   *schedule.Scheduler
	handler Handler

	pending     *schedule.Handle
	pendingName string
	current     string

	log *slog.Logger
}

// Option configures a Director.
type Option func(*Director)

// WithLogger sets the director's logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *Director) {
		if l != nil {
			d.log = l
		}
	}
}

// NewDirector creates a director delivering to handler.
func NewDirector(sched *schedule.Scheduler, handler Handler, opts ...Option) *Director {
	d := &Director{sched: sched, handler: handler, log: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Request changes scene immediately and drops any delayed request.
func (d *Director) Request(name string) {
	if d == nil || name == "" {
		return
	}
	d.cancelPending()
	d.deliver(name)
}

// RequestAfter changes scene once delay time units have elapsed. A newer
// delayed request replaces an older one.
func (d *Director) RequestAfter(name string, delay float64) {
	if d == nil || name == "" {
		return
	}
	if d.sched == nil {
		d.Request(name)
		return
	}
	d.cancelPending()
	d.pendingName = name
	d.pending = d.sched.After(delay, func() {
		d.pending = nil
		d.pendingName = ""
		d.deliver(name)
	})
	d.log.Debug("scene change scheduled", "scene", name, "delay", delay)
}

// Pending reports the name of a scheduled scene change, if any.
func (d *Director) Pending() (string, bool) {
	if d == nil || d.pending == nil || d.pending.Done() {
		return "", false
	}
	return d.pendingName, true
}

// Current is the last scene delivered.
func (d *Director) Current() string {
	if d == nil {
		return ""
	}
	return d.current
}

func (d *Director) cancelPending() {
	if d.pending != nil {
		d.pending.Cancel()
		d.pending = nil
		d.pendingName = ""
	}
}

func (d *Director) deliver(name string) {
	d.current = name
	d.log.Info("scene change", "scene", name)
	if d.handler != nil {
		d.handler(name)
	}
}
