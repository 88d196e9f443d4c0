package schedule

// task is one cooperative timed operation. step receives the frame delta
// and reports whether the task has finished.
type task interface {
	step(dt float64) bool
}

// Handle controls a scheduled task.
type Handle struct {
	cancelled bool
	done      bool
}

// Cancel stops the task before its next step. Cancelling a finished task is
// a no-op.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.cancelled = true
}

// Done reports whether the task ran to completion or was cancelled.
func (h *Handle) Done() bool {
	if h == nil {
		return true
	}
	return h.done || h.cancelled
}

type entry struct {
	handle *Handle
	task   task
}

// Scheduler runs timed tasks advanced only by the delta time handed to
// Advance. It has no clock of its own.
type Scheduler struct {
	tasks   []entry
	pending []entry
	running bool
	cleared bool
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// Tween calls fn with progress 0 immediately, then with elapsed/duration on
// each Advance, and finally with 1 once duration has elapsed.
func (s *Scheduler) Tween(duration float64, fn func(progress float64)) *Handle {
	h := &Handle{}
	if fn == nil {
		h.done = true
		return h
	}
	fn(0)
	if duration <= 0 {
		fn(1)
		h.done = true
		return h
	}
	s.add(entry{handle: h, task: &tween{duration: duration, fn: fn}})
	return h
}

// After calls fn once the accumulated delta reaches delay.
func (s *Scheduler) After(delay float64, fn func()) *Handle {
	h := &Handle{}
	if fn == nil {
		h.done = true
		return h
	}
	s.add(entry{handle: h, task: &timer{delay: delay, fn: fn}})
	return h
}

// Advance steps every live task by dt. Tasks scheduled from inside a task
// start on the next Advance.
func (s *Scheduler) Advance(dt float64) {
	if s == nil {
		return
	}
	s.running = true
	live := s.tasks[:0]
	for _, e := range s.tasks {
		if e.handle.Done() {
			continue
		}
		if e.task.step(dt) {
			e.handle.done = true
			continue
		}
		live = append(live, e)
	}
	if s.cleared {
		s.tasks = nil
		s.cleared = false
	} else {
		s.tasks = live
	}
	s.running = false

	if len(s.pending) > 0 {
		s.tasks = append(s.tasks, s.pending...)
		s.pending = nil
	}
}

// Len reports the number of unfinished tasks.
func (s *Scheduler) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, e := range s.tasks {
		if !e.handle.Done() {
			n++
		}
	}
	for _, e := range s.pending {
		if !e.handle.Done() {
			n++
		}
	}
	return n
}

// Clear cancels every task. Tasks scheduled after Clear from inside a
// running task are kept.
func (s *Scheduler) Clear() {
	if s == nil {
		return
	}
	if s.running {
		s.cleared = true
	}
	for _, e := range s.tasks {
		e.handle.Cancel()
	}
	for _, e := range s.pending {
		e.handle.Cancel()
	}
	s.tasks = nil
	s.pending = nil
}

func (s *Scheduler) add(e entry) {
	if s.running {
		s.pending = append(s.pending, e)
		return
	}
	s.tasks = append(s.tasks, e)
}

type tween struct {
	duration float64
	elapsed  float64
	fn       func(float64)
}

func (t *tween) step(dt float64) bool {
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.fn(1)
		return true
	}
	t.fn(t.elapsed / t.duration)
	return false
}

type timer struct {
	delay   float64
	elapsed float64
	fn      func()
}

func (t *timer) step(dt float64) bool {
	t.elapsed += dt
	if t.elapsed < t.delay {
		return false
	}
	t.fn()
	return true
}
