package screen

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	Home       = "home"
	Onboarding = "onboarding"
	Courses    = "courses"
	Quiz       = "quiz"
)

var AllScreens = []string{Home, Onboarding, Courses, Quiz}

var ErrUnknownScreen = errors.New("unknown screen")

type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. Navigator never sleeps itself.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type clockScheduler struct{}

func (clockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func ClockScheduler() Scheduler {
	return clockScheduler{}
}

// Navigator tracks which screen is active. Scheduled activations run on the
// scheduler's goroutine, so state is guarded.
type Navigator struct {
	mu        sync.Mutex
	screens   map[string]struct{}
	active    string
	scheduler Scheduler
	pending   Timer
	listeners []func(id string)
}

func NewNavigator(screens []string, initial string, scheduler Scheduler) (*Navigator, error) {
	n := &Navigator{
		screens:   make(map[string]struct{}, len(screens)),
		scheduler: scheduler,
	}
	for _, id := range screens {
		n.screens[id] = struct{}{}
	}
	if _, ok := n.screens[initial]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScreen, initial)
	}
	n.active = initial
	return n, nil
}

func (n *Navigator) Active() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active
}

func (n *Navigator) OnChange(f func(id string)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, f)
}

// Activate switches screens immediately and cancels any pending switch.
func (n *Navigator) Activate(id string) error {
	n.mu.Lock()
	if _, ok := n.screens[id]; !ok {
		n.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownScreen, id)
	}
	if n.pending != nil {
		n.pending.Stop()
		n.pending = nil
	}
	listeners := n.activateLocked(id)
	n.mu.Unlock()

	notify(listeners, id)
	return nil
}

// After schedules a switch to id once d has elapsed, replacing any earlier
// pending switch.
func (n *Navigator) After(d time.Duration, id string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.screens[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScreen, id)
	}
	if n.pending != nil {
		n.pending.Stop()
	}

	var timer Timer
	timer = n.scheduler.AfterFunc(d, func() {
		n.mu.Lock()
		if n.pending != timer {
			n.mu.Unlock()
			return
		}
		n.pending = nil
		listeners := n.activateLocked(id)
		n.mu.Unlock()

		notify(listeners, id)
	})
	n.pending = timer
	return nil
}

func (n *Navigator) activateLocked(id string) []func(string) {
	n.active = id
	return append([]func(string){}, n.listeners...)
}

func notify(listeners []func(string), id string) {
	for _, f := range listeners {
		f(id)
	}
}
