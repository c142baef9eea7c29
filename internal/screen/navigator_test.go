package screen_test

import (
	"sync"
	"testing"
	"time"

	"github.com/saulo-duarte/chronos-quiz/internal/screen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualTimer struct {
	delay   time.Duration
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

// manualScheduler records callbacks and only runs them when fired.
type manualScheduler struct {
	timers []*manualTimer
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) screen.Timer {
	timer := &manualTimer{delay: d, f: f}
	s.timers = append(s.timers, timer)
	return timer
}

func (s *manualScheduler) fire(i int) {
	s.timers[i].f()
}

func newTestNavigator(t *testing.T) (*screen.Navigator, *manualScheduler) {
	t.Helper()
	sched := &manualScheduler{}
	n, err := screen.NewNavigator(screen.AllScreens, screen.Home, sched)
	require.NoError(t, err)
	return n, sched
}

func TestNewNavigator(t *testing.T) {
	n, _ := newTestNavigator(t)
	assert.Equal(t, screen.Home, n.Active())

	_, err := screen.NewNavigator(screen.AllScreens, "settings", &manualScheduler{})
	assert.ErrorIs(t, err, screen.ErrUnknownScreen)
}

func TestNavigator_Activate(t *testing.T) {
	n, _ := newTestNavigator(t)

	var seen []string
	n.OnChange(func(id string) { seen = append(seen, id) })

	require.NoError(t, n.Activate(screen.Onboarding))
	require.NoError(t, n.Activate(screen.Quiz))
	assert.Equal(t, screen.Quiz, n.Active())
	assert.Equal(t, []string{screen.Onboarding, screen.Quiz}, seen)

	assert.ErrorIs(t, n.Activate("settings"), screen.ErrUnknownScreen)
	assert.Equal(t, screen.Quiz, n.Active())
}

func TestNavigator_ListenersSnapshot(t *testing.T) {
	n, _ := newTestNavigator(t)

	var late []string
	registered := false
	n.OnChange(func(string) {
		if !registered {
			registered = true
			n.OnChange(func(id string) { late = append(late, id) })
		}
	})

	require.NoError(t, n.Activate(screen.Onboarding))
	assert.Empty(t, late)

	require.NoError(t, n.Activate(screen.Courses))
	assert.Equal(t, []string{screen.Courses}, late)
}

func TestNavigator_After(t *testing.T) {
	t.Run("switches only once fired", func(t *testing.T) {
		n, sched := newTestNavigator(t)
		require.NoError(t, n.Activate(screen.Onboarding))

		require.NoError(t, n.After(900*time.Millisecond, screen.Courses))
		require.Len(t, sched.timers, 1)
		assert.Equal(t, 900*time.Millisecond, sched.timers[0].delay)
		assert.Equal(t, screen.Onboarding, n.Active())

		sched.fire(0)
		assert.Equal(t, screen.Courses, n.Active())
	})

	t.Run("later schedule replaces earlier one", func(t *testing.T) {
		n, sched := newTestNavigator(t)

		require.NoError(t, n.After(time.Second, screen.Courses))
		require.NoError(t, n.After(time.Second, screen.Quiz))
		assert.True(t, sched.timers[0].stopped)

		sched.fire(0)
		assert.Equal(t, screen.Home, n.Active())

		sched.fire(1)
		assert.Equal(t, screen.Quiz, n.Active())
	})

	t.Run("activate cancels pending switch", func(t *testing.T) {
		n, sched := newTestNavigator(t)

		require.NoError(t, n.After(time.Second, screen.Courses))
		require.NoError(t, n.Activate(screen.Quiz))
		assert.True(t, sched.timers[0].stopped)

		sched.fire(0)
		assert.Equal(t, screen.Quiz, n.Active())
	})

	t.Run("unknown screen", func(t *testing.T) {
		n, sched := newTestNavigator(t)

		assert.ErrorIs(t, n.After(time.Second, "settings"), screen.ErrUnknownScreen)
		assert.Empty(t, sched.timers)
	})
}

func TestNavigator_ClockScheduler(t *testing.T) {
	n, err := screen.NewNavigator(screen.AllScreens, screen.Onboarding, screen.ClockScheduler())
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	var once sync.Once
	n.OnChange(func(id string) {
		if id == screen.Courses {
			once.Do(wg.Done)
		}
	})

	require.NoError(t, n.After(10*time.Millisecond, screen.Courses))
	wg.Wait()
	assert.Equal(t, screen.Courses, n.Active())
}
