package timekeeper

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"pomodoro/internal/core/model"
)

func TestIntervalTickerFiresUntilDisarmed(t *testing.T) {
	defer goleak.VerifyNone(t)

	ticker := NewIntervalTicker(5 * time.Millisecond)
	var count atomic.Int32
	ticker.Arm(func() { count.Add(1) })

	require.Eventually(t, func() bool { return count.Load() >= 3 }, time.Second, time.Millisecond)
	ticker.Disarm()
	ticker.Disarm()

	stopped := count.Load()
	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, count.Load(), stopped+1)
}

func TestIntervalTickerRearmReplacesCallback(t *testing.T) {
	defer goleak.VerifyNone(t)

	ticker := NewIntervalTicker(5 * time.Millisecond)
	var first, second atomic.Int32
	ticker.Arm(func() { first.Add(1) })
	require.Eventually(t, func() bool { return first.Load() >= 1 }, time.Second, time.Millisecond)

	ticker.Arm(func() { second.Add(1) })
	stale := first.Load()
	require.Eventually(t, func() bool { return second.Load() >= 3 }, time.Second, time.Millisecond)
	ticker.Disarm()

	assert.LessOrEqual(t, first.Load(), stale+1)
}

func TestIntervalTickerDefaultsToOneSecond(t *testing.T) {
	assert.Equal(t, time.Second, NewIntervalTicker(0).interval)
}

func TestTimeKeeperWithRealTicker(t *testing.T) {
	defer goleak.VerifyNone(t)

	keeper := New(Options{Ticks: NewIntervalTicker(time.Millisecond)})
	defer keeper.Close()

	keeper.Start()
	require.Eventually(t, func() bool {
		return keeper.State().Remaining <= model.WorkSeconds-5
	}, 2*time.Second, time.Millisecond)
	keeper.Pause()

	paused := keeper.State().Remaining
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, paused, keeper.State().Remaining)
}
