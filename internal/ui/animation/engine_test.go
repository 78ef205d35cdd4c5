package animation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recorder struct {
	mu     sync.Mutex
	values []float64
}

func (rec *recorder) update(value float64) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.values = append(rec.values, value)
}

func (rec *recorder) last() (float64, bool) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.values) == 0 {
		return 0, false
	}
	return rec.values[len(rec.values)-1], true
}

func (rec *recorder) snapshot() []float64 {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return append([]float64(nil), rec.values...)
}

func TestAnimateToReachesTarget(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := &recorder{}
	engine := New(Config{Duration: 40 * time.Millisecond, FrameInterval: 2 * time.Millisecond}, rec.update)

	engine.AnimateTo(context.Background(), 0.5)

	require.Eventually(t, func() bool {
		value, ok := rec.last()
		return ok && value == 0.5
	}, time.Second, time.Millisecond)
	engine.Stop()

	values := rec.snapshot()
	for i := 1; i < len(values); i++ {
		assert.GreaterOrEqual(t, values[i], values[i-1], "tween is monotonic")
	}
	assert.Equal(t, 0.5, engine.Value())
}

func TestJumpIsImmediate(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := &recorder{}
	engine := New(Config{Duration: time.Hour, FrameInterval: time.Millisecond}, rec.update)
	engine.AnimateTo(context.Background(), 1)

	engine.Jump(0)
	engine.Stop()

	value, ok := rec.last()
	require.True(t, ok)
	assert.Equal(t, 0.0, value)
	assert.Equal(t, 0.0, engine.Value())
}

func TestZeroDurationSetsDirectly(t *testing.T) {
	rec := &recorder{}
	engine := New(Config{}, rec.update)

	engine.AnimateTo(context.Background(), 0.25)

	assert.Equal(t, []float64{0.25}, rec.snapshot())
}

func TestCancelledContextStopsTween(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := &recorder{}
	engine := New(Config{Duration: time.Hour, FrameInterval: time.Millisecond}, rec.update)
	ctx, cancel := context.WithCancel(context.Background())

	engine.AnimateTo(ctx, 1)
	cancel()
	engine.Stop()

	assert.Less(t, engine.Value(), 1.0)
}

func TestEaseInOut(t *testing.T) {
	assert.Equal(t, 0.0, easeInOut(-1))
	assert.Equal(t, 0.0, easeInOut(0))
	assert.Equal(t, 0.5, easeInOut(0.5))
	assert.Equal(t, 1.0, easeInOut(1))
	assert.Equal(t, 1.0, easeInOut(2))
	assert.Less(t, easeInOut(0.25), 0.25)
	assert.Greater(t, easeInOut(0.75), 0.75)
}
