package animation

import (
	"context"
	"sync"
	"time"
)

// Config contains animation timing values.
type Config struct {
	Duration      time.Duration
	FrameInterval time.Duration
}

// Engine tweens a single value, such as the progress ring fill, towards
// a target and reports every frame through update.
type Engine struct {
	mu      sync.Mutex
	config  Config
	update  func(float64)
	current float64
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a new animation engine.
func New(config Config, update func(float64)) *Engine {
	if config.FrameInterval <= 0 {
		config.FrameInterval = DefaultConfig().FrameInterval
	}
	return &Engine{
		config: config,
		update: update,
	}
}

// Value returns the last value sent to update.
func (engine *Engine) Value() float64 {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.current
}

// AnimateTo eases from the current value to target, replacing any tween
// still in flight. The last frame is always exactly target.
func (engine *Engine) AnimateTo(ctx context.Context, target float64) {
	engine.mu.Lock()
	engine.stopLocked()
	from := engine.current
	if engine.config.Duration <= 0 || from == target {
		engine.current = target
		engine.mu.Unlock()
		engine.update(target)
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	engine.cancel = cancel
	engine.done = done
	engine.mu.Unlock()

	go func() {
		defer close(done)
		engine.run(runCtx, from, target)
	}()
}

// Jump cancels any tween and sets the value immediately.
func (engine *Engine) Jump(target float64) {
	engine.mu.Lock()
	engine.stopLocked()
	engine.current = target
	engine.mu.Unlock()
	engine.update(target)
}

// Stop terminates any active animation and waits for it to exit.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	done := engine.done
	engine.stopLocked()
	engine.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (engine *Engine) stopLocked() {
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
		engine.done = nil
	}
}

func (engine *Engine) run(ctx context.Context, from, target float64) {
	start := time.Now()
	for {
		if !sleepWithContext(ctx, engine.config.FrameInterval) {
			return
		}
		fraction := float64(time.Since(start)) / float64(engine.config.Duration)
		value := target
		if fraction < 1 {
			value = from + (target-from)*easeInOut(fraction)
		}
		if !engine.publish(ctx, value) || fraction >= 1 {
			return
		}
	}
}

func (engine *Engine) publish(ctx context.Context, value float64) bool {
	engine.mu.Lock()
	if ctx.Err() != nil {
		engine.mu.Unlock()
		return false
	}
	engine.current = value
	engine.mu.Unlock()
	engine.update(value)
	return true
}

// easeInOut is a cubic ease-in-out curve over [0, 1].
func easeInOut(fraction float64) float64 {
	if fraction <= 0 {
		return 0
	}
	if fraction >= 1 {
		return 1
	}
	if fraction < 0.5 {
		return 4 * fraction * fraction * fraction
	}
	shifted := -2*fraction + 2
	return 1 - shifted*shifted*shifted/2
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
