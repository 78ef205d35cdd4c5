package timekeeper

import (
	"sync"
	"time"

	"pomodoro/internal/core/model"
)

// Notifier plays the phase transition chime. Implementations are best
// effort and must not block.
type Notifier interface {
	Chime()
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func()

// Chime calls the function.
func (fn NotifierFunc) Chime() { fn() }

type silentNotifier struct{}

func (silentNotifier) Chime() {}

// Options contains the capabilities a TimeKeeper drives.
type Options struct {
	Ticks    TickSource
	Notifier Notifier
	// Now stamps events. Defaults to time.Now.
	Now func() time.Time
}

// TimeKeeper owns the Pomodoro countdown and its phase transitions.
type TimeKeeper struct {
	mu         sync.Mutex
	state      model.State
	ticks      TickSource
	notifier   Notifier
	now        func() time.Time
	events     []chan Event
	generation uint64
	closed     bool
}

// New creates an idle TimeKeeper at the start of a work phase.
func New(options Options) *TimeKeeper {
	if options.Ticks == nil {
		options.Ticks = NewIntervalTicker(time.Second)
	}
	if options.Notifier == nil {
		options.Notifier = silentNotifier{}
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	return &TimeKeeper{
		state:    model.Initial(),
		ticks:    options.Ticks,
		notifier: options.Notifier,
		now:      options.Now,
	}
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// State returns the current snapshot.
func (keeper *TimeKeeper) State() model.State {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.state
}

// Start begins the countdown. No-op while running.
func (keeper *TimeKeeper) Start() {
	keeper.apply(model.State.Start)
}

// Pause freezes the countdown. No-op while idle.
func (keeper *TimeKeeper) Pause() {
	keeper.apply(model.State.Pause)
}

// Toggle pauses a running timer and starts an idle one.
func (keeper *TimeKeeper) Toggle() {
	keeper.apply(model.State.Toggle)
}

// Reset stops the countdown and refills the current phase.
func (keeper *TimeKeeper) Reset() {
	keeper.apply(model.State.Reset)
}

// Close disarms the tick source and closes observers.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	keeper.generation++
	keeper.ticks.Disarm()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) apply(transition func(model.State) model.State) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}

	previous := keeper.state
	next := transition(previous)
	if next == previous {
		return
	}
	keeper.state = next
	keeper.syncTicksLocked(previous.Running, next.Running)
	keeper.emitLocked(Event{
		Type:  EventStateChange,
		State: next,
		At:    keeper.now(),
	})
}

func (keeper *TimeKeeper) tick(generation uint64) {
	keeper.mu.Lock()
	if keeper.closed || generation != keeper.generation {
		keeper.mu.Unlock()
		return
	}

	previous := keeper.state
	next, expired := previous.Tick()
	if next == previous {
		keeper.mu.Unlock()
		return
	}
	keeper.state = next
	keeper.syncTicksLocked(previous.Running, next.Running)

	event := Event{Type: EventTick, State: next, At: keeper.now()}
	if expired {
		event.Type = EventExpired
		event.Ended = previous.Phase
	}
	keeper.emitLocked(event)
	keeper.mu.Unlock()

	if expired {
		keeper.chime()
	}
}

// syncTicksLocked arms the tick source on entering Running and disarms it
// on leaving. Each arming bumps the generation so callbacks from an older
// arming are dropped.
func (keeper *TimeKeeper) syncTicksLocked(wasRunning, isRunning bool) {
	switch {
	case !wasRunning && isRunning:
		keeper.generation++
		generation := keeper.generation
		keeper.ticks.Arm(func() { keeper.tick(generation) })
	case wasRunning && !isRunning:
		keeper.generation++
		keeper.ticks.Disarm()
	}
}

func (keeper *TimeKeeper) chime() {
	defer func() {
		_ = recover()
	}()
	keeper.notifier.Chime()
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
