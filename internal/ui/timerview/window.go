package timerview

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
	"pomodoro/internal/i18n"
	"pomodoro/internal/ui/animation"
)

// Callbacks forwards user intents to the timer.
type Callbacks struct {
	OnToggle func()
	OnReset  func()
}

// Window renders the timer state.
type Window struct {
	window     fyne.Window
	localizer  *i18n.Localizer
	callbacks  Callbacks
	background *canvas.LinearGradient
	title      *canvas.Text
	session    *canvas.Text
	digits     *canvas.Text
	ring       *Ring
	toggle     *widget.Button
	reset      *widget.Button
	animator   *animation.Engine
	ctx        context.Context
	cancel     context.CancelFunc
	state      model.State
}

// New creates the timer window showing the initial state.
func New(app fyne.App, localizer *i18n.Localizer, callbacks Callbacks) *Window {
	window := app.NewWindow("Pomodoro")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	start, end := phaseColors(model.PhaseWork)
	background := canvas.NewLinearGradient(start, end, 135)

	title := canvas.NewText("", textColor)
	title.Alignment = fyne.TextAlignCenter
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = 24

	session := canvas.NewText("", mutedTextColor)
	session.Alignment = fyne.TextAlignCenter
	session.TextSize = 15

	digits := canvas.NewText("25:00", textColor)
	digits.Alignment = fyne.TextAlignCenter
	digits.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	digits.TextSize = 56

	ring := NewRing(start)
	ctx, cancel := context.WithCancel(context.Background())

	view := &Window{
		window:     window,
		localizer:  localizer,
		callbacks:  callbacks,
		background: background,
		title:      title,
		session:    session,
		digits:     digits,
		ring:       ring,
		ctx:        ctx,
		cancel:     cancel,
	}
	view.animator = animation.New(animation.DefaultConfig(), func(value float64) {
		fyne.Do(func() {
			ring.SetProgress(value)
		})
	})

	view.toggle = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		if view.callbacks.OnToggle != nil {
			view.callbacks.OnToggle()
		}
	})
	view.toggle.Importance = widget.HighImportance
	view.reset = widget.NewButtonWithIcon("", theme.MediaReplayIcon(), func() {
		if view.callbacks.OnReset != nil {
			view.callbacks.OnReset()
		}
	})

	card := canvas.NewRectangle(cardColor)
	card.CornerRadius = 16
	body := container.NewVBox(
		title,
		session,
		container.NewStack(ring, container.NewCenter(digits)),
		container.NewCenter(container.NewHBox(view.toggle, view.reset)),
	)
	content := container.NewStack(card, container.NewPadded(container.NewPadded(body)))
	window.SetContent(container.NewStack(background, container.NewCenter(content)))
	window.Resize(fyne.NewSize(420, 520))

	view.state = model.Initial()
	view.renderLabels()
	return view
}

// Window returns the underlying fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Render updates the window for state. Call it on the fyne goroutine.
func (view *Window) Render(state model.State) {
	previous := view.state
	view.state = state

	if previous.Phase != state.Phase {
		start, end := phaseColors(state.Phase)
		view.background.StartColor = start
		view.background.EndColor = end
		view.background.Refresh()
		view.ring.SetColor(start)
		view.animator.Jump(state.Progress() / 100)
	} else {
		view.animator.AnimateTo(view.ctx, state.Progress()/100)
	}
	view.renderLabels()
}

// SetLocalizer relabels the window.
func (view *Window) SetLocalizer(localizer *i18n.Localizer) {
	view.localizer = localizer
	view.renderLabels()
}

// Stop halts the ring animation.
func (view *Window) Stop() {
	view.cancel()
	view.animator.Stop()
}

func (view *Window) renderLabels() {
	state := view.state
	view.title.Text = view.localizer.T(phaseTitle(state.Phase))
	view.title.Refresh()
	view.session.Text = view.localizer.T(i18n.Session, state.CompletedSessions)
	view.session.Refresh()
	view.digits.Text = state.Clock()
	view.digits.Refresh()

	if state.Running {
		view.toggle.SetIcon(theme.MediaPauseIcon())
		view.toggle.SetText(view.localizer.T(i18n.Pause))
	} else {
		view.toggle.SetIcon(theme.MediaPlayIcon())
		view.toggle.SetText(view.localizer.T(i18n.Start))
	}
	view.reset.SetText(view.localizer.T(i18n.Reset))
}

func phaseTitle(phase model.Phase) string {
	if phase == model.PhaseBreak {
		return i18n.BreakTime
	}
	return i18n.FocusTime
}
