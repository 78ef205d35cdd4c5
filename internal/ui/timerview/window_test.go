package timerview

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"pomodoro/internal/core/model"
	"pomodoro/internal/i18n"
)

func TestWindowRender(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view := New(app, i18n.New("en"), Callbacks{})
	defer view.Stop()

	assert.Equal(t, "Focus Time", view.title.Text)
	assert.Equal(t, "Session 0", view.session.Text)
	assert.Equal(t, "25:00", view.digits.Text)
	assert.Equal(t, "Start", view.toggle.Text)

	view.Render(model.State{Phase: model.PhaseWork, Remaining: 1499, Running: true})
	assert.Equal(t, "24:59", view.digits.Text)
	assert.Equal(t, "Pause", view.toggle.Text)

	view.Render(model.State{Phase: model.PhaseBreak, Remaining: model.BreakSeconds, CompletedSessions: 1})
	assert.Equal(t, "Break Time", view.title.Text)
	assert.Equal(t, "Session 1", view.session.Text)
	assert.Equal(t, "05:00", view.digits.Text)
	assert.Equal(t, "Start", view.toggle.Text)
	assert.Equal(t, 0.0, view.animator.Value(), "ring snaps back on phase change")
}

func TestWindowForwardsIntents(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	toggles, resets := 0, 0
	view := New(app, i18n.New("en"), Callbacks{
		OnToggle: func() { toggles++ },
		OnReset:  func() { resets++ },
	})
	defer view.Stop()

	test.Tap(view.toggle)
	test.Tap(view.toggle)
	test.Tap(view.reset)

	assert.Equal(t, 2, toggles)
	assert.Equal(t, 1, resets)
}

func TestWindowSetLocalizer(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view := New(app, i18n.New("en"), Callbacks{})
	defer view.Stop()

	view.SetLocalizer(i18n.New("ru"))
	assert.Equal(t, "Время работы", view.title.Text)
	assert.Equal(t, "Сессия 0", view.session.Text)
	assert.Equal(t, "Сброс", view.reset.Text)
}
